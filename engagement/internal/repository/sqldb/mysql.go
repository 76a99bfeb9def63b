package sqldb

import (
	"context"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"ugcengagement/engagement/configs"
)

// NewMySQL creates a MySQL-based engagement repository.
func NewMySQL(ctx context.Context, config configs.MysqlConfig, logger *zap.Logger) (*Repository, error) {
	dsn := mysql.NewConfig()
	dsn.User = config.User
	dsn.Passwd = config.Pass
	dsn.Net = "tcp"
	dsn.Addr = fmt.Sprintf("%s:%d", config.Host, config.Port)
	dsn.DBName = config.Name
	// Affected rows must count matched rows for author-scoped updates.
	dsn.ClientFoundRows = true
	return open(ctx, mysqlDialect, dsn.FormatDSN(), logger)
}
