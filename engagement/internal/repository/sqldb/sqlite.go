package sqldb

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"ugcengagement/engagement/configs"
)

// NewSQLite creates a SQLite-based engagement repository.
func NewSQLite(ctx context.Context, config configs.SqliteConfig, logger *zap.Logger) (*Repository, error) {
	path := strings.TrimSpace(config.Path)
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"
	return open(ctx, sqliteDialect, dsn, logger)
}
