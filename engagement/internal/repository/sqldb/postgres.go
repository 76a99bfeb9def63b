package sqldb

import (
	"context"
	"fmt"
	"net/url"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"ugcengagement/engagement/configs"
)

// NewPostgres creates a PostgreSQL-based engagement repository.
func NewPostgres(ctx context.Context, config configs.PostgresConfig, logger *zap.Logger) (*Repository, error) {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(config.User, config.Pass),
		Host:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Path:     config.Name,
		RawQuery: url.Values{"sslmode": []string{config.SSLMode}}.Encode(),
	}
	return open(ctx, postgresDialect, dsn.String(), logger)
}
