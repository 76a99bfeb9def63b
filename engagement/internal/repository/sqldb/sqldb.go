// Package sqldb implements the engagement store on top of a SQL database.
//
// Statements are built with goqu for the dialect of the opened driver, so
// the same code serves MySQL, PostgreSQL and SQLite. A fact swap reads the
// current row under a row lock and writes the new value in the same
// transaction; SQLite has no row locks and relies on its single writer.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"ugcengagement/engagement/internal/repository"
	"ugcengagement/pkg/logging"
)

const tracerID = "engagement-repository-sqldb"

// Repository defines a SQL-based engagement repository.
type Repository struct {
	db      *sqlx.DB
	txOpts  *sql.TxOptions
	queries *queries
	logger  *zap.Logger
}

var _ repository.Store = (*Repository)(nil)

// dialect describes the per-driver differences.
type dialect struct {
	driver   string
	goqu     string
	lockRows bool
	txOpts   *sql.TxOptions
	// maxOpenConns limits the pool when non-zero.
	maxOpenConns int
}

var (
	mysqlDialect    = dialect{driver: "mysql", goqu: "mysql", lockRows: true, txOpts: &sql.TxOptions{Isolation: sql.LevelReadCommitted}}
	postgresDialect = dialect{driver: "pgx", goqu: "postgres", lockRows: true, txOpts: &sql.TxOptions{Isolation: sql.LevelReadCommitted}}
	sqliteDialect   = dialect{driver: "sqlite", goqu: "sqlite3", maxOpenConns: 1}
)

func open(ctx context.Context, d dialect, dsn string, logger *zap.Logger) (*Repository, error) {
	logger = logger.With(
		zap.String(logging.FieldComponent, "repository"),
		zap.String(logging.FieldType, d.goqu),
	)
	logger.Info("Connecting to database")
	db, err := sqlx.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.goqu, err)
	}
	r, err := newRepository(ctx, db, d, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

func newRepository(ctx context.Context, db *sqlx.DB, d dialect, logger *zap.Logger) (*Repository, error) {
	if d.maxOpenConns > 0 {
		db.SetMaxOpenConns(d.maxOpenConns)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping %s: %w", d.goqu, err)
	}
	if err := migrate(ctx, db); err != nil {
		return nil, err
	}
	return &Repository{
		db:     db,
		txOpts: d.txOpts,
		queries: &queries{
			ext:      db,
			dialect:  goqu.Dialect(d.goqu),
			lockRows: d.lockRows,
			now:      func() time.Time { return time.Now().UTC() },
			logger:   logger,
		},
		logger: logger,
	}, nil
}

// Close closes the underlying connection pool.
func (r *Repository) Close() error {
	r.logger.Info("Closing database")
	return r.db.Close()
}

// WithinTx runs fn in a database transaction.
func (r *Repository) WithinTx(ctx context.Context, fn repository.TxFunc) (err error) {
	ctx, span := otel.Tracer(tracerID).Start(ctx, "Repository/WithinTx")
	defer span.End()
	tx, err := r.db.BeginTxx(ctx, r.txOpts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()
	if err := fn(ctx, r.queries.withExt(tx)); err != nil {
		return rollbackWith(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func rollbackWith(tx *sqlx.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
		return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
	}
	return err
}

// inTx runs a single call in its own transaction so that fact swaps
// stay atomic outside of WithinTx.
func inTx[T any](ctx context.Context, r *Repository, fn func(ctx context.Context, q *queries) (T, error)) (T, error) {
	var res T
	err := r.WithinTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		var err error
		res, err = fn(ctx, tx.(*queries))
		return err
	})
	return res, err
}
