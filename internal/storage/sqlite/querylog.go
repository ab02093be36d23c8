package sqlite

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

const slowQueryThreshold = 100 * time.Millisecond

// dbHandle is the interface satisfied by both *sql.DB and *queryLogger.
// All Store methods use this instead of *sql.DB directly.
type dbHandle interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	Close() error
}

// queryLogger wraps a *sql.DB and logs queries that exceed the slow query threshold.
type queryLogger struct {
	inner     *sql.DB
	log       *zap.Logger
	threshold time.Duration
}

func newQueryLogger(db *sql.DB, log *zap.Logger) *queryLogger {
	if log == nil {
		log = zap.NewNop()
	}
	return &queryLogger{inner: db, log: log, threshold: slowQueryThreshold}
}

func (q *queryLogger) observe(start time.Time, query string) {
	if d := time.Since(start); d >= q.threshold {
		q.log.Warn("slow query",
			zap.Duration("duration", d.Round(time.Millisecond)),
			zap.String("query", truncateQuery(query)))
	}
}

func (q *queryLogger) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	defer q.observe(time.Now(), query)
	return q.inner.ExecContext(ctx, query, args...)
}

func (q *queryLogger) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	defer q.observe(time.Now(), query)
	return q.inner.QueryContext(ctx, query, args...)
}

func (q *queryLogger) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	defer q.observe(time.Now(), query)
	return q.inner.QueryRowContext(ctx, query, args...)
}

func (q *queryLogger) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return q.inner.BeginTx(ctx, opts)
}

func (q *queryLogger) Close() error {
	return q.inner.Close()
}

func truncateQuery(s string) string {
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}
