package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mistakeknot/significado/internal/core"
	"github.com/mistakeknot/significado/internal/storage"
)

//go:embed schema.sql
var schema string

var _ storage.Store = (*Store)(nil)

type Store struct {
	db  dbHandle
	now func() time.Time
}

type Option func(*options)

type options struct {
	log *zap.Logger
	now func() time.Time
}

// WithLogger routes slow query warnings to log.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func New(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("db path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// SQLite is single-writer; one connection keeps PRAGMAs effective.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("wal mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("busy timeout: %w", err)
	}
	return open(db, opts)
}

func NewInMemory(opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	return open(db, opts)
}

func open(db *sql.DB, opts []Option) (*Store, error) {
	o := options{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}
	if err := applySchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: newQueryLogger(db, o.log), now: o.now}, nil
}

func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (s *Store) SaveSearch(ctx context.Context, sessionID, name string) (core.Search, error) {
	now := s.now()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (session_id, name, created_at, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET name=excluded.name, updated_at=excluded.updated_at`,
		sessionID, name, now.UnixNano(), now.UnixNano(),
	)
	if err != nil {
		return core.Search{}, fmt.Errorf("upsert search: %w", err)
	}
	return s.LastSearch(ctx, sessionID)
}

func (s *Store) LastSearch(ctx context.Context, sessionID string) (core.Search, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT session_id, name, created_at, updated_at FROM searches WHERE session_id = ?`, sessionID)
	out, err := scanSearch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Search{}, storage.ErrNotFound
	}
	if err != nil {
		return core.Search{}, fmt.Errorf("query search: %w", err)
	}
	return out, nil
}

func (s *Store) DeleteSearch(ctx context.Context, sessionID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM searches WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("delete search: %w", err)
	}
	return nil
}

func (s *Store) SweepExpired(ctx context.Context, before time.Time) ([]core.Search, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin sweep: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT session_id, name, created_at, updated_at FROM searches WHERE updated_at < ? ORDER BY updated_at`,
		before.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("query expired: %w", err)
	}
	var expired []core.Search
	for rows.Next() {
		sr, err := scanSearch(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan expired: %w", err)
		}
		expired = append(expired, sr)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("rows: %w", err)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	if len(expired) == 0 {
		return nil, nil
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM searches WHERE updated_at < ?`, before.UnixNano()); err != nil {
		return nil, fmt.Errorf("delete expired: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit sweep: %w", err)
	}
	return expired, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSearch(sc scanner) (core.Search, error) {
	var (
		out                  core.Search
		createdAt, updatedAt int64
	)
	if err := sc.Scan(&out.SessionID, &out.Name, &createdAt, &updatedAt); err != nil {
		return core.Search{}, err
	}
	out.CreatedAt = time.Unix(0, createdAt).UTC()
	out.UpdatedAt = time.Unix(0, updatedAt).UTC()
	return out, nil
}
