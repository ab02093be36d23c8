// Package redis keeps session searches in Redis, letting key expiry do the
// sweeping.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mistakeknot/significado/internal/core"
	"github.com/mistakeknot/significado/internal/storage"
)

const keyPrefix = "searchName:"

var _ storage.Store = (*Store)(nil)

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type Store struct {
	client *goredis.Client
	log    *zap.Logger
	ttl    time.Duration
	now    func() time.Time
}

// New connects and pings. A zero TTL keeps searches until deleted.
func New(ctx context.Context, cfg Config, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	log.Info("redis connected", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))

	return &Store{
		client: client,
		log:    log,
		ttl:    cfg.TTL,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

func key(sessionID string) string { return keyPrefix + sessionID }

func (s *Store) SaveSearch(ctx context.Context, sessionID, name string) (core.Search, error) {
	now := s.now()
	out := core.Search{SessionID: sessionID, Name: name, CreatedAt: now, UpdatedAt: now}
	if prev, err := s.LastSearch(ctx, sessionID); err == nil {
		out.CreatedAt = prev.CreatedAt
	} else if !errors.Is(err, storage.ErrNotFound) {
		return core.Search{}, err
	}

	data, err := json.Marshal(out)
	if err != nil {
		return core.Search{}, fmt.Errorf("marshal search: %w", err)
	}
	if err := s.client.Set(ctx, key(sessionID), data, s.ttl).Err(); err != nil {
		s.log.Error("redis set failed", zap.String("session", sessionID), zap.Error(err))
		return core.Search{}, fmt.Errorf("set search: %w", err)
	}
	return out, nil
}

func (s *Store) LastSearch(ctx context.Context, sessionID string) (core.Search, error) {
	raw, err := s.client.Get(ctx, key(sessionID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return core.Search{}, storage.ErrNotFound
	}
	if err != nil {
		return core.Search{}, fmt.Errorf("get search: %w", err)
	}
	var out core.Search
	if err := json.Unmarshal(raw, &out); err != nil {
		return core.Search{}, fmt.Errorf("decode search: %w", err)
	}
	return out, nil
}

func (s *Store) DeleteSearch(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, key(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete search: %w", err)
	}
	return nil
}

// SweepExpired is a no-op: Redis expires keys on its own.
func (s *Store) SweepExpired(context.Context, time.Time) ([]core.Search, error) {
	return nil, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
