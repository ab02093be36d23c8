package sqlite

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/mistakeknot/significado/internal/core"
	"github.com/mistakeknot/significado/internal/storage"
)

var _ storage.Store = (*ResilientStore)(nil)

// ResilientStore wraps every method of *Store with CircuitBreaker +
// RetryOnDBLock. A missing search is a normal answer and never counts as a
// breaker failure.
type ResilientStore struct {
	inner *Store
	cb    *CircuitBreaker
}

// NewResilient uses a breaker that opens after 5 failures for 30s.
func NewResilient(inner *Store, log *zap.Logger) *ResilientStore {
	return &ResilientStore{inner: inner, cb: NewCircuitBreaker(5, 30*time.Second, log)}
}

func NewResilientWithBreaker(inner *Store, cb *CircuitBreaker) *ResilientStore {
	return &ResilientStore{inner: inner, cb: cb}
}

// CircuitBreakerState returns the current state of the circuit breaker as a string.
func (r *ResilientStore) CircuitBreakerState() string {
	return r.cb.State().String()
}

func (r *ResilientStore) do(ctx context.Context, fn func() error) error {
	var passthrough error
	err := r.cb.Execute(func() error {
		err := RetryOnDBLock(ctx, fn)
		if errors.Is(err, storage.ErrNotFound) {
			passthrough = err
			return nil
		}
		return err
	})
	if err != nil {
		return err
	}
	return passthrough
}

func (r *ResilientStore) SaveSearch(ctx context.Context, sessionID, name string) (core.Search, error) {
	var result core.Search
	err := r.do(ctx, func() error {
		var innerErr error
		result, innerErr = r.inner.SaveSearch(ctx, sessionID, name)
		return innerErr
	})
	return result, err
}

func (r *ResilientStore) LastSearch(ctx context.Context, sessionID string) (core.Search, error) {
	var result core.Search
	err := r.do(ctx, func() error {
		var innerErr error
		result, innerErr = r.inner.LastSearch(ctx, sessionID)
		return innerErr
	})
	return result, err
}

func (r *ResilientStore) DeleteSearch(ctx context.Context, sessionID string) error {
	return r.do(ctx, func() error {
		return r.inner.DeleteSearch(ctx, sessionID)
	})
}

func (r *ResilientStore) SweepExpired(ctx context.Context, before time.Time) ([]core.Search, error) {
	var result []core.Search
	err := r.do(ctx, func() error {
		var innerErr error
		result, innerErr = r.inner.SweepExpired(ctx, before)
		return innerErr
	})
	return result, err
}

func (r *ResilientStore) Close() error {
	return r.inner.Close()
}
