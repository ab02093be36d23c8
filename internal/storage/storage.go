package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mistakeknot/significado/internal/core"
)

// ErrNotFound is returned when a session has no saved search.
var ErrNotFound = errors.New("search not found")

// Store persists the searched name of each session under a single key.
type Store interface {
	SaveSearch(ctx context.Context, sessionID, name string) (core.Search, error)
	LastSearch(ctx context.Context, sessionID string) (core.Search, error)
	DeleteSearch(ctx context.Context, sessionID string) error
	// SweepExpired removes searches last updated before the cutoff and
	// returns what it removed.
	SweepExpired(ctx context.Context, before time.Time) ([]core.Search, error)
	Close() error
}

// InMemory is a minimal in-memory store for tests and single-process use.
type InMemory struct {
	mu       sync.RWMutex
	searches map[string]core.Search
	now      func() time.Time
}

func NewInMemory() *InMemory {
	return &InMemory{
		searches: make(map[string]core.Search),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (m *InMemory) SaveSearch(_ context.Context, sessionID, name string) (core.Search, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	s, ok := m.searches[sessionID]
	if !ok {
		s = core.Search{SessionID: sessionID, CreatedAt: now}
	}
	s.Name = name
	s.UpdatedAt = now
	m.searches[sessionID] = s
	return s, nil
}

func (m *InMemory) LastSearch(_ context.Context, sessionID string) (core.Search, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.searches[sessionID]
	if !ok {
		return core.Search{}, ErrNotFound
	}
	return s, nil
}

func (m *InMemory) DeleteSearch(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.searches, sessionID)
	return nil
}

func (m *InMemory) SweepExpired(_ context.Context, before time.Time) ([]core.Search, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []core.Search
	for id, s := range m.searches {
		if s.UpdatedAt.Before(before) {
			out = append(out, s)
			delete(m.searches, id)
		}
	}
	return out, nil
}

func (m *InMemory) Close() error { return nil }
