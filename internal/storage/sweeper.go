package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mistakeknot/significado/internal/core"
)

// Broadcaster is the interface for emitting events to WebSocket clients.
type Broadcaster interface {
	Broadcast(sessionID string, event any)
}

// Sweeper runs a background goroutine that periodically forgets searches
// whose session has been idle for longer than the TTL.
type Sweeper struct {
	store    Store
	bus      Broadcaster
	log      *zap.Logger
	interval time.Duration
	ttl      time.Duration
	now      func() time.Time
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewSweeper creates a new Sweeper. Call Start() to begin sweeping.
func NewSweeper(store Store, bus Broadcaster, log *zap.Logger, interval, ttl time.Duration) *Sweeper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sweeper{
		store:    store,
		bus:      bus,
		log:      log,
		interval: interval,
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
		done:     make(chan struct{}),
	}
}

// Start launches the background sweep goroutine. The first sweep runs
// immediately.
func (sw *Sweeper) Start(ctx context.Context) {
	ctx, sw.cancel = context.WithCancel(ctx)

	go func() {
		defer close(sw.done)

		sw.Sweep(ctx)

		ticker := time.NewTicker(sw.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sw.Sweep(ctx)
			}
		}
	}()
}

// Stop cancels the sweep goroutine and waits for it to finish.
func (sw *Sweeper) Stop() {
	if sw.cancel != nil {
		sw.cancel()
	}
	<-sw.done
}

// Sweep removes expired searches once and returns how many it removed.
func (sw *Sweeper) Sweep(ctx context.Context) int {
	now := sw.now()
	expired, err := sw.store.SweepExpired(ctx, now.Add(-sw.ttl))
	if err != nil {
		sw.log.Error("sweep expired searches", zap.Error(err))
		return 0
	}
	if len(expired) == 0 {
		return 0
	}

	sw.log.Info("swept expired searches", zap.Int("count", len(expired)))

	if sw.bus != nil {
		for _, s := range expired {
			sw.bus.Broadcast(s.SessionID, core.Event{
				ID:        uuid.NewString(),
				Type:      core.EventSearchExpired,
				SessionID: s.SessionID,
				Name:      s.Name,
				CreatedAt: now,
			})
		}
	}
	return len(expired)
}
