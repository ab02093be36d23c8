package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sleepRecorder struct {
	sleeps []time.Duration
}

func (s *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	s.sleeps = append(s.sleeps, d)
	return nil
}

func TestRetrySucceedsOnTransientLock(t *testing.T) {
	calls := 0
	rec := &sleepRecorder{}
	err := retryOnDBLock(context.Background(), DefaultRetryConfig(), func() error {
		calls++
		if calls <= 3 {
			return errors.New("database is locked (5) (SQLITE_BUSY)")
		}
		return nil
	}, rec.sleep)
	require.NoError(t, err)
	assert.Equal(t, 4, calls)
	assert.Len(t, rec.sleeps, 3)
}

func TestRetryNoRetryOnOtherErrors(t *testing.T) {
	calls := 0
	err := retryOnDBLock(context.Background(), DefaultRetryConfig(), func() error {
		calls++
		return errors.New("constraint failed")
	}, (&sleepRecorder{}).sleep)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryExhaustsAllAttempts(t *testing.T) {
	calls := 0
	cfg := DefaultRetryConfig()
	err := retryOnDBLock(context.Background(), cfg, func() error {
		calls++
		return errors.New("database is locked")
	}, (&sleepRecorder{}).sleep)
	require.Error(t, err)
	assert.Equal(t, 1+cfg.MaxRetries, calls)
}

func TestRetryStopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	err := retryOnDBLock(ctx, DefaultRetryConfig(), func() error {
		calls++
		return errors.New("database is locked")
	}, sleepCtx)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryExponentialBackoff(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 4, BaseDelay: 10 * time.Millisecond, JitterPct: 0}
	rec := &sleepRecorder{}
	_ = retryOnDBLock(context.Background(), cfg, func() error {
		return errors.New("database is locked")
	}, rec.sleep)

	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 40 * time.Millisecond, 80 * time.Millisecond}, rec.sleeps)
}

func TestRetryJitterBounds(t *testing.T) {
	cfg := DefaultRetryConfig()
	rec := &sleepRecorder{}
	_ = retryOnDBLock(context.Background(), cfg, func() error {
		return errors.New("database is locked")
	}, rec.sleep)

	require.Len(t, rec.sleeps, cfg.MaxRetries)
	for i, d := range rec.sleeps {
		base := cfg.BaseDelay * (1 << i)
		maxJitter := time.Duration(float64(base) * cfg.JitterPct)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+maxJitter)
	}
}
