package sqlite

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// BreakerState represents the state of the circuit breaker.
type BreakerState int

const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// ErrCircuitOpen is returned when the circuit breaker is open and rejecting requests.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// CircuitBreaker stops hammering a failing database: after threshold
// consecutive failures it rejects calls until resetTimeout has passed, then
// lets a single probe through.
type CircuitBreaker struct {
	mu           sync.Mutex
	state        BreakerState
	failures     int
	threshold    int
	resetTimeout time.Duration
	openedAt     time.Time
	log          *zap.Logger
	nowFunc      func() time.Time
}

func NewCircuitBreaker(threshold int, resetTimeout time.Duration, log *zap.Logger) *CircuitBreaker {
	if log == nil {
		log = zap.NewNop()
	}
	return &CircuitBreaker{
		threshold:    threshold,
		resetTimeout: resetTimeout,
		log:          log,
		nowFunc:      time.Now,
	}
}

// Execute runs fn unless the breaker is open.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	cb.mu.Lock()
	switch cb.state {
	case StateOpen:
		if cb.nowFunc().Sub(cb.openedAt) < cb.resetTimeout {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		cb.transition(StateHalfOpen)
		cb.mu.Unlock()
		return cb.probe(fn)
	case StateHalfOpen:
		// only one probe per reset cycle
		cb.mu.Unlock()
		return ErrCircuitOpen
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err == nil {
		cb.failures = 0
		return nil
	}
	cb.failures++
	if cb.failures >= cb.threshold {
		cb.openedAt = cb.nowFunc()
		cb.transition(StateOpen)
	}
	return err
}

func (cb *CircuitBreaker) probe(fn func() error) error {
	err := fn()
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err != nil {
		cb.openedAt = cb.nowFunc()
		cb.transition(StateOpen)
		return err
	}
	cb.failures = 0
	cb.transition(StateClosed)
	return nil
}

// transition must be called with mu held.
func (cb *CircuitBreaker) transition(to BreakerState) {
	if cb.state == to {
		return
	}
	cb.log.Warn("circuit breaker state change",
		zap.Stringer("from", cb.state),
		zap.Stringer("to", to),
		zap.Int("failures", cb.failures))
	cb.state = to
}

// State returns the current breaker state.
func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}
