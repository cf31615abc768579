package circuitbreaker

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

type State int32

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
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

var ErrOpen = errors.New("circuit breaker is open")

// Breaker stops calling a dependency after maxFailures consecutive failures
// and lets a single trial call through once resetTimeout has passed.
type Breaker[T any] struct {
	maxFailures  int64
	resetTimeout time.Duration
	isFailure    func(T, error) bool
	onChange     func(from, to State)
	now          func() time.Time

	state      atomic.Int32
	failures   atomic.Int64
	openedAt   atomic.Int64 // Unix nano
	trialInUse atomic.Bool
}

type Option[T any] func(*Breaker[T])

// WithFailurePredicate decides which results count as failures. By default
// only a non-nil error does.
func WithFailurePredicate[T any](fn func(T, error) bool) Option[T] {
	return func(cb *Breaker[T]) { cb.isFailure = fn }
}

// WithStateChange registers a callback invoked on every transition.
func WithStateChange[T any](fn func(from, to State)) Option[T] {
	return func(cb *Breaker[T]) { cb.onChange = fn }
}

func withClock[T any](now func() time.Time) Option[T] {
	return func(cb *Breaker[T]) { cb.now = now }
}

func New[T any](maxFailures int, resetTimeout time.Duration, opts ...Option[T]) *Breaker[T] {
	cb := &Breaker[T]{
		maxFailures:  int64(max(maxFailures, 1)),
		resetTimeout: resetTimeout,
		isFailure:    func(_ T, err error) bool { return err != nil },
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(cb)
	}
	cb.state.Store(int32(StateClosed))
	return cb
}

func (cb *Breaker[T]) State() State {
	return State(cb.state.Load())
}

// Execute runs fn unless the breaker is open.
func (cb *Breaker[T]) Execute(ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	trial, ok := cb.acquire()
	if !ok {
		var zero T
		return zero, ErrOpen
	}

	result, err := fn(ctx)
	cb.record(cb.isFailure(result, err), trial)
	return result, err
}

func (cb *Breaker[T]) acquire() (trial bool, ok bool) {
	switch cb.State() {
	case StateClosed:
		return false, true
	case StateOpen:
		if cb.now().UnixNano() < cb.openedAt.Load()+cb.resetTimeout.Nanoseconds() {
			return false, false
		}
		if !cb.trialInUse.CompareAndSwap(false, true) {
			return false, false
		}
		if cb.transition(StateOpen, StateHalfOpen) {
			return true, true
		}
		cb.trialInUse.Store(false)
		return false, false
	default:
		if cb.trialInUse.CompareAndSwap(false, true) {
			return true, true
		}
		return false, false
	}
}

func (cb *Breaker[T]) record(failed, trial bool) {
	if trial {
		defer cb.trialInUse.Store(false)
		if failed {
			cb.openedAt.Store(cb.now().UnixNano())
			cb.transition(StateHalfOpen, StateOpen)
			return
		}
		cb.failures.Store(0)
		cb.transition(StateHalfOpen, StateClosed)
		return
	}

	if !failed {
		cb.failures.Store(0)
		return
	}
	if cb.failures.Add(1) >= cb.maxFailures {
		cb.openedAt.Store(cb.now().UnixNano())
		cb.transition(StateClosed, StateOpen)
	}
}

func (cb *Breaker[T]) transition(from, to State) bool {
	if !cb.state.CompareAndSwap(int32(from), int32(to)) {
		return false
	}
	if cb.onChange != nil {
		cb.onChange(from, to)
	}
	return true
}
