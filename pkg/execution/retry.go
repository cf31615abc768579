package execution

import (
	"context"
	"errors"
)

// Outcome reports what an attempt wants the loop to do next.
type Outcome int

const (
	// Done ends the loop with the attempt's result and error.
	Done Outcome = iota
	// Retry re-drives the operation with the next attempt number.
	Retry
)

// ErrAttemptsExhausted is returned by Bounded once the ceiling is reached.
var ErrAttemptsExhausted = errors.New("attempt ceiling reached")

// AttemptFunc performs one attempt. attempt starts at 0 and grows by one on
// every Retry.
type AttemptFunc[T any] func(ctx context.Context, attempt int) (T, Outcome, error)

// Bounded runs fn until it reports Done or until ceiling attempts have been
// made. The ceiling is checked before each attempt, so an attempt numbered
// ceiling is never issued.
func Bounded[T any](ctx context.Context, ceiling int, fn AttemptFunc[T]) (T, error) {
	var zero T

	for attempt := 0; ; attempt++ {
		if attempt >= ceiling {
			return zero, ErrAttemptsExhausted
		}

		result, outcome, err := fn(ctx, attempt)
		if outcome == Done {
			return result, err
		}
	}
}
