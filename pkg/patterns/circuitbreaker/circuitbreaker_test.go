package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func fail(context.Context) (int, error)    { return 0, errBoom }
func succeed(context.Context) (int, error) { return 1, nil }

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cb := New[int](2, time.Minute)
	ctx := context.Background()

	_, _ = cb.Execute(ctx, fail)
	assert.Equal(t, StateClosed, cb.State())
	_, _ = cb.Execute(ctx, fail)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	_, err := cb.Execute(ctx, func(context.Context) (int, error) {
		called = true
		return 0, nil
	})
	require.ErrorIs(t, err, ErrOpen)
	assert.False(t, called)
}

func TestBreaker_SuccessResetsCount(t *testing.T) {
	cb := New[int](2, time.Minute)
	ctx := context.Background()

	_, _ = cb.Execute(ctx, fail)
	_, _ = cb.Execute(ctx, succeed)
	_, _ = cb.Execute(ctx, fail)

	assert.Equal(t, StateClosed, cb.State())
}

func TestBreaker_HalfOpenTrial(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	var transitions []string
	cb := New[int](1, time.Second,
		withClock[int](func() time.Time { return now }),
		WithStateChange[int](func(from, to State) { transitions = append(transitions, from.String()+"->"+to.String()) }),
	)
	ctx := context.Background()

	_, _ = cb.Execute(ctx, fail)
	require.Equal(t, StateOpen, cb.State())

	now = now.Add(2 * time.Second)
	_, _ = cb.Execute(ctx, fail)
	assert.Equal(t, StateOpen, cb.State(), "failed trial reopens")

	now = now.Add(2 * time.Second)
	v, err := cb.Execute(ctx, succeed)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, StateClosed, cb.State())

	assert.Equal(t, []string{
		"closed->open",
		"open->half_open", "half_open->open",
		"open->half_open", "half_open->closed",
	}, transitions)
}

func TestBreaker_FailurePredicate(t *testing.T) {
	cb := New[int](1, time.Minute, WithFailurePredicate[int](func(v int, err error) bool {
		return err != nil || v >= 500
	}))

	_, err := cb.Execute(context.Background(), func(context.Context) (int, error) { return 503, nil })

	require.NoError(t, err)
	assert.Equal(t, StateOpen, cb.State())
}

func TestBreaker_SingleTrialWhileHalfOpen(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	cb := New[int](1, time.Second, withClock[int](func() time.Time { return now }))
	ctx := context.Background()

	_, _ = cb.Execute(ctx, fail)
	require.Equal(t, StateOpen, cb.State())
	now = now.Add(2 * time.Second)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		_, err := cb.Execute(ctx, func(context.Context) (int, error) {
			close(started)
			<-release
			return 1, nil
		})
		done <- err
	}()
	<-started

	for i := 0; i < 5; i++ {
		_, err := cb.Execute(ctx, succeed)
		assert.ErrorIs(t, err, ErrOpen, "only the trial call may run while half-open")
	}

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StateClosed, cb.State())
}
