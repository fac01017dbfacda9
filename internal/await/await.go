// Package await provides the race-against-timeout pattern used by every
// external call site: generation, narrative analysis, and video search all
// treat a timeout identically to a failure and fall through to local
// fallback content.
package await

import (
	"context"
	"time"
)

// Result is the tagged outcome of a raced call.
type Result[T any] struct {
	Value    T
	Err      error
	TimedOut bool
}

// Ok reports whether the call completed successfully in time.
func (r Result[T]) Ok() bool {
	return r.Err == nil && !r.TimedOut
}

// WithTimeout runs fn and waits at most d for it to settle. The losing
// branch keeps running until its context is cancelled; its result is
// discarded. A timeout yields Result{TimedOut: true} with Err set to the
// context error so failure handling stays uniform.
func WithTimeout[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error)) Result[T] {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	type outcome struct {
		value T
		err   error
	}

	done := make(chan outcome, 1)
	go func() {
		v, err := fn(ctx)
		done <- outcome{value: v, err: err}
	}()

	select {
	case out := <-done:
		return Result[T]{Value: out.value, Err: out.err}
	case <-ctx.Done():
		var zero T
		return Result[T]{Value: zero, Err: ctx.Err(), TimedOut: true}
	}
}
