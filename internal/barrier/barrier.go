// Package barrier provides an abortable rendezvous point for a fixed number
// of goroutines.
//
// A plain barrier deadlocks when one participant fails before arriving: the
// others wait for an arrival that never happens. Barrier therefore supports
// Abort, which releases every current and future waiter with ErrBroken, and
// Wait honours context cancellation by aborting the barrier for all parties.
package barrier

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrBroken is returned by Wait once the barrier has been aborted.
	ErrBroken = errors.New("barrier is broken")
	// ErrInvalidParties is returned by New for a non-positive party count.
	ErrInvalidParties = errors.New("invalid barrier party count")
)

// generation is one trip of the barrier. done is closed either when all
// parties arrive or when the barrier is aborted; err is set before the close.
type generation struct {
	done chan struct{}
	err  error
}

// Barrier blocks callers of Wait until parties goroutines have called it.
// It is cyclic: after a release the next Wait starts a new generation.
type Barrier struct {
	parties int

	mu      sync.Mutex
	arrived int
	gen     *generation
	cause   error // non-nil once aborted
}

// New creates a barrier for the given number of parties.
func New(parties int) (*Barrier, error) {
	if parties < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidParties, parties)
	}

	return &Barrier{
		parties: parties,
		gen:     &generation{done: make(chan struct{})},
	}, nil
}

// Parties returns the number of goroutines required to trip the barrier.
func (b *Barrier) Parties() int {
	return b.parties
}

// Wait blocks until all parties have called Wait, the barrier is aborted, or
// ctx is done.
//
// The last goroutine to arrive returns serial == true; exactly one caller per
// generation does. If ctx ends first the barrier is aborted with ctx.Err(),
// which is returned to this caller while every other waiter sees ErrBroken.
func (b *Barrier) Wait(ctx context.Context) (serial bool, err error) {
	b.mu.Lock()
	if b.cause != nil {
		b.mu.Unlock()
		return false, b.brokenError(b.cause)
	}

	gen := b.gen
	b.arrived++
	if b.arrived == b.parties {
		b.arrived = 0
		b.gen = &generation{done: make(chan struct{})}
		close(gen.done)
		b.mu.Unlock()

		return true, nil
	}
	b.mu.Unlock()

	select {
	case <-gen.done:
		if gen.err != nil {
			return false, b.brokenError(gen.err)
		}

		return false, nil
	case <-ctx.Done():
		cause := ctx.Err()
		if !b.abort(gen, cause) {
			// Tripped or aborted concurrently with cancellation; report that outcome.
			<-gen.done
			if gen.err != nil {
				return false, b.brokenError(gen.err)
			}

			return false, nil
		}

		return false, cause
	}
}

// Abort breaks the barrier with cause. Goroutines blocked in Wait are
// released with an error wrapping ErrBroken and cause, and every later Wait
// fails the same way. Aborting an already broken barrier has no effect.
func (b *Barrier) Abort(cause error) {
	if cause == nil {
		cause = ErrBroken
	}

	b.mu.Lock()
	gen := b.gen
	b.mu.Unlock()

	b.abort(gen, cause)
}

// abort breaks gen if it is still the current, untripped generation.
// It reports whether this call performed the abort.
func (b *Barrier) abort(gen *generation, cause error) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cause != nil || b.gen != gen {
		return false
	}

	b.cause = cause
	gen.err = cause
	close(gen.done)

	return true
}

// Err returns the cause the barrier was aborted with, or nil.
func (b *Barrier) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.cause
}

func (b *Barrier) brokenError(cause error) error {
	if errors.Is(cause, ErrBroken) {
		return cause
	}

	return fmt.Errorf("%w: %w", ErrBroken, cause)
}
