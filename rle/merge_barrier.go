package rle

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/arloliu/pzip/internal/barrier"
)

// mergeBarrier runs one goroutine per partition through the two-phase
// protocol: local encoding, barrier, then offset computation and copy.
//
// localCounts[i] is written by worker i before it reaches the barrier and
// only read after the barrier releases, so the prefix sums need no further
// synchronization. Each worker writes dst[offset(i):offset(i)+count(i)],
// disjoint by construction. The worker owning the last partition is the only
// writer of total.
//
// A worker checks ctx before arriving, so a cancelled context always breaks
// the barrier instead of racing the final arrival.
func (z *Zipper) mergeBarrier(ctx context.Context, input []byte, parts []Partition, dst []Run, hist *Histogram) (int, error) {
	bar, err := barrier.New(len(parts))
	if err != nil {
		return 0, fmt.Errorf("create barrier: %w", err)
	}

	var (
		wg     sync.WaitGroup
		histMu sync.Mutex
		total  int
	)

	// failed[i] is written only by worker i.
	failed := make([]error, len(parts))
	localCounts := make([]int, len(parts))
	last := len(parts) - 1

	// fail records a root cause and breaks the barrier so that no peer is left waiting.
	fail := func(index int, err error) {
		if failed[index] == nil {
			failed[index] = err
		}
		bar.Abort(err)
	}

	for _, p := range parts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					fail(p.Index, workerPanicError(p.Index, r))
				}
			}()

			local, err := encodeLocal(ctx, input, p)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
					bar.Abort(ctxErr)
					return
				}
				fail(p.Index, fmt.Errorf("worker %d: %w", p.Index, err))

				return
			}
			defer local.release()

			localCounts[p.Index] = local.count

			if err := ctx.Err(); err != nil {
				bar.Abort(err)
				return
			}
			// Wait aborts the barrier itself when ctx ends; peers released by an
			// abort only echo its cause.
			if _, err := bar.Wait(ctx); err != nil {
				return
			}

			offset := 0
			for _, n := range localCounts[:p.Index] {
				offset += n
			}
			copy(dst[offset:offset+local.count], local.runs[:local.count])

			if p.Index == last {
				total = offset + local.count
			}

			histMu.Lock()
			hist.Merge(&local.hist)
			histMu.Unlock()
		}()
	}
	wg.Wait()

	if err := joinFailures(failed); err != nil {
		return 0, err
	}
	// Without a recorded failure the barrier can only have been broken by
	// cancellation, and then no worker got past it.
	if err := bar.Err(); err != nil {
		return 0, err
	}

	return total, nil
}
