package rle

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// mergeCoordinated schedules one task per partition onto a pool of
// cfg.concurrency workers. Workers transfer ownership of their local results
// to the calling goroutine over a channel; the caller then scatters them in
// partition order using a running prefix sum and merges the histograms.
//
// The first failure cancels the remaining tasks. All goroutines have exited
// by the time mergeCoordinated returns.
func (z *Zipper) mergeCoordinated(ctx context.Context, input []byte, parts []Partition, dst []Run, hist *Histogram) (int, error) {
	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	// failed[i] is written only by the pool worker that runs task i.
	failed := make([]error, len(parts))

	tasks := make(chan Partition)
	results := make(chan *localResult, len(parts))

	workers := min(z.cfg.concurrency, len(parts))
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range tasks {
				if taskCtx.Err() != nil {
					continue
				}

				local, err := runTask(taskCtx, input, p)
				if err != nil {
					// Tasks stopped by cancellation leave a gap reported below.
					if ctxErr := taskCtx.Err(); ctxErr == nil || !errors.Is(err, ctxErr) {
						failed[p.Index] = fmt.Errorf("worker %d: %w", p.Index, err)
					}
					cancel()

					continue
				}
				results <- local
			}
		}()
	}

	go func() {
		defer close(tasks)
		for _, p := range parts {
			select {
			case tasks <- p:
			case <-taskCtx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	locals := make([]*localResult, len(parts))
	received := 0
	for local := range results {
		locals[local.index] = local
		received++
	}

	if err := joinFailures(failed); err != nil {
		releaseAll(locals)
		return 0, err
	}
	if received != len(parts) {
		releaseAll(locals)
		return 0, ctx.Err()
	}

	offset := 0
	for _, local := range locals {
		copy(dst[offset:offset+local.count], local.runs[:local.count])
		offset += local.count
		hist.Merge(&local.hist)
		local.release()
	}

	return offset, nil
}

// runTask encodes one partition, converting a panic into an error.
func runTask(ctx context.Context, input []byte, p Partition) (local *localResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			local, err = nil, workerPanicError(p.Index, r)
		}
	}()

	return encodeLocal(ctx, input, p)
}

func releaseAll(locals []*localResult) {
	for _, local := range locals {
		if local != nil {
			local.release()
		}
	}
}
