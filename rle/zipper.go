package rle

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/arloliu/pzip/errs"
	"github.com/arloliu/pzip/format"
	"github.com/arloliu/pzip/internal/options"
)

// Zipper run-length encodes letter sequences in parallel.
//
// A Zipper holds only configuration and is safe for concurrent use; every
// call to Zip or Encode runs its own set of workers.
type Zipper struct {
	cfg *ZipperConfig
}

// NewZipper creates a Zipper configured by opts.
//
// Returns an error if any option is invalid.
func NewZipper(opts ...ZipperOption) (*Zipper, error) {
	cfg := newZipperConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Zipper{cfg: cfg}, nil
}

// Config returns the zipper's configuration.
func (z *Zipper) Config() *ZipperConfig {
	return z.cfg
}

// Zip encodes input with nWorkers workers, writing runs into dst and letter
// totals into hist, and returns the number of runs written.
//
// dst and hist are caller-allocated and filled in place; dst must hold at
// least len(input) runs, the worst case. hist is reset before counting. A
// nWorkers of zero selects the configured default, clamped to len(input); an
// explicit nWorkers must lie in [1, len(input)].
//
// Runs never span partition boundaries, so the output depends on nWorkers
// but is otherwise deterministic. On error no partial result is reported and
// the contents of dst and hist are unspecified.
func (z *Zipper) Zip(ctx context.Context, nWorkers int, input []byte, dst []Run, hist *Histogram) (int, error) {
	if hist == nil {
		return 0, errs.ErrNilHistogram
	}

	parts, err := Partitions(z.resolveWorkers(nWorkers, len(input)), len(input))
	if err != nil {
		return 0, err
	}
	if len(dst) < len(input) {
		return 0, fmt.Errorf("%w: %d runs for %d input bytes", errs.ErrShortOutput, len(dst), len(input))
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	logger := z.cfg.logger
	logger.DebugContext(ctx, "zip started",
		"bytes", len(input),
		"workers", len(parts),
		"strategy", z.cfg.strategy.String(),
	)

	hist.Reset()

	var total int
	switch z.cfg.strategy {
	case format.MergeCoordinator:
		total, err = z.mergeCoordinated(ctx, input, parts, dst, hist)
	default:
		total, err = z.mergeBarrier(ctx, input, parts, dst, hist)
	}
	if err != nil {
		logger.DebugContext(ctx, "zip failed", "error", err)
		return 0, err
	}

	logger.DebugContext(ctx, "zip finished", "runs", total)

	return total, nil
}

// Encode is like Zip but allocates the output and returns it as a Result.
func (z *Zipper) Encode(ctx context.Context, nWorkers int, input []byte) (*Result, error) {
	res := &Result{
		Workers:  z.resolveWorkers(nWorkers, len(input)),
		Strategy: z.cfg.strategy,
		InputLen: len(input),
	}

	dst := make([]Run, len(input))
	count, err := z.Zip(ctx, res.Workers, input, dst, &res.Histogram)
	if err != nil {
		return nil, err
	}
	res.Runs = dst[:count]

	return res, nil
}

func (z *Zipper) resolveWorkers(nWorkers, size int) int {
	if nWorkers != 0 {
		return nWorkers
	}

	return max(min(z.cfg.workers, size), 1)
}

// workerPanicError converts a recovered panic value into an error.
func workerPanicError(index int, r any) error {
	return fmt.Errorf("%w: worker %d: %v", errs.ErrWorkerPanic, index, r)
}

// joinFailures aggregates the per-worker failures in worker order. It
// returns nil when no worker failed and the failure itself when exactly one
// did.
func joinFailures(failed []error) error {
	var failures *multierror.Error
	for _, err := range failed {
		if err != nil {
			failures = multierror.Append(failures, err)
		}
	}
	if failures == nil {
		return nil
	}
	if len(failures.Errors) == 1 {
		return failures.Errors[0]
	}
	failures.ErrorFormat = func(es []error) string {
		msgs := make([]string, len(es))
		for i, e := range es {
			msgs[i] = e.Error()
		}

		return fmt.Sprintf("%d workers failed: %s", len(es), strings.Join(msgs, "; "))
	}

	return failures
}
