package rle

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/arloliu/pzip/errs"
	"github.com/arloliu/pzip/format"
	"github.com/arloliu/pzip/internal/options"
)

// ZipperConfig holds the settings of a Zipper.
type ZipperConfig struct {
	workers     int
	strategy    format.MergeStrategy
	concurrency int
	logger      *slog.Logger
}

func newZipperConfig() *ZipperConfig {
	return &ZipperConfig{
		workers:     runtime.GOMAXPROCS(0),
		strategy:    format.MergeBarrier,
		concurrency: runtime.GOMAXPROCS(0),
		logger:      slog.New(slog.DiscardHandler),
	}
}

func (c *ZipperConfig) setWorkers(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidWorkerCount, n)
	}
	c.workers = n

	return nil
}

func (c *ZipperConfig) setStrategy(s format.MergeStrategy) error {
	switch s {
	case format.MergeBarrier, format.MergeCoordinator:
		c.strategy = s
		return nil
	default:
		return fmt.Errorf("%w: %d", errs.ErrInvalidStrategy, s)
	}
}

func (c *ZipperConfig) setConcurrency(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidConcurrency, n)
	}
	c.concurrency = n

	return nil
}

// Workers returns the default worker count.
func (c *ZipperConfig) Workers() int {
	return c.workers
}

// Strategy returns the merge strategy.
func (c *ZipperConfig) Strategy() format.MergeStrategy {
	return c.strategy
}

// Concurrency returns the pool size used by the coordinator strategy.
func (c *ZipperConfig) Concurrency() int {
	return c.concurrency
}

// ZipperOption is a functional option for configuring a Zipper.
type ZipperOption = options.Option[*ZipperConfig]

// WithWorkers sets the worker count used when a call passes zero workers.
// The default is runtime.GOMAXPROCS(0). The effective count must still not
// exceed the input length.
func WithWorkers(n int) ZipperOption {
	return options.New(func(c *ZipperConfig) error {
		return c.setWorkers(n)
	})
}

// WithStrategy selects how local results are merged. The default is
// format.MergeBarrier.
func WithStrategy(s format.MergeStrategy) ZipperOption {
	return options.New(func(c *ZipperConfig) error {
		return c.setStrategy(s)
	})
}

// WithConcurrency sets the size of the worker pool used by
// format.MergeCoordinator. The barrier strategy ignores it, since every
// partition needs its own goroutine to reach the barrier.
func WithConcurrency(n int) ZipperOption {
	return options.New(func(c *ZipperConfig) error {
		return c.setConcurrency(n)
	})
}

// WithLogger sets the structured logger. A nil logger keeps the default,
// which discards all records.
func WithLogger(logger *slog.Logger) ZipperOption {
	return options.NoError(func(c *ZipperConfig) {
		if logger != nil {
			c.logger = logger
		}
	})
}
