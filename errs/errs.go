// Package errs defines the sentinel errors returned by pzip.
//
// Errors are returned wrapped with context, so callers should match them with
// errors.Is rather than by equality:
//
//	if _, err := pzip.Zip(ctx, n, input, dst, &hist); errors.Is(err, errs.ErrInvalidByte) {
//	    // input contained a byte outside 'a'..'z'
//	}
package errs

import "errors"

// Configuration errors, reported before any worker starts.
var (
	// ErrEmptyInput is returned when the input buffer has no bytes to partition.
	ErrEmptyInput = errors.New("input is empty")
	// ErrInvalidWorkerCount is returned when the worker count is not positive or
	// exceeds the input length, which would leave a worker with an empty partition.
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	// ErrShortOutput is returned when a destination buffer cannot hold the worst case result.
	ErrShortOutput = errors.New("output buffer too short")
	// ErrNilHistogram is returned when the caller passes no histogram to fill.
	ErrNilHistogram = errors.New("histogram is nil")
	// ErrInvalidConcurrency is returned when the coordinator pool size is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency")
	// ErrInvalidStrategy is returned for an unknown merge strategy.
	ErrInvalidStrategy = errors.New("invalid merge strategy")
)

// Input and data errors.
var (
	// ErrInvalidByte is returned when the input holds a byte outside 'a'..'z'.
	ErrInvalidByte = errors.New("invalid input byte")
	// ErrInvalidRun is returned when a run has an out-of-alphabet character or a zero count.
	ErrInvalidRun = errors.New("invalid run")
	// ErrMalformedPacked is returned when a packed run view has an odd length.
	ErrMalformedPacked = errors.New("malformed packed runs")
)

// Execution errors.
var (
	// ErrWorkerPanic is returned when a worker goroutine panicked; the panic value is wrapped in the message.
	ErrWorkerPanic = errors.New("worker panicked")
)
