package rle

import (
	"fmt"

	"github.com/arloliu/pzip/errs"
)

// Partition is the half-open range [Start, End) of the input assigned to
// the worker with the same Index.
type Partition struct {
	Index int
	Start int
	End   int
}

// Len returns the number of bytes in the partition.
func (p Partition) Len() int {
	return p.End - p.Start
}

// Partitions splits [0, size) into nWorkers contiguous, non-overlapping ranges.
//
// Every partition holds size/nWorkers bytes except the last, which also
// absorbs the remainder. nWorkers must be in [1, size] so that no partition
// is empty.
func Partitions(nWorkers, size int) ([]Partition, error) {
	if size <= 0 {
		return nil, errs.ErrEmptyInput
	}
	if nWorkers < 1 || nWorkers > size {
		return nil, fmt.Errorf("%w: %d workers for %d bytes", errs.ErrInvalidWorkerCount, nWorkers, size)
	}

	step := size / nWorkers
	parts := make([]Partition, nWorkers)
	for i := range parts {
		parts[i] = Partition{
			Index: i,
			Start: i * step,
			End:   (i + 1) * step,
		}
	}
	parts[nWorkers-1].End = size

	return parts, nil
}
