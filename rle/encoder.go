package rle

import (
	"context"
	"fmt"

	"github.com/arloliu/pzip/errs"
	"github.com/arloliu/pzip/internal/pool"
)

// maxRetainedRuns bounds the local buffers kept in runPool so that one huge
// input does not pin memory for the lifetime of the process.
const maxRetainedRuns = 1 << 20

// cancelCheckInterval is the number of bytes scanned between context checks.
// It must be a power of two.
const cancelCheckInterval = 1 << 16

// runPool supplies worker-local result buffers. Each worker gets its own
// slice; nothing is shared between workers during the local phase.
var runPool = pool.NewSlicePool[Run](maxRetainedRuns)

// testHookEncode, when set, is called by each worker before it encodes its partition.
var testHookEncode func(p Partition)

// localResult is the output of one worker's local phase. The worker owns
// runs until release is called.
type localResult struct {
	index   int
	runs    []Run
	count   int
	hist    Histogram
	release func()
}

// encodeLocal runs the local phase for p: it draws a buffer from runPool and
// encodes the partition into it. On error the buffer is already released.
func encodeLocal(ctx context.Context, input []byte, p Partition) (*localResult, error) {
	if testHookEncode != nil {
		testHookEncode(p)
	}

	runs, release := runPool.Get(p.Len())

	res := &localResult{index: p.Index, runs: runs, release: release}
	count, err := encodePartition(ctx, input, p, runs, &res.hist)
	if err != nil {
		release()
		return nil, err
	}
	res.count = count

	return res, nil
}

// encodePartition run-length encodes input[p.Start:p.End] into dst and
// counts every scanned byte into hist.
//
// dst must have room for p.Len() runs, the worst case of one run per byte.
// Runs are capped at MaxRunLength; a longer repetition continues in a new
// run. The pending run is always emitted, so a non-empty partition yields at
// least one run. A byte outside 'a'..'z' stops the scan with
// errs.ErrInvalidByte and its absolute offset. ctx is checked every
// cancelCheckInterval bytes and its error is returned unwrapped.
func encodePartition(ctx context.Context, input []byte, p Partition, dst []Run, hist *Histogram) (int, error) {
	seg := input[p.Start:p.End]
	if len(seg) == 0 {
		return 0, fmt.Errorf("%w: partition %d is empty", errs.ErrInvalidWorkerCount, p.Index)
	}

	cur := seg[0]
	if !IsLetter(cur) {
		return 0, invalidByte(cur, p.Start)
	}
	hist[cur-'a']++

	count := 1
	n := 0
	for i := 1; i < len(seg); i++ {
		if i&(cancelCheckInterval-1) == 0 {
			if err := ctx.Err(); err != nil {
				return n, err
			}
		}

		c := seg[i]
		if !IsLetter(c) {
			return n, invalidByte(c, p.Start+i)
		}
		hist[c-'a']++

		if c == cur && count < MaxRunLength {
			count++
			continue
		}

		dst[n] = Run{Char: cur, Count: uint8(count)}
		n++
		cur = c
		count = 1
	}

	dst[n] = Run{Char: cur, Count: uint8(count)}
	n++

	return n, nil
}

func invalidByte(c byte, offset int) error {
	return fmt.Errorf("%w: 0x%02x at offset %d", errs.ErrInvalidByte, c, offset)
}
