// Package pzip run-length encodes lowercase letter sequences in parallel.
//
// The input is split into one contiguous partition per worker. Workers encode
// their partitions concurrently and the partial results are merged, in
// partition order, into a caller-provided run buffer together with a
// histogram of letter frequencies.
//
// # Basic Usage
//
// Encoding into caller-owned buffers:
//
//	input := []byte("aaabccdddd")
//	runs := make([]rle.Run, len(input))
//	var hist rle.Histogram
//	n, err := pzip.Zip(ctx, 2, input, runs, &hist)
//	if err != nil {
//	    return err
//	}
//	// runs[:n] == [a,3] [b,1] [c,1] [c,1] [d,4]
//
// Encoding with an allocated result and round-tripping it:
//
//	res, err := pzip.Encode(ctx, 0, input, rle.WithStrategy(format.MergeCoordinator))
//	if err != nil {
//	    return err
//	}
//	original, err := pzip.Decode(res.Runs)
//
// Comparing general-purpose codecs on the run sequence:
//
//	stats, err := pzip.CompareCodecs(res)
//	for _, s := range stats {
//	    fmt.Printf("%s: %.1f%% saved\n", s.Algorithm, s.SpaceSavings())
//	}
//
// # Package Structure
//
// This package wraps the rle and compress packages for the common cases. Use
// rle.NewZipper directly to reuse a configured encoder across calls.
package pzip

import (
	"context"

	"github.com/arloliu/pzip/compress"
	"github.com/arloliu/pzip/format"
	"github.com/arloliu/pzip/internal/pool"
	"github.com/arloliu/pzip/rle"
)

var defaultZipper, _ = rle.NewZipper()

// Zip encodes input with nWorkers workers into dst and hist and returns the
// number of runs written.
//
// dst must hold at least len(input) runs. hist is reset before counting.
// A nWorkers of zero uses runtime.GOMAXPROCS(0) workers, clamped to the input
// length.
func Zip(ctx context.Context, nWorkers int, input []byte, dst []rle.Run, hist *rle.Histogram) (int, error) {
	return defaultZipper.Zip(ctx, nWorkers, input, dst, hist)
}

// Encode encodes input with nWorkers workers and returns the allocated result.
//
// opts configure the underlying rle.Zipper for this call.
func Encode(ctx context.Context, nWorkers int, input []byte, opts ...rle.ZipperOption) (*rle.Result, error) {
	z := defaultZipper
	if len(opts) > 0 {
		var err error
		if z, err = rle.NewZipper(opts...); err != nil {
			return nil, err
		}
	}

	return z.Encode(ctx, nWorkers, input)
}

// Decode expands runs back into the byte sequence they encode.
func Decode(runs []rle.Run) ([]byte, error) {
	return rle.Expand(runs)
}

// CompareCodecs measures each codec on the packed view of res.Runs and
// returns one entry per requested type, in the order given. With no types,
// every built-in codec is measured.
func CompareCodecs(res *rle.Result, types ...format.CompressionType) ([]compress.CompressionStats, error) {
	if len(types) == 0 {
		types = format.CompressionTypes
	}

	buf := pool.GetPackBuffer()
	defer pool.PutPackBuffer(buf)

	buf.Grow(len(res.Runs) * rle.PackedRunSize)
	buf.B = rle.AppendPacked(buf.B, res.Runs)

	stats := make([]compress.CompressionStats, 0, len(types))
	for _, typ := range types {
		codec, err := compress.GetCodec(typ)
		if err != nil {
			return nil, err
		}

		s, err := compress.Measure(codec, typ, buf.Bytes())
		if err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}

	return stats, nil
}
