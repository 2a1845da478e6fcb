// Package rle implements parallel run-length encoding of byte sequences over
// the lowercase alphabet 'a'..'z'.
//
// # Overview
//
// The input is split into contiguous partitions, one per worker. Each worker
// encodes its partition into a private buffer of runs and a private
// histogram. The partial results are then merged into a single caller-owned
// run buffer in partition order, and the histograms are summed.
//
// Runs never span a partition boundary: "aaaa" encoded by two workers yields
// [a,2] [a,2], while one worker yields [a,4]. A run never exceeds
// MaxRunLength; 300 repetitions of 'a' inside one partition become [a,255]
// [a,45]. Expanding the runs in order always reproduces the input exactly.
//
// # Merge Strategies
//
// Two observably equivalent strategies are available through WithStrategy:
//
//   - format.MergeBarrier (default): one goroutine per partition. Workers
//     publish their local run counts, meet at a barrier, compute their own
//     write offset as the sum of the counts of all lower-indexed workers, and
//     copy their runs into disjoint slices of the output. The worker holding
//     the last partition publishes the total.
//   - format.MergeCoordinator: partitions are tasks on a fixed-size worker
//     pool (WithConcurrency). Workers hand their local results to the calling
//     goroutine, which performs the prefix-sum scatter.
//
// Either way, a failing worker (invalid byte, panic, cancelled context)
// stops the whole operation and every goroutine is joined before the call
// returns; a worker is never left blocked at the barrier.
//
// # Basic Usage
//
//	z, err := rle.NewZipper(rle.WithStrategy(format.MergeBarrier))
//	if err != nil {
//	    return err
//	}
//
//	input := []byte("aaabccdddd")
//	runs := make([]rle.Run, len(input))
//	var hist rle.Histogram
//	n, err := z.Zip(ctx, 2, input, runs, &hist)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(runs[:n], hist.Count('d'))
package rle
