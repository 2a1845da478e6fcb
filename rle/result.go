package rle

import (
	"io"

	"github.com/arloliu/pzip/format"
	"github.com/arloliu/pzip/internal/hash"
)

// checksumChunkRuns is the number of runs packed per digest write.
const checksumChunkRuns = 256

// Result is the allocated output of Zipper.Encode.
type Result struct {
	// Runs holds the encoded runs in partition order.
	Runs []Run
	// Histogram holds the per-letter totals of the whole input.
	Histogram Histogram
	// Workers is the number of partitions the input was split into.
	Workers int
	// Strategy is the merge strategy that produced the result.
	Strategy format.MergeStrategy
	// InputLen is the length of the encoded input in bytes.
	InputLen int
}

// Count returns the number of runs.
func (r *Result) Count() int {
	return len(r.Runs)
}

// Expand decodes the runs back into the original input.
func (r *Result) Expand() ([]byte, error) {
	return Expand(r.Runs)
}

// Packed returns a newly allocated packed view of the runs.
func (r *Result) Packed() []byte {
	return AppendPacked(make([]byte, 0, len(r.Runs)*PackedRunSize), r.Runs)
}

// Checksum returns the xxHash64 of the packed runs. Equal checksums identify
// identical run sequences, which makes repeated encodings easy to compare.
func (r *Result) Checksum() uint64 {
	var chunk [checksumChunkRuns * PackedRunSize]byte

	if len(r.Runs) <= checksumChunkRuns {
		return hash.Sum(AppendPacked(chunk[:0], r.Runs))
	}

	d := hash.NewDigest()
	for runs := r.Runs; len(runs) > 0; {
		n := min(len(runs), checksumChunkRuns)
		d.Write(AppendPacked(chunk[:0], runs[:n]))
		runs = runs[n:]
	}

	return d.Sum64()
}

// WriteRuns writes the runs to w as "[c,n] " tokens.
func (r *Result) WriteRuns(w io.Writer) error {
	return FormatRuns(w, r.Runs)
}
