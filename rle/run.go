package rle

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/pzip/errs"
)

const (
	// AlphabetSize is the number of distinct symbols an input may contain ('a'..'z').
	AlphabetSize = 26

	// MaxRunLength is the largest count a single Run can carry. Longer
	// repetitions are emitted as consecutive runs of the same character.
	MaxRunLength = 255

	// PackedRunSize is the number of bytes one Run occupies in the packed view.
	PackedRunSize = 2
)

// Run is one encoded repetition: Count consecutive copies of Char.
//
// A valid Run has Char in 'a'..'z' and 1 <= Count <= MaxRunLength.
type Run struct {
	Char  byte
	Count uint8
}

// String renders the run as "[c,n]".
func (r Run) String() string {
	buf := make([]byte, 0, 8)

	return string(r.appendText(buf))
}

func (r Run) appendText(buf []byte) []byte {
	buf = append(buf, '[', r.Char, ',')
	buf = strconv.AppendUint(buf, uint64(r.Count), 10)

	return append(buf, ']')
}

// Valid reports whether r has an in-alphabet character and a non-zero count.
func (r Run) Valid() bool {
	return IsLetter(r.Char) && r.Count > 0
}

// IsLetter reports whether c belongs to the input alphabet.
func IsLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// FormatRuns writes runs to w as "[c,n] " tokens, one per run.
func FormatRuns(w io.Writer, runs []Run) error {
	buf := make([]byte, 0, 8*min(len(runs), 512))
	for i, r := range runs {
		buf = r.appendText(buf)
		buf = append(buf, ' ')
		if len(buf) >= 4096 || i == len(runs)-1 {
			if _, err := w.Write(buf); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}

	return nil
}

// ExpandedLen returns the number of bytes runs expand to.
func ExpandedLen(runs []Run) int {
	n := 0
	for _, r := range runs {
		n += int(r.Count)
	}

	return n
}

// Expand decodes runs back into the byte sequence they encode.
func Expand(runs []Run) ([]byte, error) {
	dst := make([]byte, ExpandedLen(runs))
	if _, err := ExpandTo(dst, runs); err != nil {
		return nil, err
	}

	return dst, nil
}

// ExpandTo decodes runs into dst and returns the number of bytes written.
//
// It fails with errs.ErrInvalidRun on the first invalid run and with
// errs.ErrShortOutput if dst cannot hold the expansion.
func ExpandTo(dst []byte, runs []Run) (int, error) {
	pos := 0
	for i, r := range runs {
		if !r.Valid() {
			return pos, fmt.Errorf("%w: %v at index %d", errs.ErrInvalidRun, r, i)
		}

		end := pos + int(r.Count)
		if end > len(dst) {
			return pos, fmt.Errorf("%w: need at least %d bytes, have %d", errs.ErrShortOutput, end, len(dst))
		}

		for j := pos; j < end; j++ {
			dst[j] = r.Char
		}
		pos = end
	}

	return pos, nil
}

// AppendPacked appends the packed view of runs to dst: PackedRunSize bytes
// per run, the character followed by the count.
func AppendPacked(dst []byte, runs []Run) []byte {
	for _, r := range runs {
		dst = append(dst, r.Char, r.Count)
	}

	return dst
}

// UnpackRuns parses a packed view produced by AppendPacked.
func UnpackRuns(data []byte) ([]Run, error) {
	if len(data)%PackedRunSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", errs.ErrMalformedPacked, len(data), PackedRunSize)
	}

	runs := make([]Run, len(data)/PackedRunSize)
	for i := range runs {
		r := Run{Char: data[i*PackedRunSize], Count: data[i*PackedRunSize+1]}
		if !r.Valid() {
			return nil, fmt.Errorf("%w: %v at index %d", errs.ErrInvalidRun, r, i)
		}
		runs[i] = r
	}

	return runs, nil
}
