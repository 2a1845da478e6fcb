package rle

import "iter"

// Histogram counts occurrences of each letter; index 0 is 'a'.
//
// Every input byte contributes exactly one increment, independent of how the
// bytes are grouped into runs or partitions.
type Histogram [AlphabetSize]int

// Count returns the number of occurrences of letter.
// It returns 0 for bytes outside the alphabet.
func (h *Histogram) Count(letter byte) int {
	if !IsLetter(letter) {
		return 0
	}

	return h[letter-'a']
}

// Total returns the sum of all counters.
func (h *Histogram) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}

	return total
}

// Merge adds every counter of other to h.
func (h *Histogram) Merge(other *Histogram) {
	for i, n := range other {
		h[i] += n
	}
}

// Reset zeroes all counters.
func (h *Histogram) Reset() {
	*h = Histogram{}
}

// All yields each letter with its count in alphabetical order, including
// letters with a zero count.
func (h *Histogram) All() iter.Seq2[byte, int] {
	return func(yield func(byte, int) bool) {
		for i, n := range h {
			if !yield('a'+byte(i), n) {
				return
			}
		}
	}
}

// HistogramOf counts the letters of data sequentially. Bytes outside the
// alphabet are ignored.
func HistogramOf(data []byte) Histogram {
	var h Histogram
	for _, c := range data {
		if IsLetter(c) {
			h[c-'a']++
		}
	}

	return h
}
