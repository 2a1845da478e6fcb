package rle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistogram(t *testing.T) {
	h := HistogramOf([]byte("hello world"))

	require.Equal(t, 3, h.Count('l'))
	require.Equal(t, 2, h.Count('o'))
	require.Equal(t, 0, h.Count('z'))
	require.Equal(t, 0, h.Count(' '), "non-letters are not counted")
	require.Equal(t, 10, h.Total())
}

func TestHistogram_Merge(t *testing.T) {
	a := HistogramOf([]byte("aab"))
	b := HistogramOf([]byte("bcc"))

	a.Merge(&b)

	require.Equal(t, 2, a.Count('a'))
	require.Equal(t, 2, a.Count('b'))
	require.Equal(t, 2, a.Count('c'))
	require.Equal(t, 6, a.Total())
	require.Equal(t, 3, b.Total(), "merge source is unchanged")
}

func TestHistogram_Reset(t *testing.T) {
	h := HistogramOf([]byte("xyz"))
	h.Reset()

	require.Equal(t, Histogram{}, h)
}

func TestHistogram_All(t *testing.T) {
	h := HistogramOf([]byte("zza"))

	var letters []byte
	sum := 0
	for letter, n := range h.All() {
		letters = append(letters, letter)
		sum += n
	}

	require.Len(t, letters, AlphabetSize)
	require.Equal(t, byte('a'), letters[0])
	require.Equal(t, byte('z'), letters[AlphabetSize-1])
	require.Equal(t, 3, sum)

	t.Run("stops early", func(t *testing.T) {
		seen := 0
		for range h.All() {
			seen++
			if seen == 5 {
				break
			}
		}
		require.Equal(t, 5, seen)
	})
}
