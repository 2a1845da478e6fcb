package rle

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pzip/errs"
)

func encodeWhole(t *testing.T, input []byte) ([]Run, Histogram) {
	t.Helper()

	dst := make([]Run, len(input))
	var hist Histogram
	n, err := encodePartition(context.Background(), input, Partition{Start: 0, End: len(input)}, dst, &hist)
	require.NoError(t, err)

	return dst[:n], hist
}

func TestEncodePartition(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Run
	}{
		{"single byte", "q", []Run{{'q', 1}}},
		{"single run", "aaaa", []Run{{'a', 4}}},
		{"trailing single", "aab", []Run{{'a', 2}, {'b', 1}}},
		{"alternating", "abab", []Run{{'a', 1}, {'b', 1}, {'a', 1}, {'b', 1}}},
		{"mixed", "aaabccdddd", []Run{{'a', 3}, {'b', 1}, {'c', 2}, {'d', 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, hist := encodeWhole(t, []byte(tt.input))
			require.Equal(t, tt.expected, runs)
			require.Equal(t, HistogramOf([]byte(tt.input)), hist)
		})
	}
}

func TestEncodePartition_RunCap(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		expected []Run
	}{
		{"exactly max", 255, []Run{{'a', 255}}},
		{"one over max", 256, []Run{{'a', 255}, {'a', 1}}},
		{"three hundred", 300, []Run{{'a', 255}, {'a', 45}}},
		{"two full runs", 510, []Run{{'a', 255}, {'a', 255}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := bytes.Repeat([]byte{'a'}, tt.length)
			runs, hist := encodeWhole(t, input)
			require.Equal(t, tt.expected, runs)
			require.Equal(t, tt.length, hist.Count('a'))
		})
	}
}

func TestEncodePartition_Subrange(t *testing.T) {
	input := []byte("xxyyyzz")
	dst := make([]Run, 3)
	var hist Histogram

	n, err := encodePartition(context.Background(), input, Partition{Index: 1, Start: 1, End: 4}, dst, &hist)
	require.NoError(t, err)
	require.Equal(t, []Run{{'x', 1}, {'y', 2}}, dst[:n])
	require.Equal(t, 1, hist.Count('x'))
	require.Equal(t, 2, hist.Count('y'))
	require.Equal(t, 0, hist.Count('z'), "bytes outside the partition are not counted")
}

func TestEncodePartition_CountsEveryByteOnce(t *testing.T) {
	// A partition whose first letter differs from the rest must not
	// attribute the rest to the first letter.
	_, hist := encodeWhole(t, []byte("abbbbcccc"))

	require.Equal(t, 1, hist.Count('a'))
	require.Equal(t, 4, hist.Count('b'))
	require.Equal(t, 4, hist.Count('c'))
	require.Equal(t, 9, hist.Total())
}

func TestEncodePartition_InvalidByte(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset string
	}{
		{"first byte", "Aaa", "offset 0"},
		{"middle byte", "aa1bb", "offset 2"},
		{"last byte", "abc\n", "offset 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := []byte(tt.input)
			dst := make([]Run, len(input))
			var hist Histogram

			_, err := encodePartition(context.Background(), input, Partition{Start: 0, End: len(input)}, dst, &hist)
			require.ErrorIs(t, err, errs.ErrInvalidByte)
			require.Contains(t, err.Error(), tt.offset)
		})
	}
}

func TestEncodePartition_EmptyPartition(t *testing.T) {
	var hist Histogram
	_, err := encodePartition(context.Background(), []byte("abc"), Partition{Index: 2, Start: 1, End: 1}, nil, &hist)
	require.ErrorIs(t, err, errs.ErrInvalidWorkerCount)
}

func TestEncodeLocal(t *testing.T) {
	input := []byte("aabbbbcd")

	local, err := encodeLocal(context.Background(), input, Partition{Index: 3, Start: 2, End: 8})
	require.NoError(t, err)
	defer local.release()

	require.Equal(t, 3, local.index)
	require.Equal(t, []Run{{'b', 4}, {'c', 1}, {'d', 1}}, local.runs[:local.count])
	require.Equal(t, 6, local.hist.Total())
}

func TestEncodePartition_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := bytes.Repeat([]byte{'k'}, 3*cancelCheckInterval)
	dst := make([]Run, len(input))
	var hist Histogram

	_, err := encodePartition(ctx, input, Partition{Start: 0, End: len(input)}, dst, &hist)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, cancelCheckInterval, hist.Total(), "scan stops at the first check")

	// Partitions shorter than the check interval complete.
	small := input[:cancelCheckInterval]
	n, err := encodePartition(ctx, small, Partition{Start: 0, End: len(small)}, dst, &hist)
	require.NoError(t, err)
	require.Positive(t, n)
}
