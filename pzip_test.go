package pzip

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pzip/errs"
	"github.com/arloliu/pzip/format"
	"github.com/arloliu/pzip/rle"
)

func TestZip(t *testing.T) {
	input := []byte("aaaa")
	dst := make([]rle.Run, len(input))
	var hist rle.Histogram

	n, err := Zip(context.Background(), 2, input, dst, &hist)
	require.NoError(t, err)
	require.Equal(t, []rle.Run{{Char: 'a', Count: 2}, {Char: 'a', Count: 2}}, dst[:n])
	require.Equal(t, 4, hist.Count('a'))

	n, err = Zip(context.Background(), 1, input, dst, &hist)
	require.NoError(t, err)
	require.Equal(t, []rle.Run{{Char: 'a', Count: 4}}, dst[:n])
	require.Equal(t, 4, hist.Count('a'), "histogram is reset between calls")
}

func TestZip_Errors(t *testing.T) {
	var hist rle.Histogram

	_, err := Zip(context.Background(), 1, nil, nil, &hist)
	require.ErrorIs(t, err, errs.ErrEmptyInput)

	_, err = Zip(context.Background(), 3, []byte("ab"), make([]rle.Run, 2), &hist)
	require.ErrorIs(t, err, errs.ErrInvalidWorkerCount)

	_, err = Zip(context.Background(), 1, []byte("ab"), make([]rle.Run, 1), &hist)
	require.ErrorIs(t, err, errs.ErrShortOutput)

	_, err = Zip(context.Background(), 1, []byte("ab"), make([]rle.Run, 2), nil)
	require.ErrorIs(t, err, errs.ErrNilHistogram)
}

func TestEncodeDecode(t *testing.T) {
	input := bytes.Repeat([]byte("zzzzyxxxwwwwwwwwww"), 97)

	for _, strategy := range []format.MergeStrategy{format.MergeBarrier, format.MergeCoordinator} {
		t.Run(strategy.String(), func(t *testing.T) {
			res, err := Encode(context.Background(), 7, input,
				rle.WithStrategy(strategy), rle.WithConcurrency(3))
			require.NoError(t, err)
			require.Equal(t, strategy, res.Strategy)
			require.Equal(t, 7, res.Workers)
			require.Equal(t, len(input), res.Histogram.Total())

			out, err := Decode(res.Runs)
			require.NoError(t, err)
			require.Equal(t, input, out)
		})
	}
}

func TestEncode_DefaultOptions(t *testing.T) {
	res, err := Encode(context.Background(), 0, []byte("abc"))
	require.NoError(t, err)
	require.Equal(t, format.MergeBarrier, res.Strategy)
	require.GreaterOrEqual(t, res.Workers, 1)
	require.LessOrEqual(t, res.Workers, 3)
}

func TestEncode_InvalidOption(t *testing.T) {
	res, err := Encode(context.Background(), 1, []byte("abc"), rle.WithConcurrency(0))
	require.ErrorIs(t, err, errs.ErrInvalidConcurrency)
	require.Nil(t, res)
}

func TestDecode_InvalidRun(t *testing.T) {
	_, err := Decode([]rle.Run{{Char: 'a', Count: 0}})
	require.ErrorIs(t, err, errs.ErrInvalidRun)
}

func TestCompareCodecs(t *testing.T) {
	input := bytes.Repeat([]byte("aaaabbbbbbbbcd"), 512)
	res, err := Encode(context.Background(), 4, input)
	require.NoError(t, err)

	packedLen := int64(len(res.Runs) * rle.PackedRunSize)

	t.Run("all codecs", func(t *testing.T) {
		stats, err := CompareCodecs(res)
		require.NoError(t, err)
		require.Len(t, stats, len(format.CompressionTypes))

		for i, s := range stats {
			require.Equal(t, format.CompressionTypes[i], s.Algorithm)
			require.Equal(t, packedLen, s.OriginalSize)
		}
		require.Equal(t, packedLen, stats[0].CompressedSize, "None is the baseline")
	})

	t.Run("selected codecs", func(t *testing.T) {
		stats, err := CompareCodecs(res, format.CompressionLZ4, format.CompressionZstd)
		require.NoError(t, err)
		require.Len(t, stats, 2)
		require.Equal(t, format.CompressionLZ4, stats[0].Algorithm)
		require.Equal(t, format.CompressionZstd, stats[1].Algorithm)
		require.Less(t, stats[1].CompressedSize, packedLen)
	})

	t.Run("unknown codec", func(t *testing.T) {
		_, err := CompareCodecs(res, format.CompressionType(0x7f))
		require.Error(t, err)
	})
}
