package compress

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/arloliu/pzip/format"
)

// ErrRoundTripMismatch is returned by Measure when decompression does not
// reproduce the input.
var ErrRoundTripMismatch = errors.New("decompressed data does not match input")

// Compressor compresses a byte payload.
//
// In pzip the payload is the packed view of a run sequence: two bytes per
// run, character then count.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is owned by the caller. The input is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Decompressor implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// It returns an error if the data is corrupted or was produced by a
	// different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one measured compression of a payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// Ratio is the ratio of compressed size to original size (< 1.0 for compression)
	Ratio float64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the data
	DecompressionTimeNs int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values below 1.0 mean the codec saved space; 0.0 is returned for an empty original.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses data with codec, decompresses the result, verifies the
// round trip and reports sizes and timings.
//
// Parameters:
//   - codec: Codec under measurement
//   - algorithm: Compression type recorded in the stats
//   - data: Payload to compress
//
// Returns:
//   - CompressionStats: Sizes, ratio and timings
//   - error: Codec error, or ErrRoundTripMismatch if the payload did not survive
func Measure(codec Codec, algorithm format.CompressionType, data []byte) (CompressionStats, error) {
	stats := CompressionStats{
		Algorithm:    algorithm,
		OriginalSize: int64(len(data)),
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	if err != nil {
		return stats, fmt.Errorf("%s compress: %w", algorithm, err)
	}
	stats.CompressionTimeNs = time.Since(start).Nanoseconds()
	stats.CompressedSize = int64(len(compressed))

	start = time.Now()
	restored, err := codec.Decompress(compressed)
	if err != nil {
		return stats, fmt.Errorf("%s decompress: %w", algorithm, err)
	}
	stats.DecompressionTimeNs = time.Since(start).Nanoseconds()

	if !bytes.Equal(restored, data) {
		return stats, fmt.Errorf("%s: %w", algorithm, ErrRoundTripMismatch)
	}
	stats.Ratio = stats.CompressionRatio()

	return stats, nil
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Compressor instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = newBuiltinCodecs()

func newBuiltinCodecs() map[format.CompressionType]Codec {
	codecs := make(map[format.CompressionType]Codec, len(format.CompressionTypes))
	for _, typ := range format.CompressionTypes {
		codec, err := CreateCodec(typ, "built-in")
		if err != nil {
			panic(err)
		}
		codecs[typ] = codec
	}

	return codecs
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
