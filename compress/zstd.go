package compress

// ZstdCompressor provides Zstandard compression of packed run payloads.
//
// Run sequences from low-entropy inputs repeat the same (char, count) pairs
// many times, which Zstd exploits well. It has the best ratio of the built-in
// codecs at moderate speed.
//
// The default build uses the pure Go klauspost/compress implementation.
// Building with the gozstd tag and cgo enabled switches to valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(res.Packed())
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
