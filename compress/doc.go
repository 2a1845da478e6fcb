// Package compress provides general-purpose codecs for measuring how well a
// run sequence compresses beyond run-length encoding.
//
// RLE removes repetition within a run, but the run sequence itself often
// repeats: a text of short alternating runs yields the same (char, count)
// pairs over and over. The packed view of a run sequence (two bytes per run)
// is handed to a Codec and Measure reports the resulting size and timings.
//
// # Codecs
//
// The package defines three interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Built-in codecs are selected by format.CompressionType:
//   - format.CompressionNone: pass-through baseline
//   - format.CompressionZstd: best ratio, moderate speed
//   - format.CompressionS2: fast with good ratio
//   - format.CompressionLZ4: very fast decompression
//
// Zstd uses klauspost/compress by default. Build with the gozstd tag and cgo
// enabled to use the valyala/gozstd binding instead.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	stats, err := compress.Measure(codec, format.CompressionZstd, res.Packed())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s: %d -> %d bytes (%.1f%% saved)\n",
//	    stats.Algorithm, stats.OriginalSize, stats.CompressedSize, stats.SpaceSavings())
//
// GetCodec returns shared instances. All built-in codecs are safe for
// concurrent use.
package compress
