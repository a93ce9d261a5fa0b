// Package compress provides the codecs used to read and write compressed feature tables.
//
// Feature tables for stepwise selection are plain CSV files, which compress
// very well because every cell is a short decimal literal. The dataset
// package picks a codec from the file extension and decompresses the whole
// file before parsing it.
//
// Supported algorithms:
//   - None: pass-through
//   - Zstd: best ratio; klauspost/compress by default, valyala/gozstd when
//     built with the gozstd tag and cgo enabled
//   - S2: fast, Snappy-compatible block format
//   - LZ4: LZ4 frame format, so files are self-describing
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(fileBytes)
package compress
