package compress

// ZstdCompressor provides Zstandard compression.
//
// Zstd gives the best ratio of the supported codecs and is the recommended
// format for archiving large candidate-feature tables.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
