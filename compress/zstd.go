package compress

// ZstdCodec compresses payloads with Zstandard, the best-ratio codec of the
// suite. It suits archived calibration tables where decode frequency is low.
//
// The implementation is selected at build time: valyala/gozstd when cgo is
// available, klauspost/compress/zstd otherwise. Both produce standard
// Zstandard frames and are wire-compatible with each other.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
