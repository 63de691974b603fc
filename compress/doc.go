// Package compress provides the compression codecs used by the tabfit table
// format.
//
// Table payloads are columnar float64 data, typically a few hundred bytes to
// a few hundred kilobytes per table. Four codecs are available, selected by
// format.CompressionType:
//
//   - None: pass-through, for tiny tables or already-compressed transports
//   - Zstd: best ratio, for archived calibration tables
//   - S2: fastest, for tables rewritten on every measurement run
//   - LZ4: balanced speed and ratio
//
// The Zstd codec has two implementations chosen at build time: a cgo binding
// (valyala/gozstd) when cgo is available and a pure-Go fallback
// (klauspost/compress/zstd) otherwise.
//
// All codecs are stateless values and safe for concurrent use; codecs with
// expensive internal state pool it internally.
package compress
