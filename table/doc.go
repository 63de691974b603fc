// Package table provides a compact binary format for persisting tabulated
// measurement data.
//
// A Table is an immutable set of equal-length float64 columns: one
// independent-variable column (x) plus one or more value columns. Scalar
// calibration tables carry a single value column; vector-sample tables carry
// one column per component. Tables feed the interp and fit packages
// directly via the X/Column/Vectors accessors.
//
// # Binary Layout
//
// An encoded table is a fixed 24-byte header followed by a columnar float64
// payload, optionally compressed:
//
//	header:  flag word (magic, endianness), compression type, column count,
//	         row count, payload checksum, payload length
//	payload: x column, then each value column, 8 bytes per value
//
// The checksum is the xxHash64 of the stored (compressed) payload, so
// corruption is detected before decompression runs.
//
//	data, err := table.Encode(t, table.WithCompression(format.CompressionZstd))
//	t2, err := table.Decode(data)
//
// Little-endian is the default byte order; WithBigEndian is available for
// interoperability with big-endian producers.
package table
