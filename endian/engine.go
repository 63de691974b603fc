// Package endian provides byte order utilities for the tabfit table format.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single Engine interface so the table encoder can
// both append to a growing buffer and read back fixed header fields through
// one value. The returned engines are the stdlib byte orders themselves:
// immutable, stateless, and safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// Engine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it, so an Engine is
// always interchangeable with plain stdlib byte orders.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Native returns the host's byte order, determined by probing a fixed
// integer value through its in-memory representation.
func Native() binary.ByteOrder {
	// 0x0100: a little-endian host stores the LSB (0x00) first, a big-endian
	// host the MSB (0x01).
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return Native() == binary.LittleEndian
}

// LittleEndian returns the little-endian engine, the default for tabfit
// tables.
func LittleEndian() Engine {
	return binary.LittleEndian
}

// BigEndian returns the big-endian engine, for interoperability with
// big-endian producers.
func BigEndian() Engine {
	return binary.BigEndian
}
