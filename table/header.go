package table

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/tabfit/endian"
	"github.com/arloliu/tabfit/errs"
	"github.com/arloliu/tabfit/format"
)

// HeaderSize is the fixed size of an encoded table header in bytes.
const HeaderSize = 24

const (
	// magicNumber occupies the upper 12 bits of the options word.
	magicNumber uint16 = 0xEC10
	magicMask   uint16 = 0xFFF0

	// flagBigEndian marks a payload written in big-endian byte order.
	flagBigEndian uint16 = 0x0001
)

// header is the fixed preamble of an encoded table.
//
// Layout (header fields are always little-endian; the endianness flag only
// governs the payload):
//
//	offset  size  field
//	0       2     options word: magic (bits 4-15), endianness (bit 0)
//	2       1     compression type
//	3       1     column count (x column included)
//	4       4     row count
//	8       8     xxHash64 of the stored payload
//	16      4     stored payload length in bytes
//	20      4     reserved, zero
type header struct {
	options     uint16
	compression format.CompressionType
	colCount    uint8
	rowCount    uint32
	checksum    uint64
	payloadLen  uint32
}

func newHeader(compression format.CompressionType, bigEndian bool, cols, rows int) header {
	options := magicNumber
	if bigEndian {
		options |= flagBigEndian
	}

	return header{
		options:     options,
		compression: compression,
		colCount:    uint8(cols),
		rowCount:    uint32(rows),
	}
}

// engine returns the byte-order engine the payload was written with.
func (h header) engine() endian.Engine {
	if h.options&flagBigEndian != 0 {
		return endian.BigEndian()
	}

	return endian.LittleEndian()
}

// appendTo appends the marshaled header to buf.
func (h header) appendTo(buf []byte) []byte {
	buf = binary.LittleEndian.AppendUint16(buf, h.options)
	buf = append(buf, byte(h.compression), h.colCount)
	buf = binary.LittleEndian.AppendUint32(buf, h.rowCount)
	buf = binary.LittleEndian.AppendUint64(buf, h.checksum)
	buf = binary.LittleEndian.AppendUint32(buf, h.payloadLen)
	buf = append(buf, 0, 0, 0, 0)

	return buf
}

// parseHeader validates and unmarshals the fixed header at the front of data.
func parseHeader(data []byte) (header, error) {
	if len(data) < HeaderSize {
		return header{}, fmt.Errorf("%w: got %d bytes, need %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h := header{
		options:     binary.LittleEndian.Uint16(data[0:2]),
		compression: format.CompressionType(data[2]),
		colCount:    data[3],
		rowCount:    binary.LittleEndian.Uint32(data[4:8]),
		checksum:    binary.LittleEndian.Uint64(data[8:16]),
		payloadLen:  binary.LittleEndian.Uint32(data[16:20]),
	}

	if h.options&magicMask != magicNumber {
		return header{}, fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, h.options&magicMask)
	}
	if !h.compression.Valid() {
		return header{}, fmt.Errorf("%w: 0x%02X", errs.ErrInvalidCompressionType, uint8(h.compression))
	}
	if h.colCount < 2 || h.rowCount == 0 {
		return header{}, fmt.Errorf("%w: %d columns, %d rows", errs.ErrInvalidPayload, h.colCount, h.rowCount)
	}

	return h, nil
}
