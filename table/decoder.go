package table

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/tabfit/compress"
	"github.com/arloliu/tabfit/errs"
)

// Decode parses a table previously produced by Encode.
//
// The stored payload is checksummed before decompression, so corruption
// surfaces as errs.ErrChecksumMismatch rather than a codec failure. Trailing
// bytes beyond the recorded payload length are rejected.
func Decode(data []byte) (*Table, error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	payload := data[HeaderSize:]
	if len(payload) != int(h.payloadLen) {
		return nil, fmt.Errorf("%w: got %d payload bytes, header records %d", errs.ErrInvalidPayload, len(payload), h.payloadLen)
	}
	if sum := xxhash.Sum64(payload); sum != h.checksum {
		return nil, fmt.Errorf("%w: got 0x%016X, want 0x%016X", errs.ErrChecksumMismatch, sum, h.checksum)
	}

	codec, err := compress.GetCodec(h.compression)
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	cols := int(h.colCount)
	rows := int(h.rowCount)
	if len(raw) != cols*rows*8 {
		return nil, fmt.Errorf("%w: %d payload bytes for %d columns of %d rows", errs.ErrInvalidPayload, len(raw), cols, rows)
	}

	engine := h.engine()
	readColumn := func(idx int) []float64 {
		col := make([]float64, rows)
		base := idx * rows * 8
		for i := range col {
			col[i] = math.Float64frombits(engine.Uint64(raw[base+i*8 : base+i*8+8]))
		}

		return col
	}

	xs := readColumn(0)
	valueCols := make([][]float64, cols-1)
	for i := range valueCols {
		valueCols[i] = readColumn(i + 1)
	}

	return &Table{xs: xs, cols: valueCols}, nil
}
