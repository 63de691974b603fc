package table

import (
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/tabfit/compress"
	"github.com/arloliu/tabfit/endian"
	"github.com/arloliu/tabfit/errs"
	"github.com/arloliu/tabfit/format"
	"github.com/arloliu/tabfit/internal/options"
)

// maxColumns is the largest column count the single-byte header field can
// carry: the x column plus up to 254 value columns.
const maxColumns = 255

type encoderConfig struct {
	compression format.CompressionType
	engine      endian.Engine
	bigEndian   bool
}

// Option configures table encoding.
type Option = options.Option[*encoderConfig]

// WithCompression sets the payload compression. The default is
// format.CompressionNone.
func WithCompression(typ format.CompressionType) Option {
	return options.New(func(cfg *encoderConfig) error {
		if !typ.Valid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, typ)
		}
		cfg.compression = typ

		return nil
	})
}

// WithBigEndian writes the payload in big-endian byte order. The default is
// little-endian.
func WithBigEndian() Option {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.engine = endian.BigEndian()
		cfg.bigEndian = true
	})
}

// Encode serializes t into the binary table format: a fixed header followed
// by the columnar float64 payload, compressed per the options.
func Encode(t *Table, opts ...Option) ([]byte, error) {
	if t == nil || t.Rows() == 0 {
		return nil, errs.ErrEmptyInput
	}
	cols := 1 + t.Dim()
	if cols > maxColumns {
		return nil, fmt.Errorf("%w: %d columns exceeds the format limit of %d", errs.ErrDimensionMismatch, cols, maxColumns)
	}

	cfg := encoderConfig{
		compression: format.CompressionNone,
		engine:      endian.LittleEndian(),
	}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	raw := make([]byte, 0, cols*t.Rows()*8)
	raw = appendColumn(raw, cfg.engine, t.X())
	for i := 0; i < t.Dim(); i++ {
		raw = appendColumn(raw, cfg.engine, t.Column(i))
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	h := newHeader(cfg.compression, cfg.bigEndian, cols, t.Rows())
	h.checksum = xxhash.Sum64(payload)
	h.payloadLen = uint32(len(payload))

	out := make([]byte, 0, HeaderSize+len(payload))
	out = h.appendTo(out)
	out = append(out, payload...)

	return out, nil
}

func appendColumn(buf []byte, engine endian.Engine, col []float64) []byte {
	for _, v := range col {
		buf = engine.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}
