package compress

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tabfit/errs"
	"github.com/arloliu/tabfit/format"
)

// samplePayload builds a columnar float64 payload resembling a real
// measurement table: a smooth frequency sweep plus a noisy response column.
func samplePayload(t *testing.T, rows int) []byte {
	t.Helper()

	buf := make([]byte, 0, rows*16)
	for i := 0; i < rows; i++ {
		x := 1e6 * math.Pow(10, float64(i)/float64(rows))
		buf = appendFloat64(buf, x)
	}
	for i := 0; i < rows; i++ {
		y := -20.0 + 3.0*math.Sin(float64(i)/7.0)
		buf = appendFloat64(buf, y)
	}

	return buf
}

func appendFloat64(buf []byte, v float64) []byte {
	bits := math.Float64bits(v)
	for shift := 0; shift < 64; shift += 8 {
		buf = append(buf, byte(bits>>shift))
	}

	return buf
}

func TestCodecRoundTrip(t *testing.T) {
	payload := samplePayload(t, 500)

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, restored)
		})
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, compressed)

			restored, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, restored)
		})
	}
}

func TestGetCodecInvalidType(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0xF))
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
}

func TestNoOpCodecSharesMemory(t *testing.T) {
	codec := NewNoOpCodec()
	payload := []byte{1, 2, 3}

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, &payload[0], &compressed[0], "no-op codec must not copy")
}

func TestZstdDecompressCorrupted(t *testing.T) {
	codec := NewZstdCodec()
	_, err := codec.Decompress([]byte("definitely not a zstd frame"))
	require.Error(t, err)
}
