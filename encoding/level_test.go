package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telomere-format/swecodec/errs"
)

func TestEncodeLevel_Vectors(t *testing.T) {
	vectors := map[uint64]string{
		1:  "0",
		2:  "1",
		3:  "00",
		4:  "01",
		5:  "10",
		6:  "11",
		7:  "000",
		14: "111",
		15: "0000",
		30: "1111",
		31: "00000",
	}

	for n, want := range vectors {
		code, err := EncodeLevel(n)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, want, code.String(), "n=%d", n)
	}
}

func TestEncodeLevel_Zero(t *testing.T) {
	_, err := EncodeLevel(0)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestDecodeLevel_Vectors(t *testing.T) {
	vectors := map[string]uint64{
		"0":   1,
		"1":   2,
		"00":  3,
		"11":  6,
		"000": 7,
		"111": 14,
	}

	for code, want := range vectors {
		bs, err := ParseBitString(code)
		require.NoError(t, err)

		n, err := DecodeLevel(bs)
		require.NoError(t, err, "code=%q", code)
		assert.Equal(t, want, n, "code=%q", code)
	}
}

func TestDecodeLevel_Empty(t *testing.T) {
	_, err := DecodeLevel(BitString{})
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrMalformed)
}

func TestLevelRoundTrip(t *testing.T) {
	for n := uint64(1); n <= 5000; n++ {
		code, err := EncodeLevel(n)
		require.NoError(t, err)

		got, err := DecodeLevel(code)
		require.NoError(t, err)
		require.Equal(t, n, got, "n=%d code=%s", n, code)
	}
}

func TestLevelRoundTrip_LargeValues(t *testing.T) {
	values := []uint64{
		1 << 20, 1<<32 - 1, 1 << 32, 1<<63 - 1, 1 << 63, math.MaxUint64 - 2,
	}

	for _, n := range values {
		code, err := EncodeLevel(n)
		require.NoError(t, err)

		got, err := DecodeLevel(code)
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

// Code lengths never shrink as n grows, and the number of integers
// sharing a length exactly doubles with each extra bit.
func TestLevelLength_Monotone_Doubling(t *testing.T) {
	counts := make(map[int]int)
	prevLen := 0
	for n := uint64(1); n <= 2046; n++ { // levels 1..10 are complete at 2^11-2
		code, err := EncodeLevel(n)
		require.NoError(t, err)

		require.GreaterOrEqual(t, code.Len(), prevLen, "length shrank at n=%d", n)
		prevLen = code.Len()
		counts[code.Len()]++
	}

	for level := 1; level <= 10; level++ {
		require.Equal(t, 1<<level, counts[level], "level %d codeword count", level)
	}
}

func TestDecodeLevel_Overflow(t *testing.T) {
	// 65 bits can never hold a uint64 level code.
	long, err := NewBitString(make([]byte, 9), 65)
	require.NoError(t, err)
	_, err = DecodeLevel(long)
	require.ErrorIs(t, err, errs.ErrOverflow)

	// A 64-bit codeword of 1 names the integer 2^64, one past uint64.
	w := newBitWriter()
	w.writeBits(1, 64)
	_, err = DecodeLevel(w.finish())
	require.ErrorIs(t, err, errs.ErrOverflow)

	// A 64-bit codeword of 0 names 2^64-1, which still fits.
	w = newBitWriter()
	w.writeBits(0, 64)
	n, err := DecodeLevel(w.finish())
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), n)
}
