package encoding

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/telomere-format/swecodec/errs"
	"github.com/telomere-format/swecodec/format"
)

// pow2 returns 2^exp as a big.Int.
func pow2(exp uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), exp)
}

func TestEncodeBigSeed_MatchesFastPath(t *testing.T) {
	values := []uint64{0, 1, 2, 41, 254, 1000, 1 << 32, 1<<63 - 1, math.MaxUint64}

	for _, arity := range numericArities {
		for _, value := range values {
			fast, err := EncodeSeed(value, arity)
			require.NoError(t, err)

			slow, err := EncodeBigSeed(new(big.Int).SetUint64(value), arity)
			require.NoError(t, err)

			require.True(t, fast.Equal(slow), "value=%d arity=%s fast=%s slow=%s", value, arity, fast, slow)
		}
	}
}

func TestBigSeedRoundTrip(t *testing.T) {
	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(123456789),
		pow2(64),
		new(big.Int).Sub(pow2(100), big.NewInt(7)),
		pow2(200),
	}

	for _, value := range values {
		header, err := EncodeBigSeed(value, format.ArityFive)
		require.NoError(t, err)

		rec, consumed, err := DecodeBigSeed(header, 0)
		require.NoError(t, err, "value=%s", value)
		require.Equal(t, header.Len(), consumed)
		require.Equal(t, format.ArityFive, rec.Arity())

		got, ok := rec.Value()
		require.True(t, ok)
		require.Zero(t, value.Cmp(got), "value=%s got=%s", value, got)
	}
}

func TestDecodeBigSeed_Literal(t *testing.T) {
	rec, consumed, err := DecodeBigSeed(EncodeLiteral(), 0)
	require.NoError(t, err)
	require.Equal(t, 3, consumed)
	require.True(t, rec.IsLiteral())

	_, ok := rec.Value()
	require.False(t, ok)
}

// The 3-bit jumpstarter chain tops out at a 253-bit payload code: the
// largest payload still encodes and decodes, one bit more overflows.
func TestBigSeed_PayloadCeiling(t *testing.T) {
	// 2^253-2 is the first value with a 253-bit payload code,
	// 2^254-3 the last.
	first := new(big.Int).Sub(pow2(253), big.NewInt(2))
	last := new(big.Int).Sub(pow2(254), big.NewInt(3))

	for _, value := range []*big.Int{first, last} {
		header, err := EncodeBigSeed(value, format.ArityOne)
		require.NoError(t, err, "value=%s", value)

		rec, consumed, err := DecodeBigSeed(header, 0)
		require.NoError(t, err)
		require.Equal(t, header.Len(), consumed)

		got, ok := rec.Value()
		require.True(t, ok)
		require.Zero(t, value.Cmp(got))
	}

	// 2^254-2 needs a 254-bit payload code.
	over := new(big.Int).Sub(pow2(254), big.NewInt(2))
	_, err := EncodeBigSeed(over, format.ArityOne)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrOverflow)
}

func TestEncodeBigSeed_InvalidArguments(t *testing.T) {
	_, err := EncodeBigSeed(nil, format.ArityOne)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = EncodeBigSeed(big.NewInt(-1), format.ArityOne)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = EncodeBigSeed(big.NewInt(1), format.ArityLiteral)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = EncodeBigSeed(big.NewInt(1), format.Arity(9))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestDecodeBigSeed_Truncated(t *testing.T) {
	header, err := EncodeBigSeed(pow2(70), format.ArityThree)
	require.NoError(t, err)

	for cut := 0; cut < header.Len(); cut++ {
		_, _, err := DecodeBigSeed(header.Slice(0, cut), 0)
		require.ErrorIs(t, err, errs.ErrTruncated, "prefix of %d/%d bits", cut, header.Len())
	}
}

func TestDecodeBigSeed_MatchesFastPath(t *testing.T) {
	for _, value := range []uint64{0, 17, 4096, math.MaxUint64} {
		header, err := EncodeSeed(value, format.ArityTwo)
		require.NoError(t, err)

		rec, consumed, err := DecodeBigSeed(header, 0)
		require.NoError(t, err)
		require.Equal(t, header.Len(), consumed)

		got, ok := rec.Value()
		require.True(t, ok)
		require.Equal(t, value, got.Uint64())
		require.True(t, got.IsUint64())
	}
}

func TestDecodeBigSeed_CeilingOnWire(t *testing.T) {
	// Tag One, jumpstarter for a 7-bit length code, length code for
	// lengthU=253: a header claiming a 254-bit payload, which no encoder
	// can produce.
	header, err := ParseBitString("00" + "110" + "1111111")
	require.NoError(t, err)

	_, _, err = DecodeBigSeed(header, 0)
	require.ErrorIs(t, err, errs.ErrOverflow)
}
