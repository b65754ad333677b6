package encoding

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/telomere-format/swecodec/errs"
)

// The universal level code partitions the positive integers into levels:
// level L holds the 2^L consecutive integers starting at base(L)+1, where
// base(L) = 2^L - 2 is the total codeword count of all shorter levels.
// Each integer in level L is encoded as its zero-based rank within the
// level, written as an L-bit big-endian field. The code is not
// self-terminating: the decoder must be told the codeword length, which
// is exactly why the seed header nests a length code in front of it.

// levelBase returns base(L) = 2^L - 2 for L in 1..64.
// At L=64 the shift wraps to zero and the subtraction still yields
// 2^64 - 2, the correct base for the top level.
func levelBase(level int) uint64 {
	return uint64(1)<<uint(level) - 2
}

// levelFor returns the level holding the zero-based integer u, i.e. the
// unique L with base(L) <= u < base(L+1). Equivalently 2^L <= u+2 < 2^(L+1).
func levelFor(u uint64) int {
	if u >= math.MaxUint64-1 {
		// u+2 would wrap; the two largest uint64 values sit in level 64.
		return 64
	}

	return bits.Len64(u+2) - 1
}

// levelCodeword returns the level and the zero-based rank of u within it.
func levelCodeword(u uint64) (level int, codeword uint64) {
	level = levelFor(u)

	return level, u - levelBase(level)
}

// levelValue reconstructs the zero-based integer from a level and its
// codeword. ok is false when the result does not fit in a uint64, which
// can only happen at level 64.
func levelValue(level int, codeword uint64) (u uint64, ok bool) {
	if level < 1 || level > 64 {
		return 0, false
	}

	u, carry := bits.Add64(levelBase(level), codeword, 0)

	return u, carry == 0
}

// EncodeLevel encodes the positive integer n as a universal level code.
//
// The code for n has length L where base(L) <= n-1 < base(L+1); within a
// level the codeword is the zero-padded binary form of n-1-base(L).
// Smaller integers always receive codes at most as long as larger ones.
//
// Returns ErrInvalidArgument if n is 0; level codes are defined only for
// integers >= 1.
func EncodeLevel(n uint64) (BitString, error) {
	if n < 1 {
		return BitString{}, fmt.Errorf("%w: level codes are defined for integers >= 1, got %d", errs.ErrInvalidArgument, n)
	}

	level, codeword := levelCodeword(n - 1)
	w := newBitWriter()
	w.writeBits(codeword, level)

	return w.finish(), nil
}

// DecodeLevel decodes a universal level code back to its integer.
//
// The caller must supply exactly one codeword's bits: the code is not
// self-terminating, and a slice of the wrong length for its level decodes
// to a different integer. The seed header codec guarantees exact-length
// slices by reading the nested length code first.
//
// Returns ErrMalformed for an empty code and ErrOverflow when the decoded
// integer does not fit in a uint64.
func DecodeLevel(code BitString) (uint64, error) {
	level := code.Len()
	if level == 0 {
		return 0, fmt.Errorf("%w: empty level code", errs.ErrMalformed)
	}
	if level > 64 {
		return 0, fmt.Errorf("%w: %d-bit level code exceeds uint64 range", errs.ErrOverflow, level)
	}

	r := newBitReader(code, 0)
	codeword, _ := r.readBits(level)

	u, ok := levelValue(level, codeword)
	if !ok || u == math.MaxUint64 {
		return 0, fmt.Errorf("%w: %d-bit level code exceeds uint64 range", errs.ErrOverflow, level)
	}

	return u + 1, nil
}
