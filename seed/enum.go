package seed

import (
	"fmt"
	"math/bits"

	"github.com/telomere-format/swecodec/errs"
)

// IndexToSeed returns the canonical seed bytes for the given enumeration
// index: all 1-byte seeds first (indices 0..255), then all 2-byte seeds,
// and so on, big-endian within each length range.
//
// Returns ErrInvalidArgument when maxSeedLen is not positive or the index
// falls outside the range representable within maxSeedLen bytes.
func IndexToSeed(index uint64, maxSeedLen int) ([]byte, error) {
	if maxSeedLen < 1 {
		return nil, fmt.Errorf("%w: max seed length must be >= 1, got %d", errs.ErrInvalidArgument, maxSeedLen)
	}

	remaining := index
	for length := 1; length <= maxSeedLen; length++ {
		// Once the length range spans 2^64 values, every remaining uint64
		// index lands inside it.
		if length*8 < 64 && remaining >= uint64(1)<<(length*8) {
			remaining -= uint64(1) << (length * 8)
			continue
		}

		out := make([]byte, length)
		for i := 0; i < length; i++ {
			out[length-1-i] = byte(remaining >> (8 * i))
		}

		return out, nil
	}

	return nil, fmt.Errorf("%w: index %d out of range for max seed length %d", errs.ErrInvalidArgument, index, maxSeedLen)
}

// SeedToIndex returns the enumeration index of a seed. The seed is
// interpreted at its slice length, so multi-byte seeds must be left
// padded to their canonical length: with maxSeedLen=2 the one-byte seed
// 0x01 maps to index 1, while the two-byte seed 0x00 0x01 maps to 257.
//
// Returns ErrInvalidArgument for an empty seed or one longer than
// maxSeedLen, and ErrOverflow when the index exceeds the uint64 range.
func SeedToIndex(seed []byte, maxSeedLen int) (uint64, error) {
	if len(seed) == 0 {
		return 0, fmt.Errorf("%w: seed cannot be empty", errs.ErrInvalidArgument)
	}
	if len(seed) > maxSeedLen {
		return 0, fmt.Errorf("%w: seed length %d exceeds max seed length %d", errs.ErrInvalidArgument, len(seed), maxSeedLen)
	}

	var index uint64
	for length := 1; length < len(seed); length++ {
		if length*8 >= 64 {
			return 0, fmt.Errorf("%w: seed index exceeds uint64 range", errs.ErrOverflow)
		}

		next, carry := bits.Add64(index, uint64(1)<<(length*8), 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: seed index exceeds uint64 range", errs.ErrOverflow)
		}
		index = next
	}

	// Seeds of 9+ bytes were already rejected above (their length offset
	// alone exceeds uint64), so the big-endian value fits in 64 bits.
	var value uint64
	for _, b := range seed {
		value = value<<8 | uint64(b)
	}

	next, carry := bits.Add64(index, value, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: seed index exceeds uint64 range", errs.ErrOverflow)
	}

	return next, nil
}
