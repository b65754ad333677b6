package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/bits"

	"github.com/cespare/xxhash/v2"

	"github.com/telomere-format/swecodec/errs"
	"github.com/telomere-format/swecodec/format"
)

// DigestSize is the byte length of every digest produced by Digest32,
// regardless of kind.
const DigestSize = 32

// xxhashExpandStep separates the four 64-bit words derived from one
// xxHash64 state when widening it to a 32-byte digest.
const xxhashExpandStep = 0x9e3779b97f4a7c15

// Digest32 returns a 32-byte digest of input.
//
// DigestSHA256 uses SHA-256 directly. DigestXXHash computes a single
// xxHash64 over the input and widens the 64-bit state to 32 bytes by
// rotate-and-add steps; it trades cryptographic strength for speed and is
// meant for expansion workloads where throughput dominates.
func Digest32(input []byte, kind format.DigestKind) ([DigestSize]byte, error) {
	var out [DigestSize]byte

	switch kind {
	case format.DigestSHA256:
		return sha256.Sum256(input), nil
	case format.DigestXXHash:
		h := xxhash.Sum64(input)
		for i := 0; i < 4; i++ {
			binary.LittleEndian.PutUint64(out[i*8:], h)
			h = bits.RotateLeft64(h, 13) + uint64(i) + xxhashExpandStep
		}

		return out, nil
	default:
		return out, fmt.Errorf("%w: unsupported digest kind %d", errs.ErrInvalidArgument, uint8(kind))
	}
}

// Expand stretches a seed to exactly length bytes by repeatedly hashing.
//
// The digest of the seed is appended, then the digest of that digest, and
// so on until at least length bytes have been produced; the result is
// truncated to length. Expansion is deterministic, and expanding the same
// seed to a shorter length yields a prefix of the longer expansion.
func Expand(seed []byte, length int, kind format.DigestKind) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: expansion length must be >= 0, got %d", errs.ErrInvalidArgument, length)
	}

	out := make([]byte, 0, length+DigestSize)
	cur := seed
	for len(out) < length {
		digest, err := Digest32(cur, kind)
		if err != nil {
			return nil, err
		}

		out = append(out, digest[:]...)
		cur = out[len(out)-DigestSize:]
	}

	return out[:length], nil
}
