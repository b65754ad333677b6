package encoding

import (
	"fmt"
	"math/big"

	"github.com/telomere-format/swecodec/errs"
	"github.com/telomere-format/swecodec/format"
)

// MaxPayloadBits is the longest payload level code the wire format can
// describe. The 3-bit jumpstarter caps the length code at 8 bits, which
// caps the payload code length below 2^8 - 2 = 254 bits. Encoding a value
// whose payload code would reach 254 bits fails with ErrOverflow.
const MaxPayloadBits = 253

var bigTwo = big.NewInt(2)

// BigSeedRecord is the arbitrary-precision counterpart of SeedRecord,
// produced by DecodeBigSeed.
type BigSeedRecord struct {
	arity format.Arity
	value *big.Int
}

// Arity returns the header kind.
func (r BigSeedRecord) Arity() format.Arity {
	return r.arity
}

// IsLiteral reports whether the record is a literal passthrough marker.
func (r BigSeedRecord) IsLiteral() bool {
	return r.arity.IsLiteral()
}

// Value returns the decoded seed value. ok is false for literal records,
// which carry no value.
func (r BigSeedRecord) Value() (value *big.Int, ok bool) {
	if r.IsLiteral() {
		return nil, false
	}

	return r.value, true
}

// bigLevelFor returns the level holding the zero-based integer u, i.e.
// the unique L with 2^L <= u+2 < 2^(L+1).
func bigLevelFor(u *big.Int) int {
	return new(big.Int).Add(u, bigTwo).BitLen() - 1
}

// EncodeBigSeed encodes an arbitrary-precision seed value. It produces
// exactly the same bits as EncodeSeed for values in the uint64 range and
// extends the domain up to the wire format's payload ceiling.
//
// Returns ErrInvalidArgument for a nil or negative value, for
// ArityLiteral, and for arities outside the tag table; ErrOverflow when
// the value's payload code would reach 254 bits.
func EncodeBigSeed(value *big.Int, arity format.Arity) (BitString, error) {
	if value == nil || value.Sign() < 0 {
		return BitString{}, fmt.Errorf("%w: seed value must be a non-negative integer", errs.ErrInvalidArgument)
	}
	if arity.IsLiteral() {
		return BitString{}, fmt.Errorf("%w: literal headers carry no value, use EncodeLiteral", errs.ErrInvalidArgument)
	}

	tag, tagWidth, err := arityTag(arity)
	if err != nil {
		return BitString{}, err
	}

	payloadLevel := bigLevelFor(value)
	if payloadLevel > MaxPayloadBits {
		return BitString{}, fmt.Errorf("%w: payload code needs %d bits, ceiling is %d", errs.ErrOverflow, payloadLevel, MaxPayloadBits)
	}

	// codeword = value - (2^payloadLevel - 2)
	base := new(big.Int).Lsh(big.NewInt(1), uint(payloadLevel))
	base.Sub(base, bigTwo)
	payloadCw := new(big.Int).Sub(value, base)

	lengthLevel, lengthCw := levelCodeword(uint64(payloadLevel - 1))

	w := newBitWriter()
	w.writeBits(tag, tagWidth)
	w.writeBits(uint64(lengthLevel-1), jumpstarterBits)
	w.writeBits(lengthCw, lengthLevel)
	w.writeBigBits(payloadCw, payloadLevel)

	return w.finish(), nil
}

// DecodeBigSeed decodes one seed header from stream starting at the given
// bit offset, accepting payload codes longer than 64 bits. It is the
// mirror of EncodeBigSeed and follows the same field order as DecodeSeed.
func DecodeBigSeed(stream BitString, offset int) (BigSeedRecord, int, error) {
	if offset < 0 || offset > stream.Len() {
		return BigSeedRecord{}, 0, fmt.Errorf("%w: bit offset %d outside 0..%d", errs.ErrInvalidArgument, offset, stream.Len())
	}

	r := newBitReader(stream, offset)

	arity, err := decodeArityTag(r)
	if err != nil {
		return BigSeedRecord{}, 0, err
	}
	if arity.IsLiteral() {
		return BigSeedRecord{arity: arity}, r.consumed(offset), nil
	}

	jump, ok := r.readBits(jumpstarterBits)
	if !ok {
		return BigSeedRecord{}, 0, fmt.Errorf("%w: jumpstarter needs %d bits", errs.ErrTruncated, jumpstarterBits)
	}

	lengthLevel := int(jump) + 1
	lengthCw, ok := r.readBits(lengthLevel)
	if !ok {
		return BigSeedRecord{}, 0, fmt.Errorf("%w: length code needs %d bits", errs.ErrTruncated, lengthLevel)
	}

	lengthU, _ := levelValue(lengthLevel, lengthCw)
	payloadLevel := int(lengthU) + 1
	if payloadLevel > MaxPayloadBits {
		return BigSeedRecord{}, 0, fmt.Errorf("%w: payload code of %d bits exceeds ceiling %d", errs.ErrOverflow, payloadLevel, MaxPayloadBits)
	}

	payloadCw, ok := r.readBigBits(payloadLevel)
	if !ok {
		return BigSeedRecord{}, 0, fmt.Errorf("%w: payload code needs %d bits", errs.ErrTruncated, payloadLevel)
	}

	// value = (2^payloadLevel - 2) + codeword
	value := new(big.Int).Lsh(big.NewInt(1), uint(payloadLevel))
	value.Sub(value, bigTwo)
	value.Add(value, payloadCw)

	return BigSeedRecord{arity: arity, value: value}, r.consumed(offset), nil
}

// writeBigBits appends the numBits least significant bits of v, most
// significant first. v must be non-negative with at most numBits bits.
func (w *bitWriter) writeBigBits(v *big.Int, numBits int) {
	numBytes := (numBits + 7) / 8
	buf := make([]byte, numBytes)
	v.FillBytes(buf)

	// v is right-aligned in buf and fits in numBits, so the leading byte's
	// excess high bits are zero and a short first write realigns the rest.
	idx := 0
	if rem := numBits % 8; rem != 0 {
		w.writeBits(uint64(buf[0]), rem)
		idx = 1
	}
	for ; idx < numBytes; idx++ {
		w.writeBits(uint64(buf[idx]), 8)
	}
}

// readBigBits reads numBits bits into a big.Int, most significant first.
func (r *bitReader) readBigBits(numBits int) (*big.Int, bool) {
	if numBits < 0 || r.pos+numBits > r.bs.bits {
		return nil, false
	}

	v := new(big.Int)
	chunk := new(big.Int)
	remaining := numBits
	for remaining > 0 {
		take := remaining
		if take > 64 {
			take = 64
		}

		word, _ := r.readBits(take)
		v.Lsh(v, uint(take))
		v.Or(v, chunk.SetUint64(word))
		remaining -= take
	}

	return v, true
}
