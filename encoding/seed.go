package encoding

import (
	"fmt"

	"github.com/telomere-format/swecodec/errs"
	"github.com/telomere-format/swecodec/format"
)

// Arity tag bit patterns. The two 2-bit tags are reserved so that the
// first two bits alone distinguish them from every 3-bit tag.
const (
	tagOne     = 0b00 // 2 bits
	tagTwo     = 0b01 // 2 bits
	tagThree   = 0b100
	tagFour    = 0b101
	tagFive    = 0b110
	tagLiteral = 0b111
)

// jumpstarterBits is the width of the fixed bootstrap field carrying
// len(length_code)-1. Three bits bound the length code to 1..8 bits,
// which in turn bounds the payload code to MaxPayloadBits.
const jumpstarterBits = 3

// SeedRecord is the decoded form of a seed header: an arity plus, for the
// five numeric arities, exactly one value. Literal records carry no value.
type SeedRecord struct {
	arity format.Arity
	value uint64
}

// Arity returns the header kind.
func (r SeedRecord) Arity() format.Arity {
	return r.arity
}

// IsLiteral reports whether the record is a literal passthrough marker.
func (r SeedRecord) IsLiteral() bool {
	return r.arity.IsLiteral()
}

// Value returns the decoded seed value. ok is false for literal records,
// which carry no value.
func (r SeedRecord) Value() (value uint64, ok bool) {
	if r.IsLiteral() {
		return 0, false
	}

	return r.value, true
}

// arityTag resolves the tag bits and tag width for an arity.
func arityTag(arity format.Arity) (tag uint64, width int, err error) {
	switch arity {
	case format.ArityOne:
		return tagOne, 2, nil
	case format.ArityTwo:
		return tagTwo, 2, nil
	case format.ArityThree:
		return tagThree, 3, nil
	case format.ArityFour:
		return tagFour, 3, nil
	case format.ArityFive:
		return tagFive, 3, nil
	case format.ArityLiteral:
		return tagLiteral, 3, nil
	default:
		return 0, 0, fmt.Errorf("%w: unsupported arity %d", errs.ErrInvalidArgument, uint8(arity))
	}
}

// decodeArityTag reads a 2-3 bit arity tag: two bits form a complete tag
// when they match one of the two reserved 2-bit patterns, otherwise a
// third bit completes it.
func decodeArityTag(r *bitReader) (format.Arity, error) {
	head, ok := r.readBits(2)
	if !ok {
		return 0, fmt.Errorf("%w: arity tag needs 2 bits", errs.ErrTruncated)
	}

	switch head {
	case tagOne:
		return format.ArityOne, nil
	case tagTwo:
		return format.ArityTwo, nil
	}

	tail, ok := r.readBits(1)
	if !ok {
		return 0, fmt.Errorf("%w: arity tag needs 3 bits", errs.ErrTruncated)
	}

	switch head<<1 | tail {
	case tagThree:
		return format.ArityThree, nil
	case tagFour:
		return format.ArityFour, nil
	case tagFive:
		return format.ArityFive, nil
	case tagLiteral:
		return format.ArityLiteral, nil
	default:
		return 0, fmt.Errorf("%w: arity tag %03b not in table", errs.ErrMalformed, head<<1|tail)
	}
}

// EncodeSeed encodes a non-negative seed value under one of the five
// numeric arities. The output is self-terminating when embedded at a
// known offset in a larger stream: DecodeSeed consumes exactly these bits
// and no others.
//
// Layout: tag ++ jumpstarter ++ length_code ++ payload_code, where
// payload_code is the level code of value+1 and length_code is the level
// code of payload_code's own bit length.
//
// Returns ErrInvalidArgument for ArityLiteral (literal headers carry no
// value; use EncodeLiteral) and for arities outside the tag table.
// A uint64 value always fits the wire format's payload ceiling, so
// overflow is impossible on this path.
func EncodeSeed(value uint64, arity format.Arity) (BitString, error) {
	if arity.IsLiteral() {
		return BitString{}, fmt.Errorf("%w: literal headers carry no value, use EncodeLiteral", errs.ErrInvalidArgument)
	}

	tag, tagWidth, err := arityTag(arity)
	if err != nil {
		return BitString{}, err
	}

	// payload_code encodes value+1; working with the zero-based value
	// directly keeps value = 2^64-1 representable.
	payloadLevel, payloadCw := levelCodeword(value)

	// length_code encodes payloadLevel, again through the level coder.
	lengthLevel, lengthCw := levelCodeword(uint64(payloadLevel - 1))

	w := newBitWriter()
	w.writeBits(tag, tagWidth)
	w.writeBits(uint64(lengthLevel-1), jumpstarterBits)
	w.writeBits(lengthCw, lengthLevel)
	w.writeBits(payloadCw, payloadLevel)

	return w.finish(), nil
}

// EncodeLiteral encodes a literal passthrough header. The output is
// exactly the literal tag bits; the raw data that follows is owned and
// length-delimited by the enclosing block format.
func EncodeLiteral() BitString {
	w := newBitWriter()
	w.writeBits(tagLiteral, 3)

	return w.finish()
}

// DecodeSeed decodes one seed header from stream starting at the given
// bit offset. It returns the decoded record and the exact number of bits
// consumed; the enclosing block reader advances its cursor by that count.
//
// Errors: ErrInvalidArgument for an out-of-range offset, ErrTruncated
// when any field declares more bits than remain, ErrMalformed for a tag
// outside the table, and ErrOverflow when the declared payload exceeds
// the uint64 range (use DecodeBigSeed for such streams).
func DecodeSeed(stream BitString, offset int) (SeedRecord, int, error) {
	if offset < 0 || offset > stream.Len() {
		return SeedRecord{}, 0, fmt.Errorf("%w: bit offset %d outside 0..%d", errs.ErrInvalidArgument, offset, stream.Len())
	}

	r := newBitReader(stream, offset)

	arity, err := decodeArityTag(r)
	if err != nil {
		return SeedRecord{}, 0, err
	}
	if arity.IsLiteral() {
		return SeedRecord{arity: arity}, r.consumed(offset), nil
	}

	jump, ok := r.readBits(jumpstarterBits)
	if !ok {
		return SeedRecord{}, 0, fmt.Errorf("%w: jumpstarter needs %d bits", errs.ErrTruncated, jumpstarterBits)
	}

	lengthLevel := int(jump) + 1
	lengthCw, ok := r.readBits(lengthLevel)
	if !ok {
		return SeedRecord{}, 0, fmt.Errorf("%w: length code needs %d bits", errs.ErrTruncated, lengthLevel)
	}

	// lengthLevel is at most 8, so the length code itself cannot overflow.
	lengthU, _ := levelValue(lengthLevel, lengthCw)
	payloadLevel := int(lengthU) + 1
	if payloadLevel > 64 {
		return SeedRecord{}, 0, fmt.Errorf("%w: %d-bit payload code exceeds uint64 range", errs.ErrOverflow, payloadLevel)
	}

	payloadCw, ok := r.readBits(payloadLevel)
	if !ok {
		return SeedRecord{}, 0, fmt.Errorf("%w: payload code needs %d bits", errs.ErrTruncated, payloadLevel)
	}

	value, ok := levelValue(payloadLevel, payloadCw)
	if !ok {
		return SeedRecord{}, 0, fmt.Errorf("%w: %d-bit payload code exceeds uint64 range", errs.ErrOverflow, payloadLevel)
	}

	return SeedRecord{arity: arity, value: value}, r.consumed(offset), nil
}
