// Package swecodec implements the Telomere SWE seed header codec: a
// self-delimiting, bit-level encoding that packs a non-negative integer
// seed value plus a small arity discriminator into a compact,
// prefix-decodable bit string, and recovers the pair from a raw bit
// stream with no external length metadata.
//
// A numeric seed header is laid out as
//
//	tag ++ jumpstarter ++ length_code ++ payload_code
//
// where the 2-3 bit tag selects one of six header kinds (five numeric
// arities plus a Literal passthrough marker), the fixed 3-bit jumpstarter
// bootstraps parsing by carrying the length code's own width, and the two
// remaining fields are universal level codes. A Literal header is the tag
// bits alone; the raw data behind it is owned by the enclosing block
// format.
//
// # Basic Usage
//
// Encoding and decoding a seed header:
//
//	import "github.com/telomere-format/swecodec"
//
//	header, _ := swecodec.EncodeSeed(42, swecodec.ArityTwo)
//
//	// The block writer appends header to its stream; the block reader
//	// later decodes it at a known bit offset.
//	rec, consumed, _ := swecodec.DecodeSeed(header, 0)
//	value, ok := rec.Value() // 42, true
//	_ = consumed             // exactly header.Len() bits
//	_ = value
//	_ = ok
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encoding
// and seed packages, simplifying the most common use cases. For the
// arbitrary-precision entry points and bit string utilities, use the
// encoding package directly.
package swecodec

import (
	"github.com/telomere-format/swecodec/encoding"
	"github.com/telomere-format/swecodec/format"
	"github.com/telomere-format/swecodec/seed"
)

// Arity selects among the six seed header kinds.
type Arity = format.Arity

const (
	ArityLiteral = format.ArityLiteral
	ArityOne     = format.ArityOne
	ArityTwo     = format.ArityTwo
	ArityThree   = format.ArityThree
	ArityFour    = format.ArityFour
	ArityFive    = format.ArityFive
)

// BitString is an immutable, ordered sequence of bits.
type BitString = encoding.BitString

// SeedRecord is the decoded form of a seed header.
type SeedRecord = encoding.SeedRecord

// EncodeSeed encodes a non-negative seed value under one of the five
// numeric arities. See encoding.EncodeSeed.
func EncodeSeed(value uint64, arity Arity) (BitString, error) {
	return encoding.EncodeSeed(value, arity)
}

// EncodeLiteral encodes a literal passthrough header: exactly the literal
// tag bits, with the raw data behind them owned by the enclosing format.
func EncodeLiteral() BitString {
	return encoding.EncodeLiteral()
}

// DecodeSeed decodes one seed header from stream at the given bit offset,
// returning the record and the exact number of bits consumed.
func DecodeSeed(stream BitString, offset int) (SeedRecord, int, error) {
	return encoding.DecodeSeed(stream, offset)
}

// IndexToSeed returns the canonical seed bytes for an enumeration index.
// See seed.IndexToSeed.
func IndexToSeed(index uint64, maxSeedLen int) ([]byte, error) {
	return seed.IndexToSeed(index, maxSeedLen)
}

// SeedToIndex returns the enumeration index of a seed.
// See seed.SeedToIndex.
func SeedToIndex(s []byte, maxSeedLen int) (uint64, error) {
	return seed.SeedToIndex(s, maxSeedLen)
}

// ExpandSeed stretches a seed to exactly length bytes with the SHA-256
// digest chain. For the fast non-cryptographic chain, call seed.Expand
// with format.DigestXXHash.
func ExpandSeed(s []byte, length int) ([]byte, error) {
	return seed.Expand(s, length, format.DigestSHA256)
}
