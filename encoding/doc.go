// Package encoding implements the Telomere seed header codec: a
// self-delimiting, bit-level encoding that packs a non-negative integer
// seed value plus a small arity discriminator into a compact prefix of a
// larger bit stream.
//
// The wire layout of a numeric seed header is
//
//	tag ++ jumpstarter ++ length_code ++ payload_code
//
// where tag is the 2-3 bit arity discriminator, jumpstarter is a fixed
// 3-bit field carrying len(length_code)-1, and length_code and
// payload_code are universal level codes (see EncodeLevel). Literal
// headers are the tag bits alone; the raw data that follows them is owned
// by the enclosing block format, not by this package.
//
// All operations are pure functions of their inputs: the codec performs
// no I/O, retains no state between calls, and is safe for any number of
// concurrent callers without synchronization.
//
// The primary API operates on uint64 values. EncodeBigSeed and
// DecodeBigSeed accept arbitrary-precision values up to the wire format's
// 254-bit payload ceiling; both paths produce identical bits for values
// in the shared range.
package encoding
