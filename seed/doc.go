// Package seed provides the deterministic seed utilities that surround
// the header codec: the canonical enumeration mapping indices to
// variable-length seed bytes and back, and the digest-chain expansion
// that stretches a seed to an arbitrary byte length.
//
// The enumeration groups seeds by byte length: all 1-byte seeds come
// first (indices 0..255), then all 2-byte seeds, and so on up to a
// caller-chosen maximum length. Within a length range the seed bytes are
// interpreted as a big-endian integer. Both directions of the mapping are
// implemented here.
package seed
