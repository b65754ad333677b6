// Package errs defines the sentinel errors shared across swecodec packages.
//
// Every failure surfaced by the codec wraps exactly one of these sentinels
// with fmt.Errorf("%w: ...") so callers can classify failures with errors.Is
// while still getting a message that names the exact field or bound that
// was violated.
package errs

import "errors"

var (
	// ErrInvalidArgument indicates an input outside an operation's domain:
	// a level code requested for an integer below 1, an unsupported arity,
	// a value supplied for a literal seed, a negative big value, or a seed
	// enumeration index/length outside the configured range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOverflow indicates a value that cannot be represented: a payload
	// level code reaching the 254-bit wire ceiling on encode, or a decoded
	// integer exceeding the uint64 range on the fast path.
	ErrOverflow = errors.New("overflow")

	// ErrTruncated indicates that fewer bits remain in the stream than a
	// header field declares.
	ErrTruncated = errors.New("truncated bit string")

	// ErrMalformed indicates bits that do not match any entry in the arity
	// tag table, or a level code slice of impossible shape.
	ErrMalformed = errors.New("malformed bit string")
)
