package encoding

import (
	"fmt"
	"strings"

	"github.com/telomere-format/swecodec/errs"
	"github.com/telomere-format/swecodec/internal/pool"
)

// BitString is an immutable, ordered sequence of bits.
//
// Bits are packed MSB-first into bytes; the length is tracked in bits and
// is not byte-aligned. Unused bits in the final byte are always zero, so
// two BitStrings are equal iff their lengths and packed bytes are equal.
//
// The zero value is the empty BitString.
type BitString struct {
	data []byte
	bits int
}

// NewBitString creates a BitString from the first bits bits of data,
// reading each byte MSB-first. The data is copied, so the caller may
// reuse the slice afterwards.
func NewBitString(data []byte, bits int) (BitString, error) {
	if bits < 0 || bits > len(data)*8 {
		return BitString{}, fmt.Errorf("%w: bit length %d outside 0..%d", errs.ErrInvalidArgument, bits, len(data)*8)
	}

	numBytes := (bits + 7) / 8
	buf := make([]byte, numBytes)
	copy(buf, data[:numBytes])

	// Zero the padding so equality can compare packed bytes directly.
	if pad := numBytes*8 - bits; pad > 0 {
		buf[numBytes-1] &= byte(0xFF << pad)
	}

	return BitString{data: buf, bits: bits}, nil
}

// ParseBitString parses a string of '0' and '1' characters, most
// significant bit first. It exists mainly for tests and debugging output;
// hot paths should build bit strings through the encoders instead.
func ParseBitString(s string) (BitString, error) {
	w := newBitWriter()
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			w.writeBits(0, 1)
		case '1':
			w.writeBits(1, 1)
		default:
			w.discard()
			return BitString{}, fmt.Errorf("%w: bit string char %q at index %d", errs.ErrMalformed, s[i], i)
		}
	}

	return w.finish(), nil
}

// Len returns the number of bits.
func (b BitString) Len() int {
	return b.bits
}

// Bytes returns the packed bytes, MSB-first, with zero padding in the
// final byte. The caller must not modify the returned slice.
func (b BitString) Bytes() []byte {
	return b.data
}

// Bit returns the bit at index i (0 or 1).
// Panics if i is out of range.
func (b BitString) Bit(i int) byte {
	if i < 0 || i >= b.bits {
		panic("Bit: index out of range")
	}

	return (b.data[i>>3] >> (7 - (i & 7))) & 1
}

// Slice returns the sub-sequence of bits in [start, end).
// Panics if the indices are out of bounds.
func (b BitString) Slice(start, end int) BitString {
	if start < 0 || end < start || end > b.bits {
		panic("Slice: invalid indices")
	}

	w := newBitWriter()
	for i := start; i < end; i++ {
		w.writeBits(uint64(b.Bit(i)), 1)
	}

	return w.finish()
}

// Append returns a new BitString holding b's bits followed by other's.
// Neither operand is modified.
func (b BitString) Append(other BitString) BitString {
	w := newBitWriter()
	w.writeBitString(b)
	w.writeBitString(other)

	return w.finish()
}

// Equal reports whether b and other hold the same bits in the same order.
func (b BitString) Equal(other BitString) bool {
	if b.bits != other.bits {
		return false
	}

	for i := range b.data {
		if b.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String renders the bits as a '0'/'1' string, most significant bit first.
func (b BitString) String() string {
	var sb strings.Builder
	sb.Grow(b.bits)
	for i := 0; i < b.bits; i++ {
		sb.WriteByte('0' + b.Bit(i))
	}

	return sb.String()
}

// bitWriter accumulates bits in a 64-bit buffer and flushes them
// big-endian into a pooled byte buffer. finish() copies the exact bytes
// out and returns the buffer to the pool, so a writer is single-use and
// allocates only the final BitString.
type bitWriter struct {
	bitBuf   uint64
	bitCount int
	total    int
	buf      *pool.ByteBuffer
}

func newBitWriter() *bitWriter {
	return &bitWriter{buf: pool.GetHeaderBuffer()}
}

// writeBits appends the numBits least significant bits of value, most
// significant first. numBits must be in 0..64.
func (w *bitWriter) writeBits(value uint64, numBits int) {
	if numBits == 0 {
		return
	}

	if numBits < 64 {
		value &= (1 << numBits) - 1
	}
	w.total += numBits

	available := 64 - w.bitCount
	if numBits <= available {
		w.bitBuf = (w.bitBuf << numBits) | value
		w.bitCount += numBits
		if w.bitCount == 64 {
			w.flushBits()
		}

		return
	}

	// Split across the buffer boundary.
	highBits := numBits - available
	w.bitBuf = (w.bitBuf << available) | (value >> highBits)
	w.bitCount = 64
	w.flushBits()

	w.bitBuf = value & ((1 << highBits) - 1)
	w.bitCount = highBits
}

// writeBitString appends every bit of b.
func (w *bitWriter) writeBitString(b BitString) {
	full := b.bits / 8
	for i := 0; i < full; i++ {
		w.writeBits(uint64(b.data[i]), 8)
	}

	if rem := b.bits - full*8; rem > 0 {
		w.writeBits(uint64(b.data[full])>>(8-rem), rem)
	}
}

// flushBits drains the bit buffer into the byte buffer, MSB-first.
func (w *bitWriter) flushBits() {
	if w.bitCount == 0 {
		return
	}

	numBytes := (w.bitCount + 7) / 8
	aligned := w.bitBuf << (64 - w.bitCount)
	for i := 0; i < numBytes; i++ {
		w.buf.AppendByte(byte(aligned >> (56 - i*8)))
	}

	w.bitBuf = 0
	w.bitCount = 0
}

// finish flushes pending bits, copies the packed bytes into a fresh
// BitString, and returns the pooled buffer. The writer must not be used
// afterwards.
func (w *bitWriter) finish() BitString {
	w.flushBits()

	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())
	w.discard()

	return BitString{data: out, bits: w.total}
}

// discard returns the pooled buffer without producing a BitString.
func (w *bitWriter) discard() {
	pool.PutHeaderBuffer(w.buf)
	w.buf = nil
}

// bitReader consumes bits from a BitString starting at a caller-supplied
// offset. It never reads past the bit length; a short read reports
// ok=false and leaves the position unchanged.
type bitReader struct {
	bs  BitString
	pos int
}

func newBitReader(bs BitString, offset int) *bitReader {
	return &bitReader{bs: bs, pos: offset}
}

// readBits reads numBits (0..64) and returns them right-aligned.
func (r *bitReader) readBits(numBits int) (uint64, bool) {
	if numBits < 0 || numBits > 64 || r.pos+numBits > r.bs.bits {
		return 0, false
	}

	var result uint64
	pos := r.pos
	remaining := numBits
	for remaining > 0 {
		byteIdx := pos >> 3
		bitIdx := pos & 7
		available := 8 - bitIdx
		take := available
		if take > remaining {
			take = remaining
		}

		chunk := (r.bs.data[byteIdx] >> (available - take)) & (0xFF >> (8 - take))
		result = (result << take) | uint64(chunk)
		pos += take
		remaining -= take
	}
	r.pos = pos

	return result, true
}

// consumed returns the number of bits read since the given offset.
func (r *bitReader) consumed(offset int) int {
	return r.pos - offset
}
