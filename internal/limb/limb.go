// Package limb implements the owned, canonicalized decimal-limb buffer that
// every arithmetic component in this module is built on: a slice of
// base-10^8 digits, least-significant limb first.
package limb

// Base is the radix of a single limb: each limb holds a value in [0, Base).
const Base = 100000000

// Buffer is an owned, variable-length sequence of limbs. The zero value is
// not ready for use; call New or NewZero. Buffer is not safe for concurrent
// mutation of a single instance from multiple goroutines.
type Buffer struct {
	d []uint32
}

// NewZero returns a canonical zero buffer: length 1, d[0] = 0.
func NewZero() Buffer {
	return Buffer{d: []uint32{0}}
}

// New returns a buffer of the given length whose limbs are to be treated
// as undefined: all limbs must be written before they are read. NewClear
// is the constructor whose zero limbs may be relied on.
func New(length int) Buffer {
	if length < 1 {
		length = 1
	}
	return Buffer{d: make([]uint32, length)}
}

// NewClear returns a buffer of the given length with every limb set to 0.
func NewClear(length int) Buffer {
	if length < 1 {
		length = 1
	}
	return Buffer{d: make([]uint32, length)}
}

// Len returns the current number of limbs (L in the specification).
func (b Buffer) Len() int { return len(b.d) }

// Limb returns the limb at index i, least-significant first.
func (b Buffer) Limb(i int) uint32 { return b.d[i] }

// SetLimb writes v into the limb at index i.
func (b Buffer) SetLimb(i int, v uint32) { b.d[i] = v }

// Limbs returns the underlying slice directly. Callers that mutate it are
// responsible for re-canonicalizing before the buffer is observed elsewhere.
func (b Buffer) Limbs() []uint32 { return b.d }

// Resize grows or shrinks the buffer to newLen, preserving the existing
// prefix. Growing exposes undefined limbs past the old length that must be
// written before they are read; shrinking simply truncates.
func (b *Buffer) Resize(newLen int) {
	if newLen < 1 {
		newLen = 1
	}
	if newLen <= cap(b.d) {
		b.d = b.d[:newLen]
		return
	}
	nd := make([]uint32, newLen)
	copy(nd, b.d)
	b.d = nd
}

// EnsureCap grows the backing array's capacity to at least n without
// changing the visible length, to amortize repeated small grows (e.g. a
// carry-propagation loop appending one limb at a time).
func (b *Buffer) EnsureCap(n int) {
	if cap(b.d) >= n {
		return
	}
	nd := make([]uint32, len(b.d), n)
	copy(nd, b.d)
	b.d = nd
}

// Append extends the buffer by one limb holding v.
func (b *Buffer) Append(v uint32) {
	b.d = append(b.d, v)
}

// Canonicalize restores the canonical form invariant: length 1, or the top
// limb nonzero. It must be called before any Buffer is returned from a
// mutating operation.
func (b *Buffer) Canonicalize() {
	n := len(b.d)
	for n > 1 && b.d[n-1] == 0 {
		n--
	}
	b.d = b.d[:n]
}

// IsZero reports whether the buffer holds the canonical zero value. It does
// not require the buffer to be canonicalized first.
func (b Buffer) IsZero() bool {
	for _, v := range b.d {
		if v != 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of b; mutating the result never
// affects b, and vice versa.
func (b Buffer) Clone() Buffer {
	nd := make([]uint32, len(b.d))
	copy(nd, b.d)
	return Buffer{d: nd}
}

// Set replaces the contents of b with a copy of src's limbs.
func (b *Buffer) Set(src Buffer) {
	b.Resize(len(src.d))
	copy(b.d, src.d)
}

// Trim drops leading (most-significant) zero limbs beyond a required
// minimum length, without enforcing full canonical form. Used by callers
// that know a tighter lower bound than 1.
func (b *Buffer) Trim(minLen int) {
	if minLen < 1 {
		minLen = 1
	}
	n := len(b.d)
	for n > minLen && b.d[n-1] == 0 {
		n--
	}
	b.d = b.d[:n]
}
