// File: xstr.go
// Title: Core String Value Type
// Description: Implements the tiered string value type: representation,
//              accessors, allocation tier selection, construction, growth,
//              and release. Short content lives inline in the value, medium
//              content in an exclusively owned heap buffer, and large
//              content in a heap buffer shared through a reference count.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation with three storage tiers

package xstr

import (
	xserrors "github.com/msto63/xstring/core/errors"
	"github.com/msto63/xstring/core/log"
	"github.com/msto63/xstring/utils/mathx"
)

const (
	// InlineCapacity is the fixed capacity of the inline tier. Content up
	// to this length is stored directly in the value, with no heap call.
	InlineCapacity = 15

	// LargeThreshold is the smallest length allocated in the shared large
	// tier. Lengths between InlineCapacity+1 and LargeThreshold-1 use the
	// exclusive medium tier.
	LargeThreshold = 256

	// MaxLen is the maximum representable string length (2^54 - 1).
	// Requests beyond it are rejected with an INVALID_LENGTH error.
	MaxLen = 1<<54 - 1
)

// Tier identifies the physical storage layout of a String.
type Tier uint8

const (
	// TierInline stores content in the value's fixed buffer.
	TierInline Tier = iota

	// TierMedium stores content in an exclusively owned heap buffer.
	TierMedium

	// TierLarge stores content in a heap buffer shared via a reference
	// count.
	TierLarge
)

// String returns the string representation of the tier
func (t Tier) String() string {
	switch t {
	case TierInline:
		return "inline"
	case TierMedium:
		return "medium"
	case TierLarge:
		return "large"
	default:
		return "unknown"
	}
}

// String is a binary-safe string value with tiered storage. Values must
// be created through NewEmpty, New, or NewString; the zero struct is not
// a valid value.
//
// Every buffer, inline or heap, holds the content followed by one zero
// terminator byte for interop with byte-string consumers. The terminator
// is maintained by every mutator but is never the source of truth for
// the length.
//
// Sharing (large tier only) uses a plain, non-atomic counter: mutating or
// releasing aliased values from multiple goroutines without external
// synchronization is outside the type's guarantees.
type String struct {
	tier Tier

	// Inline tier: content plus terminator. spaceLeft counts the free
	// bytes, so the canonical empty value has spaceLeft == InlineCapacity
	// and the stored size is InlineCapacity - spaceLeft.
	stack     [InlineCapacity + 1]byte
	spaceLeft uint8

	// Heap tiers: buf spans capacity+1 bytes (capacity is always of the
	// form 2^k - 1), with the terminator at buf[size].
	buf  []byte
	size int

	// Large tier: shared owner count, nil for the other tiers.
	refs *int
}

// NewEmpty returns a new empty String in the inline tier.
func NewEmpty() *String {
	x := &String{}
	x.reset()
	return x
}

// New constructs a String holding a copy of p. It fails with an
// INVALID_LENGTH error if len(p) exceeds MaxLen.
func New(p []byte) (*String, error) {
	if len(p) > MaxLen {
		return nil, xserrors.InvalidLengthError(xserrors.ModuleXstr, "New", len(p), MaxLen)
	}

	x := NewEmpty()
	x.allocate(len(p))
	d := x.data()
	copy(d, p)
	d[len(p)] = 0
	x.setSize(len(p))
	return x, nil
}

// NewString constructs a String holding a copy of s. It fails with an
// INVALID_LENGTH error if len(s) exceeds MaxLen.
func NewString(s string) (*String, error) {
	if len(s) > MaxLen {
		return nil, xserrors.InvalidLengthError(xserrors.ModuleXstr, "NewString", len(s), MaxLen)
	}

	x := NewEmpty()
	x.allocate(len(s))
	d := x.data()
	copy(d, s)
	d[len(s)] = 0
	x.setSize(len(s))
	return x, nil
}

// reset puts x into the canonical empty inline state without touching
// any heap resource it may have referenced.
func (x *String) reset() {
	*x = String{spaceLeft: InlineCapacity}
}

// Tier returns the physical storage tier of x.
func (x *String) Tier() Tier {
	return x.tier
}

// IsHeap returns true if x is backed by a heap buffer.
func (x *String) IsHeap() bool {
	return x.tier != TierInline
}

// IsLarge returns true if x is in the shared large-buffer tier.
func (x *String) IsLarge() bool {
	return x.tier == TierLarge
}

// Size returns the logical length of the content in bytes.
func (x *String) Size() int {
	if x.tier == TierInline {
		return InlineCapacity - int(x.spaceLeft)
	}
	return x.size
}

// setSize records the logical length in the size field of the active tier.
func (x *String) setSize(n int) {
	if x.tier == TierInline {
		x.spaceLeft = uint8(InlineCapacity - n)
		return
	}
	x.size = n
}

// Capacity returns the maximum length storable without reallocation.
// Heap capacities are always of the form 2^k - 1.
func (x *String) Capacity() int {
	if x.tier == TierInline {
		return InlineCapacity
	}
	return len(x.buf) - 1
}

// Bytes returns a view of the content, valid until the next mutation of
// x. Callers that need a stable copy should use String.
func (x *String) Bytes() []byte {
	return x.data()[:x.Size()]
}

// String returns a copy of the content as a Go string.
func (x *String) String() string {
	return string(x.Bytes())
}

// data returns the full storage window of the active tier, including the
// terminator slot.
func (x *String) data() []byte {
	if x.tier == TierInline {
		return x.stack[:]
	}
	return x.buf
}

// refCount returns the shared owner count, or 0 for unshared tiers.
func (x *String) refCount() int {
	if x.tier != TierLarge || x.refs == nil {
		return 0
	}
	return *x.refs
}

// allocate configures x with fresh storage for a string of length n,
// choosing the tier by the length thresholds. Any resource x currently
// holds is given up first, while the old representation is still intact;
// the new tier's fields are only written afterwards.
func (x *String) allocate(n int) {
	x.Release()

	switch {
	case n >= LargeThreshold:
		capacity := mathx.NextCapacity(n)
		x.buf = make([]byte, capacity+1)
		refs := 1
		x.refs = &refs
		x.tier = TierLarge
		memStats.LargeAllocs++
		tracef("allocated large buffer", log.Fields{"capacity": capacity})
	case n > InlineCapacity:
		capacity := mathx.NextCapacity(n)
		x.buf = make([]byte, capacity+1)
		x.tier = TierMedium
		memStats.MediumAllocs++
		tracef("allocated medium buffer", log.Fields{"capacity": capacity})
	}
	// n <= InlineCapacity stays inline, no heap call
}

// Grow ensures the capacity of x is at least n, preserving content and
// logical size. It never shrinks. Growth alone does not privatize a
// shared buffer: whenever it actually grows it produces fresh exclusive
// storage anyway, and when the capacity already suffices it is a no-op.
func (x *String) Grow(n int) error {
	if n < 0 {
		return xserrors.NegativeLengthError(xserrors.ModuleXstr, "Grow", n)
	}
	if n > MaxLen {
		return xserrors.InvalidLengthError(xserrors.ModuleXstr, "Grow", n, MaxLen)
	}
	if n <= x.Capacity() {
		return nil
	}

	size := x.Size()
	backup := make([]byte, size)
	copy(backup, x.Bytes())

	x.allocate(n)
	d := x.data()
	copy(d, backup)
	d[size] = 0
	x.setSize(size)
	return nil
}

// Release gives up the heap resource of x, if any, and resets x to the
// canonical empty inline state, making reuse or a repeat release safe.
// For the large tier the shared count is decremented and the buffer only
// becomes dead when the last owner lets go; medium buffers are given up
// unconditionally.
func (x *String) Release() {
	switch x.tier {
	case TierLarge:
		*x.refs -= 1
		if *x.refs <= 0 {
			memStats.LargeFrees++
			tracef("released large buffer", log.Fields{"capacity": x.Capacity()})
		}
	case TierMedium:
		memStats.MediumFrees++
		tracef("released medium buffer", log.Fields{"capacity": x.Capacity()})
	}
	x.reset()
}
