// File: concat.go
// Title: String Concatenation
// Description: Implements concatenation of a prefix and suffix around the
//              target's current content, in place when the capacity
//              allows it and through a fresh buffer otherwise.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation with in-place fast path

package xstr

import (
	xserrors "github.com/msto63/xstring/core/errors"
	"github.com/msto63/xstring/core/log"
)

// Concat rewrites x to prefix ++ x ++ suffix and returns x. The prefix
// and suffix are only read.
//
// When the combined length fits the current capacity, the existing
// content is shifted forward inside the buffer (the ranges may overlap)
// and both ends are filled in place. Otherwise the result is built into
// a fresh buffer sized by the growth logic and x is rebound to it.
//
// Prefix and suffix must not occupy the target's own buffer. The
// hazardous case, an exclusively owned buffer serving as its own input,
// is detected and rejected with an ALIASING_VIOLATION error; inputs that
// merely shared the target's large buffer are safe because the target
// forks a private copy before mutating.
func (x *String) Concat(prefix, suffix *String) (*String, error) {
	pres, sufs, size := prefix.Size(), suffix.Size(), x.Size()
	total := pres + size + sufs
	if total > MaxLen {
		return nil, xserrors.InvalidLengthError(xserrors.ModuleXstr, "Concat", total, MaxLen)
	}

	// Concatenation always mutates, so privatize shared storage first.
	x.materialize()

	if x.overlaps(prefix) || x.overlaps(suffix) {
		return nil, xserrors.AliasingError(xserrors.ModuleXstr, "Concat")
	}

	if total <= x.Capacity() {
		d := x.data()
		copy(d[pres:pres+size], d[:size])
		copy(d[:pres], prefix.Bytes())
		copy(d[pres+size:total], suffix.Bytes())
		d[total] = 0
		x.setSize(total)
		tracef("concat in place", log.Fields{"size": total})
		return x, nil
	}

	tmp := NewEmpty()
	if err := tmp.Grow(total); err != nil {
		return nil, err
	}
	d := tmp.data()
	copy(d[pres:], x.Bytes())
	copy(d[:pres], prefix.Bytes())
	copy(d[pres+size:total], suffix.Bytes())
	d[total] = 0
	tmp.setSize(total)

	x.Release()
	*x = *tmp
	tracef("concat reallocated", log.Fields{"size": total, "capacity": x.Capacity()})
	return x, nil
}

// overlaps reports whether other occupies the same storage as x. Values
// bind whole buffers, so comparing the first element address suffices;
// distinct inline values can never share storage.
func (x *String) overlaps(other *String) bool {
	if other == x {
		return true
	}
	if x.tier == TierInline || other.tier == TierInline {
		return false
	}
	if len(x.buf) == 0 || len(other.buf) == 0 {
		return false
	}
	return &x.buf[0] == &other.buf[0]
}
