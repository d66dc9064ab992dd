// File: copy.go
// Title: Copy and Copy-on-Write Materialization
// Description: Implements the copy/aliasing policy of the string value
//              type and the lazy materialization that privatizes a shared
//              large buffer before an in-place mutation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation with aliasing copy and COW

package xstr

import (
	"github.com/msto63/xstring/core/log"
)

// CopyFrom makes x an independent value equal in content to src,
// releasing whatever x held before.
//
// The policy follows the source tier. Large sources are aliased: x
// becomes another owner of the same buffer and the shared count grows by
// one, with no bytes copied. Medium sources are deep-copied, because that
// tier carries no counter to arbitrate a safe release between two
// owners. Inline sources are plain value copies. In every case, mutating
// either value afterwards never corrupts the other.
func (x *String) CopyFrom(src *String) *String {
	if x == src {
		return x
	}
	x.Release()

	switch src.tier {
	case TierLarge:
		x.tier = TierLarge
		x.buf = src.buf
		x.size = src.size
		x.refs = src.refs
		*x.refs += 1
		tracef("aliased shared buffer", log.Fields{"refs": *x.refs, "size": x.size})
	case TierMedium:
		size := src.size
		x.allocate(size)
		d := x.data()
		copy(d, src.buf[:size])
		d[size] = 0
		x.setSize(size)
	default:
		x.stack = src.stack
		x.spaceLeft = src.spaceLeft
	}
	return x
}

// materialize forks a private copy of a shared large buffer before an
// in-place mutation. It reports whether a fork happened: false means x
// already owned its storage exclusively and nothing was done. The other
// owners keep using the old buffer; x drops its stake and rebinds to
// fresh storage sized to the current logical length.
func (x *String) materialize() bool {
	if x.refCount() <= 1 {
		return false
	}

	size := x.size
	old := x.buf[:size]

	*x.refs -= 1
	// Detach from the shared buffer before reallocating, so allocate
	// finds no resource to give up a second time.
	x.reset()

	x.allocate(size)
	d := x.data()
	copy(d, old)
	d[size] = 0
	x.setSize(size)

	memStats.Materializations++
	tracef("materialized private copy", log.Fields{"size": size})
	return true
}
