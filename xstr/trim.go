// File: trim.go
// Title: Character-Set Trimming
// Description: Implements in-place removal of leading and trailing bytes
//              belonging to a cut set, operating on binary data without
//              any reallocation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation with byte membership table

package xstr

import (
	"github.com/msto63/xstring/core/log"
)

// Trim removes every leading and trailing byte of x that appears in
// cutset, in place, and returns x. An empty cutset is a no-op. Interior
// occurrences of cut-set bytes are never removed, and the capacity is
// never reduced; content entirely made of cut-set bytes trims to length
// zero.
func (x *String) Trim(cutset string) *String {
	if len(cutset) == 0 {
		return x
	}

	x.materialize()

	d := x.data()
	n := x.Size()

	// Byte membership over the full value range, so the scan works on
	// binary data including NUL.
	var member [256]bool
	for i := 0; i < len(cutset); i++ {
		member[cutset[i]] = true
	}

	start := 0
	for start < n && member[d[start]] {
		start++
	}
	end := n
	for end > start && member[d[end-1]] {
		end--
	}

	m := end - start
	copy(d[:m], d[start:end])
	// Do not dirty memory that already holds the terminator.
	if d[m] != 0 {
		d[m] = 0
	}
	x.setSize(m)

	if n != m {
		tracef("trimmed", log.Fields{"removed": n - m, "size": m})
	}
	return x
}
