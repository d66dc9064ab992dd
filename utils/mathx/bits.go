// File: bits.go
// Title: Bit-Level Math Utilities
// Description: Implements the power-of-two arithmetic used by the tiered
//              string allocator: floor log2, power-of-two predicates, and
//              the capacity law (next power-of-two-minus-one at or above a
//              requested length).
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation with capacity math

package mathx

import (
	"math/bits"
)

// FloorLog2 returns the floor of the base-2 logarithm of n.
// FloorLog2(0) is defined as 0 for convenience.
func FloorLog2(n uint64) int {
	if n == 0 {
		return 0
	}
	return bits.Len64(n) - 1
}

// CeilLog2 returns the ceiling of the base-2 logarithm of n.
// CeilLog2(0) is defined as 0.
func CeilLog2(n uint64) int {
	if n <= 1 {
		return 0
	}
	return bits.Len64(n - 1)
}

// IsPow2 returns true if n is a power of two. Zero is not a power of two.
func IsPow2(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

// NextCapacity returns the smallest value of the form 2^k - 1 that is
// greater than or equal to n, computed as 2^(FloorLog2(n)+1) - 1.
//
// This is the capacity law of the heap string tiers: a buffer sized for n
// bytes of content always spans one full power of two, leaving the last
// byte for the terminator.
func NextCapacity(n int) int {
	if n <= 0 {
		return 1
	}
	return 1<<(FloorLog2(uint64(n))+1) - 1
}
