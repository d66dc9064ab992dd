// File: stats.go
// Title: Allocation Statistics
// Description: Implements the package-level allocation accounting used by
//              test harnesses to verify that every heap buffer is given
//              up exactly once across all storage tiers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation with per-tier counters

package xstr

// MemStats aggregates the allocation activity of the package. The
// counters are plain integers under the same single-threaded sharing
// contract as the reference counts themselves.
type MemStats struct {
	// MediumAllocs and LargeAllocs count heap buffers created per tier.
	MediumAllocs int64
	LargeAllocs  int64

	// MediumFrees counts medium buffers given up; LargeFrees counts
	// large buffers whose last owner released them.
	MediumFrees int64
	LargeFrees  int64

	// Materializations counts copy-on-write forks off shared buffers.
	Materializations int64
}

// LiveBuffers returns the number of heap buffers still owned by live
// values. A harness that releases everything it constructed must see
// zero here.
func (s MemStats) LiveBuffers() int64 {
	return s.MediumAllocs + s.LargeAllocs - s.MediumFrees - s.LargeFrees
}

var memStats MemStats

// Stats returns a snapshot of the package allocation counters.
func Stats() MemStats {
	return memStats
}

// ResetStats zeroes the package allocation counters. Intended for test
// harnesses that balance allocations against releases.
func ResetStats() {
	memStats = MemStats{}
}
