// File: bits_test.go
// Title: Unit Tests for Bit-Level Math Utilities
// Description: Tests for floor/ceil log2, power-of-two detection, and the
//              allocator capacity law.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial test implementation

package mathx

import (
	"testing"
)

func TestFloorLog2(t *testing.T) {
	tests := []struct {
		name     string
		input    uint64
		expected int
	}{
		{"zero", 0, 0},
		{"one", 1, 0},
		{"two", 2, 1},
		{"three", 3, 1},
		{"four", 4, 2},
		{"fifteen", 15, 3},
		{"sixteen", 16, 4},
		{"255", 255, 7},
		{"256", 256, 8},
		{"max uint32", 1<<32 - 1, 31},
		{"2^54", 1 << 54, 54},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FloorLog2(tt.input); got != tt.expected {
				t.Errorf("FloorLog2(%d) = %d; want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCeilLog2(t *testing.T) {
	tests := []struct {
		name     string
		input    uint64
		expected int
	}{
		{"zero", 0, 0},
		{"one", 1, 0},
		{"two", 2, 1},
		{"three", 3, 2},
		{"four", 4, 2},
		{"five", 5, 3},
		{"256", 256, 8},
		{"257", 257, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CeilLog2(tt.input); got != tt.expected {
				t.Errorf("CeilLog2(%d) = %d; want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsPow2(t *testing.T) {
	tests := []struct {
		name     string
		input    uint64
		expected bool
	}{
		{"zero", 0, false},
		{"one", 1, true},
		{"two", 2, true},
		{"three", 3, false},
		{"256", 256, true},
		{"255", 255, false},
		{"2^54", 1 << 54, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPow2(tt.input); got != tt.expected {
				t.Errorf("IsPow2(%d) = %v; want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNextCapacity(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"zero", 0, 1},
		{"one", 1, 1},
		{"two", 2, 3},
		{"three", 3, 3},
		{"four", 4, 7},
		{"fifteen", 15, 15},
		{"sixteen", 16, 31},
		{"31 stays 31", 31, 31},
		{"32 rounds to 63", 32, 63},
		{"255 stays 255", 255, 255},
		{"256 rounds to 511", 256, 511},
		{"1000 rounds to 1023", 1000, 1023},
		{"1024 rounds to 2047", 1024, 2047},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextCapacity(tt.input); got != tt.expected {
				t.Errorf("NextCapacity(%d) = %d; want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNextCapacityLaw(t *testing.T) {
	// The result is always of the form 2^k - 1 and never below the input.
	for n := 1; n <= 1<<16; n++ {
		c := NextCapacity(n)
		if c < n {
			t.Fatalf("NextCapacity(%d) = %d is below the input", n, c)
		}
		if !IsPow2(uint64(c) + 1) {
			t.Fatalf("NextCapacity(%d) = %d is not of the form 2^k-1", n, c)
		}
	}
}
