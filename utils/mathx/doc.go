// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides bit-level math utilities for the
//              xstring library's tiered allocator.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial implementation

// Package mathx provides bit-level math utilities for the xstring library.
//
// The package exists to give the allocator's capacity law a single, tested
// home: heap-backed strings always round their capacity up to one less
// than a power of two, so that capacity plus the terminator byte fills a
// full power-of-two allocation.
//
//	mathx.NextCapacity(16)  // 31
//	mathx.NextCapacity(256) // 511
//	mathx.FloorLog2(255)    // 7
//
// All functions are pure and safe for concurrent use.
package mathx
