// File: doc.go
// Title: Package Documentation for xstr
// Description: Provides comprehensive documentation for the tiered string
//              value type including usage examples and design principles.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial package documentation

// Package xstr provides a binary-safe string value type with tiered
// storage, designed to keep short strings allocation-free and to share
// large strings cheaply between values.
//
// # Overview
//
// A String stores its content in one of three physical tiers, selected
// automatically by length:
//
//   - Inline: content up to 15 bytes lives directly in the value with no
//     heap allocation at all.
//   - Medium: content of 16 to 255 bytes lives in an exclusively owned
//     heap buffer.
//   - Large: content of 256 bytes and more lives in a heap buffer that
//     multiple values may share through a reference count, with copies
//     deferred until a mutation actually requires them (copy-on-write).
//
// Heap capacities are always of the form 2^k - 1, and every buffer keeps
// a zero terminator after the content for interop with byte-string
// consumers. The terminator is maintained by all mutators but the length
// is tracked explicitly, so content may contain arbitrary bytes
// including NUL.
//
// # Basic Usage
//
//	s, err := xstr.NewString("hello, world")
//	if err != nil {
//		return err
//	}
//	defer s.Release()
//
//	fmt.Println(s.Size())     // 12
//	fmt.Println(s.Tier())     // inline
//	fmt.Println(s.String())   // "hello, world"
//
// # Copying and Sharing
//
// CopyFrom makes the target an independent value with the same content.
// For large sources this aliases the buffer and bumps the shared count
// instead of copying bytes; the fork to private storage happens lazily,
// inside the first mutating operation on a shared value:
//
//	a, _ := xstr.New(bigPayload)      // large tier
//	b := xstr.NewEmpty()
//	b.CopyFrom(a)                     // aliases a's buffer, no byte copy
//	b.Trim(" \n")                     // forks b's private copy first
//
// Medium sources are always deep-copied and inline sources are plain
// value copies, so mutating one value never corrupts another regardless
// of tier.
//
// # Mutation
//
// Concat rewrites a value to prefix ++ content ++ suffix, shifting the
// existing content inside the buffer when the capacity allows it and
// reallocating otherwise. Trim removes leading and trailing bytes that
// belong to a cut set, in place, never touching interior bytes and never
// reducing capacity. Grow raises the capacity ahead of time so later
// mutations can take the in-place path.
//
//	s, _ := xstr.NewString("\n foobarbar \n\n\n")
//	s.Trim("\n ")                     // "foobarbar"
//
//	pre, _ := xstr.NewString("(((")
//	suf, _ := xstr.NewString(")))")
//	s.Concat(pre, suf)                // "(((foobarbar)))"
//
// # Ownership
//
// Values acquired through the constructors own a resource and should be
// given back with Release. Release is idempotent: it resets the value to
// the canonical empty state, so releasing twice or reusing a released
// value is safe. The Stats function exposes allocation counters that
// test harnesses use to verify every buffer is balanced by a release.
//
// # Concurrency
//
// The reference count is deliberately not atomic. A value, and any
// values sharing its buffer, belong to one goroutine at a time; handing
// them between goroutines requires external synchronization. This is the
// same contract under which the allocation counters operate.
//
// # Instrumentation
//
// Allocation and mutation events can be traced through a structured
// logger, configured programmatically with Options or from a TOML/YAML
// file with ConfigureFromFile. Tracing is disabled by default and has no
// effect on operation semantics.
package xstr
