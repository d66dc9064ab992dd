// File: example_test.go
// Title: Usage Examples
// Description: Provides runnable examples for the tiered string value
//              type covering construction, trimming, concatenation, and
//              copy-on-write sharing.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-07
// Modified: 2025-02-07
//
// Change History:
// - 2025-02-07 v0.1.0: Initial examples

package xstr_test

import (
	"fmt"
	"strings"

	"github.com/msto63/xstring/xstr"
)

func Example() {
	s, _ := xstr.NewString("\n foobarbar \n\n\n")
	defer s.Release()

	s.Trim("\n ")

	pre, _ := xstr.NewString("(((")
	defer pre.Release()
	suf, _ := xstr.NewString(")))")
	defer suf.Release()

	s.Concat(pre, suf)
	fmt.Println(s.String(), s.Size())
	// Output: (((foobarbar))) 15
}

func ExampleNewString() {
	s, _ := xstr.NewString("hello")
	defer s.Release()

	fmt.Println(s.Tier(), s.Size(), s.Capacity())
	// Output: inline 5 15
}

func ExampleString_CopyFrom() {
	a, _ := xstr.NewString(strings.Repeat("x", 300))
	defer a.Release()

	b := xstr.NewEmpty()
	defer b.Release()

	b.CopyFrom(a) // aliases a's buffer, no bytes copied
	b.Trim("x")   // forks a private copy before mutating

	fmt.Println(a.Size(), b.Size())
	// Output: 300 0
}

func ExampleString_Grow() {
	s, _ := xstr.NewString("seed")
	defer s.Release()

	s.Grow(100)
	fmt.Println(s.Tier(), s.Size(), s.Capacity())
	// Output: medium 4 127
}
