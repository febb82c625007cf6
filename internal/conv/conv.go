// Package conv provides checked integer narrowing for state identifiers.
//
// Overflow here means an automaton grew past the 32-bit state space, which is
// a programming error rather than a user error, so the helpers panic.
package conv

import "math"

// IntToUint32 converts n to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// uint comparison keeps this correct where int is 32 bits
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
