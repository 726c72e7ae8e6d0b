// Package testutil provides testing utilities for bitarray.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and generators for random bit
// sequences in the forms the constructors accept.
//
// # Random Bits
//
//	rng := testutil.NewRNG(seed)
//	bits := rng.Bools(130)        // []bool
//	text := rng.BitString(130)    // "0110..."
//	vals, want := rng.Values(130) // []any mixing truthy and falsy elements, and their bits
//
// # Reference Checks
//
//	want := testutil.BitsOf(text) // []int of 0/1, one per character
package testutil
