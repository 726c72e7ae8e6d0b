// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between signed/unsigned and different bit-width integer types.
//
// Use cases:
//   - Converting caller-supplied sizes of any integer kind to int
//   - Exchanging bit positions with 32-bit roaring bitmaps and uint-indexed bitsets
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices bounded by a store length), use direct type casts instead.
package conv
