// Package simd provides word kernels for packed bit storage.
//
// # Supported Platforms
//
//   - x86-64: POPCNT
//   - ARM64: NEON (CNT)
//
// Runtime CPU feature detection selects the population-count kernel.
// Set BITARRAY_ISA=generic to force the bit-clearing fallback.
//
// # Operations
//
//   - Fill: FillWords, NotWords
//   - Logic: AndWords, OrWords, XorWords, AndNotWords
//   - Count: PopcountWords
package simd
