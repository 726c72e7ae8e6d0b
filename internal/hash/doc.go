// Package hash provides the hash functions used by the bloom filter.
//
// Filters derive any number of probe positions from two base hashes with
// the Kirsch-Mitzenmacher construction g_i(x) = h1(x) + i*h2(x) mod m.
// Pair supplies h1 and h2:
//
//   - h1 is CRC32-Castagnoli, hardware accelerated on x86 (SSE4.2) and
//     ARM (CRC extension)
//   - h2 is the leading 64 bits of SHA-1
//
// For one-shot checksums:
//
//	checksum := hash.CRC32C(data)
//
// For probe generation:
//
//	h1, h2 := hash.Pair(data)
package hash
