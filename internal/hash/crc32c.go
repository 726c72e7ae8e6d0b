package hash

import (
	"crypto/sha1" //nolint:gosec // not used for security
	"encoding/binary"
	"hash/crc32"
)

// crc32cTable is pre-computed for CRC32-Castagnoli polynomial.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
// Uses hardware acceleration when available (SSE4.2, ARM CRC).
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// SHA1Prefix returns the first 8 bytes of the SHA-1 digest of data as a
// big-endian integer.
func SHA1Prefix(data []byte) uint64 {
	sum := sha1.Sum(data) //nolint:gosec // not used for security
	return binary.BigEndian.Uint64(sum[:8])
}

// Pair returns two independent hashes of data for double hashing:
// CRC32C and a SHA-1 prefix.
func Pair(data []byte) (uint64, uint64) {
	return uint64(CRC32C(data)), SHA1Prefix(data)
}
