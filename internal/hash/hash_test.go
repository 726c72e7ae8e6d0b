package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC32C(t *testing.T) {
	// Known vector for CRC32-Castagnoli.
	assert.Equal(t, uint32(0xE3069283), CRC32C([]byte("123456789")))
	assert.Equal(t, uint32(0), CRC32C(nil))
}

func TestSHA1Prefix(t *testing.T) {
	// sha1("abc") = a9993e364706816aba3e25717850c26c9cd0d89d
	assert.Equal(t, uint64(0xa9993e364706816a), SHA1Prefix([]byte("abc")))
}

func TestPair(t *testing.T) {
	h1, h2 := Pair([]byte("abc"))
	assert.Equal(t, uint64(CRC32C([]byte("abc"))), h1)
	assert.Equal(t, SHA1Prefix([]byte("abc")), h2)

	a1, a2 := Pair([]byte("hello"))
	b1, b2 := Pair([]byte("hello"))
	assert.Equal(t, a1, b1)
	assert.Equal(t, a2, b2)
}
