package simd

import "math/bits"

// ==============================================================================
// Word Kernels
// ==============================================================================
//
// These operations back the bulk paths of bitstore.BitStore. They operate on
// []uint64 word buffers: fill, complement, AND, OR, XOR, ANDNOT and POPCOUNT.
// Binary kernels process min(len(dst), len(src)) words.

// Kernel function pointers for word operations.
// Generic implementations are the default; platform-specific init()
// functions override with hardware versions when available.
var (
	kernelAndWords      = andWordsGeneric
	kernelAndNotWords   = andNotWordsGeneric
	kernelOrWords       = orWordsGeneric
	kernelXorWords      = xorWordsGeneric
	kernelPopcountWords = popcountWordsSparse
)

// FillWords sets every word of dst to v.
func FillWords(dst []uint64, v uint64) {
	if len(dst) == 0 {
		return
	}
	// Doubling copy: the runtime's memmove does the heavy lifting.
	dst[0] = v
	for filled := 1; filled < len(dst); filled *= 2 {
		copy(dst[filled:], dst[:filled])
	}
}

// NotWords performs dst[i] = ^dst[i] for all words.
func NotWords(dst []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = ^dst[i]
		dst[i+1] = ^dst[i+1]
		dst[i+2] = ^dst[i+2]
		dst[i+3] = ^dst[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = ^dst[i]
	}
}

// AndWords performs dst[i] &= src[i] for all words.
func AndWords(dst, src []uint64) {
	kernelAndWords(dst, src[:min(len(dst), len(src))])
}

// AndNotWords performs dst[i] &= ^src[i] for all words.
func AndNotWords(dst, src []uint64) {
	kernelAndNotWords(dst, src[:min(len(dst), len(src))])
}

// OrWords performs dst[i] |= src[i] for all words.
func OrWords(dst, src []uint64) {
	kernelOrWords(dst, src[:min(len(dst), len(src))])
}

// XorWords performs dst[i] ^= src[i] for all words.
func XorWords(dst, src []uint64) {
	kernelXorWords(dst, src[:min(len(dst), len(src))])
}

// PopcountWords counts all set bits across words.
// Uses the POPCNT/CNT instruction path when the CPU supports it and the
// bit-clearing loop otherwise.
func PopcountWords(words []uint64) int {
	return kernelPopcountWords(words)
}

// ==============================================================================
// Generic implementations
// ==============================================================================

// The binary kernels iterate over src, which the exported wrappers have
// already trimmed to the common length.

func andWordsGeneric(dst, src []uint64) {
	// Process 4 words at a time (unrolled)
	i := 0
	for ; i+4 <= len(src); i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < len(src); i++ {
		dst[i] &= src[i]
	}
}

func andNotWordsGeneric(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(src); i += 4 {
		dst[i] &= ^src[i]
		dst[i+1] &= ^src[i+1]
		dst[i+2] &= ^src[i+2]
		dst[i+3] &= ^src[i+3]
	}
	for ; i < len(src); i++ {
		dst[i] &= ^src[i]
	}
}

func orWordsGeneric(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(src); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(src); i++ {
		dst[i] |= src[i]
	}
}

func xorWordsGeneric(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(src); i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < len(src); i++ {
		dst[i] ^= src[i]
	}
}

// popcountWordsSparse counts set bits by repeatedly clearing the lowest one
// (Kernighan). Runs in time proportional to the number of set bits.
func popcountWordsSparse(words []uint64) int {
	count := 0
	for _, w := range words {
		for w != 0 {
			w &= w - 1
			count++
		}
	}
	return count
}

// popcountWordsHardware relies on bits.OnesCount64, which the compiler lowers
// to POPCNT (amd64) or CNT (arm64).
func popcountWordsHardware(words []uint64) int {
	count := 0
	// Process 4 words at a time
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}
