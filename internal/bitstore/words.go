package bitstore

// WordBits is the number of bits per storage word.
const WordBits = 64

// wordCount returns the number of words needed to hold n bits.
func wordCount(n int) int {
	return (n + WordBits - 1) / WordBits
}

// locate maps a resolved bit position to its word index and in-word mask.
// Every bit-level primitive goes through here.
//
//go:nosplit
func locate(pos int) (int, uint64) {
	return pos / WordBits, uint64(1) << (uint(pos) % WordBits)
}

// lowMask returns a word with the low k bits set, 0 <= k <= 64.
func lowMask(k int) uint64 {
	if k >= WordBits {
		return ^uint64(0)
	}
	return uint64(1)<<uint(k) - 1
}

// tailMask returns the mask of live bits in the last word of an n-bit buffer.
func tailMask(n int) uint64 {
	if r := n % WordBits; r != 0 {
		return lowMask(r)
	}
	return ^uint64(0)
}

// readWord returns the 64 bits of src starting at bit off.
// Bits past the end of src read as zero.
func readWord(src []uint64, off int) uint64 {
	w, sh := off/WordBits, uint(off%WordBits)
	v := src[w] >> sh
	if sh != 0 && w+1 < len(src) {
		v |= src[w+1] << (WordBits - sh)
	}
	return v
}

// writeBits stores the low k bits of v into dst at bit off, 1 <= k <= 64.
// Bits of dst outside [off, off+k) are preserved.
func writeBits(dst []uint64, off int, v uint64, k int) {
	mask := lowMask(k)
	v &= mask
	w, sh := off/WordBits, uint(off%WordBits)
	dst[w] = dst[w]&^(mask<<sh) | v<<sh

	// Spill into the next word.
	if sh != 0 && int(sh)+k > WordBits {
		rem := WordBits - sh
		dst[w+1] = dst[w+1]&^(mask>>rem) | v>>rem
	}
}

// copyBits copies n bits from src at srcOff to dst at dstOff, one word at a
// time. Neither offset needs to be word-aligned. Concat and Slice both use it.
func copyBits(dst []uint64, dstOff int, src []uint64, srcOff, n int) {
	// Aligned fast path.
	if dstOff%WordBits == 0 && srcOff%WordBits == 0 {
		whole := n / WordBits
		copy(dst[dstOff/WordBits:], src[srcOff/WordBits:srcOff/WordBits+whole])
		done := whole * WordBits
		dstOff, srcOff, n = dstOff+done, srcOff+done, n-done
	}

	for n > 0 {
		k := min(n, WordBits)
		writeBits(dst, dstOff, readWord(src, srcOff), k)
		dstOff += k
		srcOff += k
		n -= k
	}
}
