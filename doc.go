// Package bitarray provides a fixed-length, densely packed array of bits.
//
// Bits are stored in 64-bit words, so a BitArray of n bits uses n/8 bytes
// (rounded up to a whole word) and supports O(1) indexed access. The length
// is fixed at construction; Concat, Slice and the bitwise combinations
// always return new arrays.
//
// # Quick Start
//
//	b, _ := bitarray.New(8)
//	_ = b.Set(0)
//	_ = b.Set(-1)           // negative indices count from the end
//	fmt.Println(b)          // 10000001
//	fmt.Println(b.Count())  // 2
//
//	p := bitarray.Parse("1010abcd") // parsing stops at the first non-bit: 1010
//	c := b.Concat(p)                // 100000011010
//
// # Construction
//
// New creates a cleared array of a given size, Parse reads a '0'/'1' text,
// FromBools and FromValues read sequences (FromValues uses truthiness: nil,
// false and numeric zero are 0, anything else is 1). Make dispatches on the
// kind of its argument and reports *ErrInvalidArgumentKind for anything it
// cannot use.
//
// # Indexing
//
// Get, Set, Clear, Toggle and Assign take an index that may be negative;
// -1 is the last bit. Indices outside the array return *ErrIndexOutOfRange.
//
// Slice and Ref with a Span or Range selector are lenient instead: bounds
// outside the array report "no result" through a boolean or
// Selection.Found, never through an error.
//
//	sub, ok := b.Slice(2, 1000)                 // truncated to the end
//	sel, _ := b.Ref(bitarray.Range{Begin: 1, End: 5}) // bits 1..5 inclusive
//
// # Iteration
//
// Bits and All return range-over-func iterators; Iterator returns a
// pull-style cursor; Ints and Bools materialize the whole array.
//
//	for i, bit := range b.All() {
//		fmt.Println(i, bit)
//	}
//
// # Interop
//
// ToRoaring/FromRoaring exchange set-bit positions with
// github.com/RoaringBitmap/roaring/v2 bitmaps; ToBitSet/FromBitSet exchange
// word buffers with github.com/bits-and-blooms/bitset.
//
// # Concurrency
//
// A BitArray is not safe for concurrent mutation. Concurrent reads are safe,
// and arrays derived from it own their storage.
package bitarray
