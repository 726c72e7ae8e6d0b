package bitarray

import (
	"iter"
	"strings"
)

// String renders the bits as '0' and '1' characters, first index first.
// The result has exactly Len() characters and parses back to an equal array.
func (b *BitArray) String() string {
	var sb strings.Builder
	sb.Grow(b.Len())
	b.s.ForEach(func(_, bit int) bool {
		sb.WriteByte('0' + byte(bit))
		return true
	})
	return sb.String()
}

// ListString renders the bits as a bracketed list, e.g. "[1, 0, 1]".
func (b *BitArray) ListString() string {
	var sb strings.Builder
	sb.Grow(3*b.Len() + 2)
	sb.WriteByte('[')
	b.s.ForEach(func(pos, bit int) bool {
		if pos > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('0' + byte(bit))
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}

// Ints returns the bits as a slice of 0 and 1 values in index order.
func (b *BitArray) Ints() []int {
	out := make([]int, 0, b.Len())
	b.s.ForEach(func(_, bit int) bool {
		out = append(out, bit)
		return true
	})
	return out
}

// Bools returns the bits as booleans in index order.
func (b *BitArray) Bools() []bool {
	out := make([]bool, 0, b.Len())
	b.s.ForEach(func(_, bit int) bool {
		out = append(out, bit == 1)
		return true
	})
	return out
}

// Bits returns an iterator over the bits (0 or 1) in index order.
// The array must not be mutated while iterating.
func (b *BitArray) Bits() iter.Seq[int] {
	return func(yield func(int) bool) {
		b.s.ForEach(func(_, bit int) bool {
			return yield(bit)
		})
	}
}

// All returns an iterator over index/bit pairs in index order.
// The array must not be mutated while iterating.
func (b *BitArray) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		b.s.ForEach(yield)
	}
}

// Iterator is a pull-style cursor over the bits of a BitArray.
//
//	it := b.Iterator()
//	for it.HasNext() {
//		bit := it.Next()
//		...
//	}
type Iterator struct {
	b   *BitArray
	pos int
}

// Iterator returns a cursor positioned before the first bit.
func (b *BitArray) Iterator() *Iterator {
	return &Iterator{b: b}
}

// HasNext reports whether Next has another bit to return.
func (it *Iterator) HasNext() bool {
	return it.pos < it.b.Len()
}

// Next returns the next bit and advances the cursor.
// It panics when HasNext is false.
func (it *Iterator) Next() int {
	bit := it.b.s.At(it.pos)
	it.pos++
	return bit
}

// Reset moves the cursor back before the first bit.
func (it *Iterator) Reset() {
	it.pos = 0
}
