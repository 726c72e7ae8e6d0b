package bitstore

import (
	"github.com/hupe1980/bitarray/internal/simd"
)

// BitStore is a fixed-length sequence of bits packed into 64-bit words.
//
// The zero value is a valid empty store. A BitStore is not safe for
// concurrent mutation; concurrent reads are fine.
type BitStore struct {
	// words is the backing storage, exclusively owned.
	// len(words) == ceil(bitCount/64); tail padding is always zero.
	words []uint64

	// bitCount is the logical length, fixed for the lifetime of the store.
	bitCount int
}

// New creates a store of size bits, all cleared.
// Negative sizes are rejected with *ErrInvalidSize.
func New(size int) (*BitStore, error) {
	if size < 0 {
		return nil, &ErrInvalidSize{Size: size}
	}
	return newStore(size), nil
}

// newStore allocates a zeroed store; size must be non-negative.
func newStore(size int) *BitStore {
	s := &BitStore{bitCount: size}
	if size > 0 {
		s.words = make([]uint64, wordCount(size))
	}
	return s
}

// FromBools creates a store whose bit i is set iff bits[i] is true.
func FromBools(bits []bool) *BitStore {
	s := newStore(len(bits))
	for pos, b := range bits {
		if b {
			w, m := locate(pos)
			s.words[w] |= m
		}
	}
	return s
}

// FromText creates a store from the leading run of '0' and '1' characters
// in text. Scanning stops at the first other byte; everything from there on
// is ignored. A text that does not start with '0' or '1' yields an empty store.
func FromText(text string) *BitStore {
	n := 0
	for n < len(text) && (text[n] == '0' || text[n] == '1') {
		n++
	}

	s := newStore(n)
	for pos := 0; pos < n; pos++ {
		if text[pos] == '1' {
			w, m := locate(pos)
			s.words[w] |= m
		}
	}
	return s
}

// FromWords creates a store of bitCount bits from raw words (bit i in word
// i/64 at position i%64). The words are copied; bits past bitCount are dropped.
func FromWords(words []uint64, bitCount int) (*BitStore, error) {
	if bitCount < 0 || wordCount(bitCount) > len(words) {
		return nil, &ErrInvalidSize{Size: bitCount}
	}
	s := newStore(bitCount)
	copy(s.words, words)
	s.clearTail()
	return s, nil
}

// Len returns the number of bits.
func (s *BitStore) Len() int {
	return s.bitCount
}

// Words returns a copy of the backing words.
func (s *BitStore) Words() []uint64 {
	out := make([]uint64, len(s.words))
	copy(out, s.words)
	return out
}

// Resolve normalizes a raw index: negative values count from the end.
// The result is in [0, Len()) or an *ErrIndexOutOfRange is returned.
func (s *BitStore) Resolve(i int) (int, error) {
	pos := i
	if pos < 0 {
		pos += s.bitCount
	}
	if pos < 0 || pos >= s.bitCount {
		return 0, &ErrIndexOutOfRange{Index: i, Len: s.bitCount}
	}
	return pos, nil
}

// Get returns the bit at index i as 0 or 1.
func (s *BitStore) Get(i int) (int, error) {
	pos, err := s.Resolve(i)
	if err != nil {
		return 0, err
	}
	return s.bit(pos), nil
}

// Set forces the bit at index i to 1.
func (s *BitStore) Set(i int) error {
	pos, err := s.Resolve(i)
	if err != nil {
		return err
	}
	w, m := locate(pos)
	s.words[w] |= m
	return nil
}

// Clear forces the bit at index i to 0.
func (s *BitStore) Clear(i int) error {
	pos, err := s.Resolve(i)
	if err != nil {
		return err
	}
	w, m := locate(pos)
	s.words[w] &^= m
	return nil
}

// Toggle flips the bit at index i.
func (s *BitStore) Toggle(i int) error {
	pos, err := s.Resolve(i)
	if err != nil {
		return err
	}
	w, m := locate(pos)
	s.words[w] ^= m
	return nil
}

// Assign sets the bit at index i to value, which must be 0 or 1.
// The value is checked before the index; nothing is written on failure.
func (s *BitStore) Assign(i, value int) error {
	switch value {
	case 0:
		return s.Clear(i)
	case 1:
		return s.Set(i)
	default:
		return &ErrInvalidValue{Value: value}
	}
}

// bit reads a resolved position.
func (s *BitStore) bit(pos int) int {
	w, m := locate(pos)
	if s.words[w]&m != 0 {
		return 1
	}
	return 0
}

// SetAll sets every bit.
func (s *BitStore) SetAll() {
	simd.FillWords(s.words, ^uint64(0))
	s.clearTail()
}

// ClearAll clears every bit.
func (s *BitStore) ClearAll() {
	simd.FillWords(s.words, 0)
}

// ToggleAll flips every bit.
func (s *BitStore) ToggleAll() {
	simd.NotWords(s.words)
	s.clearTail()
}

// Count returns the number of set bits.
func (s *BitStore) Count() int {
	return simd.PopcountWords(s.words)
}

// clearTail zeroes the padding bits of the last word.
func (s *BitStore) clearTail() {
	if len(s.words) > 0 {
		s.words[len(s.words)-1] &= tailMask(s.bitCount)
	}
}

// Equal reports whether both stores hold the same bits.
func (s *BitStore) Equal(other *BitStore) bool {
	if s.bitCount != other.bitCount {
		return false
	}
	for i, w := range s.words {
		if w != other.words[i] {
			return false
		}
	}
	return true
}

// Copy returns a deep copy.
func (s *BitStore) Copy() *BitStore {
	return &BitStore{
		words:    s.Words(),
		bitCount: s.bitCount,
	}
}

// Concat returns a new store holding the bits of x followed by the bits of y.
func Concat(x, y *BitStore) *BitStore {
	s := newStore(x.bitCount + y.bitCount)
	copy(s.words, x.words)
	copyBits(s.words, x.bitCount, y.words, 0, y.bitCount)
	return s
}

// Slice returns a new store with length bits starting at begin.
//
// A negative begin counts from the end. ok is false when length is negative
// or begin falls outside [0, Len()] after adjustment. A length running past
// the end is truncated, so begin == Len() yields an empty store.
func (s *BitStore) Slice(begin, length int) (*BitStore, bool) {
	if begin < 0 {
		begin += s.bitCount
	}
	if length < 0 || begin < 0 || begin > s.bitCount {
		return nil, false
	}
	if length > s.bitCount-begin {
		length = s.bitCount - begin
	}

	out := newStore(length)
	copyBits(out.words, 0, s.words, begin, length)
	return out, true
}

// combine combines two equal-length stores word by word into a new store.
func combine(x, y *BitStore, op func(dst, src []uint64)) (*BitStore, error) {
	if x.bitCount != y.bitCount {
		return nil, &ErrLengthMismatch{Left: x.bitCount, Right: y.bitCount}
	}
	out := x.Copy()
	op(out.words, y.words)
	return out, nil
}

// And returns x AND y.
func And(x, y *BitStore) (*BitStore, error) { return combine(x, y, simd.AndWords) }

// Or returns x OR y.
func Or(x, y *BitStore) (*BitStore, error) { return combine(x, y, simd.OrWords) }

// Xor returns x XOR y.
func Xor(x, y *BitStore) (*BitStore, error) { return combine(x, y, simd.XorWords) }

// AndNot returns x AND NOT y.
func AndNot(x, y *BitStore) (*BitStore, error) { return combine(x, y, simd.AndNotWords) }

// Not returns the complement of s as a new store.
func (s *BitStore) Not() *BitStore {
	out := s.Copy()
	out.ToggleAll()
	return out
}

// ForEach calls fn with each bit (0 or 1) in index order until fn returns false.
func (s *BitStore) ForEach(fn func(pos, bit int) bool) {
	for pos := 0; pos < s.bitCount; pos++ {
		if !fn(pos, s.bit(pos)) {
			return
		}
	}
}

// At returns the bit at a position already known to be in [0, Len()).
// It panics on other positions.
func (s *BitStore) At(pos int) int {
	if pos < 0 || pos >= s.bitCount {
		panic(&ErrIndexOutOfRange{Index: pos, Len: s.bitCount})
	}
	return s.bit(pos)
}
