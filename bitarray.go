package bitarray

import (
	"fmt"
	"math"

	"github.com/hupe1980/bitarray/internal/bitstore"
	"github.com/hupe1980/bitarray/internal/conv"
)

// BitArray is a fixed-length array of bits packed into 64-bit words.
//
// Create one with New, Parse, FromBools, FromValues or Make; the zero value
// is not usable. The length never changes: Concat, Slice and the bitwise
// combinations return new arrays with their own storage.
//
// A BitArray is not safe for concurrent mutation. Concurrent reads are safe.
type BitArray struct {
	s *bitstore.BitStore
}

func wrap(s *bitstore.BitStore) *BitArray {
	return &BitArray{s: s}
}

// New creates a BitArray of size bits, all cleared.
// A negative size returns *ErrInvalidSize.
func New(size int) (*BitArray, error) {
	s, err := bitstore.New(size)
	if err != nil {
		return nil, translateError(err)
	}
	return wrap(s), nil
}

// MustNew is like New but panics on error.
func MustNew(size int) *BitArray {
	b, err := New(size)
	if err != nil {
		panic(err)
	}
	return b
}

// Parse creates a BitArray from a string of '0' and '1' characters.
//
// Parsing stops at the first other character, which is ignored together
// with everything after it:
//
//	Parse("10101010") // 10101010
//	Parse("1010abcd") // 1010
//	Parse("abcd")     // empty
func Parse(text string) *BitArray {
	return wrap(bitstore.FromText(text))
}

// FromBools creates a BitArray whose bit i is set iff bits[i] is true.
func FromBools(bits []bool) *BitArray {
	return wrap(bitstore.FromBools(bits))
}

// FromValues creates a BitArray from arbitrary elements using truthiness:
//
//   - nil, false and numeric zero (any integer, float or complex kind) → 0
//   - anything else (non-zero numbers, strings, slices, structs, true) → 1
//
//	FromValues([]any{0, 0, 0, 1, 1, 0})      // 000110
//	FromValues([]any{false, true, false})    // 010
//	FromValues([]any{"a", "b", []int{1, 2}}) // 111
func FromValues(values []any) *BitArray {
	bits := make([]bool, len(values))
	for i, v := range values {
		bits[i] = truthy(v)
	}
	return FromBools(bits)
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case uintptr:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	case complex64:
		return x != 0
	case complex128:
		return x != 0
	default:
		return true
	}
}

// Make creates a BitArray from a size, a text or a sequence, dispatching on
// the kind of arg:
//
//   - any Go integer kind → New
//   - string → Parse
//   - []bool → FromBools
//   - []int, []any → FromValues
//
// Any other kind returns *ErrInvalidArgumentKind.
func Make(arg any) (*BitArray, error) {
	switch x := arg.(type) {
	case int:
		return New(x)
	case int8:
		return New(int(x))
	case int16:
		return New(int(x))
	case int32:
		return New(int(x))
	case int64:
		return newFromSize(conv.Int64ToInt(x))
	case uint:
		return newFromSize(conv.UintToInt(x))
	case uint8:
		return New(int(x))
	case uint16:
		return New(int(x))
	case uint32:
		return newFromSize(conv.Uint32ToInt(x))
	case uint64:
		return newFromSize(conv.Uint64ToInt(x))
	case string:
		return Parse(x), nil
	case []bool:
		return FromBools(x), nil
	case []int:
		bits := make([]bool, len(x))
		for i, v := range x {
			bits[i] = v != 0
		}
		return FromBools(bits), nil
	case []any:
		return FromValues(x), nil
	default:
		return nil, &ErrInvalidArgumentKind{Kind: fmt.Sprintf("%T", arg)}
	}
}

// newFromSize finishes a checked size conversion. Sizes that do not fit
// an int are reported saturated to math.MaxInt.
func newFromSize(size int, err error) (*BitArray, error) {
	if err != nil {
		return nil, &ErrInvalidSize{Size: math.MaxInt, cause: err}
	}
	return New(size)
}

// Len returns the number of bits.
func (b *BitArray) Len() int {
	return b.s.Len()
}

// Get returns the bit at index i (0 or 1). Negative indices count from the
// end. Returns *ErrIndexOutOfRange if i is outside the array.
func (b *BitArray) Get(i int) (int, error) {
	v, err := b.s.Get(i)
	return v, translateError(err)
}

// Test reports whether the bit at index i is set.
func (b *BitArray) Test(i int) (bool, error) {
	v, err := b.Get(i)
	return v == 1, err
}

// Set sets the bit at index i to 1.
func (b *BitArray) Set(i int) error {
	return translateError(b.s.Set(i))
}

// Clear sets the bit at index i to 0.
func (b *BitArray) Clear(i int) error {
	return translateError(b.s.Clear(i))
}

// Toggle flips the bit at index i.
func (b *BitArray) Toggle(i int) error {
	return translateError(b.s.Toggle(i))
}

// Assign sets the bit at index i to value. value must be 0 or 1, otherwise
// *ErrInvalidValue is returned; an invalid index returns *ErrIndexOutOfRange.
func (b *BitArray) Assign(i, value int) error {
	return translateError(b.s.Assign(i, value))
}

// SetAll sets all bits to 1 and returns b.
func (b *BitArray) SetAll() *BitArray {
	b.s.SetAll()
	return b
}

// ClearAll sets all bits to 0 and returns b.
func (b *BitArray) ClearAll() *BitArray {
	b.s.ClearAll()
	return b
}

// ToggleAll flips all bits and returns b.
func (b *BitArray) ToggleAll() *BitArray {
	b.s.ToggleAll()
	return b
}

// Count returns the number of set bits.
func (b *BitArray) Count() int {
	return b.s.Count()
}

// Clone returns an independent copy.
func (b *BitArray) Clone() *BitArray {
	return wrap(b.s.Copy())
}

// Concat returns a new BitArray holding the bits of b followed by the bits
// of other.
func (b *BitArray) Concat(other *BitArray) *BitArray {
	return wrap(bitstore.Concat(b.s, other.s))
}

// Equal reports whether b and other have the same length and bits.
func (b *BitArray) Equal(other *BitArray) bool {
	return b.s.Equal(other.s)
}
