package bitarray

import (
	"math"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bitarray/internal/bitstore"
	"github.com/hupe1980/bitarray/internal/conv"
)

// ToRoaring returns a roaring bitmap holding the positions of the set bits.
//
// Roaring positions are 32-bit; a set bit beyond math.MaxUint32 returns
// *ErrIndexOutOfRange. The length of b is not recorded.
func (b *BitArray) ToRoaring() (*roaring.Bitmap, error) {
	rb := roaring.New()

	var batch []uint32
	for w, word := range b.s.Words() {
		for word != 0 {
			pos := w*bitstore.WordBits + bits.TrailingZeros64(word)
			v, err := conv.IntToUint32(pos)
			if err != nil {
				return nil, &ErrIndexOutOfRange{Index: pos, Len: b.Len(), cause: err}
			}
			batch = append(batch, v)
			word &= word - 1
		}
	}
	rb.AddMany(batch)

	return rb, nil
}

// FromRoaring creates a BitArray of size bits with the positions in rb set.
// A position >= size returns *ErrIndexOutOfRange.
func FromRoaring(rb *roaring.Bitmap, size int) (*BitArray, error) {
	b, err := New(size)
	if err != nil {
		return nil, err
	}

	it := rb.Iterator()
	for it.HasNext() {
		v := it.Next()
		pos, err := conv.Uint32ToInt(v)
		if err != nil {
			return nil, &ErrIndexOutOfRange{Index: size, Len: size, cause: err}
		}
		if err := b.Set(pos); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// ToBitSet returns a bitset with the same length and bits as b.
// The words are copied.
func (b *BitArray) ToBitSet() *bitset.BitSet {
	return bitset.FromWithLength(uint(b.Len()), b.s.Words())
}

// FromBitSet creates a BitArray with the same length and bits as bs.
func FromBitSet(bs *bitset.BitSet) (*BitArray, error) {
	n, err := conv.UintToInt(bs.Len())
	if err != nil {
		return nil, &ErrInvalidSize{Size: math.MaxInt, cause: err}
	}

	s, err := bitstore.FromWords(bs.Words(), n)
	if err != nil {
		return nil, translateError(err)
	}
	return wrap(s), nil
}
