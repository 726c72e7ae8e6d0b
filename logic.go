package bitarray

import "github.com/hupe1980/bitarray/internal/bitstore"

// And returns a new array holding b AND other.
// Both arrays must have the same length, otherwise *ErrLengthMismatch is returned.
func (b *BitArray) And(other *BitArray) (*BitArray, error) {
	return combine(b, other, bitstore.And)
}

// Or returns a new array holding b OR other.
func (b *BitArray) Or(other *BitArray) (*BitArray, error) {
	return combine(b, other, bitstore.Or)
}

// Xor returns a new array holding b XOR other.
func (b *BitArray) Xor(other *BitArray) (*BitArray, error) {
	return combine(b, other, bitstore.Xor)
}

// AndNot returns a new array holding b AND NOT other.
func (b *BitArray) AndNot(other *BitArray) (*BitArray, error) {
	return combine(b, other, bitstore.AndNot)
}

// Not returns a new array holding the complement of b.
func (b *BitArray) Not() *BitArray {
	return wrap(b.s.Not())
}

func combine(x, y *BitArray, op func(x, y *bitstore.BitStore) (*bitstore.BitStore, error)) (*BitArray, error) {
	s, err := op(x.s, y.s)
	if err != nil {
		return nil, translateError(err)
	}
	return wrap(s), nil
}
