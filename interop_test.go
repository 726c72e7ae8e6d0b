package bitarray

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/bitarray/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToRoaring(t *testing.T) {
	b := Parse("0100010001")
	rb, err := b.ToRoaring()
	require.NoError(t, err)

	assert.Equal(t, uint64(3), rb.GetCardinality())
	assert.Equal(t, []uint32{1, 5, 9}, rb.ToArray())

	empty, err := MustNew(100).ToRoaring()
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestFromRoaring(t *testing.T) {
	rb := roaring.BitmapOf(0, 3, 64, 99)

	b, err := FromRoaring(rb, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, b.Len())
	assert.Equal(t, 4, b.Count())
	for _, pos := range []int{0, 3, 64, 99} {
		set, err := b.Test(pos)
		require.NoError(t, err)
		assert.True(t, set, "pos %d", pos)
	}

	t.Run("position beyond size", func(t *testing.T) {
		_, err := FromRoaring(rb, 99)
		var oor *ErrIndexOutOfRange
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, 99, oor.Index)
	})

	t.Run("negative size", func(t *testing.T) {
		_, err := FromRoaring(rb, -1)
		var ise *ErrInvalidSize
		assert.ErrorAs(t, err, &ise)
	})
}

func TestRoaringRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(23)
	for i := 0; i < 30; i++ {
		n := rng.Intn(500)
		b := FromBools(rng.SparseBools(n, 0.1))

		rb, err := b.ToRoaring()
		require.NoError(t, err)
		assert.Equal(t, uint64(b.Count()), rb.GetCardinality())

		back, err := FromRoaring(rb, n)
		require.NoError(t, err)
		assert.True(t, b.Equal(back))
	}
}

func TestBitSetRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(29)
	for _, n := range []int{0, 1, 63, 64, 65, 300} {
		b := FromBools(rng.Bools(n))

		bs := b.ToBitSet()
		assert.Equal(t, uint(n), bs.Len())
		assert.Equal(t, uint(b.Count()), bs.Count())

		back, err := FromBitSet(bs)
		require.NoError(t, err)
		assert.True(t, b.Equal(back), "n=%d", n)
	}
}

func TestToBitSetIsIndependent(t *testing.T) {
	b := Parse("101")
	bs := b.ToBitSet()
	bs.Set(1)

	assert.Equal(t, "101", b.String())
	assert.True(t, bs.Test(1))
}

func TestFromBitSet(t *testing.T) {
	bs := bitset.New(70)
	bs.Set(2).Set(69)

	b, err := FromBitSet(bs)
	require.NoError(t, err)
	assert.Equal(t, 70, b.Len())
	assert.Equal(t, 2, b.Count())

	v, err := b.Get(-1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}
