package bitarray_test

import (
	"testing"

	"github.com/hupe1980/bitarray"
	"github.com/hupe1980/bitarray/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentReadsAndDerivedWrites reads one shared array from many
// goroutines while each goroutine mutates arrays derived from it.
func TestConcurrentReadsAndDerivedWrites(t *testing.T) {
	rng := testutil.NewRNG(31)
	text := rng.BitString(1000)
	shared := bitarray.Parse(text)
	wantCount := shared.Count()

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := 0; i < 50; i++ {
				if shared.String() != text {
					return assert.AnError
				}

				clone := shared.Clone()
				clone.ToggleAll()

				sub, ok := shared.Slice(w*10, 100)
				if !ok {
					return assert.AnError
				}
				sub.SetAll()

				joined := shared.Concat(sub)
				if err := joined.Clear(0); err != nil {
					return err
				}

				if clone.Count()+wantCount != shared.Len() {
					return assert.AnError
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, text, shared.String())
	assert.Equal(t, wantCount, shared.Count())
}
