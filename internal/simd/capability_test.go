package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISA(t *testing.T) {
	tests := []struct {
		in     string
		want   ISA
		wantOK bool
	}{
		{"generic", Generic, true},
		{" NEON ", NEON, true},
		{"Popcnt", POPCNT, true},
		{"avx512", Generic, false},
		{"", Generic, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseISA(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestISA_String(t *testing.T) {
	assert.Equal(t, "generic", Generic.String())
	assert.Equal(t, "neon", NEON.String())
	assert.Equal(t, "popcnt", POPCNT.String())
	assert.Equal(t, "unknown", ISA(99).String())
}

func TestSelectISA(t *testing.T) {
	prevISA, prevOverride := activeISA, hasOverride
	t.Cleanup(func() {
		activeISA, hasOverride = prevISA, prevOverride
		applyKernels(activeISA)
	})

	t.Run("generic override always available", func(t *testing.T) {
		assert.Equal(t, Generic, selectISA("generic"))
		assert.True(t, hasOverride)
	})

	t.Run("invalid override falls back to detection", func(t *testing.T) {
		assert.Equal(t, selectBestISA(), selectISA("sse9"))
		assert.False(t, hasOverride)
	})

	t.Run("empty override uses detection", func(t *testing.T) {
		assert.Equal(t, selectBestISA(), selectISA(""))
		assert.False(t, hasOverride)
	})

	t.Run("generic kernels count correctly", func(t *testing.T) {
		applyKernels(Generic)
		assert.Equal(t, 65, PopcountWords([]uint64{^uint64(0), 1}))
	})
}
