package testutil

import (
	"math/rand"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bool returns a pseudo-random bool.
func (r *RNG) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(2) == 1
}

// Bools returns n pseudo-random bools.
func (r *RNG) Bools(n int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Intn(2) == 1
	}
	return out
}

// SparseBools returns n bools where each is true with probability density.
func (r *RNG) SparseBools(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Float64() < density
	}
	return out
}

// BitString returns a random string of n '0'/'1' characters.
func (r *RNG) BitString(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for _, b := range r.Bools(n) {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// truthy and falsy hold sample elements for Values.
var (
	truthy = []any{1, -7, uint8(3), 2.5, "x", "", struct{}{}, []int{0}, true}
	falsy  = []any{0, int64(0), uint(0), 0.0, false, nil}
)

// Values returns n mixed elements together with the bit each one maps to.
func (r *RNG) Values(n int) ([]any, []bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vals := make([]any, n)
	want := make([]bool, n)
	for i := range vals {
		if r.rand.Intn(2) == 1 {
			vals[i] = truthy[r.rand.Intn(len(truthy))]
			want[i] = true
		} else {
			vals[i] = falsy[r.rand.Intn(len(falsy))]
		}
	}
	return vals, want
}

// BitsOf converts a '0'/'1' string into a slice of 0/1 ints.
// Other characters map to 1.
func BitsOf(text string) []int {
	out := make([]int, len(text))
	for i := 0; i < len(text); i++ {
		if text[i] != '0' {
			out[i] = 1
		}
	}
	return out
}

// BoolsOf converts a '0'/'1' string into a slice of bools.
func BoolsOf(text string) []bool {
	out := make([]bool, len(text))
	for i := 0; i < len(text); i++ {
		out[i] = text[i] != '0'
	}
	return out
}

// TextOf renders bools as a '0'/'1' string.
func TextOf(bits []bool) string {
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, b := range bits {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
