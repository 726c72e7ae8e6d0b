package bloom

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/bitarray"
	"github.com/hupe1980/bitarray/internal/hash"
)

var (
	// ErrInvalidSize is returned by New for a non-positive number of bits.
	ErrInvalidSize = errors.New("bloom: size must be positive")

	// ErrIncompatible is returned by Merge when the filters differ in size
	// or number of hash functions.
	ErrIncompatible = errors.New("bloom: incompatible filters")
)

// Filter is a Bloom filter of m bits and k hash functions.
type Filter struct {
	bits  *bitarray.BitArray
	m     uint64
	k     int
	added int
	opts  options
}

// New creates an empty filter of m bits.
func New(m int, optFns ...Option) (*Filter, error) {
	o := applyOptions(optFns)
	ctx := context.Background()

	if m <= 0 {
		err := fmt.Errorf("%w: %d", ErrInvalidSize, m)
		o.logger.LogOperation(ctx, "bloom create", m, err)
		return nil, err
	}

	bits, err := bitarray.New(m)
	if err != nil {
		o.logger.LogOperation(ctx, "bloom create", m, err)
		return nil, err
	}

	o.logger.DebugContext(ctx, "bloom filter created", "size", m, "hashes", o.hashes)

	return &Filter{
		bits: bits,
		m:    uint64(m),
		k:    o.hashes,
		opts: o,
	}, nil
}

// Optimal returns the number of bits m and hash functions k that give a
// false positive rate of about p for n items. k is at least MinHashes.
func Optimal(n int, p float64) (m, k int) {
	if n <= 0 || p <= 0 || p >= 1 {
		return 1, MinHashes
	}
	mf := math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2))
	m = int(mf)
	k = max(int(math.Round(mf/float64(n)*math.Ln2)), MinHashes)
	return m, k
}

// Add inserts data into the filter.
func (f *Filter) Add(data []byte) {
	start := time.Now()
	f.probe(data, func(pos int) bool {
		_ = f.bits.Set(pos) // pos < m
		return true
	})
	f.added++
	f.opts.metricsCollector.RecordAdd(time.Since(start))
}

// AddString inserts s into the filter.
func (f *Filter) AddString(s string) {
	f.Add([]byte(s))
}

// Contains reports whether data may have been added. A false result is
// definite; a true result may be a false positive.
func (f *Filter) Contains(data []byte) bool {
	start := time.Now()
	hit := f.probe(data, func(pos int) bool {
		set, _ := f.bits.Test(pos) // pos < m
		return set
	})
	f.opts.metricsCollector.RecordQuery(hit, time.Since(start))
	return hit
}

// ContainsString reports whether s may have been added.
func (f *Filter) ContainsString(s string) bool {
	return f.Contains([]byte(s))
}

// probe calls fn with each of the k positions of data until fn returns
// false. The positions are h1, h2, then h1 + i*h2 for i in 1..k-2, all mod m.
func (f *Filter) probe(data []byte, fn func(pos int) bool) bool {
	h1, h2 := hash.Pair(data)
	g1, g2 := h1%f.m, h2%f.m

	if !fn(int(g1)) || !fn(int(g2)) {
		return false
	}
	pos := g1
	for i := 1; i <= f.k-2; i++ {
		pos = (pos + g2) % f.m
		if !fn(int(pos)) {
			return false
		}
	}
	return true
}

// Merge adds every item of other to f. Both filters must have the same size
// and number of hash functions.
func (f *Filter) Merge(other *Filter) error {
	if f.m != other.m || f.k != other.k {
		err := fmt.Errorf("%w: %d bits/%d hashes vs %d bits/%d hashes",
			ErrIncompatible, f.m, f.k, other.m, other.k)
		f.opts.metricsCollector.RecordMerge(err)
		return err
	}

	merged, err := f.bits.Or(other.bits)
	f.opts.metricsCollector.RecordMerge(err)
	f.opts.logger.LogOperation(context.Background(), "bloom merge", f.Len(), err)
	if err != nil {
		return err
	}

	f.bits = merged
	f.added += other.added
	return nil
}

// Reset removes all items.
func (f *Filter) Reset() {
	f.bits.ClearAll()
	f.added = 0
}

// Len returns the number of bits m.
func (f *Filter) Len() int {
	return f.bits.Len()
}

// Hashes returns the number of hash functions k.
func (f *Filter) Hashes() int {
	return f.k
}

// Added returns the number of Add calls since creation or the last Reset,
// including those merged in from other filters.
func (f *Filter) Added() int {
	return f.added
}

// FillRatio returns the fraction of bits that are set.
func (f *Filter) FillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.m)
}

// EstimatedFalsePositiveRate returns (1 - e^(-kn/m))^k for the current
// number of added items n.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	k := float64(f.k)
	return math.Pow(1-math.Exp(-k*float64(f.added)/float64(f.m)), k)
}

// Bits returns a copy of the underlying bit array.
func (f *Filter) Bits() *bitarray.BitArray {
	return f.bits.Clone()
}
