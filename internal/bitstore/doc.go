// Package bitstore implements the packed storage engine behind bitarray.BitArray.
//
// A BitStore owns a []uint64 word buffer and a fixed bit count. Bit i lives in
// word i/64 at position i%64 (LSB first). Bits past the logical length in the
// last word ("tail padding") are kept zero by every operation, so whole-word
// kernels (population count, equality) never observe them.
//
// Public methods take raw indices and resolve negative values once
// (Python-style wraparound: -1 is the last bit). Internal helpers work on
// resolved positions only.
//
// Structural operations (Copy, Concat, Slice) always allocate a fresh buffer;
// no two stores share storage.
package bitstore
