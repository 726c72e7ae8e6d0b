// Package bloom implements a Bloom filter on top of a bitarray.BitArray.
//
// Probe positions come from double hashing (Kirsch and Mitzenmacher): two
// base hashes h1 and h2 generate k positions h1 + i*h2 mod m, so any number
// of hash functions costs two hash computations. At least three hash
// functions are always used.
//
// A filter never reports a false negative. The false positive rate for n
// added items is approximately (1 - e^(-kn/m))^k; Optimal picks m and k for
// a target rate.
//
//	f, _ := bloom.New(1417185, bloom.WithHashes(10))
//	f.AddString("apple")
//	f.ContainsString("apple") // true
//	f.ContainsString("pear")  // false (almost certainly)
//
// A Filter is not safe for concurrent use.
package bloom
