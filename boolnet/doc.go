// Package boolnet implements a random Boolean network over a bitarray.BitArray.
//
// Each node of the network has two neighbor nodes and an operation (AND, OR
// or XOR). At each step every node takes the value of its operation applied
// to the previous values of its neighbors. Every such network eventually
// falls into a fixed point or a cycle, its attractor.
//
//	n, _ := boolnet.New(80, boolnet.WithSeed(42))
//	_ = n.Run(23, os.Stdout)
//	a, ok := n.FindAttractor(10000)
package boolnet
