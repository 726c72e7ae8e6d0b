package boolnet_test

import (
	"fmt"
	"log"
	"os"

	"github.com/hupe1980/bitarray"
	"github.com/hupe1980/bitarray/boolnet"
)

func ExampleNetwork_Run() {
	// Every node copies its left neighbor, so the single set bit travels
	// around the ring.
	n, err := boolnet.NewWithRules(bitarray.Parse("1000"), []boolnet.Rule{
		{Op: boolnet.Or, Left: 3, Right: 3},
		{Op: boolnet.Or, Left: 0, Right: 0},
		{Op: boolnet.Or, Left: 1, Right: 1},
		{Op: boolnet.Or, Left: 2, Right: 2},
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := n.Run(4, os.Stdout); err != nil {
		log.Fatal(err)
	}
	// Output:
	// 1000
	// 0100
	// 0010
	// 0001
	// 1000
}

func ExampleNetwork_FindAttractor() {
	n, err := boolnet.NewWithRules(bitarray.Parse("11"), []boolnet.Rule{
		{Op: boolnet.Xor, Left: 0, Right: 0},
		{Op: boolnet.Xor, Left: 1, Right: 1},
	})
	if err != nil {
		log.Fatal(err)
	}

	a, ok := n.FindAttractor(10)
	fmt.Println(ok, a.Transient, a.Period, a.States[0])
	// Output: true 1 1 00
}
