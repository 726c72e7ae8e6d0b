package bitarray_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/bitarray"
)

// Example demonstrates basic construction and single-bit access.
func Example() {
	b, err := bitarray.New(8)
	if err != nil {
		log.Fatal(err)
	}

	_ = b.Set(0)
	_ = b.Set(-1) // last bit
	_ = b.Toggle(3)

	fmt.Println(b)
	fmt.Println(b.Count())
	// Output:
	// 10010001
	// 3
}

// ExampleParse shows that parsing stops at the first character that is not a bit.
func ExampleParse() {
	fmt.Println(bitarray.Parse("10101010"))
	fmt.Println(bitarray.Parse("1010abcd"))
	fmt.Println(bitarray.Parse("abcd").Len())
	// Output:
	// 10101010
	// 1010
	// 0
}

// ExampleFromValues demonstrates truthiness-based construction.
func ExampleFromValues() {
	fmt.Println(bitarray.FromValues([]any{0, 0, 0, 1, 1, 0}))
	fmt.Println(bitarray.FromValues([]any{false, true, false}))
	fmt.Println(bitarray.FromValues([]any{nil, "x", 2.5}))
	// Output:
	// 000110
	// 010
	// 011
}

// ExampleMake demonstrates construction by argument kind.
func ExampleMake() {
	b, _ := bitarray.Make(4)
	fmt.Println(b)

	b, _ = bitarray.Make("110")
	fmt.Println(b)

	_, err := bitarray.Make(1.5)
	var ake *bitarray.ErrInvalidArgumentKind
	fmt.Println(errors.As(err, &ake))
	// Output:
	// 0000
	// 110
	// true
}

// ExampleBitArray_Concat demonstrates concatenation across word boundaries.
func ExampleBitArray_Concat() {
	x := bitarray.Parse("101")
	y := bitarray.Parse("0011")
	fmt.Println(x.Concat(y))
	// Output: 1010011
}

// ExampleBitArray_Slice demonstrates lenient slicing.
func ExampleBitArray_Slice() {
	b := bitarray.Parse("01101")

	sub, ok := b.Slice(2, 1000)
	fmt.Println(sub, ok)

	_, ok = b.Slice(6, 1)
	fmt.Println(ok)
	// Output:
	// 101 true
	// false
}

// ExampleBitArray_Ref demonstrates the three selector shapes.
func ExampleBitArray_Ref() {
	b := bitarray.Parse("0100010000")

	sel, _ := b.Ref(bitarray.Index(-5))
	bit, _ := sel.Bit()
	fmt.Println(bit)

	sel, _ = b.Ref(bitarray.Span{Begin: 1, Length: 5})
	arr, _ := sel.Array()
	fmt.Println(arr)

	sel, _ = b.Ref(bitarray.Range{Begin: -5, End: -1})
	arr, _ = sel.Array()
	fmt.Println(arr)

	sel, _ = b.Ref(bitarray.Range{Begin: 11, End: 12})
	fmt.Println(sel.Found())
	// Output:
	// 1
	// 10001
	// 10000
	// false
}

// ExampleBitArray_All demonstrates range-over-func iteration.
func ExampleBitArray_All() {
	for i, bit := range bitarray.Parse("101").All() {
		fmt.Println(i, bit)
	}
	// Output:
	// 0 1
	// 1 0
	// 2 1
}

// ExampleBitArray_ListString demonstrates the bracketed rendering.
func ExampleBitArray_ListString() {
	fmt.Println(bitarray.Parse("1010").ListString())
	// Output: [1, 0, 1, 0]
}
