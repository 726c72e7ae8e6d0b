package bitstore

import "fmt"

// ErrInvalidSize is returned when a store cannot be created with the requested size.
type ErrInvalidSize struct {
	Size int
}

func (e *ErrInvalidSize) Error() string {
	return fmt.Sprintf("invalid size: %d", e.Size)
}

// ErrIndexOutOfRange is returned when an index, after negative wraparound,
// falls outside [0, Len).
type ErrIndexOutOfRange struct {
	Index int // index as supplied by the caller
	Len   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of bit array of length %d", e.Index, e.Len)
}

// ErrInvalidValue is returned by Assign for values other than 0 and 1.
type ErrInvalidValue struct {
	Value int
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("bit value %d out of range", e.Value)
}

// ErrLengthMismatch is returned by bitwise combinations of stores with different lengths.
type ErrLengthMismatch struct {
	Left  int
	Right int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: %d vs %d", e.Left, e.Right)
}
