package bitarray

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitarray/internal/bitstore"
)

// ErrInvalidSize indicates a negative or unrepresentable size.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidSize struct {
	Size  int
	cause error
}

func (e *ErrInvalidSize) Error() string {
	return fmt.Sprintf("bitarray: invalid size: %d", e.Size)
}

func (e *ErrInvalidSize) Unwrap() error { return e.cause }

// ErrInvalidArgumentKind indicates a constructor or selector argument of
// an unsupported kind.
type ErrInvalidArgumentKind struct {
	Kind string
}

func (e *ErrInvalidArgumentKind) Error() string {
	return fmt.Sprintf("bitarray: must be size, string, or sequence; got %s", e.Kind)
}

// ErrIndexOutOfRange indicates an index that, after negative wraparound,
// still falls outside [0, Len).
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrIndexOutOfRange struct {
	Index int
	Len   int
	cause error
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("bitarray: index %d out of bit array of length %d", e.Index, e.Len)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return e.cause }

// ErrInvalidValue indicates a bit value other than 0 or 1.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidValue struct {
	Value int
	cause error
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("bitarray: bit value %d out of range", e.Value)
}

func (e *ErrInvalidValue) Unwrap() error { return e.cause }

// ErrLengthMismatch indicates a bitwise combination of arrays with
// different lengths.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrLengthMismatch struct {
	Left  int
	Right int
	cause error
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("bitarray: length mismatch: %d vs %d", e.Left, e.Right)
}

func (e *ErrLengthMismatch) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ise *bitstore.ErrInvalidSize
	if errors.As(err, &ise) {
		return &ErrInvalidSize{Size: ise.Size, cause: err}
	}
	var oor *bitstore.ErrIndexOutOfRange
	if errors.As(err, &oor) {
		return &ErrIndexOutOfRange{Index: oor.Index, Len: oor.Len, cause: err}
	}
	var ive *bitstore.ErrInvalidValue
	if errors.As(err, &ive) {
		return &ErrInvalidValue{Value: ive.Value, cause: err}
	}
	var lme *bitstore.ErrLengthMismatch
	if errors.As(err, &lme) {
		return &ErrLengthMismatch{Left: lme.Left, Right: lme.Right, cause: err}
	}

	return err
}
