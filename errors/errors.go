// Package errors holds the sentinel errors shared by the empty collection
// types, plus the panic value raised on out-of-bounds access.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is wrapped by every IndexError. An empty list has no
	// valid index, so every indexed access fails with it.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrNotEmpty is reported when a builder that only accepts empty input
	// is handed at least one element.
	ErrNotEmpty = errors.New("input is not empty")

	// ErrNotSequence is returned when decoding something that isn't a
	// sequence (or null) into an empty list.
	ErrNotSequence = errors.New("input is not a sequence")
)

// IndexError describes a failed indexed access. It is used as a panic value,
// so callers that recover can still match it with errors.Is / errors.As.
type IndexError struct {
	// Op is the operation that was attempted, e.g. "List.Get".
	Op string
	// Index is the index the caller asked for.
	Index int
	// Len is the length of the collection at the time of the call.
	Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0:%d]", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfBounds
}

// OutOfBounds builds the error raised by an indexed access into a
// collection of the given length.
func OutOfBounds(op string, index, length int) *IndexError {
	return &IndexError{Op: op, Index: index, Len: length}
}
