package empty

import "iter"

// Slice returns an empty slice of the specified type T.
// The returned slice is non-nil, with zero length and zero capacity, so
// nothing can be written through it and appending always reallocates.
//
// Example:
//
//	names := empty.Slice[string]()  // []string{} not nil
func Slice[T any]() []T {
	return []T{}
}

// Seq returns a sequence that yields nothing.
func Seq[T any]() iter.Seq[T] {
	return func(func(T) bool) {}
}

// Value returns the zero value of the specified type T.
// It is what Next and friends hand back alongside false.
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}
