package empty

import (
	"hash"
	"iter"

	"github.com/amp-labs/nothing/collectable"
	"github.com/amp-labs/nothing/collection"
	"github.com/amp-labs/nothing/compare"
	"github.com/amp-labs/nothing/errors"
	"github.com/amp-labs/nothing/hashing"
	"github.com/amp-labs/nothing/logger"
)

// List is a collection that is empty at creation and cannot be modified.
// The zero value is ready to use. All methods have value receivers, so a
// *List[T] satisfies the same contracts.
type List[T any] struct{}

var (
	_ collection.View[int]               = List[int]{}
	_ collection.MutableView[int]        = List[int]{}
	_ collection.Iterable[int]           = List[int]{}
	_ compare.Sortable[List[int]]        = List[int]{}
	_ hashing.Hashable                   = List[int]{}
	_ collectable.Collectable[List[int]] = List[int]{}
)

// NewList returns an empty list.
func NewList[T any]() List[T] {
	return List[T]{}
}

// Len is always 0.
func (List[T]) Len() int {
	return 0
}

// IsEmpty is always true.
func (List[T]) IsEmpty() bool {
	return true
}

// View returns the list as a read-only view. It reports length 0 and
// enumerates nothing.
func (l List[T]) View() collection.View[T] {
	return l
}

// Slice returns the list as a native read-write view: a non-nil slice with
// no slots, so there is nothing to write to.
func (List[T]) Slice() []T {
	return Slice[T]()
}

// Get panics for every i: an empty list has no valid index.
func (List[T]) Get(i int) T {
	panic(outOfBounds("List.Get", i))
}

// GetPtr panics for every i: an empty list has no valid index.
func (List[T]) GetPtr(i int) *T {
	panic(outOfBounds("List.GetPtr", i))
}

// Iter returns an exhausted iterator.
func (List[T]) Iter() Iter[T] {
	return Iter[T]{}
}

// All returns a sequence for range loops. The loop body never runs.
func (List[T]) All() iter.Seq[T] {
	return Seq[T]()
}

// Backward is All in reverse, which is also nothing.
func (List[T]) Backward() iter.Seq[T] {
	return Seq[T]()
}

// Equals is always true: there is no data to tell two lists apart.
func (List[T]) Equals(List[T]) bool {
	return true
}

// LessThan is always false.
func (List[T]) LessThan(List[T]) bool {
	return false
}

// Compare is always 0.
func (List[T]) Compare(List[T]) int {
	return 0
}

// UpdateHash writes nothing, so every list hashes like empty input.
func (List[T]) UpdateHash(hash.Hash) error {
	return nil
}

func (List[T]) String() string {
	return "[]"
}

func outOfBounds(op string, i int) error {
	err := errors.OutOfBounds(op, i, 0)

	logger.Get().Error("index into empty list", "op", op, "index", i)

	return err
}
