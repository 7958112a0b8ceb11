package empty

import (
	"fmt"
	"iter"

	"github.com/amp-labs/nothing/errors"
	"github.com/amp-labs/nothing/iterator"
	"github.com/amp-labs/nothing/logger"
)

// Collect builds a List from a sequence that must be empty. It panics as
// soon as seq yields an element and never pulls a second one.
func Collect[T any](seq iter.Seq[T]) List[T] {
	for range seq {
		panic(notEmpty("Collect"))
	}

	return List[T]{}
}

// FromSlice builds a List from a slice that must be empty; nil is fine.
// It panics when s has any elements.
func FromSlice[T any](s []T) List[T] {
	if len(s) != 0 {
		panic(notEmpty("FromSlice"))
	}

	return List[T]{}
}

// FromIter builds a List from an iterator that must already be exhausted.
// It calls Next once and panics if that produced an element.
func FromIter[T any](it iterator.Iterator[T]) List[T] {
	if _, ok := it.Next(); ok {
		panic(notEmpty("FromIter"))
	}

	return List[T]{}
}

func notEmpty(op string) error {
	logger.Get().Error("non-empty input for empty list", "op", op)

	return fmt.Errorf("%w: %s", errors.ErrNotEmpty, op)
}
