// Package iterator defines the pull-iterator capability contracts and the
// generic consumers built on them.
//
// The only required method is Next. Everything else is an optional
// capability: when an iterator advertises one (Counter, Laster, Nther,
// SizeHinter, ExactSize) the consumers here use it directly instead of
// stepping through elements.
//
//	var it iterator.Iterator[int] = empty.NewIter[int]()
//	n := iterator.Count(it) // 0, answered by Iter.Count without stepping
package iterator

import (
	"iter"

	"github.com/amp-labs/nothing/optional"
)

// Iterator produces elements one at a time. Next returns the zero value and
// false once the iterator is exhausted, and keeps doing so on every later call.
type Iterator[T any] interface {
	Next() (T, bool)
}

// DoubleEnded is an Iterator that can also be drained from the back.
// Elements taken from either end are never produced again from the other.
type DoubleEnded[T any] interface {
	Iterator[T]

	NextBack() (T, bool)
}

// SizeHinter reports bounds on the number of remaining elements.
// The upper bound is None when it is unknown.
type SizeHinter interface {
	SizeHint() (lower int, upper optional.Value[int])
}

// ExactSize is implemented by iterators whose SizeHint is exact; Len is the
// number of remaining elements.
type ExactSize interface {
	SizeHinter

	Len() int
}

// Counter can report how many elements remain without stepping.
type Counter interface {
	Count() int
}

// Laster can produce its final element without stepping through the rest.
type Laster[T any] interface {
	Last() optional.Value[T]
}

// Nther can skip ahead to the element at offset n.
type Nther[T any] interface {
	Nth(n int) optional.Value[T]
}

// Count returns how many elements remain. When it has to step to find out,
// it leaves it exhausted.
func Count[T any](it Iterator[T]) int {
	if c, ok := it.(Counter); ok {
		return c.Count()
	}

	if e, ok := it.(ExactSize); ok {
		return e.Len()
	}

	n := 0

	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}

	return n
}

// Last returns the final element, if any, stepping through it when needed.
func Last[T any](it Iterator[T]) optional.Value[T] {
	if l, ok := it.(Laster[T]); ok {
		return l.Last()
	}

	last := optional.None[T]()

	for v, ok := it.Next(); ok; v, ok = it.Next() {
		last = optional.Some(v)
	}

	return last
}

// Nth returns the element at offset n, consuming everything before it.
// A negative n yields None.
func Nth[T any](it Iterator[T], n int) optional.Value[T] {
	if n < 0 {
		return optional.None[T]()
	}

	if nth, ok := it.(Nther[T]); ok {
		return nth.Nth(n)
	}

	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if n == 0 {
			return optional.Some(v)
		}

		n--
	}

	return optional.None[T]()
}

// SizeHint returns the iterator's own bounds, or (0, None) when it gives none.
func SizeHint[T any](it Iterator[T]) (int, optional.Value[int]) {
	if s, ok := it.(SizeHinter); ok {
		return s.SizeHint()
	}

	return 0, optional.None[int]()
}

// Collect drains it into a slice, pre-sized from the lower size bound.
// The result is never nil.
func Collect[T any](it Iterator[T]) []T {
	lower, _ := SizeHint(it)

	out := make([]T, 0, lower)

	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}

	return out
}

// Seq adapts it for use in a range loop.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward ranges over it from the back.
func Backward[T any](it DoubleEnded[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := it.NextBack(); ok; v, ok = it.NextBack() {
			if !yield(v) {
				return
			}
		}
	}
}
