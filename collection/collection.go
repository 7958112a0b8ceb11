// Package collection defines the sequence-view capability contracts that
// collection types implement, plus helpers for using them safely.
package collection

import (
	"iter"

	"github.com/amp-labs/nothing/optional"
)

// Sized reports a number of elements.
type Sized interface {
	Len() int
}

// View is a read-only projection over a contiguous run of elements.
// Get panics when i is outside [0, Len()), the same way indexing a slice does.
type View[T any] interface {
	Sized

	Get(i int) T
	All() iter.Seq[T]
}

// MutableView is a View whose slots can be written through GetPtr or the
// backing slice. GetPtr panics out of bounds like Get.
type MutableView[T any] interface {
	View[T]

	GetPtr(i int) *T
	Slice() []T
}

// Iterable can be ranged over from either end.
type Iterable[T any] interface {
	All() iter.Seq[T]
	Backward() iter.Seq[T]
}

// IsEmpty reports whether s holds no elements.
func IsEmpty(s Sized) bool {
	return s.Len() == 0
}

// At returns the element at i, or None when i is out of bounds.
// It checks the length first, so it never panics.
func At[T any](v View[T], i int) optional.Value[T] {
	if i < 0 || i >= v.Len() {
		return optional.None[T]()
	}

	return optional.Some(v.Get(i))
}

// ToSlice copies the elements of v into a new, non-nil slice.
func ToSlice[T any](v View[T]) []T {
	out := make([]T, 0, v.Len())

	for elem := range v.All() {
		out = append(out, elem)
	}

	return out
}
