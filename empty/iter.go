package empty

import (
	"hash"
	"iter"

	"github.com/amp-labs/nothing/compare"
	"github.com/amp-labs/nothing/hashing"
	"github.com/amp-labs/nothing/iterator"
	"github.com/amp-labs/nothing/optional"
)

// Iter is an iterator that never yields anything. It starts exhausted and
// no call moves it out of that state.
type Iter[T any] struct{}

var (
	_ iterator.DoubleEnded[int]   = Iter[int]{}
	_ iterator.ExactSize          = Iter[int]{}
	_ iterator.Counter            = Iter[int]{}
	_ iterator.Laster[int]        = Iter[int]{}
	_ iterator.Nther[int]         = Iter[int]{}
	_ compare.Sortable[Iter[int]] = Iter[int]{}
	_ hashing.Hashable            = Iter[int]{}
)

// NewIter returns an exhausted iterator.
func NewIter[T any]() Iter[T] {
	return Iter[T]{}
}

// Next always returns the zero value and false.
func (Iter[T]) Next() (T, bool) {
	return Value[T](), false
}

// NextBack always returns the zero value and false.
func (Iter[T]) NextBack() (T, bool) {
	return Value[T](), false
}

// Count is always 0.
func (Iter[T]) Count() int {
	return 0
}

// Last is always None.
func (Iter[T]) Last() optional.Value[T] {
	return optional.None[T]()
}

// Nth is None for every n.
func (Iter[T]) Nth(int) optional.Value[T] {
	return optional.None[T]()
}

// SizeHint is exactly (0, Some(0)).
func (Iter[T]) SizeHint() (int, optional.Value[int]) {
	return 0, optional.Some(0)
}

// Len is always 0.
func (Iter[T]) Len() int {
	return 0
}

// All yields nothing.
func (Iter[T]) All() iter.Seq[T] {
	return Seq[T]()
}

func (Iter[T]) Equals(Iter[T]) bool {
	return true
}

func (Iter[T]) LessThan(Iter[T]) bool {
	return false
}

func (Iter[T]) Compare(Iter[T]) int {
	return 0
}

func (Iter[T]) UpdateHash(hash.Hash) error {
	return nil
}

func (Iter[T]) String() string {
	return "Iter[]"
}
