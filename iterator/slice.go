package iterator

import "github.com/amp-labs/nothing/optional"

// SliceIter iterates over a slice from both ends.
type SliceIter[T any] struct {
	items []T
}

var (
	_ DoubleEnded[int] = (*SliceIter[int])(nil)
	_ ExactSize        = (*SliceIter[int])(nil)
)

// FromSlice returns an iterator over items. The slice is not copied.
func FromSlice[T any](items []T) *SliceIter[T] {
	return &SliceIter[T]{items: items}
}

func (s *SliceIter[T]) Next() (T, bool) {
	var zero T

	if len(s.items) == 0 {
		return zero, false
	}

	v := s.items[0]
	s.items = s.items[1:]

	return v, true
}

func (s *SliceIter[T]) NextBack() (T, bool) {
	var zero T

	if len(s.items) == 0 {
		return zero, false
	}

	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	return v, true
}

func (s *SliceIter[T]) Len() int {
	return len(s.items)
}

func (s *SliceIter[T]) SizeHint() (int, optional.Value[int]) {
	return len(s.items), optional.Some(len(s.items))
}
