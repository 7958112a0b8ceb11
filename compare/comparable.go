// Package compare provides the equality and ordering contracts that value
// types implement so generic code can compare them without reflection.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Sortable extends Comparable with a strict ordering. LessThan must be
// irreflexive: a.LessThan(a) is always false.
type Sortable[T any] interface {
	Comparable[T]

	LessThan(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Compare derives a three-way comparison from a Sortable value.
// It returns -1 if a < b, +1 if b < a and 0 if a equals b.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}

// Min returns the smallest of the given values, or the zero value and false
// when called with no values. Ties keep the earliest value.
func Min[T Sortable[T]](values ...T) (T, bool) {
	var best T

	if len(values) == 0 {
		return best, false
	}

	best = values[0]

	for _, v := range values[1:] {
		if v.LessThan(best) {
			best = v
		}
	}

	return best, true
}
