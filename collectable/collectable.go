// Package collectable ties hashing and equality together for values that
// are deduplicated by digest.
package collectable

import (
	"errors"

	"github.com/amp-labs/nothing/compare"
	"github.com/amp-labs/nothing/hashing"
)

// ErrHashCollision is returned when two non-equal values produce the same digest.
var ErrHashCollision = errors.New("hashing collision")

// Collectable is an interface that combines the Hashable and
// Comparable interfaces. Uniqueness is determined by the hashing
// value, and collisions are resolved by comparing the objects.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}

// Key returns the digest used to bucket the value.
func Key[T Collectable[T]](hash hashing.HashFunc, value T) (string, error) {
	return hash(value)
}

// Distinct returns the values with duplicates removed, keeping the first
// occurrence of each and preserving input order. Two values are duplicates
// when they share a digest and compare equal; sharing a digest without
// comparing equal is reported as ErrHashCollision.
func Distinct[T Collectable[T]](hash hashing.HashFunc, values ...T) ([]T, error) {
	seen := make(map[string]T, len(values))
	out := make([]T, 0, len(values))

	for _, value := range values {
		key, err := Key(hash, value)
		if err != nil {
			return nil, err
		}

		prev, ok := seen[key]
		if ok {
			if compare.Equals[T](prev, value) {
				continue
			}

			return nil, ErrHashCollision
		}

		seen[key] = value
		out = append(out, value)
	}

	return out, nil
}
