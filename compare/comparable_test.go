package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// score is a small Sortable used to exercise the generic helpers.
type score int

func (s score) Equals(other score) bool {
	return s == other
}

func (s score) LessThan(other score) bool {
	return s < other
}

var _ Sortable[score] = score(0)

func TestEquals(t *testing.T) {
	t.Parallel()

	assert.True(t, Equals[score](score(1), score(1)))
	assert.False(t, Equals[score](score(1), score(2)))
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     score
		expected int
	}{
		{name: "less", a: 1, b: 2, expected: -1},
		{name: "greater", a: 3, b: 2, expected: 1},
		{name: "equal", a: 2, b: 2, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Compare(tt.a, tt.b))
		})
	}
}

func TestMin(t *testing.T) {
	t.Parallel()

	t.Run("no values", func(t *testing.T) {
		t.Parallel()

		v, ok := Min[score]()
		assert.False(t, ok)
		assert.Equal(t, score(0), v)
	})

	t.Run("several values", func(t *testing.T) {
		t.Parallel()

		v, ok := Min(score(5), score(2), score(9))
		assert.True(t, ok)
		assert.Equal(t, score(2), v)
	})
}
