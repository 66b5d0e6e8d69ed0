package boundedgo

import (
	"github.com/hupe1980/boundedgo/internal/check"
	"github.com/hupe1980/boundedgo/internal/label"
)

// BoundedFrom is an integer wrapper restricted to the lower-only range
// [lower,∞): the lower bound is admitted and there is no upper limit
// beyond the width of T itself.
//
// The zero value holds the primitive zero without validation; construct
// through NewBoundedFrom or MustBoundedFrom.
type BoundedFrom[T Integer, L Lower[T]] struct {
	value T
}

// NewBoundedFrom validates value against the lower bound of L. A value
// below the bound is reported as *ErrOutOfBoundsFrom. A lower-only range
// always admits at least its own bound, so there is no contract panic.
func NewBoundedFrom[T Integer, L Lower[T]](value T) (BoundedFrom[T, L], error) {
	var l L
	lower := l.LowerBound()

	if !check.InFrom(lower, value) {
		return BoundedFrom[T, L]{}, &ErrOutOfBoundsFrom[T]{Lower: lower, Given: value}
	}

	return BoundedFrom[T, L]{value: value}, nil
}

// MustBoundedFrom is like NewBoundedFrom but panics when value is out of
// range.
func MustBoundedFrom[T Integer, L Lower[T]](value T) BoundedFrom[T, L] {
	b, err := NewBoundedFrom[T, L](value)
	if err != nil {
		panic("boundedgo: " + err.Error())
	}
	return b
}

// Value returns the wrapped integer.
func (b BoundedFrom[T, L]) Value() T {
	return b.value
}

// Equal reports whether the wrapped integer equals v.
func (b BoundedFrom[T, L]) Equal(v T) bool {
	return b.value == v
}

// LowerBound returns the inclusive lower bound of L. The receiver is
// unused; LowerBound may be called on the zero value.
func (BoundedFrom[T, L]) LowerBound() T {
	var l L
	return l.LowerBound()
}

// String renders the wrapper with its shape, width, bound, and value, as
// in BoundedFrom[int32,0](7).
func (b BoundedFrom[T, L]) String() string {
	var l L
	return label.Render(b, b.value, l.LowerBound())
}
