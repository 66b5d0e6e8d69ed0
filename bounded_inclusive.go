package boundedgo

import (
	"github.com/hupe1980/boundedgo/internal/check"
	"github.com/hupe1980/boundedgo/internal/label"
)

// BoundedInclusive is an integer wrapper restricted to the closed range
// [lower,upper]: both bounds are admitted. Unlike Bounded it can cover a
// full primitive width, for example [0,255] over uint8, and it can declare
// a single-value range with lower == upper.
//
// The zero value holds the primitive zero without validation; construct
// through NewBoundedInclusive or MustBoundedInclusive.
type BoundedInclusive[T Integer, R Range[T]] struct {
	value T
}

// NewBoundedInclusive validates value against the closed range of R. A
// value outside the range is reported as *ErrOutOfBoundsInclusive.
//
// NewBoundedInclusive panics if R declares an unsatisfiable range
// (lower > upper); see CheckBoundedInclusive.
func NewBoundedInclusive[T Integer, R Range[T]](value T) (BoundedInclusive[T, R], error) {
	var r R
	lower, upper := r.Bounds()
	mustSatisfiable(checkInclusiveRange(lower, upper))

	if !check.InInclusive(lower, upper, value) {
		return BoundedInclusive[T, R]{}, &ErrOutOfBoundsInclusive[T]{Lower: lower, Upper: upper, Given: value}
	}

	return BoundedInclusive[T, R]{value: value}, nil
}

// MustBoundedInclusive is like NewBoundedInclusive but panics when value
// is out of range.
func MustBoundedInclusive[T Integer, R Range[T]](value T) BoundedInclusive[T, R] {
	b, err := NewBoundedInclusive[T, R](value)
	if err != nil {
		panic("boundedgo: " + err.Error())
	}
	return b
}

// Value returns the wrapped integer.
func (b BoundedInclusive[T, R]) Value() T {
	return b.value
}

// Equal reports whether the wrapped integer equals v.
func (b BoundedInclusive[T, R]) Equal(v T) bool {
	return b.value == v
}

// Bounds returns the closed range of R, both ends admitted. The receiver
// is unused; Bounds may be called on the zero value.
func (BoundedInclusive[T, R]) Bounds() (lower, upper T) {
	var r R
	return r.Bounds()
}

// String renders the wrapper with its shape, width, bounds, and value, as
// in BoundedInclusive[uint8,10,20](20).
func (b BoundedInclusive[T, R]) String() string {
	var r R
	lower, upper := r.Bounds()
	return label.Render(b, b.value, lower, upper)
}
