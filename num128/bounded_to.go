package num128

import (
	"github.com/hupe1980/boundedgo"
	"github.com/hupe1980/boundedgo/internal/check"
	"github.com/hupe1980/boundedgo/internal/label"
)

// BoundedTo is a 128-bit integer wrapper restricted to the upper-only
// range (-∞,upper); the bound itself is excluded.
type BoundedTo[T Integer128[T], U Upper[T]] struct {
	value T
}

// NewBoundedTo validates value against the exclusive upper bound of U. A
// value at or above the bound is reported as *boundedgo.ErrOutOfBoundsTo.
func NewBoundedTo[T Integer128[T], U Upper[T]](value T) (BoundedTo[T, U], error) {
	var u U
	upper := u.UpperBound()

	if !check.InToCmp(value.Cmp(upper)) {
		return BoundedTo[T, U]{}, &boundedgo.ErrOutOfBoundsTo[T]{Upper: upper, Given: value}
	}

	return BoundedTo[T, U]{value: value}, nil
}

// MustBoundedTo is like NewBoundedTo but panics when value is out of
// range.
func MustBoundedTo[T Integer128[T], U Upper[T]](value T) BoundedTo[T, U] {
	b, err := NewBoundedTo[T, U](value)
	if err != nil {
		panic("boundedgo: " + err.Error())
	}
	return b
}

// Value returns the wrapped integer.
func (b BoundedTo[T, U]) Value() T {
	return b.value
}

// Equal reports whether the wrapped integer equals v.
func (b BoundedTo[T, U]) Equal(v T) bool {
	return b.value.Cmp(v) == 0
}

// UpperBound returns the exclusive upper bound of U.
func (BoundedTo[T, U]) UpperBound() T {
	var u U
	return u.UpperBound()
}

// String renders the wrapper as in BoundedTo[U128,100](42).
func (b BoundedTo[T, U]) String() string {
	var u U
	return label.Render(b, b.value, u.UpperBound())
}
