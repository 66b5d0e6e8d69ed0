package boundedgo

import (
	"github.com/hupe1980/boundedgo/internal/check"
	"github.com/hupe1980/boundedgo/internal/label"
)

// BoundedTo is an integer wrapper restricted to the upper-only range
// (-∞,upper): every value strictly below the upper bound is admitted, the
// bound itself is not. The lower end is limited only by the width of T.
//
// The zero value holds the primitive zero without validation; construct
// through NewBoundedTo or MustBoundedTo.
type BoundedTo[T Integer, U Upper[T]] struct {
	value T
}

// NewBoundedTo validates value against the exclusive upper bound of U. A
// value at or above the bound is reported as *ErrOutOfBoundsTo. An
// upper-only range over any primitive admits values below the bound, so
// there is no contract panic.
func NewBoundedTo[T Integer, U Upper[T]](value T) (BoundedTo[T, U], error) {
	var u U
	upper := u.UpperBound()

	if !check.InTo(upper, value) {
		return BoundedTo[T, U]{}, &ErrOutOfBoundsTo[T]{Upper: upper, Given: value}
	}

	return BoundedTo[T, U]{value: value}, nil
}

// MustBoundedTo is like NewBoundedTo but panics when value is out of
// range.
func MustBoundedTo[T Integer, U Upper[T]](value T) BoundedTo[T, U] {
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
	return b.value == v
}

// UpperBound returns the exclusive upper bound of U. The receiver is
// unused; UpperBound may be called on the zero value.
func (BoundedTo[T, U]) UpperBound() T {
	var u U
	return u.UpperBound()
}

// String renders the wrapper with its shape, width, bound, and value, as
// in BoundedTo[int16,100](-3).
func (b BoundedTo[T, U]) String() string {
	var u U
	return label.Render(b, b.value, u.UpperBound())
}
