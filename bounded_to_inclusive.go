package boundedgo

import (
	"github.com/hupe1980/boundedgo/internal/check"
	"github.com/hupe1980/boundedgo/internal/label"
)

// BoundedToInclusive is an integer wrapper restricted to the upper-only
// range (-∞,upper]: every value up to and including the upper bound is
// admitted. The lower end is limited only by the width of T.
//
// The zero value holds the primitive zero without validation; construct
// through NewBoundedToInclusive or MustBoundedToInclusive.
type BoundedToInclusive[T Integer, U Upper[T]] struct {
	value T
}

// NewBoundedToInclusive validates value against the inclusive upper bound
// of U. A value above the bound is reported as *ErrOutOfBoundsToInclusive.
func NewBoundedToInclusive[T Integer, U Upper[T]](value T) (BoundedToInclusive[T, U], error) {
	var u U
	upper := u.UpperBound()

	if !check.InToInclusive(upper, value) {
		return BoundedToInclusive[T, U]{}, &ErrOutOfBoundsToInclusive[T]{Upper: upper, Given: value}
	}

	return BoundedToInclusive[T, U]{value: value}, nil
}

// MustBoundedToInclusive is like NewBoundedToInclusive but panics when
// value is out of range.
func MustBoundedToInclusive[T Integer, U Upper[T]](value T) BoundedToInclusive[T, U] {
	b, err := NewBoundedToInclusive[T, U](value)
	if err != nil {
		panic("boundedgo: " + err.Error())
	}
	return b
}

// Value returns the wrapped integer.
func (b BoundedToInclusive[T, U]) Value() T {
	return b.value
}

// Equal reports whether the wrapped integer equals v.
func (b BoundedToInclusive[T, U]) Equal(v T) bool {
	return b.value == v
}

// UpperBound returns the inclusive upper bound of U. The receiver is
// unused; UpperBound may be called on the zero value.
func (BoundedToInclusive[T, U]) UpperBound() T {
	var u U
	return u.UpperBound()
}

// String renders the wrapper with its shape, width, bound, and value, as
// in BoundedToInclusive[uint32,10](10).
func (b BoundedToInclusive[T, U]) String() string {
	var u U
	return label.Render(b, b.value, u.UpperBound())
}
