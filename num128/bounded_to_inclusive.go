package num128

import (
	"github.com/hupe1980/boundedgo"
	"github.com/hupe1980/boundedgo/internal/check"
	"github.com/hupe1980/boundedgo/internal/label"
)

// BoundedToInclusive is a 128-bit integer wrapper restricted to the
// upper-only range (-∞,upper]; the bound itself is admitted.
type BoundedToInclusive[T Integer128[T], U Upper[T]] struct {
	value T
}

// NewBoundedToInclusive validates value against the inclusive upper bound
// of U. A value above the bound is reported as
// *boundedgo.ErrOutOfBoundsToInclusive.
func NewBoundedToInclusive[T Integer128[T], U Upper[T]](value T) (BoundedToInclusive[T, U], error) {
	var u U
	upper := u.UpperBound()

	if !check.InToInclusiveCmp(value.Cmp(upper)) {
		return BoundedToInclusive[T, U]{}, &boundedgo.ErrOutOfBoundsToInclusive[T]{Upper: upper, Given: value}
	}

	return BoundedToInclusive[T, U]{value: value}, nil
}

// MustBoundedToInclusive is like NewBoundedToInclusive but panics when
// value is out of range.
func MustBoundedToInclusive[T Integer128[T], U Upper[T]](value T) BoundedToInclusive[T, U] {
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
	return b.value.Cmp(v) == 0
}

// UpperBound returns the inclusive upper bound of U.
func (BoundedToInclusive[T, U]) UpperBound() T {
	var u U
	return u.UpperBound()
}

// String renders the wrapper as in BoundedToInclusive[U128,100](100).
func (b BoundedToInclusive[T, U]) String() string {
	var u U
	return label.Render(b, b.value, u.UpperBound())
}
