package num128

import (
	"github.com/hupe1980/boundedgo"
	"github.com/hupe1980/boundedgo/internal/check"
	"github.com/hupe1980/boundedgo/internal/label"
)

// BoundedFrom is a 128-bit integer wrapper restricted to the lower-only
// range [lower,∞).
type BoundedFrom[T Integer128[T], L Lower[T]] struct {
	value T
}

// NewBoundedFrom validates value against the lower bound of L. A value
// below the bound is reported as *boundedgo.ErrOutOfBoundsFrom.
func NewBoundedFrom[T Integer128[T], L Lower[T]](value T) (BoundedFrom[T, L], error) {
	var l L
	lower := l.LowerBound()

	if !check.InFromCmp(value.Cmp(lower)) {
		return BoundedFrom[T, L]{}, &boundedgo.ErrOutOfBoundsFrom[T]{Lower: lower, Given: value}
	}

	return BoundedFrom[T, L]{value: value}, nil
}

// MustBoundedFrom is like NewBoundedFrom but panics when value is out of
// range.
func MustBoundedFrom[T Integer128[T], L Lower[T]](value T) BoundedFrom[T, L] {
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
	return b.value.Cmp(v) == 0
}

// LowerBound returns the inclusive lower bound of L.
func (BoundedFrom[T, L]) LowerBound() T {
	var l L
	return l.LowerBound()
}

// String renders the wrapper as in BoundedFrom[U128,10](42).
func (b BoundedFrom[T, L]) String() string {
	var l L
	return label.Render(b, b.value, l.LowerBound())
}
