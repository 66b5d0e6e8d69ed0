package num128

import (
	"github.com/hupe1980/boundedgo"
	"github.com/hupe1980/boundedgo/internal/check"
	"github.com/hupe1980/boundedgo/internal/label"
)

// BoundedInclusive is a 128-bit integer wrapper restricted to the closed
// range [lower,upper]; it can cover a full 128-bit width.
type BoundedInclusive[T Integer128[T], R Range[T]] struct {
	value T
}

// NewBoundedInclusive validates value against the closed range of R. A
// value outside the range is reported as
// *boundedgo.ErrOutOfBoundsInclusive. NewBoundedInclusive panics if R
// declares an unsatisfiable range; see CheckBoundedInclusive.
func NewBoundedInclusive[T Integer128[T], R Range[T]](value T) (BoundedInclusive[T, R], error) {
	var r R
	lower, upper := r.Bounds()
	mustSatisfiable(checkInclusiveRange(lower, upper))

	if !check.InInclusiveCmp(value.Cmp(lower), value.Cmp(upper)) {
		return BoundedInclusive[T, R]{}, &boundedgo.ErrOutOfBoundsInclusive[T]{Lower: lower, Upper: upper, Given: value}
	}

	return BoundedInclusive[T, R]{value: value}, nil
}

// MustBoundedInclusive is like NewBoundedInclusive but panics when value
// is out of range.
func MustBoundedInclusive[T Integer128[T], R Range[T]](value T) BoundedInclusive[T, R] {
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
	return b.value.Cmp(v) == 0
}

// Bounds returns the closed range of R, both ends admitted.
func (BoundedInclusive[T, R]) Bounds() (lower, upper T) {
	var r R
	return r.Bounds()
}

// String renders the wrapper as in BoundedInclusive[I128,-10,10](10).
func (b BoundedInclusive[T, R]) String() string {
	var r R
	lower, upper := r.Bounds()
	return label.Render(b, b.value, lower, upper)
}
