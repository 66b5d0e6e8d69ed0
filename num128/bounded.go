package num128

import (
	"github.com/hupe1980/boundedgo"
	"github.com/hupe1980/boundedgo/internal/check"
	"github.com/hupe1980/boundedgo/internal/label"
)

// Bounded is a 128-bit integer wrapper restricted to the half-open range
// [lower,upper). It mirrors boundedgo.Bounded with ordering through Cmp.
//
// The zero value holds the numeric zero without validation; construct
// through NewBounded or MustBounded.
type Bounded[T Integer128[T], R Range[T]] struct {
	value T
}

// NewBounded validates value against the half-open range of R. A value
// outside the range is reported as *boundedgo.ErrOutOfBounds. NewBounded
// panics if R declares an unsatisfiable range; see CheckBounded.
func NewBounded[T Integer128[T], R Range[T]](value T) (Bounded[T, R], error) {
	var r R
	lower, upper := r.Bounds()
	mustSatisfiable(checkHalfOpenRange(lower, upper))

	if !check.InHalfOpenCmp(value.Cmp(lower), value.Cmp(upper)) {
		return Bounded[T, R]{}, &boundedgo.ErrOutOfBounds[T]{Lower: lower, Upper: upper, Given: value}
	}

	return Bounded[T, R]{value: value}, nil
}

// MustBounded is like NewBounded but panics when value is out of range.
func MustBounded[T Integer128[T], R Range[T]](value T) Bounded[T, R] {
	b, err := NewBounded[T, R](value)
	if err != nil {
		panic("boundedgo: " + err.Error())
	}
	return b
}

// Value returns the wrapped integer.
func (b Bounded[T, R]) Value() T {
	return b.value
}

// Equal reports whether the wrapped integer equals v.
func (b Bounded[T, R]) Equal(v T) bool {
	return b.value.Cmp(v) == 0
}

// Bounds returns the half-open range of R, lower admitted and upper
// excluded.
func (Bounded[T, R]) Bounds() (lower, upper T) {
	var r R
	return r.Bounds()
}

// String renders the wrapper as in Bounded[U128,10,20](15).
func (b Bounded[T, R]) String() string {
	var r R
	lower, upper := r.Bounds()
	return label.Render(b, b.value, lower, upper)
}
