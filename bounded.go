package boundedgo

import (
	"github.com/hupe1980/boundedgo/internal/check"
	"github.com/hupe1980/boundedgo/internal/label"
)

// Bounded is an integer wrapper restricted to the half-open range
// [lower,upper): the lower bound is admitted, the upper bound is not. The
// bounds come from the range type R, so they are part of the wrapper's
// type; Bounded[uint8, digits] and Bounded[uint8, octal] are unrelated
// types even when their bounds overlap.
//
// The zero value of Bounded holds the primitive zero without validation.
// Obtain instances through NewBounded or MustBounded so the range
// guarantee holds.
type Bounded[T Integer, R Range[T]] struct {
	value T
}

// NewBounded validates value against the half-open range of R and returns
// the wrapper on success. A value outside the range is reported as
// *ErrOutOfBounds carrying the bounds and the rejected value; the wrapper
// result is the zero value then and must not be used.
//
// NewBounded panics if R declares an unsatisfiable range (lower >= upper);
// see CheckBounded.
func NewBounded[T Integer, R Range[T]](value T) (Bounded[T, R], error) {
	var r R
	lower, upper := r.Bounds()
	mustSatisfiable(checkHalfOpenRange(lower, upper))

	if !check.InHalfOpen(lower, upper, value) {
		return Bounded[T, R]{}, &ErrOutOfBounds[T]{Lower: lower, Upper: upper, Given: value}
	}

	return Bounded[T, R]{value: value}, nil
}

// MustBounded is like NewBounded but panics when value is out of range. It
// is intended for constants and other values known valid at the call site.
func MustBounded[T Integer, R Range[T]](value T) Bounded[T, R] {
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
	return b.value == v
}

// Bounds returns the half-open range of R, lower admitted and upper
// excluded. The receiver is unused; Bounds may be called on the zero
// value.
func (Bounded[T, R]) Bounds() (lower, upper T) {
	var r R
	return r.Bounds()
}

// String renders the wrapper with its shape, width, bounds, and value, as
// in Bounded[uint8,10,20](15).
func (b Bounded[T, R]) String() string {
	var r R
	lower, upper := r.Bounds()
	return label.Render(b, b.value, lower, upper)
}
