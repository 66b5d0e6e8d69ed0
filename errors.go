package boundedgo

import (
	"errors"
	"fmt"
)

// OutOfRange is implemented by every rejection error in this package.
// It lets callers detect "some bound was violated" without naming the
// shape or width of the rejecting type.
type OutOfRange interface {
	error
	outOfRange()
}

// IsOutOfRange reports whether any error in err's chain is one of the
// rejection kinds (ErrOutOfBounds, ErrOutOfBoundsFrom, ErrOutOfBoundsInclusive,
// ErrOutOfBoundsTo, ErrOutOfBoundsToInclusive).
func IsOutOfRange(err error) bool {
	var o OutOfRange
	return errors.As(err, &o)
}

// ErrOutOfBounds indicates a value rejected by the half-open range
// [Lower,Upper) of a Bounded type.
type ErrOutOfBounds[T any] struct {
	Lower T
	Upper T
	Given T
}

func (e *ErrOutOfBounds[T]) Error() string {
	return fmt.Sprintf("value %v is not in the half-open range [%v,%v)", e.Given, e.Lower, e.Upper)
}

func (e *ErrOutOfBounds[T]) outOfRange() {}

// ErrOutOfBoundsFrom indicates a value rejected by the lower-only range
// [Lower,∞) of a BoundedFrom type.
type ErrOutOfBoundsFrom[T any] struct {
	Lower T
	Given T
}

func (e *ErrOutOfBoundsFrom[T]) Error() string {
	return fmt.Sprintf("value %v is not in the lower-only range [%v,∞)", e.Given, e.Lower)
}

func (e *ErrOutOfBoundsFrom[T]) outOfRange() {}

// ErrOutOfBoundsInclusive indicates a value rejected by the inclusive range
// [Lower,Upper] of a BoundedInclusive type.
type ErrOutOfBoundsInclusive[T any] struct {
	Lower T
	Upper T
	Given T
}

func (e *ErrOutOfBoundsInclusive[T]) Error() string {
	return fmt.Sprintf("value %v is not in the inclusive range [%v,%v]", e.Given, e.Lower, e.Upper)
}

func (e *ErrOutOfBoundsInclusive[T]) outOfRange() {}

// ErrOutOfBoundsTo indicates a value rejected by the upper-open range
// (-∞,Upper) of a BoundedTo type.
type ErrOutOfBoundsTo[T any] struct {
	Upper T
	Given T
}

func (e *ErrOutOfBoundsTo[T]) Error() string {
	return fmt.Sprintf("value %v is not in the upper-open range (-∞,%v)", e.Given, e.Upper)
}

func (e *ErrOutOfBoundsTo[T]) outOfRange() {}

// ErrOutOfBoundsToInclusive indicates a value rejected by the upper-inclusive
// range (-∞,Upper] of a BoundedToInclusive type.
type ErrOutOfBoundsToInclusive[T any] struct {
	Upper T
	Given T
}

func (e *ErrOutOfBoundsToInclusive[T]) Error() string {
	return fmt.Sprintf("value %v is not in the upper-inclusive range (-∞,%v]", e.Given, e.Upper)
}

func (e *ErrOutOfBoundsToInclusive[T]) outOfRange() {}
