package boundedgo

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/boundedgo/internal/check"
)

// Integer is the constraint satisfied by every primitive integer type the
// shape family instantiates over: the fixed-width signed and unsigned
// widths, the pointer-sized int and uint, uintptr, and any type defined on
// one of them.
type Integer = constraints.Integer

// Range supplies the compile-time bounds of a two-sided range type.
//
// A range type is a zero-size named type (typically an empty struct) whose
// Bounds method returns constants; it exists to carry the bounds in the
// type system, so differently-bounded wrappers are different Go types:
//
//	type digits struct{}
//	func (digits) Bounds() (uint8, uint8) { return 0, 10 }
//
// Whether each endpoint is included is decided by the wrapper shape, not by
// the range type: Bounded reads the pair as [lower,upper), BoundedInclusive
// reads it as [lower,upper]. Bounds must be pure and return the same pair
// on every call; range types must be usable as their zero value.
type Range[T Integer] interface {
	Bounds() (lower, upper T)
}

// Lower supplies the compile-time lower bound of a lower-only range type,
// read by BoundedFrom as [lower,∞).
type Lower[T Integer] interface {
	LowerBound() T
}

// Upper supplies the compile-time upper bound of an upper-only range type,
// read by BoundedTo as (-∞,upper) and by BoundedToInclusive as (-∞,upper].
type Upper[T Integer] interface {
	UpperBound() T
}

// CheckBounded verifies that the range type R can admit at least one value
// under half-open semantics, that is, lower < upper. A range type that
// fails this check is permanently unsatisfiable as a Bounded range;
// NewBounded panics on it. Check range types here, for example in a test,
// to catch the mistake before any construction runs.
//
// One-sided range types cannot be unsatisfiable and need no check.
func CheckBounded[T Integer, R Range[T]]() error {
	var r R
	lower, upper := r.Bounds()
	return checkHalfOpenRange(lower, upper)
}

// CheckBoundedInclusive verifies that the range type R can admit at least
// one value under inclusive semantics, that is, lower <= upper. A range
// type that fails this check is permanently unsatisfiable as a
// BoundedInclusive range; NewBoundedInclusive panics on it.
func CheckBoundedInclusive[T Integer, R Range[T]]() error {
	var r R
	lower, upper := r.Bounds()
	return checkInclusiveRange(lower, upper)
}

func checkHalfOpenRange[T Integer](lower, upper T) error {
	if check.ValidHalfOpen(lower, upper) {
		return nil
	}
	return fmt.Errorf("unsatisfiable half-open range [%v,%v): lower bound must be less than upper bound", lower, upper)
}

func checkInclusiveRange[T Integer](lower, upper T) error {
	if check.ValidInclusive(lower, upper) {
		return nil
	}
	return fmt.Errorf("unsatisfiable inclusive range [%v,%v]: lower bound must not exceed upper bound", lower, upper)
}

// mustSatisfiable turns a range contract violation into a panic. Rejecting
// a value is an error; declaring a range no value can ever satisfy is a bug
// in the program.
func mustSatisfiable(err error) {
	if err != nil {
		panic("boundedgo: " + err.Error())
	}
}
