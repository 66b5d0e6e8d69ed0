// Package num128 carries the boundedgo range shapes over 128-bit
// integers.
//
// The primitive widths stop at 64 bits; num128 instantiates the same five
// shapes over num.U128 and num.I128 from github.com/shabbyrobe/go-num.
// Ordering runs through the Cmp method since the comparison operators do
// not apply, and the rejection types are shared with the root package, so
// boundedgo.IsOutOfRange and errors.As work unchanged.
//
//	type fee struct{}
//
//	func (fee) Bounds() (num.U128, num.U128) {
//		return num.U128From64(0), num.U128FromRaw(1, 0) // [0, 2^64)
//	}
//
//	v, err := num128.NewBounded[num.U128, fee](num.U128From64(42))
package num128

import (
	"fmt"

	num "github.com/shabbyrobe/go-num"

	"github.com/hupe1980/boundedgo/internal/check"
)

// Integer128 is the constraint satisfied by the 128-bit integer types.
type Integer128[T any] interface {
	num.U128 | num.I128

	Cmp(o T) int
	String() string
}

// Range supplies the compile-time bounds of a two-sided range type. As in
// the root package, the range type is zero-size and pure; whether each
// endpoint is included is decided by the wrapper shape.
type Range[T Integer128[T]] interface {
	Bounds() (lower, upper T)
}

// Lower supplies the compile-time lower bound of a lower-only range type.
type Lower[T Integer128[T]] interface {
	LowerBound() T
}

// Upper supplies the compile-time upper bound of an upper-only range type.
type Upper[T Integer128[T]] interface {
	UpperBound() T
}

// CheckBounded verifies that R can admit at least one value under
// half-open semantics; NewBounded panics on a range that fails it.
func CheckBounded[T Integer128[T], R Range[T]]() error {
	var r R
	lower, upper := r.Bounds()
	return checkHalfOpenRange(lower, upper)
}

// CheckBoundedInclusive verifies that R can admit at least one value
// under inclusive semantics; NewBoundedInclusive panics on a range that
// fails it.
func CheckBoundedInclusive[T Integer128[T], R Range[T]]() error {
	var r R
	lower, upper := r.Bounds()
	return checkInclusiveRange(lower, upper)
}

func checkHalfOpenRange[T Integer128[T]](lower, upper T) error {
	if check.ValidHalfOpenCmp(lower.Cmp(upper)) {
		return nil
	}
	return fmt.Errorf("unsatisfiable half-open range [%v,%v): lower bound must be less than upper bound", lower, upper)
}

func checkInclusiveRange[T Integer128[T]](lower, upper T) error {
	if check.ValidInclusiveCmp(lower.Cmp(upper)) {
		return nil
	}
	return fmt.Errorf("unsatisfiable inclusive range [%v,%v]: lower bound must not exceed upper bound", lower, upper)
}

func mustSatisfiable(err error) {
	if err != nil {
		panic("boundedgo: " + err.Error())
	}
}
