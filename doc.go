// Package boundedgo provides compile-time bounded integer types for Go.
//
// Boundedgo wraps the primitive integer widths in value types whose range
// is part of the Go type: a port number, a percentage, and a priority are
// different types even when all three are uint8 underneath. Construction
// is the only gate; once a wrapper exists, the value inside it is in
// range.
//
// # Quick Start
//
// Declare the range once as a zero-size type, then use it as a type
// argument:
//
//	type percent struct{}
//
//	func (percent) Bounds() (uint8, uint8) { return 0, 101 }
//
//	p, err := boundedgo.NewBounded[uint8, percent](87)   // ok
//	_, err = boundedgo.NewBounded[uint8, percent](150)   // *ErrOutOfBounds
//
// # Range Shapes
//
// Five shapes cover the useful combinations of open and closed ends:
//
//	Bounded[T, R]             [lower,upper)   half-open, the common case
//	BoundedFrom[T, L]         [lower,∞)       floor only
//	BoundedInclusive[T, R]    [lower,upper]   closed, covers full widths
//	BoundedTo[T, U]           (-∞,upper)      ceiling only, exclusive
//	BoundedToInclusive[T, U]  (-∞,upper]      ceiling only, inclusive
//
// Every shape instantiates over any primitive integer width, signed or
// unsigned. Wrappers stay comparable, so == and map keys work and follow
// the wrapped value. The companion package num128 carries the same shapes
// over 128-bit integers.
//
// # Failure Modes
//
// Each shape rejects with its own error type carrying the bounds and the
// rejected value; all five satisfy the OutOfRange interface, so callers
// can branch on the family with IsOutOfRange or on one shape with
// errors.As. Rejection never clamps and never falls back: the only ways
// out of a constructor are a valid wrapper or an error.
//
// Declaring a range no value can satisfy, such as Bounds returning (20,
// 10), is a programming error, not an input error; constructors panic on
// it. CheckBounded and CheckBoundedInclusive surface the same contract as
// an error for tests.
//
// # Diagnostics
//
// Wrappers print their full provenance, not just the value:
//
//	fmt.Println(p)  // Bounded[uint8,0,101](87)
//
// # Zero Values
//
// The zero value of a wrapper holds the primitive zero without having
// passed validation; for ranges that exclude zero it is out of range.
// Treat the zero value as absent and obtain instances only through the
// constructors.
package boundedgo
