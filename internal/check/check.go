// Package check implements the membership predicates shared by every range
// shape and integer width.
//
// Each of the five range shapes reduces to one predicate here. The operator
// form works on any primitive integer type; the Cmp form works on the result
// of a three-way comparison and serves integer types that are ordered by a
// Cmp method rather than by the < operator (the 128-bit widths). The two
// forms agree on every input.
//
// The Valid predicates decide whether a two-sided range can admit any value
// at all. A range that fails them is a contract violation of the range type
// itself, not a property of any candidate value.
package check

import "golang.org/x/exp/constraints"

// InHalfOpen reports whether v lies in the half-open range [lower,upper).
// This is the reference predicate; the other shapes specialize its endpoints.
func InHalfOpen[T constraints.Integer](lower, upper, v T) bool {
	return v >= lower && v < upper
}

// InFrom reports whether v lies in the lower-only range [lower,∞).
func InFrom[T constraints.Integer](lower, v T) bool {
	return v >= lower
}

// InInclusive reports whether v lies in the inclusive range [lower,upper].
func InInclusive[T constraints.Integer](lower, upper, v T) bool {
	return v >= lower && v <= upper
}

// InTo reports whether v lies in the upper-open range (-∞,upper).
func InTo[T constraints.Integer](upper, v T) bool {
	return v < upper
}

// InToInclusive reports whether v lies in the upper-inclusive range (-∞,upper].
func InToInclusive[T constraints.Integer](upper, v T) bool {
	return v <= upper
}

// ValidHalfOpen reports whether the half-open range [lower,upper) can admit
// any value, that is, lower < upper.
func ValidHalfOpen[T constraints.Integer](lower, upper T) bool {
	return lower < upper
}

// ValidInclusive reports whether the inclusive range [lower,upper] can admit
// any value, that is, lower <= upper.
func ValidInclusive[T constraints.Integer](lower, upper T) bool {
	return lower <= upper
}

// The Cmp forms take three-way comparison results instead of values:
// cmpLower is v.Cmp(lower) and cmpUpper is v.Cmp(upper), each negative,
// zero, or positive in the usual way.

// InHalfOpenCmp is InHalfOpen over comparison results.
func InHalfOpenCmp(cmpLower, cmpUpper int) bool {
	return cmpLower >= 0 && cmpUpper < 0
}

// InFromCmp is InFrom over a comparison result.
func InFromCmp(cmpLower int) bool {
	return cmpLower >= 0
}

// InInclusiveCmp is InInclusive over comparison results.
func InInclusiveCmp(cmpLower, cmpUpper int) bool {
	return cmpLower >= 0 && cmpUpper <= 0
}

// InToCmp is InTo over a comparison result.
func InToCmp(cmpUpper int) bool {
	return cmpUpper < 0
}

// InToInclusiveCmp is InToInclusive over a comparison result.
func InToInclusiveCmp(cmpUpper int) bool {
	return cmpUpper <= 0
}

// ValidHalfOpenCmp is ValidHalfOpen over lower.Cmp(upper).
func ValidHalfOpenCmp(c int) bool {
	return c < 0
}

// ValidInclusiveCmp is ValidInclusive over lower.Cmp(upper).
func ValidInclusiveCmp(c int) bool {
	return c <= 0
}
