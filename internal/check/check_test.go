package check

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInHalfOpen(t *testing.T) {
	tests := []struct {
		name string
		v    int
		want bool
	}{
		{"BelowLower", 9, false},
		{"AtLower", 10, true},
		{"Inside", 15, true},
		{"BeforeUpper", 19, true},
		{"AtUpper", 20, false},
		{"AboveUpper", 21, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InHalfOpen(10, 20, tt.v))
		})
	}
}

func TestInFrom(t *testing.T) {
	tests := []struct {
		name string
		v    int
		want bool
	}{
		{"BelowLower", 9, false},
		{"AtLower", 10, true},
		{"AboveLower", 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InFrom(10, tt.v))
		})
	}
}

func TestInInclusive(t *testing.T) {
	tests := []struct {
		name string
		v    int
		want bool
	}{
		{"BelowLower", 9, false},
		{"AtLower", 10, true},
		{"AtUpper", 20, true},
		{"AboveUpper", 21, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InInclusive(10, 20, tt.v))
		})
	}
}

func TestInTo(t *testing.T) {
	tests := []struct {
		name string
		v    int
		want bool
	}{
		{"BelowUpper", 9, true},
		{"AtUpper", 10, false},
		{"AboveUpper", 11, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InTo(10, tt.v))
		})
	}
}

func TestInToInclusive(t *testing.T) {
	tests := []struct {
		name string
		v    int
		want bool
	}{
		{"BelowUpper", 9, true},
		{"AtUpper", 10, true},
		{"AboveUpper", 11, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InToInclusive(10, tt.v))
		})
	}
}

func TestUnsignedWraparound(t *testing.T) {
	// 0-1 on an unsigned width wraps to the maximum value; the predicates
	// must not be fooled by it. Constant expressions do not wrap, so the
	// subtraction runs on a variable.
	var zero uint8
	wrapped := zero - 1

	assert.False(t, InHalfOpen(uint8(0), uint8(10), wrapped))
	assert.True(t, InFrom(uint8(0), wrapped)) // [0,∞) admits everything
	assert.False(t, InTo(uint8(10), wrapped))
}

func TestSignedNegativeRanges(t *testing.T) {
	assert.True(t, InHalfOpen(int8(-20), int8(-10), int8(-20)))
	assert.False(t, InHalfOpen(int8(-20), int8(-10), int8(-10)))
	assert.True(t, InInclusive(int8(-20), int8(-10), int8(-10)))
	assert.True(t, InToInclusive(int8(-10), int8(-128)))
}

func TestValidHalfOpen(t *testing.T) {
	assert.True(t, ValidHalfOpen(10, 20))
	assert.False(t, ValidHalfOpen(10, 10), "empty half-open range admits nothing")
	assert.False(t, ValidHalfOpen(20, 10))
}

func TestValidInclusive(t *testing.T) {
	assert.True(t, ValidInclusive(10, 20))
	assert.True(t, ValidInclusive(10, 10), "degenerate inclusive range admits exactly its bound")
	assert.False(t, ValidInclusive(20, 10))
}

// TestCmpFormsAgree cross-checks the Cmp predicates against the operator
// predicates for every candidate around the bounds.
func TestCmpFormsAgree(t *testing.T) {
	const lower, upper = -3, 4

	for v := lower - 2; v <= upper+2; v++ {
		cl, cu := cmp.Compare(v, lower), cmp.Compare(v, upper)

		assert.Equal(t, InHalfOpen(lower, upper, v), InHalfOpenCmp(cl, cu), "half-open at %d", v)
		assert.Equal(t, InFrom(lower, v), InFromCmp(cl), "from at %d", v)
		assert.Equal(t, InInclusive(lower, upper, v), InInclusiveCmp(cl, cu), "inclusive at %d", v)
		assert.Equal(t, InTo(upper, v), InToCmp(cu), "to at %d", v)
		assert.Equal(t, InToInclusive(upper, v), InToInclusiveCmp(cu), "to-inclusive at %d", v)
	}

	for _, b := range [][2]int{{10, 20}, {10, 10}, {20, 10}} {
		c := cmp.Compare(b[0], b[1])
		assert.Equal(t, ValidHalfOpen(b[0], b[1]), ValidHalfOpenCmp(c), "valid half-open %v", b)
		assert.Equal(t, ValidInclusive(b[0], b[1]), ValidInclusiveCmp(c), "valid inclusive %v", b)
	}
}
