package boundedgo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/boundedgo"
)

func TestNewBoundedTo(t *testing.T) {
	tests := []struct {
		name    string
		value   uint8
		wantErr bool
	}{
		{name: "zero", value: 0, wantErr: false},
		{name: "below upper", value: 9, wantErr: false},
		{name: "at upper", value: 10, wantErr: true},
		{name: "above upper", value: 11, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := boundedgo.NewBoundedTo[uint8, belowTen](tt.value)
			if tt.wantErr {
				require.Error(t, err)

				var oob *boundedgo.ErrOutOfBoundsTo[uint8]
				require.ErrorAs(t, err, &oob)
				assert.Equal(t, uint8(10), oob.Upper)
				assert.Equal(t, tt.value, oob.Given)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.value, b.Value())
		})
	}
}

func TestNewBoundedToSigned(t *testing.T) {
	tests := []struct {
		name    string
		value   int8
		wantErr bool
	}{
		{name: "width min", value: math.MinInt8, wantErr: false},
		{name: "below upper", value: -1, wantErr: false},
		{name: "at upper", value: 0, wantErr: true},
		{name: "above upper", value: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := boundedgo.NewBoundedTo[int8, negativeOnly](tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, b.Value())
		})
	}
}

func TestMustBoundedTo(t *testing.T) {
	b := boundedgo.MustBoundedTo[uint8, belowTen](9)
	assert.Equal(t, uint8(9), b.Value())

	assert.PanicsWithValue(t,
		"boundedgo: value 10 is not in the upper-open range (-∞,10)",
		func() { boundedgo.MustBoundedTo[uint8, belowTen](10) },
	)
}

func TestBoundedToUpperBound(t *testing.T) {
	var b boundedgo.BoundedTo[uint8, belowTen]
	assert.Equal(t, uint8(10), b.UpperBound())
}
