package boundedgo_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/boundedgo"
)

func TestNewBoundedToInclusive(t *testing.T) {
	tests := []struct {
		name    string
		value   uint8
		wantErr bool
	}{
		{name: "zero", value: 0, wantErr: false},
		{name: "below upper", value: 9, wantErr: false},
		{name: "at upper", value: 10, wantErr: false},
		{name: "above upper", value: 11, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := boundedgo.NewBoundedToInclusive[uint8, belowTen](tt.value)
			if tt.wantErr {
				require.Error(t, err)

				var oob *boundedgo.ErrOutOfBoundsToInclusive[uint8]
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

// The same upper-bound type feeds both upper-only shapes; only the
// inclusive one admits the bound itself, and each rejects with its own
// error type.
func TestUpperShapesDisagreeAtBound(t *testing.T) {
	_, err := boundedgo.NewBoundedTo[uint8, belowTen](10)
	require.Error(t, err)

	b, err := boundedgo.NewBoundedToInclusive[uint8, belowTen](10)
	require.NoError(t, err)
	assert.Equal(t, uint8(10), b.Value())

	_, err = boundedgo.NewBoundedToInclusive[uint8, belowTen](11)
	require.Error(t, err)

	var toIncl *boundedgo.ErrOutOfBoundsToInclusive[uint8]
	assert.ErrorAs(t, err, &toIncl)

	var to *boundedgo.ErrOutOfBoundsTo[uint8]
	assert.False(t, errors.As(err, &to))
}

func TestBoundedToInclusiveWidthMax(t *testing.T) {
	b, err := boundedgo.NewBoundedToInclusive[uint8, atMostMax](math.MaxUint8)
	require.NoError(t, err)
	assert.Equal(t, uint8(math.MaxUint8), b.Value())
}

func TestMustBoundedToInclusive(t *testing.T) {
	b := boundedgo.MustBoundedToInclusive[uint8, belowTen](10)
	assert.Equal(t, uint8(10), b.Value())

	assert.PanicsWithValue(t,
		"boundedgo: value 11 is not in the upper-inclusive range (-∞,10]",
		func() { boundedgo.MustBoundedToInclusive[uint8, belowTen](11) },
	)
}

func TestBoundedToInclusiveUpperBound(t *testing.T) {
	var b boundedgo.BoundedToInclusive[uint8, belowTen]
	assert.Equal(t, uint8(10), b.UpperBound())
}
