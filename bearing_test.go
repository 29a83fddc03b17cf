package coordtran

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBearing(t *testing.T) {
	for _, deg := range []float64{0, 0.0001, 90, 359.9999} {
		b, err := NewBearing(deg)
		require.NoError(t, err, "%v", deg)
		got, ok := b.Degrees()
		assert.True(t, ok)
		assert.Equal(t, deg, got)
		assert.False(t, b.IsUndetermined())
		assert.Equal(t, deg, b.Float64())
	}

	// half-open: 360 is not wrapped to 0
	for _, deg := range []float64{360, -0.0001, 720, -1, math.NaN(), math.Inf(1)} {
		_, err := NewBearing(deg)
		require.ErrorIs(t, err, ErrInvalidBearing, "%v", deg)
	}

	b, err := NewBearing(math.Copysign(0, -1))
	require.NoError(t, err)
	assert.Equal(t, "0", b.String())
}

func TestUndetermined(t *testing.T) {
	var zero Bearing
	assert.Equal(t, Undetermined, zero)
	assert.True(t, zero.IsUndetermined())
	_, ok := zero.Degrees()
	assert.False(t, ok)
	assert.Equal(t, UndeterminedValue, zero.Float64())
	assert.Equal(t, "undetermined", zero.String())
	text, err := zero.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "undetermined", string(text))
}

func TestBearingFromFloat64(t *testing.T) {
	b, err := BearingFromFloat64(UndeterminedValue)
	require.NoError(t, err)
	assert.True(t, b.IsUndetermined())

	b, err = BearingFromFloat64(12.5)
	require.NoError(t, err)
	assert.Equal(t, 12.5, b.Float64())

	_, err = BearingFromFloat64(-2)
	require.ErrorIs(t, err, ErrInvalidBearing)
	var ie *InputError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, "bearing", ie.Field)
	assert.Equal(t, -2.0, ie.Value)
}

func TestParseBearing(t *testing.T) {
	for _, s := range []string{"undetermined", "Undetermined", " UNDETERMINED ", "-1", "-1.0"} {
		b, err := ParseBearing(s)
		require.NoError(t, err, s)
		assert.True(t, b.IsUndetermined(), s)
	}

	b, err := ParseBearing("154.9632")
	require.NoError(t, err)
	assert.Equal(t, 154.9632, b.Float64())

	for _, s := range []string{"360", "360.0", "-0.5", "north", "", "1e400"} {
		_, err := ParseBearing(s)
		require.ErrorIs(t, err, ErrInvalidBearing, s)
	}
}

func TestPointValidate(t *testing.T) {
	for _, p := range []Point{
		{Lon: -180, Lat: -90}, {Lon: 179.9999, Lat: 90}, {},
	} {
		require.NoError(t, p.Validate(), "%v", p)
	}
	for _, p := range []Point{
		{Lon: 180}, {Lon: -180.0001}, {Lat: 90.0001}, {Lat: -91},
		{Lon: math.NaN()}, {Lat: math.NaN()},
	} {
		err := p.Validate()
		require.ErrorIs(t, err, ErrInvalidPoint, "%v", p)
		var ie *InputError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, "point", ie.Op)
	}
	assert.True(t, Point{Lon: 3, Lat: -90}.AtPole())
	assert.False(t, Point{Lon: 3, Lat: 89.9999}.AtPole())
}
