package coordtran

import (
	"fmt"
	"strconv"
	"strings"
)

// UndeterminedValue is the out-of-band numeric encoding of an undetermined
// bearing. It only appears at the float64 and text boundaries, see
// Bearing.Float64, BearingFromFloat64 and ParseBearing.
const UndeterminedValue = -1.0

// Bearing is an initial heading measured clockwise from true north.
//
// A Bearing is either defined, holding degrees in [0, 360), or undetermined,
// meaning the geometry has no well-defined heading (identical points, or
// both points at a pole). The zero value is undetermined.
type Bearing struct {
	deg     float64
	defined bool
}

// Undetermined is the bearing with no well-defined value.
var Undetermined = Bearing{}

// NewBearing returns a defined bearing. Param deg must be in [0, 360);
// 360 itself is rejected rather than wrapped to 0.
func NewBearing(deg float64) (Bearing, error) {
	if !validDegrees(deg) {
		return Undetermined, inputError("bearing", "bearing", deg, ErrInvalidBearing)
	}
	if deg == 0 {
		deg = 0 // drop the sign of -0
	}
	return Bearing{deg: deg, defined: true}, nil
}

// BearingFromFloat64 decodes the legacy numeric encoding, where
// UndeterminedValue stands for an undetermined bearing. Any other value is
// passed to NewBearing.
func BearingFromFloat64(v float64) (Bearing, error) {
	if v == UndeterminedValue {
		return Undetermined, nil
	}
	return NewBearing(v)
}

// ParseBearing parses a bearing from text. It accepts a decimal number of
// degrees, the numeric sentinel "-1", or the word "undetermined".
func ParseBearing(s string) (Bearing, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "undetermined") {
		return Undetermined, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Undetermined, fmt.Errorf("parse bearing %q: %w", s, ErrInvalidBearing)
	}
	return BearingFromFloat64(v)
}

// Degrees returns the bearing in degrees and true, or 0 and false when the
// bearing is undetermined.
func (b Bearing) Degrees() (float64, bool) {
	return b.deg, b.defined
}

// IsUndetermined reports whether the bearing has no well-defined value.
func (b Bearing) IsUndetermined() bool {
	return !b.defined
}

// Float64 returns the bearing in degrees, or UndeterminedValue.
func (b Bearing) Float64() float64 {
	if !b.defined {
		return UndeterminedValue
	}
	return b.deg
}

func (b Bearing) String() string {
	if !b.defined {
		return "undetermined"
	}
	return strconv.FormatFloat(b.deg, 'f', -1, 64)
}

// MarshalText implements encoding.TextMarshaler, so log handlers and
// encoders render a Bearing the way String does.
func (b Bearing) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func validDegrees(deg float64) bool {
	return deg >= 0 && deg < 360
}

// bearingOf wraps a computed angle that is already normalized.
func bearingOf(deg float64) Bearing {
	return Bearing{deg: deg, defined: true}
}
