package coordtran

import "fmt"

// Point is a geodetic position in decimal degrees.
// Valid points have Lon in [-180, 180) and Lat in [-90, 90].
type Point struct {
	Lon float64
	Lat float64
}

// Validate returns an *InputError wrapping ErrInvalidPoint when either
// coordinate is out of range or NaN.
func (p Point) Validate() error {
	return p.check("point")
}

func (p Point) check(op string) error {
	if !(p.Lon >= -180 && p.Lon < 180) {
		return inputError(op, "lon", p.Lon, ErrInvalidPoint)
	}
	if !(p.Lat >= -90 && p.Lat <= 90) {
		return inputError(op, "lat", p.Lat, ErrInvalidPoint)
	}
	return nil
}

// AtPole reports whether the point sits exactly on either pole.
func (p Point) AtPole() bool {
	return p.Lat == 90 || p.Lat == -90
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.Lon, p.Lat)
}

// RangeBearing is a great-circle range in kilometers together with the
// initial bearing from the start point.
type RangeBearing struct {
	RangeKm float64
	Bearing Bearing
}
