package coordtran

import "math"

// EarthRadiusKm is the mean Earth radius (kilometers).
const EarthRadiusKm = 6371.0

// Earth is a pre-initialized sphere with the mean Earth radius.
var Earth = NewSphere(EarthRadiusKm)

// Sphere is an object for converting between geodetic points and
// range/bearing pairs on a sphere of fixed radius.
//
// A Sphere is immutable and safe for concurrent use.
type Sphere struct {
	radius float64
}

// NewSphere initializes a new sphere.
//
// Param radius is the sphere radius (kilometers).
//
// The Earth package-level variable is a pre-initialized sphere
// representing Earth.
func NewSphere(radius float64) *Sphere {
	return &Sphere{radius: radius}
}

// Radius of the Sphere
func (s *Sphere) Radius() float64 {
	return s.radius
}

// HalfCircumference is the great-circle distance between antipodal points,
// such as pole to pole.
func (s *Sphere) HalfCircumference() float64 {
	return s.radius * math.Pi
}

// G2R converts two geodetic points into the great-circle range and the
// initial bearing from initial toward final (geodetic-to-radar).
//
// Param initial is the start point (degrees).
// Param final is the end point (degrees).
//
// Both points should be valid, see Point.Validate. The returned range is in
// kilometers. The bearing is in [0, 360), or Undetermined when the points
// are identical or both lie on a pole.
func (s *Sphere) G2R(initial, final Point) RangeBearing {
	if initial == final {
		return RangeBearing{RangeKm: 0, Bearing: Undetermined}
	}
	rng := s.radius * centralAngle(initial, final)
	if initial.AtPole() && final.AtPole() {
		return RangeBearing{RangeKm: rng, Bearing: Undetermined}
	}
	return RangeBearing{RangeKm: rng, Bearing: bearingOf(initialBearing(initial, final))}
}

// R2G solves for the point reached by travelling rb.RangeKm kilometers from
// initial along the great circle leaving at rb.Bearing (radar-to-geodetic).
//
// Param initial is the start point (degrees).
// Param rb is the range (kilometers) and initial bearing.
//
// A zero range returns initial whatever the bearing. From a pole, a range of
// exactly HalfCircumference returns the opposite pole at the same longitude.
// Those are the only cases that accept an Undetermined bearing; any other
// use fails with ErrUndeterminedBearing. The returned longitude is in
// [-180, 180).
func (s *Sphere) R2G(initial Point, rb RangeBearing) (Point, error) {
	if err := initial.check("r2g"); err != nil {
		return Point{}, err
	}
	if math.IsNaN(rb.RangeKm) || math.IsInf(rb.RangeKm, 0) || rb.RangeKm < 0 {
		return Point{}, inputError("r2g", "range", rb.RangeKm, ErrInvalidRange)
	}
	deg, defined := rb.Bearing.Degrees()
	if defined && !validDegrees(deg) {
		return Point{}, inputError("r2g", "bearing", deg, ErrInvalidBearing)
	}

	if rb.RangeKm == 0 {
		return initial, nil
	}
	if initial.AtPole() && rb.RangeKm == s.HalfCircumference() {
		return Point{Lon: initial.Lon, Lat: -initial.Lat}, nil
	}
	if !defined {
		return Point{}, inputError("r2g", "bearing", UndeterminedValue, ErrUndeterminedBearing)
	}
	return destination(s.radius, initial, rb.RangeKm, deg), nil
}

// G2R converts two points using the Earth sphere. See Sphere.G2R.
func G2R(initial, final Point) RangeBearing {
	return Earth.G2R(initial, final)
}

// R2G projects a point using the Earth sphere. See Sphere.R2G.
func R2G(initial Point, rb RangeBearing) (Point, error) {
	return Earth.R2G(initial, rb)
}
