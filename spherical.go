// Spherical routines for the coordinate transforms
//
// Copyright (c) Joshua Baker (2021) and licensed under the MIT License.
//
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */
/* Latitude/longitude spherical geodesy tools   (c) Chris Veness 2002-2019 */
/*                                                             MIT Licence */
/* www.movable-type.co.uk/scripts/latlong.html                             */
/* www.movable-type.co.uk/scripts/geodesy-library.html#latlon-spherical    */
/* - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - */

package coordtran

import "math"

const radians = math.Pi / 180
const degrees = 180 / math.Pi

// centralAngle is the angle subtended at the center of the sphere by the
// two points (radians).
func centralAngle(p1, p2 Point) float64 {
	// haversine formula
	φ1 := p1.Lat * radians
	λ1 := p1.Lon * radians
	φ2 := p2.Lat * radians
	λ2 := p2.Lon * radians
	Δφ := φ2 - φ1
	Δλ := λ2 - λ1
	sΔφ2 := math.Sin(Δφ / 2)
	sΔλ2 := math.Sin(Δλ / 2)
	haver := sΔφ2*sΔφ2 + math.Cos(φ1)*math.Cos(φ2)*sΔλ2*sΔλ2
	haver = math.Max(0, math.Min(1, haver))
	return 2 * math.Atan2(math.Sqrt(haver), math.Sqrt(1-haver))
}

// initialBearing is in [0, 360). Callers rule out identical points and
// pole-to-pole pairs first, where the result would be atan2 noise.
func initialBearing(p1, p2 Point) float64 {
	// tanθ = sinΔλ⋅cosφ2 / cosφ1⋅sinφ2 − sinφ1⋅cosφ2⋅cosΔλ
	// see mathforum.org/library/drmath/view/55417.html for derivation
	φ1 := p1.Lat * radians
	φ2 := p2.Lat * radians
	Δλ := (p2.Lon - p1.Lon) * radians
	y := math.Sin(Δλ) * math.Cos(φ2)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	θ := math.Atan2(y, x)
	return wrap360(θ * degrees)
}

func destination(radius float64, p1 Point, km, bearingDegrees float64) Point {
	// sinφ2 = sinφ1⋅cosδ + cosφ1⋅sinδ⋅cosθ
	// tanΔλ = sinθ⋅sinδ⋅cosφ1 / cosδ−sinφ1⋅sinφ2
	// see mathforum.org/library/drmath/view/52049.html for derivation
	δ := km / radius
	θ := bearingDegrees * radians
	φ1 := p1.Lat * radians
	λ1 := p1.Lon * radians
	sφ2 := math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ)
	φ2 := math.Asin(math.Max(-1, math.Min(1, sφ2)))
	var λ2 float64
	switch p1.Lat {
	case 90:
		// cosφ1 is zero here; every bearing points south along the
		// meridian λ1 + π − θ
		λ2 = λ1 + math.Pi - θ
	case -90:
		λ2 = λ1 + θ
	default:
		λ2 = λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1),
			math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))
	}
	return Point{Lon: wrap180(λ2 * degrees), Lat: φ2 * degrees}
}

// wrap360 normalizes to [0, 360).
func wrap360(degs float64) float64 {
	return math.Mod(math.Mod(degs, 360)+360, 360)
}

// wrap180 normalizes to [-180, 180). Input must be above -540.
func wrap180(degs float64) float64 {
	return math.Mod(degs+540, 360) - 180
}
