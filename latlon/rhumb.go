package latlon

import "math"

// RhumbDistance returns the distance in km from -> to travelling along a
// rhumb line (constant bearing).
func RhumbDistance(from, to LatLon) (float64, error) {
	if err := Validate(from, to); err != nil {
		return 0, err
	}

	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δφ := φ2 - φ1
	Δλ := shorterLon(toRadians(to.Lon - from.Lon))

	q := stretch(Δφ, deltaPsi(φ1, φ2), φ1)
	δ := math.Sqrt(Δφ*Δφ + q*q*Δλ*Δλ)

	return δ * R, nil
}

// RhumbBearing returns the constant bearing in [0, 360) of the rhumb line
// from -> to.
func RhumbBearing(from, to LatLon) (float64, error) {
	if err := Validate(from, to); err != nil {
		return 0, err
	}

	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δλ := shorterLon(toRadians(to.Lon - from.Lon))

	θ := math.Atan2(Δλ, deltaPsi(φ1, φ2))

	return wrap360(toDegrees(θ)), nil
}

// RhumbDestination returns the point reached after travelling dist km from
// along the rhumb line of bearing brng (degrees). Paths running over a pole
// come back down on the other side.
func RhumbDestination(from LatLon, brng float64, dist float64) (LatLon, error) {
	if err := Validate(from); err != nil {
		return LatLon{}, err
	}

	δ := dist / R
	φ1 := toRadians(from.Lat)
	λ1 := toRadians(from.Lon)
	θ := toRadians(brng)

	Δφ := δ * math.Cos(θ)
	φ2 := φ1 + Δφ

	q := stretch(Δφ, deltaPsi(φ1, φ2), φ1)
	// A rhumb line never reaches the pole. Past it Δψ is undefined and the
	// path is continued as a parallel, q = cos φ1.
	if math.Abs(φ2) > π/2 {
		q = math.Cos(φ1)
	}
	Δλ := δ * math.Sin(θ) / q
	// starting on a pole, every longitude is the same point
	if !isFinite(Δλ) {
		Δλ = 0
	}

	if math.Abs(φ2) > π/2 {
		if φ2 > 0 {
			φ2 = π - φ2
		} else {
			φ2 = -π - φ2
		}
	}

	λ2 := λ1 + Δλ

	return LatLon{Lat: toDegrees(φ2), Lon: wrap180(toDegrees(λ2))}, nil
}

// RhumbMidpoint returns the loxodromic midpoint between two points.
func RhumbMidpoint(from, to LatLon) (LatLon, error) {
	if err := Validate(from, to); err != nil {
		return LatLon{}, err
	}

	φ1 := toRadians(from.Lat)
	λ1 := toRadians(from.Lon)
	φ2 := toRadians(to.Lat)
	λ2 := toRadians(to.Lon)

	// crossing the antimeridian
	if λ2-λ1 > π {
		λ1 += 2 * π
	} else if λ2-λ1 < -π {
		λ1 -= 2 * π
	}

	φ3 := (φ1 + φ2) / 2
	f1 := math.Tan(π/4 + φ1/2)
	f2 := math.Tan(π/4 + φ2/2)
	f3 := math.Tan(π/4 + φ3/2)

	λ3 := ((λ2-λ1)*math.Log(f3) + λ1*math.Log(f2) - λ2*math.Log(f1)) / math.Log(f2/f1)
	// parallel of latitude
	if !isFinite(λ3) {
		λ3 = (λ1 + λ2) / 2
	}

	return LatLon{Lat: toDegrees(φ3), Lon: wrap180(toDegrees(λ3))}, nil
}

// deltaPsi is the difference of the Mercator projected latitudes.
func deltaPsi(φ1, φ2 float64) float64 {
	Δψ := math.Log(math.Tan(φ2/2+π/4) / math.Tan(φ1/2+π/4))
	// both points on the same pole
	if math.IsNaN(Δψ) {
		return 0
	}
	return Δψ
}

// stretch returns the q factor of the rhumb line. An east-west line gives
// Δψ = 0, in which case q is cos φ1.
func stretch(Δφ, Δψ, φ1 float64) float64 {
	q := Δφ / Δψ
	if !isFinite(q) {
		return math.Cos(φ1)
	}
	return q
}

// shorterLon takes the shorter rhumb across the antimeridian when |Δλ| > π.
func shorterLon(Δλ float64) float64 {
	if math.Abs(Δλ) > π {
		if Δλ > 0 {
			return -(2*π - Δλ)
		}
		return 2*π + Δλ
	}
	return Δλ
}
