package latlon

import "math"

// ε absorbs the rounding left in sin α when both paths follow the same
// great circle.
const ε = 1e-12

// DistanceHaversine returns the great-circle distance in km between two
// points using the haversine formula.
func DistanceHaversine(from, to LatLon) (float64, error) {
	if err := Validate(from, to); err != nil {
		return 0, err
	}

	return R * angularDistance(from, to), nil
}

func angularDistance(from, to LatLon) float64 {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δφ := φ2 - φ1

	Δλ := toRadians(to.Lon - from.Lon)

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	a = clamp(a, 0, 1)

	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// DistanceCosines returns the great-circle distance in km between two
// points using the spherical law of cosines. It loses precision for short
// distances; DistanceHaversine is preferred.
func DistanceCosines(from, to LatLon) (float64, error) {
	if err := Validate(from, to); err != nil {
		return 0, err
	}

	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δλ := toRadians(to.Lon - from.Lon)

	δ := math.Acos(clamp(math.Sin(φ1)*math.Sin(φ2)+math.Cos(φ1)*math.Cos(φ2)*math.Cos(Δλ), -1, 1))

	return δ * R, nil
}

func bearing(from, to LatLon) float64 {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)

	Δλ := toRadians(to.Lon - from.Lon)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	y := math.Sin(Δλ) * math.Cos(φ2)
	θ := math.Atan2(y, x)

	return toDegrees(θ)
}

// InitialBearing returns the compass heading in [0, 360) when leaving from
// toward to along the great circle.
func InitialBearing(from, to LatLon) (float64, error) {
	if err := Validate(from, to); err != nil {
		return 0, err
	}

	return wrap360(bearing(from, to)), nil
}

// FinalBearing returns the initial bearing from -> to shifted by 180°, in
// [0, 360). It is not the bearing obtained by reversing the path.
func FinalBearing(from, to LatLon) (float64, error) {
	if err := Validate(from, to); err != nil {
		return 0, err
	}

	return math.Mod(bearing(from, to)+180, 360), nil
}

// Midpoint returns the half-way point along the great circle between two
// points, rounded to 2 decimal places.
func Midpoint(from, to LatLon) (LatLon, error) {
	if err := Validate(from, to); err != nil {
		return LatLon{}, err
	}

	φ1 := toRadians(from.Lat)
	λ1 := toRadians(from.Lon)
	φ2 := toRadians(to.Lat)
	Δλ := toRadians(to.Lon - from.Lon)

	bx := math.Cos(φ2) * math.Cos(Δλ)
	by := math.Cos(φ2) * math.Sin(Δλ)

	φ3 := math.Atan2(math.Sin(φ1)+math.Sin(φ2), math.Sqrt((math.Cos(φ1)+bx)*(math.Cos(φ1)+bx)+by*by))
	λ3 := λ1 + math.Atan2(by, math.Cos(φ1)+bx)

	lon := round2(wrap180(toDegrees(λ3)))
	if lon == -180 {
		lon = 180
	}

	return LatLon{Lat: round2(toDegrees(φ3)), Lon: lon}, nil
}

// Destination returns the point reached after travelling dist km from
// along the great circle starting on bearing brng (degrees).
func Destination(from LatLon, brng float64, dist float64) (LatLon, error) {
	if err := Validate(from); err != nil {
		return LatLon{}, err
	}

	return destination(from, brng, dist/R), nil
}

func destination(from LatLon, brng float64, δ float64) LatLon {
	φ1 := toRadians(from.Lat)
	λ1 := toRadians(from.Lon)
	θ := toRadians(brng)

	φ2 := math.Asin(clamp(math.Sin(φ1)*math.Cos(δ)+math.Cos(φ1)*math.Sin(δ)*math.Cos(θ), -1, 1))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1), math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))

	return LatLon{Lat: toDegrees(φ2), Lon: wrap180(toDegrees(λ2))}
}

// Intersection returns the point where the great circle leaving p1 on
// brng1 crosses the one leaving p2 on brng2. ok is false when there is no
// single crossing ahead of both points: the points coincide, both paths
// run along the same great circle, or the crossing lies behind a start
// point.
func Intersection(p1 LatLon, brng1 float64, p2 LatLon, brng2 float64) (_ LatLon, ok bool, _ error) {
	if err := Validate(p1, p2); err != nil {
		return LatLon{}, false, err
	}

	φ1 := toRadians(p1.Lat)
	λ1 := toRadians(p1.Lon)
	φ2 := toRadians(p2.Lat)
	λ2 := toRadians(p2.Lon)
	θ13 := toRadians(brng1)
	θ23 := toRadians(brng2)

	δ12 := angularDistance(p1, p2)
	if δ12 == 0 {
		return LatLon{}, false, nil
	}

	θa := course(math.Sin(φ2)-math.Sin(φ1)*math.Cos(δ12), math.Sin(δ12)*math.Cos(φ1))
	θb := course(math.Sin(φ1)-math.Sin(φ2)*math.Cos(δ12), math.Sin(δ12)*math.Cos(φ2))

	var θ12, θ21 float64
	if math.Sin(λ2-λ1) > 0 {
		θ12 = θa
		θ21 = 2*π - θb
	} else {
		θ12 = 2*π - θa
		θ21 = θb
	}

	α1 := floorMod(θ13-θ12+π, 2*π) - π
	α2 := floorMod(θ21-θ23+π, 2*π) - π

	// infinite intersections
	if math.Abs(math.Sin(α1)) < ε && math.Abs(math.Sin(α2)) < ε {
		return LatLon{}, false, nil
	}
	// ambiguous intersection
	if math.Sin(α1)*math.Sin(α2) < 0 {
		return LatLon{}, false, nil
	}

	α3 := math.Acos(clamp(-math.Cos(α1)*math.Cos(α2)+math.Sin(α1)*math.Sin(α2)*math.Cos(δ12), -1, 1))
	δ13 := math.Atan2(math.Sin(δ12)*math.Sin(α1)*math.Sin(α2), math.Cos(α2)+math.Cos(α1)*math.Cos(α3))

	φ3 := math.Asin(clamp(math.Sin(φ1)*math.Cos(δ13)+math.Cos(φ1)*math.Sin(δ13)*math.Cos(θ13), -1, 1))
	Δλ13 := math.Atan2(math.Sin(θ13)*math.Sin(δ13)*math.Cos(φ1), math.Cos(δ13)-math.Sin(φ1)*math.Sin(φ3))
	λ3 := λ1 + Δλ13

	return LatLon{Lat: toDegrees(φ3), Lon: wrap180(toDegrees(λ3))}, true, nil
}

// course returns acos(num/den). A vanishing denominator means one point
// sits on a pole or the points are antipodal; the course is then
// undefined and taken as 0.
func course(num, den float64) float64 {
	c := num / den
	if !isFinite(c) {
		return 0
	}
	return math.Acos(clamp(c, -1, 1))
}

func floorMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m < 0 {
		m += b
	}
	return m
}
