package latlon

import (
	"fmt"
	"strings"
)

// Calculator measures and projects along one kind of path.
type Calculator interface {
	DistanceTo(from, to LatLon) (float64, error)
	BearingTo(from, to LatLon) (float64, error)
	DistanceAndBearingTo(from, to LatLon) (float64, float64, error)
	Destination(from LatLon, bearing float64, distance float64) (LatLon, error)
}

// Haversine follows great circles, measuring with the haversine formula.
type Haversine struct{}

// Cosines follows great circles, measuring with the spherical law of
// cosines.
type Cosines struct{}

// Rhumb follows rhumb lines.
type Rhumb struct{}

// CalculatorFor returns the calculator registered under name.
func CalculatorFor(name string) (Calculator, error) {
	switch strings.ToLower(name) {
	case "", "haversine":
		return Haversine{}, nil
	case "cosines", "sloc":
		return Cosines{}, nil
	case "rhumb":
		return Rhumb{}, nil
	}
	return nil, fmt.Errorf("%w '%s'", ErrUnknownMethod, name)
}

func (Haversine) DistanceTo(from, to LatLon) (float64, error) {
	return DistanceHaversine(from, to)
}

func (Haversine) BearingTo(from, to LatLon) (float64, error) {
	return InitialBearing(from, to)
}

func (hav Haversine) DistanceAndBearingTo(from, to LatLon) (float64, float64, error) {
	d, err := hav.DistanceTo(from, to)
	if err != nil {
		return 0, 0, err
	}
	b, err := hav.BearingTo(from, to)
	if err != nil {
		return 0, 0, err
	}
	return d, b, nil
}

func (Haversine) Destination(from LatLon, bearing float64, distance float64) (LatLon, error) {
	return Destination(from, bearing, distance)
}

func (Cosines) DistanceTo(from, to LatLon) (float64, error) {
	return DistanceCosines(from, to)
}

func (Cosines) BearingTo(from, to LatLon) (float64, error) {
	return InitialBearing(from, to)
}

func (c Cosines) DistanceAndBearingTo(from, to LatLon) (float64, float64, error) {
	d, err := c.DistanceTo(from, to)
	if err != nil {
		return 0, 0, err
	}
	b, err := c.BearingTo(from, to)
	if err != nil {
		return 0, 0, err
	}
	return d, b, nil
}

func (Cosines) Destination(from LatLon, bearing float64, distance float64) (LatLon, error) {
	return Destination(from, bearing, distance)
}

func (Rhumb) DistanceTo(from, to LatLon) (float64, error) {
	return RhumbDistance(from, to)
}

func (Rhumb) BearingTo(from, to LatLon) (float64, error) {
	return RhumbBearing(from, to)
}

func (rh Rhumb) DistanceAndBearingTo(from, to LatLon) (float64, float64, error) {
	d, err := rh.DistanceTo(from, to)
	if err != nil {
		return 0, 0, err
	}
	b, err := rh.BearingTo(from, to)
	if err != nil {
		return 0, 0, err
	}
	return d, b, nil
}

func (Rhumb) Destination(from LatLon, bearing float64, distance float64) (LatLon, error) {
	return RhumbDestination(from, bearing, distance)
}
