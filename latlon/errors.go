package latlon

import (
	"errors"
	"math"
)

// LatitudeRangeError is returned when a latitude lies outside [-90, 90].
type LatitudeRangeError struct {
	Lat float64
}

func (e *LatitudeRangeError) Error() string {
	return "Latitude exceeds the range (-90 .. 90)"
}

// LongitudeRangeError is returned when a longitude lies outside [-180, 180].
type LongitudeRangeError struct {
	Lon float64
}

func (e *LongitudeRangeError) Error() string {
	return "Longitude exceeds the range (-180 .. 180)"
}

// ErrUnknownMethod is returned by CalculatorFor for an unsupported name.
var ErrUnknownMethod = errors.New("unknown calculation method")

func IsLatitudeRange(err error) bool {
	var e *LatitudeRangeError
	return errors.As(err, &e)
}

func IsLongitudeRange(err error) bool {
	var e *LongitudeRangeError
	return errors.As(err, &e)
}

// Validate checks every point. All latitudes are checked before any
// longitude, so a latitude violation wins when both kinds are present.
func Validate(points ...LatLon) error {
	for _, p := range points {
		if p.Lat > 90 || p.Lat < -90 || math.IsNaN(p.Lat) {
			return &LatitudeRangeError{Lat: p.Lat}
		}
	}
	for _, p := range points {
		if p.Lon > 180 || p.Lon < -180 || math.IsNaN(p.Lon) {
			return &LongitudeRangeError{Lon: p.Lon}
		}
	}
	return nil
}
