package latlon

import (
	"fmt"
	"math"
)

const π = math.Pi

// R is the mean Earth radius in kilometers.
const R = 6371.0

type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (p LatLon) String() string {
	return fmt.Sprintf("(%f,%f)", p.Lat, p.Lon)
}

func toRadians(a float64) float64 {
	return a * π / 180.0
}

func toDegrees(a float64) float64 {
	return a * 180.0 / π
}

// wrap360 normalizes a bearing in degrees to [0, 360).
func wrap360(d float64) float64 {
	if 0.0 <= d && d < 360.0 {
		return d
	}
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	if d >= 360.0 {
		d = 0
	}
	return d
}

// wrap180 normalizes a longitude in degrees to (-180, 180].
func wrap180(d float64) float64 {
	if -180.0 < d && d <= 180.0 {
		return d
	}
	d = math.Mod(d+180.0, 360.0)
	if d <= 0 {
		d += 360.0
	}
	return d - 180.0
}

// clamp keeps inverse trigonometric arguments inside their domain when
// rounding pushes them slightly out of it.
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func round2(d float64) float64 {
	return math.Round(d*100) / 100
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
