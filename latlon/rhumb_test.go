package latlon

import (
	"math"
	"testing"
)

func TestRhumbDistance(t *testing.T) {
	p1 := LatLon{Lat: 51.127, Lon: 1.338}
	p2 := LatLon{Lat: 50.964, Lon: 1.853}
	d, err := RhumbDistance(p1, p2)
	if err != nil || math.Round(d*1000) != 40308 {
		t.Errorf("RhumbDistance(%v, %v) = %f, %v; want 40.308", p1, p2, d, err)
	}

	tests := []struct {
		p1, p2 LatLon
		want   float64
	}{
		{LatLon{Lat: 50.2150, Lon: 4.0925}, LatLon{Lat: 42.2104, Lon: 71.0227}, 5213.1549},
		// east-west line
		{LatLon{Lat: 45, Lon: 0}, LatLon{Lat: 45, Lon: 10}, 786.2669},
		// across the antimeridian
		{LatLon{Lat: 0, Lon: 170}, LatLon{Lat: 10, Lon: -170}, 2476.2749},
		{LatLon{Lat: 0, Lon: 0}, LatLon{Lat: 0, Lon: 0}, 0},
	}
	for _, tt := range tests {
		d, _ := RhumbDistance(tt.p1, tt.p2)
		if math.Abs(d-tt.want) > 0.0001 {
			t.Errorf("RhumbDistance(%v, %v) = %f; want %f", tt.p1, tt.p2, d, tt.want)
		}
	}
}

func TestRhumbDistanceNotShorterThanGreatCircle(t *testing.T) {
	var points []LatLon
	for lat := -80.0; lat <= 80; lat += 20 {
		for lon := -180.0; lon <= 180; lon += 30 {
			points = append(points, LatLon{Lat: lat, Lon: lon})
		}
	}
	for _, p1 := range points {
		for _, p2 := range points {
			rhumb, _ := RhumbDistance(p1, p2)
			hav, _ := DistanceHaversine(p1, p2)
			if math.IsNaN(rhumb) || rhumb < hav-1e-6 {
				t.Errorf("RhumbDistance(%v, %v) = %f; shorter than great circle %f", p1, p2, rhumb, hav)
			}
		}
	}
}

func TestRhumbBearing(t *testing.T) {
	p1 := LatLon{Lat: 51.127, Lon: 1.338}
	p2 := LatLon{Lat: 50.964, Lon: 1.853}
	b, err := RhumbBearing(p1, p2)
	if err != nil || math.Round(b*10)/10 != 116.7 {
		t.Errorf("RhumbBearing(%v, %v) = %f, %v; want 116.7", p1, p2, b, err)
	}

	tests := []struct {
		p1, p2 LatLon
		want   float64
	}{
		{LatLon{Lat: 50.2150, Lon: 4.0925}, LatLon{Lat: 42.2104, Lon: 71.0227}, 99.8306},
		{LatLon{Lat: 45, Lon: 0}, LatLon{Lat: 45, Lon: 10}, 90},
		{LatLon{Lat: 0, Lon: 170}, LatLon{Lat: 10, Lon: -170}, 63.3178},
		{LatLon{Lat: 0, Lon: -170}, LatLon{Lat: 10, Lon: 170}, 296.6822},
		{LatLon{Lat: 10, Lon: 0}, LatLon{Lat: -10, Lon: 0}, 180},
	}
	for _, tt := range tests {
		b, _ := RhumbBearing(tt.p1, tt.p2)
		if math.Abs(b-tt.want) > 0.0001 {
			t.Errorf("RhumbBearing(%v, %v) = %f; want %f", tt.p1, tt.p2, b, tt.want)
		}
	}
}

func TestRhumbDestination(t *testing.T) {
	p1 := LatLon{Lat: 51.127, Lon: 1.338}
	p2, err := RhumbDestination(p1, 116.7, 40.3)
	if err != nil || math.Round(p2.Lat*10000)/10000 != 50.9642 || math.Round(p2.Lon*10000)/10000 != 1.8530 {
		t.Errorf("RhumbDestination(%v, 116.7, 40.3) = %v, %v; want (50.9642,1.8530)", p1, p2, err)
	}

	p1 = LatLon{Lat: 51.0732, Lon: 1.2017}
	p2, _ = RhumbDestination(p1, 116.3810, 40.23)
	if p2.Lat >= p1.Lat || p2.Lon <= p1.Lon {
		t.Errorf("RhumbDestination(%v, 116.3810, 40.23) = %v; want south east of start", p1, p2)
	}
	if math.Abs(p2.Lat-50.9124) > 0.0001 || math.Abs(p2.Lon-1.7167) > 0.0001 {
		t.Errorf("RhumbDestination(%v, 116.3810, 40.23) = %v; want (50.9124,1.7167)", p1, p2)
	}
}

func TestRhumbDestinationEdges(t *testing.T) {
	// due east, Δψ = 0
	p1 := LatLon{Lat: 45, Lon: 0}
	p2, _ := RhumbDestination(p1, 90, 786.266866639082)
	if math.Abs(p2.Lat-45) > 1e-9 || math.Abs(p2.Lon-10) > 1e-9 {
		t.Errorf("RhumbDestination(%v, 90, 786.2669) = %v; want (45,10)", p1, p2)
	}

	// over the north pole
	p1 = LatLon{Lat: 80, Lon: 0}
	p2, _ = RhumbDestination(p1, 0, 2000)
	if math.Abs(p2.Lat-82.0136) > 0.0001 || math.IsNaN(p2.Lon) {
		t.Errorf("RhumbDestination(%v, 0, 2000) = %v; want (82.0136,0)", p1, p2)
	}

	// from a pole
	p1 = LatLon{Lat: -90, Lon: 0}
	p2, _ = RhumbDestination(p1, 90, 100)
	if math.IsNaN(p2.Lat) || math.IsNaN(p2.Lon) {
		t.Errorf("RhumbDestination(%v, 90, 100) = %v; want a finite point", p1, p2)
	}

	// across the antimeridian
	p1 = LatLon{Lat: 0, Lon: 179}
	p2, _ = RhumbDestination(p1, 90, R*toRadians(2))
	if math.Abs(p2.Lon+179) > 1e-9 {
		t.Errorf("RhumbDestination(%v, 90, 2°) = %v; want (0,-179)", p1, p2)
	}
}

func TestRhumbRoundTrip(t *testing.T) {
	tests := []struct {
		p1, p2 LatLon
	}{
		{LatLon{Lat: 50.2150, Lon: 4.0925}, LatLon{Lat: 42.2104, Lon: 71.0227}},
		{LatLon{Lat: 0, Lon: 170}, LatLon{Lat: 10, Lon: -170}},
		{LatLon{Lat: -33.9, Lon: 18.4}, LatLon{Lat: 40.7, Lon: -74}},
	}
	for _, tt := range tests {
		b, _ := RhumbBearing(tt.p1, tt.p2)
		d, _ := RhumbDistance(tt.p1, tt.p2)
		p, _ := RhumbDestination(tt.p1, b, d)
		if math.Abs(p.Lat-tt.p2.Lat) > 1e-6 || math.Abs(p.Lon-tt.p2.Lon) > 1e-6 {
			t.Errorf("RhumbDestination(%v, %f, %f) = %v; want %v", tt.p1, b, d, p, tt.p2)
		}
	}
}

func TestRhumbMidpoint(t *testing.T) {
	tests := []struct {
		p1, p2 LatLon
		want   LatLon
	}{
		{LatLon{Lat: 50.2150, Lon: 4.0925}, LatLon{Lat: 42.2104, Lon: 71.0227}, LatLon{Lat: 46.2127, Lon: 38.7796}},
		// parallel of latitude
		{LatLon{Lat: 10, Lon: 20}, LatLon{Lat: 10, Lon: 40}, LatLon{Lat: 10, Lon: 30}},
		// across the antimeridian
		{LatLon{Lat: 10, Lon: 170}, LatLon{Lat: 20, Lon: -170}, LatLon{Lat: 15, Lon: 179.8829}},
		{LatLon{Lat: 10, Lon: -170}, LatLon{Lat: 20, Lon: 170}, LatLon{Lat: 15, Lon: -179.8829}},
		{LatLon{Lat: 0, Lon: 170}, LatLon{Lat: 60, Lon: -170}, LatLon{Lat: 30, Lon: 178.3420}},
	}
	for _, tt := range tests {
		m, err := RhumbMidpoint(tt.p1, tt.p2)
		if err != nil || math.Abs(m.Lat-tt.want.Lat) > 0.0001 || math.Abs(m.Lon-tt.want.Lon) > 0.0001 {
			t.Errorf("RhumbMidpoint(%v, %v) = %v, %v; want %v", tt.p1, tt.p2, m, err, tt.want)
		}
	}
}

// The midpoint must lie on the rhumb line, whichever way it crosses the
// antimeridian.
func TestRhumbMidpointOnLine(t *testing.T) {
	tests := []struct {
		p1, p2 LatLon
	}{
		{LatLon{Lat: 10, Lon: 170}, LatLon{Lat: 20, Lon: -170}},
		{LatLon{Lat: 10, Lon: -170}, LatLon{Lat: 20, Lon: 170}},
		{LatLon{Lat: 0, Lon: 170}, LatLon{Lat: 60, Lon: -170}},
		{LatLon{Lat: 60, Lon: -170}, LatLon{Lat: 0, Lon: 170}},
		{LatLon{Lat: 50.2150, Lon: 4.0925}, LatLon{Lat: 42.2104, Lon: 71.0227}},
	}
	for _, tt := range tests {
		m, _ := RhumbMidpoint(tt.p1, tt.p2)
		want, _ := RhumbBearing(tt.p1, tt.p2)
		b, _ := RhumbBearing(tt.p1, m)
		if math.Abs(b-want) > 1e-6 {
			t.Errorf("RhumbBearing(%v, RhumbMidpoint(%v, %v)) = %f; want %f", tt.p1, tt.p1, tt.p2, b, want)
		}
		d, _ := RhumbDistance(tt.p1, tt.p2)
		half, _ := RhumbDistance(tt.p1, m)
		if math.Abs(half-d/2) > 1e-6 {
			t.Errorf("RhumbDistance(%v, RhumbMidpoint(%v, %v)) = %f; want %f", tt.p1, tt.p1, tt.p2, half, d/2)
		}
	}
}

func TestRhumbDestinationOverPole(t *testing.T) {
	p1 := LatLon{Lat: 80, Lon: 0}
	p2, _ := RhumbDestination(p1, 30, 3000)
	// continues as the parallel at 80°: Δλ = δ·sin θ / cos φ1
	δ := 3000 / R
	want := wrap180(toDegrees(δ * math.Sin(toRadians(30)) / math.Cos(toRadians(80))))
	if math.IsNaN(p2.Lat) || math.Abs(p2.Lon-want) > 1e-9 {
		t.Errorf("RhumbDestination(%v, 30, 3000) = %v; want longitude %f", p1, p2, want)
	}
}
