package model

import "github.com/a-bouts/geo-server/latlon"

type Distance struct {
	Method   string  `json:"method"`
	Distance float64 `json:"distance"`
}

type Bearing struct {
	Method  string  `json:"method"`
	Bearing float64 `json:"bearing"`
}

type Intersection struct {
	Found bool           `json:"found"`
	Point *latlon.LatLon `json:"point,omitempty"`
}

type Error struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
