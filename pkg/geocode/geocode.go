package geocode

import "errors"

// ErrNoMatch means the geocoder could not resolve the address to a point on
// Earth.
var ErrNoMatch = errors.New("no coordinates found for address")

type Client interface {
	Geocode(address string) (Point, error)
}

// Point is a pair of coordinates in decimal degrees.
type Point struct {
	Latitude  float64
	Longitude float64
}
