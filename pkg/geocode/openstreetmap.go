package geocode

import (
	"fmt"

	"github.com/codingsince1985/geo-golang"
	"github.com/codingsince1985/geo-golang/openstreetmap"
)

func NewOpenstreetmapClient() *oc {
	geocoder := openstreetmap.Geocoder()
	return &oc{geocoder: geocoder}
}

type oc struct {
	geocoder geo.Geocoder
}

var _ Client = (*oc)(nil)

func (c *oc) Geocode(address string) (Point, error) {
	location, err := c.geocoder.Geocode(address)
	if err != nil {
		return Point{}, fmt.Errorf("geocoding %q: %w", address, err)
	}

	// geo-golang signals "no result" with a nil location, not an error.
	if location == nil {
		return Point{}, fmt.Errorf("%w: %q", ErrNoMatch, address)
	}

	return Point{Latitude: location.Lat, Longitude: location.Lng}, nil
}
