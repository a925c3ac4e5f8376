// package proximity ranks food-truck locations by their great-circle
// distance from a query address. All distances are in statute miles.
package proximity

import (
	"fmt"
	"math"
	"sort"

	"truckctl/pkg/directory"
	"truckctl/pkg/foodtruck"
	"truckctl/pkg/geocode"
)

const earthRadiusMiles = 3959.0

// Miles returns the haversine distance between two points in statute miles.
func Miles(a, b geocode.Point) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	latDist := radians(b.Latitude - a.Latitude)
	longDist := radians(b.Longitude - a.Longitude)

	h := math.Pow(math.Sin(latDist/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(longDist/2), 2)

	// Rounding can push h fractionally above 1 for near-antipodal points,
	// which would send Asin(Sqrt(h)) to NaN.
	h = math.Min(h, 1)

	return 2 * earthRadiusMiles * math.Asin(math.Sqrt(h))
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

type RankedLocation struct {
	Miles    float64
	Location foodtruck.Location
}

func NewRanker(d *directory.Directory, g geocode.Client) *Ranker {
	return &Ranker{directory: d, geocoder: g}
}

type Ranker struct {
	directory *directory.Directory
	geocoder  geocode.Client
}

// RankByDistance geocodes the address and returns every directory location
// sorted ascending by distance from it. Locations at equal distance keep
// their directory order.
func (r *Ranker) RankByDistance(address string) ([]RankedLocation, error) {
	point, err := r.geocoder.Geocode(address)
	if err != nil {
		return nil, err
	}

	return r.RankByPoint(point)
}

// RankByPoint is RankByDistance for callers that already have coordinates.
func (r *Ranker) RankByPoint(point geocode.Point) ([]RankedLocation, error) {
	locations, err := r.directory.All()
	if err != nil {
		return nil, err
	}

	ranked := make([]RankedLocation, 0, len(locations))
	for _, l := range locations {
		ranked = append(ranked, RankedLocation{
			Miles:    Miles(point, geocode.Point{Latitude: l.Latitude, Longitude: l.Longitude}),
			Location: l,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Miles < ranked[j].Miles
	})

	return ranked, nil
}

// Nearest returns the single closest location to the address.
func (r *Ranker) Nearest(address string) (foodtruck.Location, error) {
	ranked, err := r.RankByDistance(address)
	if err != nil {
		return foodtruck.Location{}, err
	}

	if len(ranked) == 0 {
		return foodtruck.Location{}, fmt.Errorf("%w: the directory has no locations", directory.ErrNotFound)
	}

	return ranked[0].Location, nil
}
