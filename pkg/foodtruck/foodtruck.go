// package foodtruck holds the domain types and the client for the remote
// food-truck scheduling service.
package foodtruck

import (
	"strings"
	"time"
)

type Client interface {
	Locations() ([]Location, error)
	Events(locationUID int) ([]Event, error)
}

// Location is a physical site where food trucks may be scheduled. Values are
// immutable once decoded from the remote service; locations are unique by UID.
type Location struct {
	UID       int
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

// Truck is a single vendor booking. It has no identity beyond display.
type Truck struct {
	Name           string
	FoodCategories []string
}

// Style returns the truck's cuisine categories as a single English phrase,
// e.g. "Burgers, BBQ, and Vegan".
func (t Truck) Style() string {
	return humanizeList(t.FoodCategories)
}

// Event is a scheduled slot at a location with the trucks booked for it.
type Event struct {
	StartTime time.Time
	Trucks    []Truck
}

// humanizeList joins items grammatically. Lists longer than two get an
// Oxford comma, of course.
func humanizeList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		joined := make([]string, len(items))
		copy(joined, items)
		joined[len(joined)-1] = "and " + joined[len(joined)-1]
		return strings.Join(joined, ", ")
	}
}
