package msg_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"truckctl/pkg/foodtruck"
	"truckctl/pkg/msg"
	"truckctl/pkg/proximity"
)

func TestLocationsTable(t *testing.T) {
	got := msg.LocationsTable([]foodtruck.Location{
		{UID: 69, Name: "Pioneer Building", Address: "600 1st Ave, Seattle, WA"},
		{UID: 70, Name: "Westlake Park", Address: "401 Pine St, Seattle, WA"},
	})

	assert.Contains(t, got, "UID")
	assert.Contains(t, got, "69")
	assert.Contains(t, got, "Pioneer Building")
	assert.Contains(t, got, "401 Pine St, Seattle, WA")
}

func TestRankedTableOrdersRowsAsGiven(t *testing.T) {
	got := msg.RankedTable([]proximity.RankedLocation{
		{Miles: 0.07, Location: foodtruck.Location{UID: 69, Name: "Pioneer Building"}},
		{Miles: 1.62, Location: foodtruck.Location{UID: 70, Name: "Westlake Park"}},
	})

	assert.Contains(t, got, "0.07")
	assert.Contains(t, got, "1.62")
	assert.Less(t,
		strings.Index(got, "Pioneer Building"),
		strings.Index(got, "Westlake Park"))
}

func TestTrucksTable(t *testing.T) {
	got := msg.TrucksTable([]foodtruck.Truck{
		{Name: "El Camion", FoodCategories: []string{"Mexican", "Tacos"}},
	})

	assert.Contains(t, got, "El Camion")
	assert.Contains(t, got, "Mexican and Tacos")
}

func TestNearestMessage(t *testing.T) {
	got := msg.NearestMessage(foodtruck.Location{
		UID:     69,
		Name:    "Pioneer Building",
		Address: "600 1st Ave, Seattle, WA",
	})

	assert.Equal(t, "Your nearest food-truck location is Pioneer Building at 600 1st Ave, Seattle, WA (uid 69).", got)
}
