package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truckctl/pkg/directory"
	"truckctl/pkg/foodtruck"
)

type fakeFetcher struct {
	locations []foodtruck.Location
}

func (f *fakeFetcher) Locations() ([]foodtruck.Location, error) {
	return f.locations, nil
}

type fakeEventsClient struct {
	calls  int
	events []foodtruck.Event
	err    error
}

func (c *fakeEventsClient) Events(locationUID int) ([]foodtruck.Event, error) {
	c.calls++
	return c.events, c.err
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

// newLookup builds a Lookup over a single-location directory with the clock
// pinned to late evening Seattle time, when UTC has already rolled into the
// next day.
func newLookup(t *testing.T, events *fakeEventsClient) *Lookup {
	t.Helper()

	dir := directory.New(&fakeFetcher{locations: []foodtruck.Location{
		{UID: 69, Name: "Pioneer Building"},
	}})

	lookup := NewLookup(dir, events)
	lookup.now = func() time.Time {
		return mustParse(t, "2026-08-30T23:00:00-07:00")
	}

	return lookup
}

func TestTrucksOnFiltersByServiceDay(t *testing.T) {
	events := &fakeEventsClient{events: []foodtruck.Event{
		{
			StartTime: mustParse(t, "2026-08-29T11:00:00-07:00"),
			Trucks:    []foodtruck.Truck{{Name: "Yesterday's Truck"}},
		},
		{
			StartTime: mustParse(t, "2026-08-30T11:00:00-07:00"),
			Trucks:    []foodtruck.Truck{{Name: "El Camion"}, {Name: "Sam Choy's"}},
		},
		{
			// expressed in UTC it is already Aug 31st, but it is still the
			// 30th in Seattle
			StartTime: mustParse(t, "2026-08-31T05:00:00Z"),
			Trucks:    []foodtruck.Truck{{Name: "Night Owl"}},
		},
		{
			StartTime: mustParse(t, "2026-08-31T11:00:00-07:00"),
			Trucks:    []foodtruck.Truck{{Name: "Tomorrow's Truck"}},
		},
	}}

	testCases := []struct {
		desc string
		day  Day
		want []string
	}{
		{
			desc: "today spans the whole Seattle calendar day",
			day:  Today,
			want: []string{"El Camion", "Sam Choy's", "Night Owl"},
		},
		{
			desc: "tomorrow",
			day:  Tomorrow,
			want: []string{"Tomorrow's Truck"},
		},
		{
			desc: "yesterday",
			day:  Yesterday,
			want: []string{"Yesterday's Truck"},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			trucks, err := newLookup(t, events).TrucksOn(69, tC.day)
			require.NoError(t, err)

			var names []string
			for _, truck := range trucks {
				names = append(names, truck.Name)
			}
			assert.Equal(t, tC.want, names)
		})
	}
}

func TestTrucksOnUnknownUID(t *testing.T) {
	events := &fakeEventsClient{}

	_, err := newLookup(t, events).TrucksOn(999999, Today)
	assert.ErrorIs(t, err, directory.ErrNotFound)
	assert.Equal(t, 0, events.calls, "unknown uids must fail before the remote call")
}

func TestTrucksOnEmptyDay(t *testing.T) {
	events := &fakeEventsClient{}

	trucks, err := newLookup(t, events).TrucksOn(69, Tomorrow)
	require.NoError(t, err)
	assert.Empty(t, trucks)
}

func TestTrucksOnRemoteFailure(t *testing.T) {
	boom := errors.New("boom")
	events := &fakeEventsClient{err: boom}

	_, err := newLookup(t, events).TrucksOn(69, Today)
	assert.ErrorIs(t, err, boom)
}
