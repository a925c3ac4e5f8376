// package schedule answers "which trucks are booked at this location on that
// day". It is a thin view over the events endpoint; the only local logic is
// picking the right calendar day.
package schedule

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"truckctl/pkg/directory"
	"truckctl/pkg/foodtruck"
)

// serviceTimezone is where the service schedules its events. Day boundaries
// roll over on Seattle time regardless of where the caller is.
const serviceTimezone = "America/Los_Angeles"

// Day is an offset in days from the service's today.
type Day int

const (
	Yesterday Day = -1
	Today     Day = 0
	Tomorrow  Day = 1
)

type EventsClient interface {
	Events(locationUID int) ([]foodtruck.Event, error)
}

func NewLookup(d *directory.Directory, c EventsClient) *Lookup {
	return &Lookup{directory: d, client: c, now: time.Now}
}

type Lookup struct {
	directory *directory.Directory
	client    EventsClient
	now       func() time.Time
}

// TrucksOn returns every truck booked at the location on the given day. The
// uid is validated against the directory before the remote call, so an
// unknown uid fails with directory.ErrNotFound. A day with no bookings is an
// empty result, not an error.
func (l *Lookup) TrucksOn(locationUID int, day Day) ([]foodtruck.Truck, error) {
	if _, err := l.directory.Lookup(locationUID); err != nil {
		return nil, err
	}

	events, err := l.client.Events(locationUID)
	if err != nil {
		return nil, err
	}

	tz, err := time.LoadLocation(serviceTimezone)
	if err != nil {
		return nil, fmt.Errorf("loading %s tzdata: %w", serviceTimezone, err)
	}

	want := l.now().In(tz).AddDate(0, 0, int(day))

	var trucks []foodtruck.Truck
	for _, event := range events {
		if sameDay(event.StartTime.In(tz), want) {
			trucks = append(trucks, event.Trucks...)
		}
	}

	return trucks, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
