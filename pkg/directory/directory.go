// package directory owns the process-local snapshot of all known food-truck
// locations. The snapshot is fetched at most once per process; every caller
// sees the same view until restart.
package directory

import (
	"errors"
	"fmt"
	"sync"

	"truckctl/pkg/foodtruck"
)

// ErrNotFound means no location matched, either because the uid is unknown or
// because the directory holds no locations at all.
var ErrNotFound = errors.New("location not found")

type Fetcher interface {
	Locations() ([]foodtruck.Location, error)
}

type Directory struct {
	fetcher Fetcher

	once      sync.Once
	locations []foodtruck.Location
	err       error
}

func New(f Fetcher) *Directory {
	return &Directory{fetcher: f}
}

// EnsureLoaded populates the directory on first call and is a no-op after
// that. A failed fetch is remembered, not retried: the process keeps seeing
// the same error the way a successful load keeps seeing the same snapshot.
func (d *Directory) EnsureLoaded() error {
	d.once.Do(func() {
		locations, err := d.fetcher.Locations()
		if err != nil {
			d.err = fmt.Errorf("loading location directory: %w", err)
			return
		}

		d.locations = locations
	})

	return d.err
}

// All returns every known location in the order the service listed them.
func (d *Directory) All() ([]foodtruck.Location, error) {
	if err := d.EnsureLoaded(); err != nil {
		return nil, err
	}

	return d.locations, nil
}

// Lookup finds the location with the given uid.
func (d *Directory) Lookup(uid int) (foodtruck.Location, error) {
	locations, err := d.All()
	if err != nil {
		return foodtruck.Location{}, err
	}

	for _, l := range locations {
		if l.UID == uid {
			return l, nil
		}
	}

	return foodtruck.Location{}, fmt.Errorf("%w: uid %d", ErrNotFound, uid)
}
