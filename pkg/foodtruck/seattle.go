package foodtruck

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultHost is the production instance of the food-truck service.
const DefaultHost = "https://www.seattlefoodtruck.com"

// ErrRemoteFetch marks any network or decoding failure talking to the
// food-truck service. Callers check it with errors.Is.
var ErrRemoteFetch = errors.New("food-truck service request failed")

type Option func(*sft)

func WithHost(host string) Option {
	return func(c *sft) {
		c.host = strings.TrimSuffix(host, "/")
	}
}

func NewSeattleClient(h *http.Client, opts ...Option) *sft {
	c := &sft{h: h, host: DefaultHost}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type sft struct {
	h    *http.Client
	host string
}

var _ Client = (*sft)(nil)

func (c *sft) Locations() ([]Location, error) {
	var d locationsResponse
	if err := c.getJSON("/api/locations", url.Values{}, &d); err != nil {
		return nil, err
	}

	locations := make([]Location, 0, len(d.Locations))
	for _, l := range d.Locations {
		locations = append(locations, Location{
			UID:       l.UID,
			Name:      strings.TrimSpace(l.Name),
			Address:   l.Address,
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
		})
	}

	return locations, nil
}

func (c *sft) Events(locationUID int) ([]Event, error) {
	params := url.Values{
		"for_locations":       {strconv.Itoa(locationUID)},
		"with_active_trucks":  {"true"},
		"include_bookings":    {"true"},
		"with_booking_status": {"approved"},
	}

	var d eventsResponse
	if err := c.getJSON("/api/events", params, &d); err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(d.Events))
	for _, e := range d.Events {
		start, err := time.Parse(time.RFC3339, e.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: bad event start_time %q: %v", ErrRemoteFetch, e.StartTime, err)
		}

		event := Event{StartTime: start}
		for _, b := range e.Bookings {
			event.Trucks = append(event.Trucks, Truck{
				Name:           b.Truck.Name,
				FoodCategories: b.Truck.FoodCategories,
			})
		}

		events = append(events, event)
	}

	return events, nil
}

// getJSON requests a single page of the given listing. The service paginates
// its listings but we only ever read the first page.
func (c *sft) getJSON(path string, params url.Values, out any) error {
	params.Set("page", "1")

	res, err := c.h.Get(fmt.Sprintf("%s%s?%s", c.host, path, params.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteFetch, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: GET %s returned %s", ErrRemoteFetch, path, res.Status)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteFetch, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decoding %s response: %v", ErrRemoteFetch, path, err)
	}

	return nil
}

type locationsResponse struct {
	Locations []struct {
		Name      string  `json:"name"`
		Address   string  `json:"address"`
		UID       int     `json:"uid"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"locations"`
	Pagination pagination `json:"pagination"`
}

type eventsResponse struct {
	Events []struct {
		StartTime string `json:"start_time"`
		Bookings  []struct {
			Status string `json:"status"`
			Truck  struct {
				Name           string   `json:"name"`
				FoodCategories []string `json:"food_categories"`
			} `json:"truck"`
		} `json:"bookings"`
	} `json:"events"`
	Pagination pagination `json:"pagination"`
}

type pagination struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}
