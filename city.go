package kwloc

import (
	"context"
	"time"
)

// City is a row of the directory's cities table.
type City struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	State       string    `json:"state"`
	Slug        string    `json:"slug"`
	ClinicCount int       `json:"clinicCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the city contains invalid fields.
func (c *City) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "city name required")
	}
	if !IsStateAbbr(c.State) {
		return Errorf(EINVALID, "city state %q is not a state abbreviation", c.State)
	}
	if c.Slug == "" {
		return Errorf(EINVALID, "city slug required")
	}
	return nil
}

// NewCity returns the cities row seeded from a place. Clinic count starts at 0.
func NewCity(p Place) *City {
	return &City{
		Name:  p.City,
		State: p.State,
		Slug:  p.Slug(),
	}
}

// CityService represents a service for managing cities.
type CityService interface {
	// CreateCities inserts a row per city. Rows whose slug already exists
	// are skipped. Returns the number of rows inserted.
	CreateCities(ctx context.Context, cities []*City) (int, error)

	// FindCities retrieves cities matching the filter, ordered by state
	// then slug.
	FindCities(ctx context.Context, filter CityFilter) ([]*City, error)
}

// CityFilter represents a filter for FindCities.
type CityFilter struct {
	State *string `json:"state"`
	Slug  *string `json:"slug"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Cities returns the cities rows for the aggregate's distinct places.
// Places whose name has no slug characters are left out.
func (a *Aggregate) Cities() []*City {
	cities := make([]*City, 0, len(a.places))
	for _, p := range a.places {
		if p.Slug() == "" {
			continue
		}
		cities = append(cities, NewCity(p))
	}
	return cities
}
