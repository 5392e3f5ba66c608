package mock

import (
	"context"

	"github.com/fwojciec/kwloc"
)

var _ kwloc.CityService = (*CityService)(nil)

// CityService is a mock implementation of kwloc.CityService.
type CityService struct {
	CreateCitiesFn func(ctx context.Context, cities []*kwloc.City) (int, error)
	FindCitiesFn   func(ctx context.Context, filter kwloc.CityFilter) ([]*kwloc.City, error)
}

func (s *CityService) CreateCities(ctx context.Context, cities []*kwloc.City) (int, error) {
	return s.CreateCitiesFn(ctx, cities)
}

func (s *CityService) FindCities(ctx context.Context, filter kwloc.CityFilter) ([]*kwloc.City, error) {
	return s.FindCitiesFn(ctx, filter)
}
