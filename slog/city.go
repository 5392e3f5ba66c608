package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/kwloc"
)

// Ensure LoggingCityService implements kwloc.CityService.
var _ kwloc.CityService = (*LoggingCityService)(nil)

// LoggingCityService wraps a CityService with logging. The name attribute
// distinguishes backends when several are loaded in one run.
type LoggingCityService struct {
	next   kwloc.CityService
	name   string
	logger *slog.Logger
}

// NewLoggingCityService creates a new LoggingCityService.
func NewLoggingCityService(next kwloc.CityService, name string, logger *slog.Logger) *LoggingCityService {
	return &LoggingCityService{next: next, name: name, logger: logger}
}

// CreateCities delegates to the wrapped service and logs the operation.
func (s *LoggingCityService) CreateCities(ctx context.Context, cities []*kwloc.City) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("create cities",
			"store", s.name,
			"requested", len(cities),
			"inserted", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateCities(ctx, cities)
}

// FindCities delegates to the wrapped service and logs the operation.
func (s *LoggingCityService) FindCities(ctx context.Context, filter kwloc.CityFilter) (cities []*kwloc.City, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find cities",
			"store", s.name,
			"count", len(cities),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCities(ctx, filter)
}
