// Package slog provides log/slog decorators for kwloc services.
package slog

import (
	"log/slog"

	"github.com/fwojciec/kwloc"
)

// Ensure LoggingExtractor implements kwloc.Extractor.
var _ kwloc.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging per keyword.
type LoggingExtractor struct {
	next   kwloc.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next kwloc.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(keyword string) (kwloc.Location, bool) {
	loc, ok := e.next.Extract(keyword)
	if !ok {
		e.logger.Debug("no location", "keyword", keyword)
		return loc, ok
	}
	e.logger.Debug("location extracted",
		"keyword", keyword,
		"city", loc.City,
		"state", loc.State,
	)
	return loc, ok
}
