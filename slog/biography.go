// Package slog provides logging decorators for luminary services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/luminary"
)

// Ensure LoggingBiographyService implements luminary.BiographyService.
var _ luminary.BiographyService = (*LoggingBiographyService)(nil)

// LoggingBiographyService wraps a BiographyService with request logging.
type LoggingBiographyService struct {
	next   luminary.BiographyService
	logger *slog.Logger
}

// NewLoggingBiographyService creates a new LoggingBiographyService.
func NewLoggingBiographyService(next luminary.BiographyService, logger *slog.Logger) *LoggingBiographyService {
	return &LoggingBiographyService{next: next, logger: logger}
}

// FindSummary delegates to the wrapped service and logs the operation.
func (s *LoggingBiographyService) FindSummary(ctx context.Context, name string) (summary *luminary.Summary, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find summary",
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindSummary(ctx, name)
}

// FindBiography delegates to the wrapped service and logs the operation.
func (s *LoggingBiographyService) FindBiography(ctx context.Context, name string) (bio *luminary.Biography, err error) {
	defer func(begin time.Time) {
		var sections int
		if bio != nil {
			sections = len(bio.Sections)
		}
		s.logger.Info("find biography",
			"name", name,
			"sections", sections,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindBiography(ctx, name)
}
