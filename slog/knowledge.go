package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/luminary"
)

// Ensure LoggingKnowledgeService implements luminary.KnowledgeService.
var _ luminary.KnowledgeService = (*LoggingKnowledgeService)(nil)

// LoggingKnowledgeService wraps a KnowledgeService with request logging.
type LoggingKnowledgeService struct {
	next   luminary.KnowledgeService
	logger *slog.Logger
}

// NewLoggingKnowledgeService creates a new LoggingKnowledgeService.
func NewLoggingKnowledgeService(next luminary.KnowledgeService, logger *slog.Logger) *LoggingKnowledgeService {
	return &LoggingKnowledgeService{next: next, logger: logger}
}

// PeopleByField delegates to the wrapped service and logs the operation.
func (s *LoggingKnowledgeService) PeopleByField(ctx context.Context, field string, limit int) (people []luminary.PersonRef, err error) {
	defer func(begin time.Time) {
		s.logger.Info("people by field",
			"field", field,
			"count", len(people),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.PeopleByField(ctx, field, limit)
}

// ImageOf delegates to the wrapped service and logs the operation.
func (s *LoggingKnowledgeService) ImageOf(ctx context.Context, name string) (url string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("image lookup",
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ImageOf(ctx, name)
}
