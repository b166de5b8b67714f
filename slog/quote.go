package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/luminary"
)

// Ensure LoggingQuoteService implements luminary.QuoteService.
var _ luminary.QuoteService = (*LoggingQuoteService)(nil)

// LoggingQuoteService wraps a QuoteService with request logging.
type LoggingQuoteService struct {
	next   luminary.QuoteService
	logger *slog.Logger
}

// NewLoggingQuoteService creates a new LoggingQuoteService.
func NewLoggingQuoteService(next luminary.QuoteService, logger *slog.Logger) *LoggingQuoteService {
	return &LoggingQuoteService{next: next, logger: logger}
}

// Quotes delegates to the wrapped service and logs the operation.
func (s *LoggingQuoteService) Quotes(ctx context.Context, name string, max int) (quotes []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("fetch quotes",
			"name", name,
			"count", len(quotes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Quotes(ctx, name, max)
}
