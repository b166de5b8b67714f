package mock

import (
	"context"

	"github.com/fwojciec/luminary"
)

var _ luminary.QuoteService = (*QuoteService)(nil)

// QuoteService is a mock implementation of luminary.QuoteService.
type QuoteService struct {
	QuotesFn func(ctx context.Context, name string, max int) ([]string, error)
}

func (s *QuoteService) Quotes(ctx context.Context, name string, max int) ([]string, error) {
	return s.QuotesFn(ctx, name, max)
}
