package cached

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/luminary"
)

var _ luminary.QuoteService = (*QuoteService)(nil)

// QuoteService caches quote lookups keyed by person name and limit.
type QuoteService struct {
	service luminary.QuoteService
	cache   luminary.Cache
	ttl     time.Duration
}

// NewQuoteService returns a caching wrapper around service.
func NewQuoteService(service luminary.QuoteService, cache luminary.Cache) *QuoteService {
	return &QuoteService{service: service, cache: cache, ttl: luminary.QuoteTTL}
}

func (s *QuoteService) Quotes(ctx context.Context, name string, max int) ([]string, error) {
	key := fmt.Sprintf("%s|%d", name, max)
	var quotes []string
	if ok := lookup(ctx, s.cache, "quotes", key, &quotes); ok {
		return quotes, nil
	}
	res, err := s.service.Quotes(ctx, name, max)
	if err != nil {
		return nil, err
	}
	store(ctx, s.cache, "quotes", key, res, s.ttl)
	return res, nil
}
