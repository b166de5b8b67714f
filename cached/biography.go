// Package cached provides caching decorators for luminary services.
//
// Each decorator wraps another implementation of the same interface and
// serves repeated lookups from a luminary.Cache. Cache failures are
// treated as misses so a broken cache never masks a working service.
package cached

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fwojciec/luminary"
)

var _ luminary.BiographyService = (*BiographyService)(nil)

// BiographyService caches summaries and biographies keyed by person name.
type BiographyService struct {
	service luminary.BiographyService
	cache   luminary.Cache
	ttl     time.Duration
}

// NewBiographyService returns a caching wrapper around service.
func NewBiographyService(service luminary.BiographyService, cache luminary.Cache) *BiographyService {
	return &BiographyService{service: service, cache: cache, ttl: luminary.BiographyTTL}
}

func (s *BiographyService) FindSummary(ctx context.Context, name string) (*luminary.Summary, error) {
	var summary luminary.Summary
	if ok := lookup(ctx, s.cache, "summary", name, &summary); ok {
		return &summary, nil
	}
	res, err := s.service.FindSummary(ctx, name)
	if err != nil {
		return nil, err
	}
	store(ctx, s.cache, "summary", name, res, s.ttl)
	return res, nil
}

func (s *BiographyService) FindBiography(ctx context.Context, name string) (*luminary.Biography, error) {
	var bio luminary.Biography
	if ok := lookup(ctx, s.cache, "biography", name, &bio); ok {
		return &bio, nil
	}
	res, err := s.service.FindBiography(ctx, name)
	if err != nil {
		return nil, err
	}
	store(ctx, s.cache, "biography", name, res, s.ttl)
	return res, nil
}

// lookup reads and decodes a cached value. Any cache or decode error is a
// miss.
func lookup(ctx context.Context, cache luminary.Cache, namespace, key string, dst any) bool {
	data, ok, err := cache.Get(ctx, namespace, key)
	if err != nil || !ok {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

// store encodes and writes a value to the cache on a best-effort basis.
func store(ctx context.Context, cache luminary.Cache, namespace, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = cache.Set(ctx, namespace, key, data, ttl)
}
