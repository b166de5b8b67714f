package cached

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/luminary"
)

var _ luminary.KnowledgeService = (*KnowledgeService)(nil)

// KnowledgeService caches knowledge-base lookups.
type KnowledgeService struct {
	service luminary.KnowledgeService
	cache   luminary.Cache
	ttl     time.Duration
}

// NewKnowledgeService returns a caching wrapper around service.
func NewKnowledgeService(service luminary.KnowledgeService, cache luminary.Cache) *KnowledgeService {
	return &KnowledgeService{service: service, cache: cache, ttl: luminary.KnowledgeTTL}
}

func (s *KnowledgeService) PeopleByField(ctx context.Context, field string, limit int) ([]luminary.PersonRef, error) {
	key := fmt.Sprintf("%s|%d", field, limit)
	var people []luminary.PersonRef
	if ok := lookup(ctx, s.cache, "people", key, &people); ok {
		return people, nil
	}
	res, err := s.service.PeopleByField(ctx, field, limit)
	if err != nil {
		return nil, err
	}
	store(ctx, s.cache, "people", key, res, s.ttl)
	return res, nil
}

func (s *KnowledgeService) ImageOf(ctx context.Context, name string) (string, error) {
	var url string
	if ok := lookup(ctx, s.cache, "image", name, &url); ok {
		return url, nil
	}
	res, err := s.service.ImageOf(ctx, name)
	if err != nil {
		return "", err
	}
	store(ctx, s.cache, "image", name, res, s.ttl)
	return res, nil
}
