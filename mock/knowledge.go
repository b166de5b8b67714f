package mock

import (
	"context"

	"github.com/fwojciec/luminary"
)

var _ luminary.KnowledgeService = (*KnowledgeService)(nil)

// KnowledgeService is a mock implementation of luminary.KnowledgeService.
type KnowledgeService struct {
	PeopleByFieldFn func(ctx context.Context, field string, limit int) ([]luminary.PersonRef, error)
	ImageOfFn       func(ctx context.Context, name string) (string, error)
}

func (s *KnowledgeService) PeopleByField(ctx context.Context, field string, limit int) ([]luminary.PersonRef, error) {
	return s.PeopleByFieldFn(ctx, field, limit)
}

func (s *KnowledgeService) ImageOf(ctx context.Context, name string) (string, error) {
	return s.ImageOfFn(ctx, name)
}
