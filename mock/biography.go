// Package mock provides function-field mock implementations of luminary
// service interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/luminary"
)

var _ luminary.BiographyService = (*BiographyService)(nil)

// BiographyService is a mock implementation of luminary.BiographyService.
type BiographyService struct {
	FindSummaryFn   func(ctx context.Context, name string) (*luminary.Summary, error)
	FindBiographyFn func(ctx context.Context, name string) (*luminary.Biography, error)
}

func (s *BiographyService) FindSummary(ctx context.Context, name string) (*luminary.Summary, error) {
	return s.FindSummaryFn(ctx, name)
}

func (s *BiographyService) FindBiography(ctx context.Context, name string) (*luminary.Biography, error) {
	return s.FindBiographyFn(ctx, name)
}
