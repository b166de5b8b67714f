package mock

import (
	"context"

	"github.com/fwojciec/luminary"
)

var _ luminary.ProfileService = (*ProfileService)(nil)

// ProfileService is a mock implementation of luminary.ProfileService.
type ProfileService struct {
	BuildProfileFn func(ctx context.Context, name string) (*luminary.Profile, error)
}

func (s *ProfileService) BuildProfile(ctx context.Context, name string) (*luminary.Profile, error) {
	return s.BuildProfileFn(ctx, name)
}
