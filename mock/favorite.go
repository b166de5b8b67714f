package mock

import (
	"context"

	"github.com/fwojciec/luminary"
)

var _ luminary.FavoriteService = (*FavoriteService)(nil)

// FavoriteService is a mock implementation of luminary.FavoriteService.
type FavoriteService struct {
	AddFavoriteFn    func(ctx context.Context, name string) (*luminary.Favorite, error)
	RemoveFavoriteFn func(ctx context.Context, name string) error
	ListFavoritesFn  func(ctx context.Context) ([]*luminary.Favorite, error)
}

func (s *FavoriteService) AddFavorite(ctx context.Context, name string) (*luminary.Favorite, error) {
	return s.AddFavoriteFn(ctx, name)
}

func (s *FavoriteService) RemoveFavorite(ctx context.Context, name string) error {
	return s.RemoveFavoriteFn(ctx, name)
}

func (s *FavoriteService) ListFavorites(ctx context.Context) ([]*luminary.Favorite, error) {
	return s.ListFavoritesFn(ctx)
}
