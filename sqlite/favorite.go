package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/luminary"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ luminary.FavoriteService = (*FavoriteService)(nil)

// FavoriteService implements luminary.FavoriteService using SQLite.
type FavoriteService struct {
	db *DB
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(db *DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// AddFavorite bookmarks a person. Adding a name that is already
// bookmarked returns the existing favorite unchanged.
func (s *FavoriteService) AddFavorite(ctx context.Context, name string) (*luminary.Favorite, error) {
	if name == "" {
		return nil, luminary.Errorf(luminary.EINVALID, "favorite name required")
	}

	if existing, err := s.findByName(ctx, name); err == nil {
		return existing, nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	fav := &luminary.Favorite{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(position) + 1, 0) FROM favorites
	`).Scan(&fav.Position)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO favorites (id, name, position, created_at)
		VALUES (?, ?, ?, ?)
	`, fav.ID, fav.Name, fav.Position, fav.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return fav, nil
}

// RemoveFavorite removes a bookmark.
func (s *FavoriteService) RemoveFavorite(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM favorites WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return luminary.Errorf(luminary.ENOTFOUND, "favorite %q not found", name)
	}
	return nil
}

// ListFavorites returns bookmarks in insertion order.
func (s *FavoriteService) ListFavorites(ctx context.Context) ([]*luminary.Favorite, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, position, created_at
		FROM favorites
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []*luminary.Favorite
	for rows.Next() {
		fav, err := scanFavorite(rows)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, fav)
	}
	return favorites, rows.Err()
}

func (s *FavoriteService) findByName(ctx context.Context, name string) (*luminary.Favorite, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, position, created_at
		FROM favorites
		WHERE name = ?
	`, name)
	return scanFavorite(row)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFavorite(row scanner) (*luminary.Favorite, error) {
	var fav luminary.Favorite
	var createdAt string
	if err := row.Scan(&fav.ID, &fav.Name, &fav.Position, &createdAt); err != nil {
		return nil, err
	}
	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, err
	}
	fav.CreatedAt = ts
	return &fav, nil
}
