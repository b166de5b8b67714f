package luminary

import (
	"context"
	"time"
)

// Dashboard themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Session carries per-visit dashboard state. A session is created at
// visit start, mutated only through explicit commands, and discarded at
// visit end; it is never ambient process-wide state.
type Session struct {
	ID              string    `json:"id"`
	SelectedPerson  string    `json:"selectedPerson,omitempty"`
	RolePlayPersona string    `json:"rolePlayPersona,omitempty"`
	Interests       []string  `json:"interests,omitempty"`
	Theme           string    `json:"theme"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Validate returns an error if the session contains invalid fields.
func (s *Session) Validate() error {
	if s.Theme != "" && s.Theme != ThemeLight && s.Theme != ThemeDark {
		return Errorf(EINVALID, "unknown theme %q", s.Theme)
	}
	return nil
}

// Favorite is a bookmarked person.
type Favorite struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

// FavoriteService persists bookmarked people, preserving insertion order
// and uniqueness by name.
type FavoriteService interface {
	// AddFavorite bookmarks a person. Adding a name that is already
	// bookmarked returns the existing favorite unchanged.
	AddFavorite(ctx context.Context, name string) (*Favorite, error)

	// RemoveFavorite removes a bookmark.
	// Returns ENOTFOUND if the name is not bookmarked.
	RemoveFavorite(ctx context.Context, name string) error

	// ListFavorites returns bookmarks in insertion order.
	ListFavorites(ctx context.Context) ([]*Favorite, error)
}
