package luminary

import "context"

// Profile aggregates everything the dashboard shows for one person.
type Profile struct {
	Biography *Biography      `json:"biography"`
	ImageURL  string          `json:"imageUrl,omitempty"`
	Timeline  Timeline        `json:"timeline"`
	Works     WorksCollection `json:"works"`
	Quotes    []string        `json:"quotes,omitempty"`
}

// ProfileService assembles complete person profiles from the individual
// data sources.
type ProfileService interface {
	// BuildProfile fetches the biography, derives the timeline and works
	// listing from it, and gathers quotes and an image. The biography is
	// required: ENOTFOUND or EUNAVAILABLE from the encyclopedia fails the
	// profile. Quote and image failures degrade to empty fields.
	BuildProfile(ctx context.Context, name string) (*Profile, error)
}
