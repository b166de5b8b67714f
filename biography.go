package luminary

import "context"

// Summary is the compact, card-sized view of a person's encyclopedia entry.
type Summary struct {
	Title    string `json:"title"`
	Extract  string `json:"extract"`  // plain text lead
	Markdown string `json:"markdown"` // lead converted from HTML, if available
	URL      string `json:"url"`
	ImageURL string `json:"imageUrl"`
}

// Biography is a person's full encyclopedia entry: a flat lead summary,
// the complete plain-text body, and a tree of titled sections.
type Biography struct {
	Title    string    `json:"title"`
	Summary  string    `json:"summary"`
	Content  string    `json:"content"`
	URL      string    `json:"url"`
	Sections []Section `json:"sections"`
}

// BiographyService fetches encyclopedia entries for people.
type BiographyService interface {
	// FindSummary retrieves the lead summary for a person.
	// Returns ENOTFOUND if no entry exists, EUNAVAILABLE if the
	// upstream source cannot be reached.
	FindSummary(ctx context.Context, name string) (*Summary, error)

	// FindBiography retrieves the full entry including the section tree.
	// The tree is parsed all-or-nothing: a malformed document yields an
	// error and no partial sections. Returns ENOTFOUND if no entry
	// exists, EUNAVAILABLE if the upstream source cannot be reached.
	FindBiography(ctx context.Context, name string) (*Biography, error)
}
