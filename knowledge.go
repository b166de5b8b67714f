package luminary

import (
	"context"
	"sort"
)

// FieldKeywords maps a broad field of achievement to the occupation
// keywords used when searching the knowledge graph for notable people.
var FieldKeywords = map[string][]string{
	"Technology":      {"engineer", "computer", "programmer", "software", "technologist", "computer scientist", "developer"},
	"Business":        {"entrepreneur", "businessperson", "industrialist", "businessman", "businesswoman", "business executive"},
	"Science":         {"scientist", "physicist", "chemist", "biologist", "researcher", "mathematician"},
	"Philosophy":      {"philosopher", "moral philosopher"},
	"Arts":            {"artist", "painter", "composer", "singer", "actor", "sculptor", "writer", "poet"},
	"Sports":          {"footballer", "cricketer", "tennis player", "athlete", "sportsperson", "swimmer", "basketball player"},
	"Politics":        {"politician", "statesman", "prime minister", "president"},
	"Young Achievers": {"prodigy", "student", "young", "youngest", "teenager"},
}

// Fields returns the known field names in stable alphabetical order.
func Fields() []string {
	fields := make([]string, 0, len(FieldKeywords))
	for f := range FieldKeywords {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// FeaturedNames is the default roster of featured and emerging people
// shown on the dashboard home page.
var FeaturedNames = []string{
	"Sam Altman", "Elon Musk", "Mira Murati", "R Praggnanandhaa",
	"Gitanjali Rao", "Isha Ambani", "Tanmay Bakshi", "Greta Thunberg",
	"Emma Raducanu", "Sundar Pichai", "Satya Nadella", "Simone Biles",
	"Amanda Gorman", "Rihanna", "Kailash Satyarthi",
}

// PersonRef is a lightweight reference to a person found in the
// knowledge graph.
type PersonRef struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// KnowledgeService queries a structured knowledge graph for people.
type KnowledgeService interface {
	// PeopleByField returns notable people whose occupation labels match
	// the field's keywords. Unknown fields fall back to searching for the
	// field name itself.
	PeopleByField(ctx context.Context, field string, limit int) ([]PersonRef, error)

	// ImageOf returns an image URL for the named person.
	// Returns ENOTFOUND if no image is recorded.
	ImageOf(ctx context.Context, name string) (string, error)
}
