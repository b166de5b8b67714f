// Package profile assembles dashboard profiles from the individual data
// sources.
package profile

import (
	"context"

	"github.com/fwojciec/luminary"
	"golang.org/x/sync/errgroup"
)

var _ luminary.ProfileService = (*Service)(nil)

// Service builds profiles by combining a biography with derived timeline
// and works data, plus quotes and a portrait fetched in parallel.
type Service struct {
	Biographies luminary.BiographyService
	Quotes      luminary.QuoteService
	Knowledge   luminary.KnowledgeService

	// MaxEvents caps the timeline; zero means luminary.DefaultMaxEvents.
	MaxEvents int
	// MaxQuotes caps the quote list; zero means luminary.DefaultMaxQuotes.
	MaxQuotes int
}

// NewService returns a profile service over the given sources.
func NewService(biographies luminary.BiographyService, quotes luminary.QuoteService, knowledge luminary.KnowledgeService) *Service {
	return &Service{Biographies: biographies, Quotes: quotes, Knowledge: knowledge}
}

// BuildProfile fetches the biography and derives the timeline and works
// listing from it. Quotes and the portrait are gathered concurrently and
// degrade to empty fields on failure; the biography itself is required.
func (s *Service) BuildProfile(ctx context.Context, name string) (*luminary.Profile, error) {
	if name == "" {
		return nil, luminary.Errorf(luminary.EINVALID, "name is required")
	}

	bio, err := s.Biographies.FindBiography(ctx, name)
	if err != nil {
		return nil, err
	}

	maxEvents := s.MaxEvents
	if maxEvents == 0 {
		maxEvents = luminary.DefaultMaxEvents
	}
	maxQuotes := s.MaxQuotes
	if maxQuotes == 0 {
		maxQuotes = luminary.DefaultMaxQuotes
	}

	profile := &luminary.Profile{
		Biography: bio,
		Timeline:  luminary.ExtractTimeline(bio.Content, maxEvents),
		Works:     luminary.CollectWorks(bio.Sections, nil, 0),
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.Quotes != nil {
		g.Go(func() error {
			quotes, err := s.Quotes.Quotes(gctx, name, maxQuotes)
			if err == nil {
				profile.Quotes = quotes
			}
			return nil
		})
	}
	if s.Knowledge != nil {
		g.Go(func() error {
			url, err := s.Knowledge.ImageOf(gctx, name)
			if err == nil {
				profile.ImageURL = url
			}
			return nil
		})
	}
	_ = g.Wait()

	return profile, nil
}
