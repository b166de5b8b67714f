package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/luminary"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, luminary.Errorf(luminary.EINVALID, "name query parameter is required"))
		return
	}
	summary, err := s.Biographies.FindSummary(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.Profiles.BuildProfile(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	max, err := queryInt(r, "max", luminary.DefaultMaxEvents)
	if err != nil {
		writeError(w, err)
		return
	}
	bio, err := s.Biographies.FindBiography(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, luminary.ExtractTimeline(bio.Content, max))
}

func (s *Server) handleWorks(w http.ResponseWriter, r *http.Request) {
	bio, err := s.Biographies.FindBiography(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, luminary.CollectWorks(bio.Sections, nil, 0))
}

func (s *Server) handleQuotes(w http.ResponseWriter, r *http.Request) {
	max, err := queryInt(r, "max", luminary.DefaultMaxQuotes)
	if err != nil {
		writeError(w, err)
		return
	}
	quotes, err := s.Quotes.Quotes(r.Context(), chi.URLParam(r, "name"), max)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"quotes": quotes})
}

func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"fields": luminary.Fields()})
}

func (s *Server) handleExplore(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(w, err)
		return
	}
	people, err := s.Knowledge.PeopleByField(r.Context(), chi.URLParam(r, "field"), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]luminary.PersonRef{"people": people})
}

// handleDaily serves the quote of the day. The person rotates
// deterministically with the date; a quote fetch failure degrades to an
// empty quote rather than an error.
func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	name := luminary.PickDaily(luminary.DailyNames, time.Now())
	daily := luminary.DailyQuote{Name: name}
	if quotes, err := s.Quotes.Quotes(r.Context(), name, 1); err == nil && len(quotes) > 0 {
		daily.Quote = quotes[0]
	}
	writeJSON(w, http.StatusOK, daily)
}

type featuredPerson struct {
	Name     string `json:"name"`
	Extract  string `json:"extract,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// handleFeatured serves the home-page roster of featured people.
// Summaries are fetched concurrently and degrade to a bare name on
// failure.
func (s *Server) handleFeatured(w http.ResponseWriter, r *http.Request) {
	people := make([]featuredPerson, len(luminary.FeaturedNames))
	g, gctx := errgroup.WithContext(r.Context())
	for i, name := range luminary.FeaturedNames {
		people[i] = featuredPerson{Name: name}
		g.Go(func() error {
			if summary, err := s.Biographies.FindSummary(gctx, name); err == nil {
				people[i].Extract = summary.Extract
				people[i].ImageURL = summary.ImageURL
			}
			return nil
		})
	}
	_ = g.Wait()
	writeJSON(w, http.StatusOK, map[string][]featuredPerson{"featured": people})
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, luminary.Errorf(luminary.EINVALID, "%s must be an integer", key)
	}
	return n, nil
}
