package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/luminary"
	lumhttp "github.com/fwojciec/luminary/http"
	"github.com/fwojciec/luminary/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *lumhttp.Server {
	return lumhttp.NewServer(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestServer_Search(t *testing.T) {
	t.Parallel()

	t.Run("returns the summary", func(t *testing.T) {
		t.Parallel()
		s := newTestServer()
		s.Biographies = &mock.BiographyService{
			FindSummaryFn: func(ctx context.Context, name string) (*luminary.Summary, error) {
				assert.Equal(t, "Ada Lovelace", name)
				return &luminary.Summary{Title: "Ada Lovelace", Extract: "Mathematician."}, nil
			},
		}
		ts := httptest.NewServer(s)
		defer ts.Close()

		resp, err := http.Get(ts.URL + "/api/search?name=Ada+Lovelace")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got luminary.Summary
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "Ada Lovelace", got.Title)
	})

	t.Run("missing name is a bad request", func(t *testing.T) {
		t.Parallel()
		ts := httptest.NewServer(newTestServer())
		defer ts.Close()

		resp, err := http.Get(ts.URL + "/api/search")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown person maps to 404", func(t *testing.T) {
		t.Parallel()
		s := newTestServer()
		s.Biographies = &mock.BiographyService{
			FindSummaryFn: func(ctx context.Context, name string) (*luminary.Summary, error) {
				return nil, luminary.Errorf(luminary.ENOTFOUND, "no page for %q", name)
			},
		}
		ts := httptest.NewServer(s)
		defer ts.Close()

		resp, err := http.Get(ts.URL + "/api/search?name=Nobody")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, luminary.ENOTFOUND, body["code"])
	})

	t.Run("upstream outage maps to 503", func(t *testing.T) {
		t.Parallel()
		s := newTestServer()
		s.Biographies = &mock.BiographyService{
			FindSummaryFn: func(ctx context.Context, name string) (*luminary.Summary, error) {
				return nil, luminary.Errorf(luminary.EUNAVAILABLE, "encyclopedia unreachable")
			},
		}
		ts := httptest.NewServer(s)
		defer ts.Close()

		resp, err := http.Get(ts.URL + "/api/search?name=Ada")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestServer_Timeline(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	s.Biographies = &mock.BiographyService{
		FindBiographyFn: func(ctx context.Context, name string) (*luminary.Biography, error) {
			return &luminary.Biography{
				Title:   name,
				Content: "She was born in 1815. She wrote the notes in 1843. She died in 1852.",
			}, nil
		},
	}
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)

	t.Run("derives the timeline from the biography", func(t *testing.T) {
		t.Parallel()
		resp, err := http.Get(ts.URL + "/api/timeline/Ada%20Lovelace")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var got luminary.Timeline
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.Len(t, got.Events, 3)
		assert.Equal(t, 1815, got.Events[0].Year)
	})

	t.Run("max query parameter caps events", func(t *testing.T) {
		t.Parallel()
		resp, err := http.Get(ts.URL + "/api/timeline/Ada%20Lovelace?max=1")
		require.NoError(t, err)
		defer resp.Body.Close()

		var got luminary.Timeline
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Len(t, got.Events, 1)
	})

	t.Run("non-integer max is a bad request", func(t *testing.T) {
		t.Parallel()
		resp, err := http.Get(ts.URL + "/api/timeline/Ada%20Lovelace?max=lots")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_Works(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	s.Biographies = &mock.BiographyService{
		FindBiographyFn: func(ctx context.Context, name string) (*luminary.Biography, error) {
			return &luminary.Biography{
				Title: name,
				Sections: []luminary.Section{
					{Title: "Works", Body: "Early novels.", Subsections: []luminary.Section{
						{Title: "Novels", Body: "Crime and Punishment."},
					}},
					{Title: "Legacy", Body: "Lasting influence."},
				},
			}, nil
		},
	}
	ts := httptest.NewServer(s)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/works/Fyodor%20Dostoevsky")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got luminary.WorksCollection
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Sections, 2)
	assert.Equal(t, "Works", got.Sections[0].Heading)
	assert.Equal(t, "Works → Novels", got.Sections[1].Heading)
}

func TestServer_Fields(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(newTestServer())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/fields")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, luminary.Fields(), body["fields"])
}

func TestServer_Explore(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	s.Knowledge = &mock.KnowledgeService{
		PeopleByFieldFn: func(ctx context.Context, field string, limit int) ([]luminary.PersonRef, error) {
			assert.Equal(t, "science", field)
			assert.Equal(t, 5, limit)
			return []luminary.PersonRef{{Name: "Marie Curie"}}, nil
		},
	}
	ts := httptest.NewServer(s)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/explore/science?limit=5")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string][]luminary.PersonRef
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body["people"], 1)
	assert.Equal(t, "Marie Curie", body["people"][0].Name)
}

func TestServer_Daily(t *testing.T) {
	t.Parallel()

	t.Run("returns a name with a quote", func(t *testing.T) {
		t.Parallel()
		s := newTestServer()
		s.Quotes = &mock.QuoteService{
			QuotesFn: func(ctx context.Context, name string, max int) ([]string, error) {
				assert.Equal(t, 1, max)
				return []string{"Wisdom begins in wonder."}, nil
			},
		}
		ts := httptest.NewServer(s)
		defer ts.Close()

		resp, err := http.Get(ts.URL + "/api/daily")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var got luminary.DailyQuote
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Contains(t, luminary.DailyNames, got.Name)
		assert.Equal(t, "Wisdom begins in wonder.", got.Quote)
	})

	t.Run("quote failure degrades to an empty quote", func(t *testing.T) {
		t.Parallel()
		s := newTestServer()
		s.Quotes = &mock.QuoteService{
			QuotesFn: func(ctx context.Context, name string, max int) ([]string, error) {
				return nil, luminary.Errorf(luminary.EUNAVAILABLE, "quote source unreachable")
			},
		}
		ts := httptest.NewServer(s)
		defer ts.Close()

		resp, err := http.Get(ts.URL + "/api/daily")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var got luminary.DailyQuote
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.NotEmpty(t, got.Name)
		assert.Empty(t, got.Quote)
	})
}

func TestServer_Featured(t *testing.T) {
	t.Parallel()

	t.Run("returns the roster with summaries", func(t *testing.T) {
		t.Parallel()
		s := newTestServer()
		s.Biographies = &mock.BiographyService{
			FindSummaryFn: func(ctx context.Context, name string) (*luminary.Summary, error) {
				return &luminary.Summary{Title: name, Extract: name + " extract.", ImageURL: "https://example.org/img.jpg"}, nil
			},
		}
		ts := httptest.NewServer(s)
		defer ts.Close()

		resp, err := http.Get(ts.URL + "/api/featured")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string][]struct {
			Name     string `json:"name"`
			Extract  string `json:"extract"`
			ImageURL string `json:"imageUrl"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		people := body["featured"]
		require.Len(t, people, len(luminary.FeaturedNames))
		assert.Equal(t, luminary.FeaturedNames[0], people[0].Name)
		assert.Equal(t, luminary.FeaturedNames[0]+" extract.", people[0].Extract)
		assert.NotEmpty(t, people[0].ImageURL)
	})

	t.Run("summary failures degrade to bare names", func(t *testing.T) {
		t.Parallel()
		s := newTestServer()
		s.Biographies = &mock.BiographyService{
			FindSummaryFn: func(ctx context.Context, name string) (*luminary.Summary, error) {
				return nil, luminary.Errorf(luminary.EUNAVAILABLE, "encyclopedia unreachable")
			},
		}
		ts := httptest.NewServer(s)
		defer ts.Close()

		resp, err := http.Get(ts.URL + "/api/featured")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string][]struct {
			Name    string `json:"name"`
			Extract string `json:"extract"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		people := body["featured"]
		require.Len(t, people, len(luminary.FeaturedNames))
		for _, p := range people {
			assert.NotEmpty(t, p.Name)
			assert.Empty(t, p.Extract)
		}
	})
}

func TestServer_Chat(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	s.RolePlayer = &mock.RolePlayer{
		ChatFn: func(ctx context.Context, persona string, history []luminary.ChatMessage, message string) (string, error) {
			assert.Equal(t, "Socrates", persona)
			require.Len(t, history, 1)
			assert.Equal(t, luminary.RoleUser, history[0].Role)
			return "What do you believe wisdom to be?", nil
		},
	}
	ts := httptest.NewServer(s)
	defer ts.Close()

	body := `{"persona":"Socrates","history":[{"role":"user","text":"Hello"}],"message":"What is wisdom?"}`
	resp, err := http.Post(ts.URL+"/api/chat", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "What do you believe wisdom to be?", got["reply"])
}

func TestServer_Favorites(t *testing.T) {
	t.Parallel()

	t.Run("add returns the created favorite", func(t *testing.T) {
		t.Parallel()
		s := newTestServer()
		s.Favorites = &mock.FavoriteService{
			AddFavoriteFn: func(ctx context.Context, name string) (*luminary.Favorite, error) {
				return &luminary.Favorite{ID: "fav-1", Name: name, Position: 0}, nil
			},
		}
		ts := httptest.NewServer(s)
		defer ts.Close()

		resp, err := http.Post(ts.URL+"/api/favorites", "application/json", strings.NewReader(`{"name":"Ada Lovelace"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var got luminary.Favorite
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "Ada Lovelace", got.Name)
	})

	t.Run("empty name is a bad request", func(t *testing.T) {
		t.Parallel()
		ts := httptest.NewServer(newTestServer())
		defer ts.Close()

		resp, err := http.Post(ts.URL+"/api/favorites", "application/json", strings.NewReader(`{}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("list returns an empty array rather than null", func(t *testing.T) {
		t.Parallel()
		s := newTestServer()
		s.Favorites = &mock.FavoriteService{
			ListFavoritesFn: func(ctx context.Context) ([]*luminary.Favorite, error) {
				return nil, nil
			},
		}
		ts := httptest.NewServer(s)
		defer ts.Close()

		resp, err := http.Get(ts.URL + "/api/favorites")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"favorites":[]}`, string(data))
	})

	t.Run("remove unknown favorite maps to 404", func(t *testing.T) {
		t.Parallel()
		s := newTestServer()
		s.Favorites = &mock.FavoriteService{
			RemoveFavoriteFn: func(ctx context.Context, name string) error {
				return luminary.Errorf(luminary.ENOTFOUND, "favorite %q does not exist", name)
			},
		}
		ts := httptest.NewServer(s)
		defer ts.Close()

		req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/favorites/Nobody", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_ProfilePage(t *testing.T) {
	t.Parallel()

	s := newTestServer()
	s.Profiles = &mock.ProfileService{
		BuildProfileFn: func(ctx context.Context, name string) (*luminary.Profile, error) {
			return &luminary.Profile{
				Biography: &luminary.Biography{
					Title:   "Ada Lovelace",
					Summary: "English mathematician and writer.",
					URL:     "https://en.wikipedia.org/wiki/Ada_Lovelace",
				},
				Timeline: luminary.Timeline{Events: []luminary.TimelineEvent{
					{Year: 1815, Text: "She was born in 1815."},
				}},
				Quotes: []string{"That brain of mine is something more than merely mortal."},
			}, nil
		},
	}
	ts := httptest.NewServer(s)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/profile/Ada%20Lovelace")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(data)
	assert.Contains(t, page, "<h1>Ada Lovelace</h1>")
	assert.Contains(t, page, "English mathematician and writer.")
	assert.Contains(t, page, "1815")
	assert.Contains(t, page, "merely mortal")
}
