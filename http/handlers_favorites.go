package http

import (
	"encoding/json"
	"net/http"

	"github.com/fwojciec/luminary"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := s.Favorites.ListFavorites(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if favorites == nil {
		favorites = []*luminary.Favorite{}
	}
	writeJSON(w, http.StatusOK, map[string][]*luminary.Favorite{"favorites": favorites})
}

func (s *Server) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, luminary.Errorf(luminary.EINVALID, "invalid request body"))
		return
	}
	if req.Name == "" {
		writeError(w, luminary.Errorf(luminary.EINVALID, "name is required"))
		return
	}
	favorite, err := s.Favorites.AddFavorite(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, favorite)
}

func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	if err := s.Favorites.RemoveFavorite(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
