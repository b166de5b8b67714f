package http

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/fwojciec/luminary"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// sessionStore holds live dashboard sessions. Sessions are per-visit
// state: created at visit start, mutated through explicit requests, and
// discarded at visit end. All methods copy session values across the
// mutex boundary; handlers never touch shared state directly.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*luminary.Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*luminary.Session)}
}

func (st *sessionStore) create() luminary.Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	session := &luminary.Session{
		ID:        uuid.New().String(),
		Theme:     luminary.ThemeLight,
		CreatedAt: time.Now().UTC(),
	}
	st.sessions[session.ID] = session
	return *session
}

func (st *sessionStore) get(id string) (luminary.Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	session, ok := st.sessions[id]
	if !ok {
		return luminary.Session{}, false
	}
	return *session, true
}

// update applies fn to the named session while holding the lock, so
// concurrent updates serialize and readers never observe torn state. The
// session is only replaced if fn succeeds.
func (st *sessionStore) update(id string, fn func(luminary.Session) (luminary.Session, error)) (luminary.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	session, ok := st.sessions[id]
	if !ok {
		return luminary.Session{}, luminary.Errorf(luminary.ENOTFOUND, "session does not exist")
	}
	updated, err := fn(*session)
	if err != nil {
		return luminary.Session{}, err
	}
	*session = updated
	return updated, nil
}

func (st *sessionStore) delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, s.sessions.create())
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := s.sessions.get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, luminary.Errorf(luminary.ENOTFOUND, "session does not exist"))
		return
	}
	writeJSON(w, http.StatusOK, session)
}

type sessionUpdate struct {
	SelectedPerson  *string  `json:"selectedPerson"`
	RolePlayPersona *string  `json:"rolePlayPersona"`
	Interests       []string `json:"interests"`
	Theme           *string  `json:"theme"`
}

// handleUpdateSession applies a partial update. Absent fields keep their
// current values.
func (s *Server) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	var update sessionUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, luminary.Errorf(luminary.EINVALID, "invalid request body"))
		return
	}

	session, err := s.sessions.update(chi.URLParam(r, "id"), func(session luminary.Session) (luminary.Session, error) {
		if update.SelectedPerson != nil {
			session.SelectedPerson = *update.SelectedPerson
		}
		if update.RolePlayPersona != nil {
			session.RolePlayPersona = *update.RolePlayPersona
		}
		if update.Interests != nil {
			session.Interests = update.Interests
		}
		if update.Theme != nil {
			session.Theme = *update.Theme
		}
		if err := session.Validate(); err != nil {
			return luminary.Session{}, err
		}
		return session, nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if !s.sessions.delete(chi.URLParam(r, "id")) {
		writeError(w, luminary.Errorf(luminary.ENOTFOUND, "session does not exist"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
