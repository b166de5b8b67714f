package http

import (
	"encoding/json"
	"net/http"

	"github.com/fwojciec/luminary"
)

type chatRequest struct {
	Persona string                 `json:"persona"`
	History []luminary.ChatMessage `json:"history"`
	Message string                 `json:"message"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if s.RolePlayer == nil {
		writeError(w, luminary.Errorf(luminary.EUNAVAILABLE, "role play is not configured"))
		return
	}
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, luminary.Errorf(luminary.EINVALID, "invalid request body"))
		return
	}
	reply, err := s.RolePlayer.Chat(r.Context(), req.Persona, req.History, req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

type lessonsRequest struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

func (s *Server) handleLessons(w http.ResponseWriter, r *http.Request) {
	if s.Lessons == nil {
		writeError(w, luminary.Errorf(luminary.EUNAVAILABLE, "lesson generation is not configured"))
		return
	}
	var req lessonsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, luminary.Errorf(luminary.EINVALID, "invalid request body"))
		return
	}
	lessons, err := s.Lessons.Lessons(r.Context(), req.Name, req.Summary)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"lessons": lessons})
}
