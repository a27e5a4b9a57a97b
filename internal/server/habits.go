package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"habitgrid/internal/habit"
)

type toggleRequest struct {
	Habit string `json:"habit"`
	Date  string `json:"date"`
}

type createRequest struct {
	Habit string `json:"habit"`
}

type renameRequest struct {
	Old string `json:"old"`
	New string `json:"new"`
}

type colorRequest struct {
	Habit string `json:"habit"`
	Color string `json:"color"`
}

// respondCollection writes the current snapshot as { "habits": {...} }.
func (s *Server) respondCollection(w http.ResponseWriter) {
	col, err := s.habits.All()
	if err != nil {
		s.logger.Error("load habit collection", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load habits"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]habit.Collection{"habits": col})
}

func (s *Server) listHabits(w http.ResponseWriter, r *http.Request) {
	s.respondCollection(w)
}

// toggleHabit flips completion for one day. Missing fields skip the mutation
// but still return the snapshot.
func (s *Server) toggleHabit(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if req.Habit != "" && req.Date != "" {
		if err := s.habits.ToggleDate(req.Habit, req.Date); err != nil {
			s.logger.Error("toggle habit date", "habit", req.Habit, "date", req.Date, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to toggle habit"})
			return
		}
	}
	s.respondCollection(w)
}

func (s *Server) createHabit(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if name := strings.TrimSpace(req.Habit); name != "" {
		if err := s.habits.Create(name); err != nil {
			s.logger.Error("create habit", "habit", name, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create habit"})
			return
		}
	}
	s.respondCollection(w)
}

func (s *Server) renameHabit(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if req.Old != "" && strings.TrimSpace(req.New) != "" {
		if err := s.habits.Rename(req.Old, strings.TrimSpace(req.New)); err != nil {
			s.logger.Error("rename habit", "old", req.Old, "new", req.New, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to rename habit"})
			return
		}
	}
	s.respondCollection(w)
}

func (s *Server) deleteHabit(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if req.Habit != "" {
		if err := s.habits.Delete(req.Habit); err != nil {
			s.logger.Error("delete habit", "habit", req.Habit, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete habit"})
			return
		}
	}
	s.respondCollection(w)
}

func (s *Server) recolorHabit(w http.ResponseWriter, r *http.Request) {
	var req colorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if req.Habit != "" && req.Color != "" {
		if !habit.ValidColor(req.Color) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid color"})
			return
		}
		if err := s.habits.Recolor(req.Habit, req.Color); err != nil {
			s.logger.Error("recolor habit", "habit", req.Habit, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to recolor habit"})
			return
		}
	}
	s.respondCollection(w)
}
