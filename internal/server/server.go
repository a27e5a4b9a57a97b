// Package server exposes the habit collection over the HTTP JSON API the
// clients consume. Every habit mutation responds with the refreshed
// collection snapshot.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"

	"habitgrid/internal/store"
)

type Server struct {
	habits *store.HabitStore
	logger *log.Logger
}

func New(habits *store.HabitStore, logger *log.Logger) *Server {
	return &Server{habits: habits, logger: logger}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/habits", s.listHabits)
	mux.HandleFunc("POST /api/habits", s.toggleHabit)
	mux.HandleFunc("POST /api/habits/new", s.createHabit)
	mux.HandleFunc("POST /api/habits/rename", s.renameHabit)
	mux.HandleFunc("POST /api/habits/delete", s.deleteHabit)
	mux.HandleFunc("POST /api/habits/color", s.recolorHabit)

	mux.HandleFunc("GET /api/motivation", s.motivation)
	mux.HandleFunc("POST /api/chat", s.chat)
	mux.HandleFunc("POST /api/voice", s.voice)

	mux.HandleFunc("GET /health", s.health)

	return requestLogger(s.logger)(mux)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
