package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"habitgrid/internal/assistant"
)

func (s *Server) motivation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"motivation": assistant.Motivation()})
}

// chat answers with a canned reply and, when the message asks to start
// tracking something, creates the detected habits and acknowledges them.
func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	reply := assistant.Reply(req.Message)

	if detected := assistant.DetectHabits(req.Message); len(detected) > 0 {
		var created []string
		for _, name := range detected {
			if err := s.habits.Create(name); err != nil {
				s.logger.Error("create detected habit", "habit", name, "error", err)
				continue
			}
			created = append(created, name)
		}
		if len(created) > 0 {
			reply = fmt.Sprintf("Perfect! I've added %q to your habits tracker. %s",
				strings.Join(created, ", "), reply)
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// voice accepts the audio upload for interface compatibility. Speech
// processing is not part of this server; the response mirrors the error
// shape the clients already handle.
func (s *Server) voice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(16 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form"})
		return
	}
	f, _, err := r.FormFile("audio")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "No audio file provided"})
		return
	}
	f.Close()

	writeJSON(w, http.StatusOK, map[string]string{
		"transcript": "",
		"reply":      "Voice processing is not available on this server.",
		"action":     "unavailable",
	})
}
