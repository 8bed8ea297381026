package chat

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type chatRequest struct {
	SessionID string `json:"session_id"` // empty for new sessions
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	State     State  `json:"state"`
}

// RegisterRoutes mounts the chat endpoints on the given router.
func RegisterRoutes(r chi.Router, engine *Engine, sessions *Manager) {
	r.Post("/api/chat", messageHandler(engine, sessions))
	r.Get("/api/chat/ws", websocketHandler(engine, sessions))
}

func messageHandler(engine *Engine, sessions *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.Message == "" {
			http.Error(w, "message is required", http.StatusBadRequest)
			return
		}

		sess := sessions.Get(req.SessionID)
		reply := engine.Handle(r.Context(), sess, req.Message)

		writeJSON(w, http.StatusOK, chatResponse{
			SessionID: sess.ID,
			Reply:     reply,
			State:     sess.CurrentState(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
