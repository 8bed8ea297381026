package chat

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type wsResponse struct {
	Type      string `json:"type"` // "reply" or "error"
	SessionID string `json:"session_id"`
	Content   string `json:"content"`
	State     State  `json:"state,omitempty"`
}

// websocketHandler runs the chat loop over a websocket: one reply per
// inbound message, same engine as the HTTP endpoint.
func websocketHandler(engine *Engine, sessions *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("chat: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		for {
			var req wsRequest
			if err := conn.ReadJSON(&req); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("chat: websocket read: %v", err)
				}
				return
			}

			if req.Message == "" {
				sendWS(conn, wsResponse{Type: "error", SessionID: req.SessionID, Content: "message is required"})
				continue
			}

			sess := sessions.Get(req.SessionID)
			reply := engine.Handle(r.Context(), sess, req.Message)
			sendWS(conn, wsResponse{
				Type:      "reply",
				SessionID: sess.ID,
				Content:   reply,
				State:     sess.CurrentState(),
			})
		}
	}
}

func sendWS(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("chat: websocket write: %v", err)
	}
}
