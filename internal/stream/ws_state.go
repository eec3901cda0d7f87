package stream

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/frudas24/swipedeck/internal/session"
)

// WSServer fans deck frames out to any number of state viewers over websockets.
type WSServer struct {
	upgrader websocket.Upgrader
	session  *session.Session
	hub      *Hub
}

// NewWSServer creates a read-only state stream server on the given hub.
func NewWSServer(sess *session.Session, hub *Hub) *WSServer {
	return &WSServer{
		session: sess,
		hub:     hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and forwards frames until the client leaves.
func (s *WSServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ch := s.hub.Subscribe()
	defer s.hub.Unsubscribe(ch)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case f, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(f); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
