package control

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/frudas24/swipedeck/internal/session"
	"github.com/frudas24/swipedeck/internal/tuning"
	"github.com/frudas24/swipedeck/internal/viewport"
)

// BindingProvider returns the binding driving the current deck.
type BindingProvider func() *DragBinding

// Server handles the control websocket. Messages are applied strictly in
// arrival order on the connection's read loop, which is the only goroutine
// that touches the binding.
type Server struct {
	mu         sync.Mutex
	upgrader   websocket.Upgrader
	session    *session.Session
	binding    BindingProvider
	onViewport func(viewport.Viewport)
	onTuning   func(tuning.Tuning) error
	onReset    func()
	conn       *websocket.Conn
	writeMu    sync.Mutex
}

// NewServer creates a control websocket server.
func NewServer(sess *session.Session, binding BindingProvider, onViewport func(viewport.Viewport), onTuning func(tuning.Tuning) error, onReset func()) *Server {
	return &Server{
		session:    sess,
		binding:    binding,
		onViewport: onViewport,
		onTuning:   onTuning,
		onReset:    onReset,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if err := s.handleMessage(msg); err != nil {
			return
		}
	}
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// handleMessage dispatches a single control message.
func (s *Server) handleMessage(msg Message) error {
	switch msg.T {
	case "start":
		if s.session.InputEnabled() {
			s.binding().HandleStart(msg.ID)
		}
		return nil
	case "move":
		if s.session.InputEnabled() {
			s.binding().HandleMove(msg.ID, msg.DX, msg.DY)
		}
		return nil
	case "end":
		s.binding().HandleEnd(msg.ID)
		return nil
	case "swipe":
		return s.handleSwipe(msg.Dir)
	case "center":
		s.binding().Deck().ReturnCenter()
		return nil
	case "reset":
		if s.onReset != nil {
			s.onReset()
		}
		return nil
	case "viewport":
		return s.handleViewport(msg)
	case "inputEnabled":
		if msg.Enabled != nil {
			s.session.SetInputEnabled(*msg.Enabled)
		}
		return nil
	case "tuning":
		if msg.Tuning != nil && s.onTuning != nil {
			if err := s.onTuning(*msg.Tuning); err != nil {
				log.Printf("control: tuning rejected: %v", err)
			}
		}
		return nil
	default:
		return nil
	}
}

// handleSwipe runs a programmatic dismissal in the given direction.
func (s *Server) handleSwipe(dir string) error {
	if !s.session.InputEnabled() {
		return nil
	}
	switch dir {
	case DirLeft:
		s.binding().Deck().SwipeLeft()
	case DirRight:
		s.binding().Deck().SwipeRight()
	}
	return nil
}

// handleViewport stores a reported client layout box and rebuilds the deck.
func (s *Server) handleViewport(msg Message) error {
	v := viewport.Viewport{W: msg.W, H: msg.H, DPR: msg.DPR}
	if !v.Valid() {
		return nil
	}
	if s.onViewport != nil {
		s.onViewport(v)
	}
	return nil
}

// PushEvent sends an event to the active control client, if any.
func (s *Server) PushEvent(ev Event) {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_ = conn.WriteJSON(ev)
}
