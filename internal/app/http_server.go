package app

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/frudas24/swipedeck/internal/stream"
	"github.com/frudas24/swipedeck/internal/tuning"
	"github.com/frudas24/swipedeck/internal/viewport"
	"github.com/frudas24/swipedeck/internal/web"
)

// RegisterRoutes wires API and static handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux, staticDir string) {
	if staticDir == "" {
		staticDir = filepath.Join("internal", "web", "static")
	}

	mux.HandleFunc("/login", a.handleLogin)
	mux.HandleFunc("/logout", a.handleLogout)
	mux.HandleFunc("/api/state", a.handleState)
	mux.HandleFunc("/api/tuning", a.handleTuning)
	mux.Handle("/ws/control", a.Control())
	mux.Handle("/ws/state", a.State())
	if sig := a.Signaling(); sig != nil {
		mux.Handle("/ws/signal", sig)
	}
	mux.HandleFunc("/favicon.ico", handleFavicon)

	mux.Handle("/", staticFileServer(staticDir))
}

type loginRequest struct {
	Password string `json:"password"`
}

type stateResponse struct {
	Authenticated bool              `json:"authenticated"`
	InputEnabled  bool              `json:"inputEnabled"`
	Viewport      viewport.Viewport `json:"viewport"`
	CardIndex     int               `json:"cardIndex"`
	Lefts         int               `json:"lefts"`
	Rights        int               `json:"rights"`
	Deck          stream.Frame      `json:"deck"`
	Tuning        tuning.Tuning     `json:"tuning"`
}

type tuningRequest struct {
	Reset  bool           `json:"reset,omitempty"`
	Tuning *tuning.Tuning `json:"tuning,omitempty"`
}

type tuningResponse struct {
	Applied bool          `json:"applied"`
	Tuning  tuning.Tuning `json:"tuning"`
}

// handleLogin authenticates the session.
func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if !a.session.Authenticate(req.Password) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleLogout clears authentication state.
func (a *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.session.Logout()
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// handleState returns session state plus a live deck frame.
func (a *App) handleState(w http.ResponseWriter, _ *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	snap := a.session.Snapshot()
	resp := stateResponse{
		Authenticated: snap.Authenticated,
		InputEnabled:  snap.InputEnabled,
		Viewport:      snap.Viewport,
		CardIndex:     snap.CardIndex,
		Lefts:         snap.Lefts,
		Rights:        snap.Rights,
		Deck:          stream.FromSnapshot(a.snapshotDeck()),
		Tuning:        a.Tuning(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// handleTuning reads or updates the interaction constants.
func (a *App) handleTuning(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w) {
		return
	}
	switch r.Method {
	case http.MethodGet:
		_ = json.NewEncoder(w).Encode(tuningResponse{Tuning: a.Tuning()})
	case http.MethodPost:
		a.handleTuningUpdate(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleTuningUpdate applies a posted tuning document or a reset.
func (a *App) handleTuningUpdate(w http.ResponseWriter, r *http.Request) {
	var req tuningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	var next tuning.Tuning
	switch {
	case req.Reset:
		next = a.startupTuning()
	case req.Tuning != nil:
		next = *req.Tuning
	default:
		http.Error(w, "no tuning provided", http.StatusBadRequest)
		return
	}

	if err := next.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := a.applyTuning(next); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(tuningResponse{Applied: true, Tuning: next})
}

// requireAuth returns false and writes an error if the session is not authenticated.
func (a *App) requireAuth(w http.ResponseWriter) bool {
	if !a.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// staticFileServer returns a handler for static assets, preferring disk then embed.
func staticFileServer(staticDir string) http.Handler {
	if staticDir != "" {
		if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
			return http.FileServer(http.Dir(staticDir))
		}
	}

	embedded, err := web.StaticFS()
	if err != nil {
		log.Printf("static assets unavailable: %v", err)
		return http.NotFoundHandler()
	}
	return http.FileServer(http.FS(embedded))
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
