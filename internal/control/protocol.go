// Package control handles the drag protocol and gesture binding.
package control

import "github.com/frudas24/swipedeck/internal/tuning"

// Message is a client-to-server control websocket payload.
type Message struct {
	T       string         `json:"t"`
	ID      int            `json:"id,omitempty"`
	DX      float64        `json:"dx,omitempty"`
	DY      float64        `json:"dy,omitempty"`
	W       float64        `json:"w,omitempty"`
	H       float64        `json:"h,omitempty"`
	DPR     float64        `json:"dpr,omitempty"`
	Dir     string         `json:"dir,omitempty"`
	Enabled *bool          `json:"enabled,omitempty"`
	Tuning  *tuning.Tuning `json:"tuning,omitempty"`
}

// Event is a server-to-client control websocket payload.
type Event struct {
	T      string         `json:"t"`
	Dir    string         `json:"dir,omitempty"`
	Index  int            `json:"index,omitempty"`
	Lefts  int            `json:"lefts,omitempty"`
	Rights int            `json:"rights,omitempty"`
	W      float64        `json:"w,omitempty"`
	H      float64        `json:"h,omitempty"`
	Tuning *tuning.Tuning `json:"tuning,omitempty"`
}

// Swipe directions carried in swipe messages and swiped events.
const (
	DirLeft  = "left"
	DirRight = "right"
)
