// Package stream broadcasts deck state frames to connected viewers.
package stream

import "github.com/frudas24/swipedeck/internal/deck"

// Frame is one sample of the renderable deck state.
type Frame struct {
	Seq      uint64     `json:"seq"`
	OffsetX  float64    `json:"offsetX"`
	OffsetY  float64    `json:"offsetY"`
	Rotation float64    `json:"rotation"`
	Scale    float64    `json:"scale"`
	Phase    deck.Phase `json:"phase"`
}

// FromSnapshot builds an unsequenced frame from a deck snapshot.
func FromSnapshot(s deck.Snapshot) Frame {
	return Frame{
		OffsetX:  s.OffsetX,
		OffsetY:  s.OffsetY,
		Rotation: s.Rotation,
		Scale:    s.Scale,
		Phase:    s.Phase,
	}
}
