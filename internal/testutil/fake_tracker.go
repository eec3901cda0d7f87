package testutil

import (
	"time"

	"github.com/frudas24/swipedeck/internal/velocity"
)

// Call records a single tracker invocation.
type Call struct {
	Name string
	At   time.Time
	X    float64
	Y    float64
}

// FakeTracker implements velocity.Tracker with scripted velocities and records calls for tests.
type FakeTracker struct {
	Calls []Call
	VX    float64
	VY    float64
}

// Ensure FakeTracker implements the interface.
var _ velocity.Tracker = (*FakeTracker)(nil)

// Reset records a tracker reset.
func (f *FakeTracker) Reset() {
	f.Calls = append(f.Calls, Call{Name: "Reset"})
}

// AddSample records one pointer sample.
func (f *FakeTracker) AddSample(at time.Time, x, y float64) {
	f.Calls = append(f.Calls, Call{Name: "AddSample", At: at, X: x, Y: y})
}

// VelocityX reports the scripted horizontal velocity.
func (f *FakeTracker) VelocityX() float64 {
	f.Calls = append(f.Calls, Call{Name: "VelocityX"})
	return f.VX
}

// VelocityY reports the scripted vertical velocity.
func (f *FakeTracker) VelocityY() float64 {
	f.Calls = append(f.Calls, Call{Name: "VelocityY"})
	return f.VY
}
