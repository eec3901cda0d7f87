// Package velocity estimates pointer velocity from recent drag samples.
package velocity

import "time"

// DefaultWindow is the trailing span velocity is measured over.
const DefaultWindow = 100 * time.Millisecond

// Tracker accumulates pointer samples during one drag and reports release
// velocity in units per second. Implementations are owned by a single control
// loop and are not safe for concurrent use.
type Tracker interface {
	Reset()
	AddSample(at time.Time, x, y float64)
	VelocityX() float64
	VelocityY() float64
}

// sample is one pointer position observation.
type sample struct {
	at   time.Time
	x, y float64
}

// Window measures velocity as the secant slope across the samples inside a
// trailing time window.
type Window struct {
	span    time.Duration
	samples []sample
}

// NewWindow returns a tracker measuring over the given trailing span.
func NewWindow(span time.Duration) *Window {
	if span <= 0 {
		span = DefaultWindow
	}
	return &Window{span: span}
}

// Reset drops all accumulated samples.
func (w *Window) Reset() {
	w.samples = w.samples[:0]
}

// AddSample records a pointer position at the given time.
func (w *Window) AddSample(at time.Time, x, y float64) {
	w.samples = append(w.samples, sample{at: at, x: x, y: y})
	w.trim(at)
}

// VelocityX reports horizontal velocity in units per second.
func (w *Window) VelocityX() float64 {
	vx, _ := w.velocity()
	return vx
}

// VelocityY reports vertical velocity in units per second.
func (w *Window) VelocityY() float64 {
	_, vy := w.velocity()
	return vy
}

// trim drops samples older than the trailing span.
func (w *Window) trim(now time.Time) {
	cutoff := now.Add(-w.span)
	i := 0
	for i < len(w.samples) && w.samples[i].at.Before(cutoff) {
		i++
	}
	if i > 0 {
		w.samples = append(w.samples[:0], w.samples[i:]...)
	}
}

// velocity computes the secant slope between the oldest and newest kept samples.
func (w *Window) velocity() (float64, float64) {
	if len(w.samples) < 2 {
		return 0, 0
	}
	first := w.samples[0]
	last := w.samples[len(w.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0, 0
	}
	return (last.x - first.x) / dt, (last.y - first.y) / dt
}
