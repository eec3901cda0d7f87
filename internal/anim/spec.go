package anim

import "time"

// DefaultDuration is the tween length used when a spec does not name one.
const DefaultDuration = 300 * time.Millisecond

// Mode selects the interpolation strategy for an animation.
type Mode string

// Supported animation modes.
const (
	ModeTween  Mode = "tween"
	ModeSpring Mode = "spring"
)

// Spec describes how a property travels to its target.
type Spec struct {
	Mode      Mode
	Duration  time.Duration
	Easing    string
	Frequency float64
	Damping   float64
}

// Default returns the standard ease-out tween used for card motion.
func Default() Spec {
	return Spec{Mode: ModeTween, Duration: DefaultDuration, Easing: EaseOutCubic}
}

// Spring returns a damped-spring spec for settle motion.
func Spring(frequency, damping float64) Spec {
	return Spec{Mode: ModeSpring, Frequency: frequency, Damping: damping}
}

// sanitized fills zero fields with safe defaults so a partial spec still animates.
func (s Spec) sanitized() Spec {
	if s.Mode != ModeSpring {
		s.Mode = ModeTween
	}
	if s.Duration <= 0 {
		s.Duration = DefaultDuration
	}
	if s.Easing == "" {
		s.Easing = EaseOutCubic
	}
	if s.Frequency <= 0 {
		s.Frequency = 7.0
	}
	if s.Damping <= 0 {
		s.Damping = 1.0
	}
	return s
}
