// Package tuning stores the adjustable interaction constants.
package tuning

import (
	"fmt"
	"time"

	"github.com/frudas24/swipedeck/internal/anim"
	"github.com/frudas24/swipedeck/internal/deck"
)

// AnimSpec is the serialized form of an animation descriptor.
type AnimSpec struct {
	Mode       string  `yaml:"mode" json:"mode"`
	DurationMs int     `yaml:"durationMs" json:"durationMs"`
	Easing     string  `yaml:"easing" json:"easing"`
	Frequency  float64 `yaml:"frequency,omitempty" json:"frequency,omitempty"`
	Damping    float64 `yaml:"damping,omitempty" json:"damping,omitempty"`
}

// Tuning holds every interaction constant adjustable at runtime.
type Tuning struct {
	ThresholdPct      float64  `yaml:"thresholdPct" json:"thresholdPct"`
	VelocityThreshold float64  `yaml:"velocityThreshold" json:"velocityThreshold"`
	Overshoot         float64  `yaml:"overshoot" json:"overshoot"`
	RestScale         float64  `yaml:"restScale" json:"restScale"`
	MaxRotationDeg    float64  `yaml:"maxRotationDeg" json:"maxRotationDeg"`
	Swipe             AnimSpec `yaml:"swipe" json:"swipe"`
	Settle            AnimSpec `yaml:"settle" json:"settle"`
}

// Default returns the stock interaction constants.
func Default() Tuning {
	std := AnimSpec{
		Mode:       string(anim.ModeTween),
		DurationMs: int(anim.DefaultDuration / time.Millisecond),
		Easing:     anim.EaseOutCubic,
	}
	return Tuning{
		ThresholdPct:      deck.DefaultThresholdPct,
		VelocityThreshold: 200,
		Overshoot:         deck.DefaultOvershoot,
		RestScale:         deck.DefaultRestScale,
		MaxRotationDeg:    deck.DefaultMaxRotationDeg,
		Swipe:             std,
		Settle:            std,
	}
}

// Spec converts the serialized descriptor into an animation spec.
func (a AnimSpec) Spec() anim.Spec {
	return anim.Spec{
		Mode:      anim.Mode(a.Mode),
		Duration:  time.Duration(a.DurationMs) * time.Millisecond,
		Easing:    a.Easing,
		Frequency: a.Frequency,
		Damping:   a.Damping,
	}
}

// Validate checks every constant is inside its working range.
func (t Tuning) Validate() error {
	if t.ThresholdPct <= 0 || t.ThresholdPct > 1 {
		return fmt.Errorf("thresholdPct must be within (0..1], got %v", t.ThresholdPct)
	}
	if t.VelocityThreshold <= 0 {
		return fmt.Errorf("velocityThreshold must be positive, got %v", t.VelocityThreshold)
	}
	if t.Overshoot < 1 {
		return fmt.Errorf("overshoot must be at least 1, got %v", t.Overshoot)
	}
	if t.RestScale <= 0 || t.RestScale >= 1 {
		return fmt.Errorf("restScale must be within (0..1), got %v", t.RestScale)
	}
	if t.MaxRotationDeg <= 0 || t.MaxRotationDeg > 90 {
		return fmt.Errorf("maxRotationDeg must be within (0..90], got %v", t.MaxRotationDeg)
	}
	if err := t.Swipe.validate("swipe"); err != nil {
		return err
	}
	return t.Settle.validate("settle")
}

// validate checks one animation descriptor.
func (a AnimSpec) validate(name string) error {
	switch anim.Mode(a.Mode) {
	case anim.ModeTween:
		if a.DurationMs <= 0 {
			return fmt.Errorf("%s durationMs must be positive, got %d", name, a.DurationMs)
		}
		if _, ok := anim.EasingByName(a.Easing); !ok {
			return fmt.Errorf("%s easing %q is not a known curve", name, a.Easing)
		}
	case anim.ModeSpring:
		if a.Frequency <= 0 {
			return fmt.Errorf("%s frequency must be positive, got %v", name, a.Frequency)
		}
		if a.Damping <= 0 {
			return fmt.Errorf("%s damping must be positive, got %v", name, a.Damping)
		}
	default:
		return fmt.Errorf("%s mode %q must be %q or %q", name, a.Mode, anim.ModeTween, anim.ModeSpring)
	}
	return nil
}
