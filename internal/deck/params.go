package deck

import (
	"errors"

	"github.com/frudas24/swipedeck/internal/anim"
)

// Default motion constants for a freshly configured deck.
const (
	DefaultThresholdPct   = 0.5
	DefaultOvershoot      = 1.2
	DefaultRestScale      = 0.8
	DefaultMaxRotationDeg = 20.0
)

// Params bundles the geometry, motion constants and callbacks a controller is
// built with. Zero motion fields fall back to the defaults above.
type Params struct {
	ScreenWidth    float64
	ThresholdPct   float64
	Overshoot      float64
	RestScale      float64
	MaxRotationDeg float64
	Swipe          anim.Spec
	Settle         anim.Spec
	OnSwipeLeft    func()
	OnSwipeRight   func()
}

// DefaultParams returns the standard motion constants for the given screen width.
func DefaultParams(screenWidth float64) Params {
	return Params{
		ScreenWidth:    screenWidth,
		ThresholdPct:   DefaultThresholdPct,
		Overshoot:      DefaultOvershoot,
		RestScale:      DefaultRestScale,
		MaxRotationDeg: DefaultMaxRotationDeg,
		Swipe:          anim.Default(),
		Settle:         anim.Default(),
	}
}

// validate checks the hard constraints and fills defaulted fields.
func (p *Params) validate() error {
	if p.ScreenWidth <= 0 {
		return errors.New("screen width must be positive")
	}
	if p.ThresholdPct < 0 || p.ThresholdPct > 1 {
		return errors.New("threshold fraction must be within (0..1]")
	}
	if p.ThresholdPct == 0 {
		p.ThresholdPct = DefaultThresholdPct
	}
	if p.Overshoot <= 0 {
		p.Overshoot = DefaultOvershoot
	}
	if p.RestScale <= 0 {
		p.RestScale = DefaultRestScale
	}
	if p.MaxRotationDeg <= 0 {
		p.MaxRotationDeg = DefaultMaxRotationDeg
	}
	return nil
}
