package anim

import "math"

// Easing maps normalized elapsed time to normalized progress.
type Easing func(t float64) float64

// Named easing curves accepted by animation specs and tuning files.
const (
	EaseLinear     = "linear"
	EaseInQuad     = "ease_in_quad"
	EaseOutQuad    = "ease_out_quad"
	EaseOutCubic   = "ease_out_cubic"
	EaseInOutCubic = "ease_in_out_cubic"
)

// EasingByName resolves a named curve.
func EasingByName(name string) (Easing, bool) {
	switch name {
	case EaseLinear:
		return easeLinear, true
	case EaseInQuad:
		return easeInQuad, true
	case EaseOutQuad:
		return easeOutQuad, true
	case EaseOutCubic:
		return easeOutCubic, true
	case EaseInOutCubic:
		return easeInOutCubic, true
	default:
		return nil, false
	}
}

// easeLinear passes progress through unchanged.
func easeLinear(t float64) float64 {
	return t
}

// easeInQuad accelerates from rest.
func easeInQuad(t float64) float64 {
	return t * t
}

// easeOutQuad decelerates into the target.
func easeOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// easeOutCubic decelerates into the target more sharply than quad.
func easeOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// easeInOutCubic accelerates through the midpoint then decelerates.
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Lerp interpolates linearly between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
