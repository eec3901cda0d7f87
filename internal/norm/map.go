// Package norm remaps scalar values between linear ranges with input clamping.
package norm

import (
	"errors"
	"fmt"
)

// ErrDegenerateInput indicates an input range with no width to map from.
var ErrDegenerateInput = errors.New("input range has no width")

// ErrOutputRange indicates an output range whose bounds do not increase.
var ErrOutputRange = errors.New("output range bounds must increase")

// Map clamps value into [inMin..inMax] and rescales it linearly into [outMin..outMax].
func Map(value, inMin, inMax, outMin, outMax float64) (float64, error) {
	if outMin >= outMax {
		return 0, fmt.Errorf("%w: got [%v..%v]", ErrOutputRange, outMin, outMax)
	}
	if inMin >= inMax {
		return 0, fmt.Errorf("%w: got [%v..%v]", ErrDegenerateInput, inMin, inMax)
	}
	unit := (Clamp(value, inMin, inMax) - inMin) / (inMax - inMin)
	return outMin + unit*(outMax-outMin), nil
}

// MapUnit rescales value from [inMin..inMax] into the unit range.
func MapUnit(value, inMin, inMax float64) (float64, error) {
	return Map(value, inMin, inMax, 0, 1)
}

// Clamp bounds v to the [lo..hi] range.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
