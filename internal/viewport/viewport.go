// Package viewport tracks the client display geometry the deck maps onto.
package viewport

// DefaultDPR is assumed when a client does not report a pixel ratio.
const DefaultDPR = 1.0

// Viewport is the client-reported layout box the cards render in. W and H are
// CSS pixels; DPR is the device pixel ratio, kept as a rendering hint only.
type Viewport struct {
	W   float64 `json:"w"`
	H   float64 `json:"h"`
	DPR float64 `json:"dpr"`
}

// Valid reports whether the box has renderable dimensions.
func (v Viewport) Valid() bool {
	return v.W > 0 && v.H > 0
}

// Normalize fills missing fields with usable defaults.
func Normalize(v Viewport) Viewport {
	if v.DPR <= 0 {
		v.DPR = DefaultDPR
	}
	return v
}

// Fallback returns the viewport used until a client reports its own.
func Fallback(w, h float64) Viewport {
	return Viewport{W: w, H: h, DPR: DefaultDPR}
}
