package control

import "math"

// Decision is the release outcome of a drag.
type Decision string

// Release outcomes.
const (
	DecisionNone         Decision = ""
	DecisionSwipeLeft    Decision = "swipeLeft"
	DecisionSwipeRight   Decision = "swipeRight"
	DecisionReturnCenter Decision = "returnCenter"
)

// decideRelease picks the release action from the card position and fling
// velocity. A position past the activation threshold always wins; velocity
// magnitude only matters when the threshold was not crossed, and it commits
// toward whichever side the card currently sits on.
func decideRelease(offsetX, activationX, vx, velocityThreshold float64) Decision {
	if offsetX <= 0 {
		if offsetX < -activationX {
			return DecisionSwipeLeft
		}
		if math.Abs(vx) >= velocityThreshold {
			return DecisionSwipeLeft
		}
		return DecisionReturnCenter
	}
	if offsetX > activationX {
		return DecisionSwipeRight
	}
	if math.Abs(vx) >= velocityThreshold {
		return DecisionSwipeRight
	}
	return DecisionReturnCenter
}
