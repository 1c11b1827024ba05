package domain

// PositionStep is the base position and the gap between appended siblings.
// Appending never renumbers existing siblings; inserting between two
// siblings is done by the caller supplying a fractional midpoint.
const PositionStep = 1000

// NextPosition returns the position for an appended sibling given the
// current maximum position, or the base position when no sibling exists.
func NextPosition(max *float64) float64 {
	if max == nil {
		return PositionStep
	}
	return *max + PositionStep
}
