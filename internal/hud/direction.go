// ABOUTME: Maps the game's facing angle to a compass letter
// ABOUTME: Boundary choices are asymmetric on purpose and must not be "fixed"

package hud

// Direction is a compass label shown in the overlay.
type Direction string

const (
	North Direction = "N"
	South Direction = "S"
	East  Direction = "E"
	West  Direction = "W"
)

// ClassifyDirection buckets a facing angle in degrees, where 0 faces north and
// positive angles turn west. Order matters at the edges: -45 is N, 45 is W,
// 135 and -135 are S. Anything left over, including NaN, is E.
func ClassifyDirection(angle float64) Direction {
	switch {
	case angle >= -45 && angle < 45:
		return North
	case angle >= 45 && angle < 135:
		return West
	case angle >= 135 || angle <= -135:
		return South
	default:
		return East
	}
}
