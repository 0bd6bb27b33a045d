package terminal

import (
	"math"

	"github.com/beka-birhanu/labiri-api/maze"
)

// DirectionFromDisplacement resolves a pointer displacement from the player's
// centre, measured in cells, into a move. Nothing is resolved until the pointer
// is more than threshold cells away on some axis; then the larger axis wins
// and its sign picks the direction.
func DirectionFromDisplacement(dx, dy, threshold float64) (maze.Direction, bool) {
	absX, absY := math.Abs(dx), math.Abs(dy)
	if absX <= threshold && absY <= threshold {
		return 0, false
	}

	if absX > absY {
		if dx > 0 {
			return maze.Right, true
		}
		return maze.Left, true
	}

	if dy > 0 {
		return maze.Down, true
	}
	return maze.Up, true
}
