package maze

// Outcome describes what a move request did.
type Outcome int

const (
	// Blocked means a wall stood in the way and nothing changed.
	Blocked Outcome = iota
	// Moved means the player stepped into the neighbouring cell.
	Moved
	// Escaped means the step reached the exit and the next level was generated.
	Escaped
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Escaped:
		return "escaped"
	}
	return "blocked"
}

// Move applies a directional request to s. A request against a wall, or with
// an unknown direction, returns s as it was.
func Move(s State, d Direction) (State, Outcome) {
	cell, ok := s.grid.Cell(s.player)
	if !ok || cell.Wall(d) {
		return s, Blocked
	}

	next, ok := s.grid.Neighbor(s.player, d)
	if !ok {
		return s, Blocked
	}

	s.player = next
	if s.AtExit() {
		return s.grow(), Escaped
	}
	return s, Moved
}
