package maze

// Cell represents a single cell in a maze grid.
// A wall flag set to true means the wall is present.
type Cell struct {
	TopWall    bool // TopWall indicates whether there is a wall above the cell.
	BottomWall bool // BottomWall indicates whether there is a wall below the cell.
	LeftWall   bool // LeftWall indicates whether there is a wall on the left side of the cell.
	RightWall  bool // RightWall indicates whether there is a wall on the right side of the cell.
	Visited    bool // Visited is only meaningful while the generator walks the grid.
}

// newClosedCell returns a cell with all four walls standing.
func newClosedCell() Cell {
	return Cell{
		TopWall:    true,
		BottomWall: true,
		LeftWall:   true,
		RightWall:  true,
	}
}

// Wall returns the wall flag facing d. Unknown directions report a wall.
func (c Cell) Wall(d Direction) bool {
	switch d {
	case Up:
		return c.TopWall
	case Down:
		return c.BottomWall
	case Left:
		return c.LeftWall
	case Right:
		return c.RightWall
	}
	return true
}

// setWall updates the wall flag facing d.
func (c *Cell) setWall(d Direction, present bool) {
	switch d {
	case Up:
		c.TopWall = present
	case Down:
		c.BottomWall = present
	case Left:
		c.LeftWall = present
	case Right:
		c.RightWall = present
	}
}

// Position represents the position of a cell in the maze grid.
type Position struct {
	Col int `json:"col"` // Column index of the cell
	Row int `json:"row"` // Row index of the cell
}

// Add returns the position shifted by delta.
func (p Position) Add(delta Position) Position {
	return Position{Col: p.Col + delta.Col, Row: p.Row + delta.Row}
}
