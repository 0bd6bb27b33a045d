package maze

// CellWalls is the wall layout of one cell as seen by renderers.
type CellWalls struct {
	Top    bool `json:"top"`
	Bottom bool `json:"bottom"`
	Left   bool `json:"left"`
	Right  bool `json:"right"`
}

// Snapshot is the read-only view of a State handed to rendering clients.
type Snapshot struct {
	Cols   int         `json:"cols"`
	Rows   int         `json:"rows"`
	Cells  []CellWalls `json:"cells"` // row-major, index row*Cols+col
	Player Position    `json:"player"`
	Exit   Position    `json:"exit"`
	Score  int         `json:"score"`
	Level  int         `json:"level"`
}

// Snapshot copies the renderable parts of s.
func (s State) Snapshot() Snapshot {
	cells := make([]CellWalls, len(s.grid.cells))
	for i, c := range s.grid.cells {
		cells[i] = CellWalls{
			Top:    c.TopWall,
			Bottom: c.BottomWall,
			Left:   c.LeftWall,
			Right:  c.RightWall,
		}
	}

	return Snapshot{
		Cols:   s.Cols(),
		Rows:   s.Rows(),
		Cells:  cells,
		Player: s.player,
		Exit:   s.exit,
		Score:  s.score,
		Level:  s.Level(),
	}
}

// Walls returns the wall layout at (col, row).
func (s Snapshot) Walls(col, row int) CellWalls {
	return s.Cells[row*s.Cols+col]
}
