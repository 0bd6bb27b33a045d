/*
Package maze provides tools for creating and playing rectangular perfect mazes.

A Grid holds the cells and their walls, a Generator carves a perfect maze into
a Grid with randomized backtracking, and a State tracks the player, the exit
and the score across levels. Move is the only way a State advances.
*/
package maze

import (
	"errors"
	"strings"
)

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrNotAdjacent       = errors.New("cells are not adjacent")
)

// Grid is a Cols x Rows rectangle of cells stored row-major.
type Grid struct {
	cols  int    // Width of the maze (number of columns)
	rows  int    // Height of the maze (number of rows)
	cells []Cell // cells[row*cols+col]
}

// NewGrid allocates a grid with every wall present.
func NewGrid(cols, rows int) (*Grid, error) {
	if cols < 1 || rows < 1 {
		return nil, ErrInvalidDimensions
	}

	cells := make([]Cell, cols*rows)
	for i := range cells {
		cells[i] = newClosedCell()
	}

	return &Grid{
		cols:  cols,
		rows:  rows,
		cells: cells,
	}, nil
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// InBound checks if a position lies inside the grid.
func (g *Grid) InBound(p Position) bool {
	return p.Col >= 0 && p.Col < g.cols && p.Row >= 0 && p.Row < g.rows
}

func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Cell returns a copy of the cell at p, or false when p is out of bounds.
func (g *Grid) Cell(p Position) (Cell, bool) {
	if !g.InBound(p) {
		return Cell{}, false
	}
	return g.cells[g.index(p)], true
}

// Neighbor returns the position next to p towards d, or false at the border.
func (g *Grid) Neighbor(p Position, d Direction) (Position, bool) {
	if !d.Valid() {
		return Position{}, false
	}
	n := p.Add(d.Delta())
	if !g.InBound(p) || !g.InBound(n) {
		return Position{}, false
	}
	return n, true
}

// RemoveWallBetween opens the shared edge of two adjacent cells.
// Both sides are cleared before returning.
func (g *Grid) RemoveWallBetween(a, b Position) error {
	if !g.InBound(a) || !g.InBound(b) {
		return ErrNotAdjacent
	}

	d, ok := directionBetween(a, b)
	if !ok {
		return ErrNotAdjacent
	}

	g.cells[g.index(a)].setWall(d, false)
	g.cells[g.index(b)].setWall(d.Opposite(), false)
	return nil
}

// directionBetween returns the direction leading from a to b when they touch.
func directionBetween(a, b Position) (Direction, bool) {
	dc, dr := b.Col-a.Col, b.Row-a.Row
	switch {
	case dc == -1 && dr == 0:
		return Left, true
	case dc == 1 && dr == 0:
		return Right, true
	case dc == 0 && dr == -1:
		return Up, true
	case dc == 0 && dr == 1:
		return Down, true
	}
	return 0, false
}

// OpenWalls counts the interior edges whose wall has been removed.
// Each shared edge is counted once.
func (g *Grid) OpenWalls() int {
	open := 0
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			c := g.cells[g.index(Position{Col: col, Row: row})]
			if col < g.cols-1 && !c.RightWall {
				open++
			}
			if row < g.rows-1 && !c.BottomWall {
				open++
			}
		}
	}
	return open
}

func (g *Grid) markVisited(p Position) {
	g.cells[g.index(p)].Visited = true
}

func (g *Grid) visited(p Position) bool {
	return g.cells[g.index(p)].Visited
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	return g.render(func(Position) string { return "   " })
}

// render draws the grid, asking fill for the three characters inside each cell.
func (g *Grid) render(fill func(Position) string) string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", g.cols) + "\n")

	for row := 0; row < g.rows; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < g.cols; col++ {
			pos := Position{Col: col, Row: row}
			cellRow += fill(pos)
			if g.cells[g.index(pos)].RightWall {
				cellRow += "|"
			} else {
				cellRow += " "
			}
		}
		output.WriteString(cellRow + "\n")

		// Wall rows
		wallRow := "+"
		for col := 0; col < g.cols; col++ {
			if g.cells[g.index(Position{Col: col, Row: row})].BottomWall {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}
