package maze

import "fmt"

const (
	// DefaultCols is the width of the first level.
	DefaultCols = 2
	// DefaultRows is the height of the first level.
	DefaultRows = 4
)

// origin is where the player starts every maze.
var origin = Position{Col: 0, Row: 0}

// State is one level of the game: a generated grid, the player, the exit and
// the score carried across levels. State values are never modified in place;
// every operation returns the next value.
type State struct {
	grid   *Grid      // generated grid, read-only once built
	player Position   // current player cell
	exit   Position   // always the bottom-right corner
	score  int        // number of exits reached so far
	gen    *Generator // source for regenerated grids
}

// NewState generates the first maze of a game.
func NewState(cols, rows int, gen *Generator) (State, error) {
	if gen == nil {
		return State{}, fmt.Errorf("creating maze state: nil generator")
	}
	grid, err := build(cols, rows, gen)
	if err != nil {
		return State{}, fmt.Errorf("creating maze state: %w", err)
	}
	return newLevel(grid, 0, gen), nil
}

// build allocates and carves a grid of the given size.
func build(cols, rows int, gen *Generator) (*Grid, error) {
	grid, err := NewGrid(cols, rows)
	if err != nil {
		return nil, err
	}
	gen.Generate(grid)
	return grid, nil
}

func newLevel(grid *Grid, score int, gen *Generator) State {
	return State{
		grid:   grid,
		player: origin,
		exit:   Position{Col: grid.Cols() - 1, Row: grid.Rows() - 1},
		score:  score,
		gen:    gen,
	}
}

// Cols returns the width of the current maze.
func (s State) Cols() int {
	return s.grid.Cols()
}

// Rows returns the height of the current maze.
func (s State) Rows() int {
	return s.grid.Rows()
}

// Grid exposes the current grid for read-only queries.
func (s State) Grid() *Grid {
	return s.grid
}

// Player returns the position of the player.
func (s State) Player() Position {
	return s.player
}

// Exit returns the position of the exit.
func (s State) Exit() Position {
	return s.exit
}

// Score returns the number of exits reached.
func (s State) Score() int {
	return s.score
}

// Level is the 1-based index of the current maze.
func (s State) Level() int {
	return s.score + 1
}

// AtExit reports whether the player stands on the exit.
func (s State) AtExit() bool {
	return s.player == s.exit
}

// ReturnToStart moves the player back to (0,0) without touching the maze.
func (s State) ReturnToStart() State {
	s.player = origin
	return s
}

// Reset builds a new maze of the same size, keeping the score.
func (s State) Reset() State {
	return s.regenerate(s.Cols(), s.Rows(), s.score)
}

// grow advances to the next level: one more column, one more row, one more point.
func (s State) grow() State {
	return s.regenerate(s.Cols()+1, s.Rows()+1, s.score+1)
}

func (s State) regenerate(cols, rows, score int) State {
	// Dimensions here are derived from an existing valid grid, so build cannot fail.
	grid, err := build(cols, rows, s.gen)
	if err != nil {
		panic(fmt.Sprintf("maze: regenerating %dx%d: %v", cols, rows, err))
	}
	return newLevel(grid, score, s.gen)
}

// String renders the maze with the player (P) and the exit (E).
func (s State) String() string {
	return s.grid.render(func(p Position) string {
		switch p {
		case s.player:
			return " P "
		case s.exit:
			return " E "
		}
		return "   "
	})
}
