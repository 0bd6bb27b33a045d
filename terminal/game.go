// Package terminal plays the maze in a terminal with tcell.
package terminal

import (
	"fmt"

	"github.com/beka-birhanu/labiri-api/maze"
	"github.com/beka-birhanu/labiri-api/service/i"
	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth  = 4 // columns per maze cell, including its left wall
	cellHeight = 2 // rows per maze cell, including its top wall

	// clickThreshold is the distance, in cells, a click must be from the
	// player's centre to count as a move. Half a cell means any click outside
	// the player's own cell.
	clickThreshold = 0.5

	helpLine = "arrows/hjkl/wasd move  r start  n new maze  q quit"
)

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	exitStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	textStyle   = tcell.StyleDefault
)

// Game owns the screen and the state of one local game.
type Game struct {
	screen tcell.Screen
	state  maze.State
	logger i.Logger
}

// NewGame wraps an initialised screen.
func NewGame(screen tcell.Screen, state maze.State, logger i.Logger) *Game {
	return &Game{
		screen: screen,
		state:  state,
		logger: logger,
	}
}

// State returns the current game state.
func (g *Game) State() maze.State {
	return g.state
}

// Run draws and processes events until the player quits.
func (g *Game) Run() {
	g.Draw()
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		if g.Handle(ev) {
			return
		}
		g.Draw()
	}
}

// Handle applies one event and reports whether the game should stop.
func (g *Game) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, d := KeyAction(ev)
		switch action {
		case ActionQuit:
			return true
		case ActionMove:
			g.move(d)
		case ActionReturn:
			g.state = g.state.ReturnToStart()
		case ActionReset:
			g.state = g.state.Reset()
			g.logger.Info(fmt.Sprintf("new %dx%d maze", g.state.Cols(), g.state.Rows()))
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return false
		}
		x, y := ev.Position()
		if d, ok := g.clickDirection(x, y); ok {
			g.move(d)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return false
}

func (g *Game) move(d maze.Direction) {
	var outcome maze.Outcome
	g.state, outcome = maze.Move(g.state, d)
	if outcome == maze.Escaped {
		g.logger.Info(fmt.Sprintf("escaped, level %d is %dx%d", g.state.Level(), g.state.Cols(), g.state.Rows()))
	}
}

// clickDirection converts a click at screen (x, y) into a move.
func (g *Game) clickDirection(x, y int) (maze.Direction, bool) {
	cx, cy := cellCenter(g.state.Player())
	dx := float64(x-cx) / cellWidth
	dy := float64(y-cy) / cellHeight
	return DirectionFromDisplacement(dx, dy, clickThreshold)
}

// cellCenter is the screen position of the middle of a cell.
func cellCenter(p maze.Position) (int, int) {
	return p.Col*cellWidth + cellWidth/2, p.Row*cellHeight + cellHeight/2
}

// Draw renders the maze, the player, the exit and a status line.
func (g *Game) Draw() {
	g.screen.Clear()
	snap := g.state.Snapshot()

	width, height := g.screen.Size()
	needW, needH := snap.Cols*cellWidth+1, snap.Rows*cellHeight+2
	if width < needW || height < needH {
		g.text(0, 0, fmt.Sprintf("level %d needs a %dx%d terminal", snap.Level, needW, needH))
		g.screen.Show()
		return
	}

	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			g.drawCell(snap, col, row)
		}
	}

	g.drawMarker(snap.Exit, 'E', exitStyle)
	g.drawMarker(snap.Player, '@', playerStyle)

	g.text(0, snap.Rows*cellHeight+1, fmt.Sprintf("level %d  score %d  %s", snap.Level, snap.Score, helpLine))
	g.screen.Show()
}

func (g *Game) drawCell(snap maze.Snapshot, col, row int) {
	walls := snap.Walls(col, row)
	x, y := col*cellWidth, row*cellHeight

	g.screen.SetContent(x, y, tcell.RunePlus, nil, wallStyle)
	if walls.Top {
		g.hline(x+1, y)
	}
	if walls.Left {
		g.screen.SetContent(x, y+1, tcell.RuneVLine, nil, wallStyle)
	}

	if col == snap.Cols-1 {
		g.screen.SetContent(x+cellWidth, y, tcell.RunePlus, nil, wallStyle)
		if walls.Right {
			g.screen.SetContent(x+cellWidth, y+1, tcell.RuneVLine, nil, wallStyle)
		}
	}
	if row == snap.Rows-1 {
		g.screen.SetContent(x, y+cellHeight, tcell.RunePlus, nil, wallStyle)
		if walls.Bottom {
			g.hline(x+1, y+cellHeight)
		}
		if col == snap.Cols-1 {
			g.screen.SetContent(x+cellWidth, y+cellHeight, tcell.RunePlus, nil, wallStyle)
		}
	}
}

func (g *Game) hline(x, y int) {
	for dx := 0; dx < cellWidth-1; dx++ {
		g.screen.SetContent(x+dx, y, tcell.RuneHLine, nil, wallStyle)
	}
}

func (g *Game) drawMarker(p maze.Position, r rune, style tcell.Style) {
	x, y := cellCenter(p)
	g.screen.SetContent(x, y, r, nil, style)
}

func (g *Game) text(x, y int, s string) {
	for idx, r := range []rune(s) {
		g.screen.SetContent(x+idx, y, r, nil, textStyle)
	}
}
