package terminal

import (
	"github.com/beka-birhanu/labiri-api/maze"
	"github.com/gdamore/tcell/v2"
)

// Action is what a key press asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionReturn
	ActionReset
	ActionQuit
)

var runeMoves = map[rune]maze.Direction{
	'k': maze.Up, 'w': maze.Up,
	'j': maze.Down, 's': maze.Down,
	'h': maze.Left, 'a': maze.Left,
	'l': maze.Right, 'd': maze.Right,
}

// KeyAction maps arrows, hjkl and wasd to moves, r to return, n to reset and
// q, Esc or Ctrl-C to quit.
func KeyAction(ev *tcell.EventKey) (Action, maze.Direction) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMove, maze.Up
	case tcell.KeyDown:
		return ActionMove, maze.Down
	case tcell.KeyLeft:
		return ActionMove, maze.Left
	case tcell.KeyRight:
		return ActionMove, maze.Right
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, 0
	case tcell.KeyRune:
		r := ev.Rune()
		if d, ok := runeMoves[r]; ok {
			return ActionMove, d
		}
		switch r {
		case 'r':
			return ActionReturn, 0
		case 'n':
			return ActionReset, 0
		case 'q':
			return ActionQuit, 0
		}
	}
	return ActionNone, 0
}
