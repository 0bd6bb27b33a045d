// Package mazeapi exposes the maze game over HTTP.
package mazeapi

import "github.com/beka-birhanu/labiri-api/maze"

// MoveRequest asks to move the player one cell.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// MoveResponse reports what a move did and the resulting view of the game.
type MoveResponse struct {
	Outcome string        `json:"outcome"`
	State   maze.Snapshot `json:"state"`
}
