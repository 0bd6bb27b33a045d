package maze

import (
	"errors"
	"strings"
)

// Direction is one of the four compass moves a player can request.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var (
	ErrUnknownDirection = errors.New("unknown direction")

	directionNames = map[string]Direction{
		"up":    Up,
		"north": Up,
		"down":  Down,
		"south": Down,
		"left":  Left,
		"west":  Left,
		"right": Right,
		"east":  Right,
	}

	// deltas maps every direction to its (col, row) offset.
	deltas = map[Direction]Position{
		Up:    {Col: 0, Row: -1},
		Down:  {Col: 0, Row: 1},
		Left:  {Col: -1, Row: 0},
		Right: {Col: 1, Row: 0},
	}
)

// ParseDirection converts a case-insensitive name into a Direction.
func ParseDirection(s string) (Direction, error) {
	d, ok := directionNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, ErrUnknownDirection
	}
	return d, nil
}

// Valid reports whether d is one of Up, Down, Left or Right.
func (d Direction) Valid() bool {
	_, ok := deltas[d]
	return ok
}

// Delta returns the column and row offset of a single step towards d.
func (d Direction) Delta() Position {
	return deltas[d]
}

// Opposite returns the direction facing back.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}
