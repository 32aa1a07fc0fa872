package entity

import "arcade-snake/game/types"

// Direction represents a cardinal direction
type Direction int

const (
	NONE Direction = iota // no direction buffered
	UP
	RIGHT
	DOWN
	LEFT
)

// Directions lists the four movement directions
var Directions = [...]Direction{UP, RIGHT, DOWN, LEFT}

// ToPoint converts a Direction to a unit displacement vector
func (d Direction) ToPoint() types.Point {
	switch d {
	case UP:
		return types.Point{X: 0, Y: -1}
	case RIGHT:
		return types.Point{X: 1, Y: 0}
	case DOWN:
		return types.Point{X: 0, Y: 1}
	case LEFT:
		return types.Point{X: -1, Y: 0}
	default:
		return types.Point{X: 0, Y: 0}
	}
}

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return NONE
	}
}

// TurnLeft returns the direction after a quarter turn counter-clockwise
func (d Direction) TurnLeft() Direction {
	switch d {
	case UP:
		return LEFT
	case RIGHT:
		return UP
	case DOWN:
		return RIGHT
	case LEFT:
		return DOWN
	default:
		return d
	}
}

// TurnRight returns the direction after a quarter turn clockwise
func (d Direction) TurnRight() Direction {
	switch d {
	case UP:
		return RIGHT
	case RIGHT:
		return DOWN
	case DOWN:
		return LEFT
	case LEFT:
		return UP
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}
