package entity

import "arcade-snake/game/types"

// Food makes the snake grow when its head lands on it
type Food struct {
	Position types.Point
	Color    types.Color
}

func NewFood(pos types.Point, color types.Color) *Food {
	return &Food{Position: pos, Color: color}
}

// Obstacle resets the snake when its head lands on it
type Obstacle struct {
	Position types.Point
	Color    types.Color
}

func NewObstacle(pos types.Point, color types.Color) *Obstacle {
	return &Obstacle{Position: pos, Color: color}
}
