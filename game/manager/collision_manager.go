package manager

import (
	"arcade-snake/game/entity"
	"arcade-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// NextHead returns where the head lands after one step in the committed
// direction. Movement wraps around the screen edges.
func (cm *CollisionManager) NextHead(snake *entity.Snake) types.Point {
	head := snake.GetHead()
	dir := snake.Direction.ToPoint()
	return cm.grid.Wrap(types.Point{
		X: head.X + dir.X*cm.grid.CellSize,
		Y: head.Y + dir.Y*cm.grid.CellSize,
	})
}

// Advance moves the snake one cell and resolves growth. The tail is trimmed
// unless the snake is still catching up with its length; the trimmed cell is
// returned when that happens.
func (cm *CollisionManager) Advance(snake *entity.Snake) (types.Point, bool) {
	snake.Move(cm.NextHead(snake))
	if len(snake.Body) > snake.Length {
		return snake.RemoveTail()
	}
	return types.Point{}, false
}

// IsSelfCollision checks the head against body[2:]. body[1] is where the head
// just came from and is never a hit.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	if len(snake.Body) < 3 {
		return false
	}
	head := snake.GetHead()
	for _, part := range snake.Body[2:] {
		if part == head {
			return true
		}
	}
	return false
}

func (cm *CollisionManager) IsObstacleCollision(pos types.Point, obstacle *entity.Obstacle) bool {
	return obstacle != nil && pos == obstacle.Position
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Food) bool {
	return food != nil && pos == food.Position
}

// CheckCollision reports what, if anything, the snake's head ran into
func (cm *CollisionManager) CheckCollision(snake *entity.Snake, obstacle *entity.Obstacle) types.CollisionType {
	if cm.IsSelfCollision(snake) {
		return types.SelfCollision
	}
	if cm.IsObstacleCollision(snake.GetHead(), obstacle) {
		return types.ObstacleCollision
	}
	return types.NoCollision
}
