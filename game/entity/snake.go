package entity

import "arcade-snake/game/types"

type Snake struct {
	Body      []types.Point // head first
	Length    int
	Direction Direction // committed, applied on the next move
	Pending   Direction // buffered from input, NONE when empty
	Color     types.Color
}

func NewSnake(startPos types.Point, dir Direction, color types.Color) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Length:    1,
		Direction: dir,
		Pending:   NONE,
		Color:     color,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// Steer buffers dir as the pending direction unless it would reverse the
// committed one. Later calls within the same tick overwrite earlier ones.
func (s *Snake) Steer(dir Direction) bool {
	if dir == NONE || dir == s.Direction.Opposite() {
		return false
	}
	s.Pending = dir
	return true
}

// UpdateDirection commits the pending direction, if any
func (s *Snake) UpdateDirection() {
	if s.Pending != NONE {
		s.Direction = s.Pending
		s.Pending = NONE
	}
}

// Move inserts newHead at the front of the body
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// RemoveTail drops the last segment and returns it
func (s *Snake) RemoveTail() (types.Point, bool) {
	if len(s.Body) == 0 {
		return types.Point{}, false
	}
	tail := s.Body[len(s.Body)-1]
	s.Body = s.Body[:len(s.Body)-1]
	return tail, true
}

func (s *Snake) Grow() {
	s.Length++
}

// Occupies reports whether any body segment sits on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Reset puts the snake back to a single segment at startPos
func (s *Snake) Reset(startPos types.Point, dir Direction) {
	s.Body = []types.Point{startPos}
	s.Length = 1
	s.Direction = dir
	s.Pending = NONE
}
