package game

import (
	"arcade-snake/game/entity"
	"arcade-snake/game/types"
)

type EventType int

const (
	EventKey EventType = iota
	EventQuit
)

// Key is a frontend-independent steering key
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Event is a single input event delivered by a frontend
type Event struct {
	Type EventType
	Key  Key
}

func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

func QuitEvent() Event {
	return Event{Type: EventQuit}
}

// Direction maps a key to the direction it steers
func (k Key) Direction() entity.Direction {
	switch k {
	case KeyUp:
		return entity.UP
	case KeyDown:
		return entity.DOWN
	case KeyLeft:
		return entity.LEFT
	case KeyRight:
		return entity.RIGHT
	default:
		return entity.NONE
	}
}

// Renderer draws cells on screen
type Renderer interface {
	Clear(c types.Color)
	DrawCell(p types.Point, c types.Color)
	Present()
}

// EventSource returns the input events received since the last call. It must
// not block.
type EventSource interface {
	PollEvents() []Event
}

// Clock blocks until the next tick boundary
type Clock interface {
	WaitTick()
}

// Frontend bundles the collaborators a game loop needs
type Frontend interface {
	Renderer
	EventSource
	Clock
}

// Observer is notified after every tick
type Observer interface {
	OnTick(types.TickReport)
}
