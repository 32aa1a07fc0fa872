package ui

import (
	"errors"

	"arcade-snake/game"
	"arcade-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const windowTitle = "Snake"

// Renderer is the raylib frontend: it draws cells, reads the keyboard and
// paces ticks through the target FPS.
type Renderer struct {
	cellSize int32
	border   rl.Color
	drawing  bool
}

// NewRenderer opens the window. The caller must call Close.
func NewRenderer(cfg game.Config) (*Renderer, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), windowTitle)
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib: window could not be created")
	}
	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(int32(cfg.Speed))

	return &Renderer{
		cellSize: int32(cfg.CellSize),
		border:   toColor(cfg.Border),
	}, nil
}

func (r *Renderer) Close() {
	if r.drawing {
		rl.EndDrawing()
		r.drawing = false
	}
	rl.CloseWindow()
}

func (r *Renderer) Clear(c types.Color) {
	if !r.drawing {
		rl.BeginDrawing()
		r.drawing = true
	}
	rl.ClearBackground(toColor(c))
}

func (r *Renderer) DrawCell(p types.Point, c types.Color) {
	x, y := int32(p.X), int32(p.Y)
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, toColor(c))
	rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, r.border)
}

// Present ends the frame; EndDrawing also waits out the rest of the tick
func (r *Renderer) Present() {
	if r.drawing {
		rl.EndDrawing()
		r.drawing = false
	}
}

// WaitTick is a no-op, pacing happens in Present
func (r *Renderer) WaitTick() {}

func (r *Renderer) PollEvents() []game.Event {
	if rl.WindowShouldClose() {
		return []game.Event{game.QuitEvent()}
	}

	var events []game.Event
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		switch key {
		case rl.KeyUp, rl.KeyW:
			events = append(events, game.KeyEvent(game.KeyUp))
		case rl.KeyDown, rl.KeyS:
			events = append(events, game.KeyEvent(game.KeyDown))
		case rl.KeyLeft, rl.KeyA:
			events = append(events, game.KeyEvent(game.KeyLeft))
		case rl.KeyRight, rl.KeyD:
			events = append(events, game.KeyEvent(game.KeyRight))
		case rl.KeyQ:
			events = append(events, game.QuitEvent())
		}
	}
	return events
}

func toColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
