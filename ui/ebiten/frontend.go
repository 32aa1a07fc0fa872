// Package ebitenui runs the game inside an ebiten window. Ebiten owns the
// loop and calls Update at a fixed rate; input is read on every Update and
// the game ticks at its own speed. Draw replays the cells recorded during
// the last tick.
package ebitenui

import (
	"context"
	"image/color"

	"arcade-snake/game"
	"arcade-snake/game/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type cell struct {
	pos   types.Point
	color color.RGBA
}

const updatesPerSecond = 60

type Frontend struct {
	ctx    context.Context
	game   *game.Game
	cfg    game.Config
	border color.RGBA
	pacer  *game.Pacer
	queued []game.Event

	// written during Update, read during Draw; ebiten calls both from
	// the same goroutine
	bg      color.RGBA
	pending []cell
	frame   []cell
}

func New(g *game.Game) *Frontend {
	cfg := g.Config()
	return &Frontend{
		game:   g,
		cfg:    cfg,
		border: toColor(cfg.Border),
		pacer:  game.NewPacer(cfg.Speed, updatesPerSecond),
		bg:     toColor(cfg.Background),
	}
}

// Run opens the window and blocks until the player quits or ctx is done
func (f *Frontend) Run(ctx context.Context) error {
	f.ctx = ctx
	ebiten.SetWindowSize(f.cfg.ScreenWidth, f.cfg.ScreenHeight)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetTPS(updatesPerSecond)
	return ebiten.RunGame(f)
}

func (f *Frontend) Update() error {
	if err := f.ctx.Err(); err != nil {
		return err
	}
	events := f.PollEvents()
	for _, ev := range events {
		if ev.Type == game.EventQuit {
			return ebiten.Termination
		}
	}
	f.queued = append(f.queued, events...)

	if !f.pacer.Due() {
		return nil
	}
	f.game.HandleEvents(f.queued)
	f.queued = f.queued[:0]
	f.game.Step(f)
	return nil
}

func (f *Frontend) Draw(screen *ebiten.Image) {
	screen.Fill(f.bg)
	size := float32(f.cfg.CellSize)
	for _, c := range f.frame {
		x, y := float32(c.pos.X), float32(c.pos.Y)
		vector.DrawFilledRect(screen, x, y, size, size, c.color, false)
		vector.StrokeRect(screen, x, y, size, size, 1, f.border, false)
	}
}

func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return f.cfg.ScreenWidth, f.cfg.ScreenHeight
}

func (f *Frontend) Clear(c types.Color) {
	f.bg = toColor(c)
	f.pending = f.pending[:0]
}

func (f *Frontend) DrawCell(p types.Point, c types.Color) {
	f.pending = append(f.pending, cell{pos: p, color: toColor(c)})
}

func (f *Frontend) Present() {
	f.frame = append(f.frame[:0], f.pending...)
}

// WaitTick is a no-op, the pacer in Update decides when to tick
func (f *Frontend) WaitTick() {}

func (f *Frontend) PollEvents() []game.Event {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return []game.Event{game.QuitEvent()}
	}

	var events []game.Event
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		switch k {
		case ebiten.KeyArrowUp, ebiten.KeyW:
			events = append(events, game.KeyEvent(game.KeyUp))
		case ebiten.KeyArrowDown, ebiten.KeyS:
			events = append(events, game.KeyEvent(game.KeyDown))
		case ebiten.KeyArrowLeft, ebiten.KeyA:
			events = append(events, game.KeyEvent(game.KeyLeft))
		case ebiten.KeyArrowRight, ebiten.KeyD:
			events = append(events, game.KeyEvent(game.KeyRight))
		}
	}
	return events
}

func toColor(c types.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
