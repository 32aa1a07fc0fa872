// Package term renders the game in a terminal using tcell. Each grid cell
// is two terminal columns wide so cells look roughly square.
package term

import (
	"fmt"
	"time"

	"arcade-snake/game"
	"arcade-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

const (
	cellRune    = '█'
	columnsWide = 2
)

type Terminal struct {
	screen tcell.Screen
	grid   types.Grid
	ticker *time.Ticker
	events chan tcell.Event
	bg     tcell.Color
}

// New initialises the terminal screen
func New(cfg game.Config) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating terminal screen: %w", err)
	}
	return NewWithScreen(screen, cfg)
}

// NewWithScreen wraps an existing screen, initialising it
func NewWithScreen(screen tcell.Screen, cfg game.Config) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initialising terminal screen: %w", err)
	}
	screen.HideCursor()

	t := &Terminal{
		screen: screen,
		grid:   cfg.Grid(),
		ticker: time.NewTicker(time.Second / time.Duration(cfg.Speed)),
		events: make(chan tcell.Event, 100),
		bg:     toColor(cfg.Background),
	}

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(t.events)
				return
			}
			t.events <- ev
		}
	}()

	return t, nil
}

func (t *Terminal) Close() {
	t.ticker.Stop()
	t.screen.Fini()
}

func (t *Terminal) Clear(c types.Color) {
	t.bg = toColor(c)
	t.screen.Fill(' ', tcell.StyleDefault.Background(t.bg))
}

func (t *Terminal) DrawCell(p types.Point, c types.Color) {
	col, row := t.grid.ToCell(p)
	style := tcell.StyleDefault.Foreground(toColor(c)).Background(t.bg)
	for i := 0; i < columnsWide; i++ {
		t.screen.SetContent(col*columnsWide+i, row, cellRune, nil, style)
	}
}

func (t *Terminal) Present() {
	t.screen.Show()
}

func (t *Terminal) WaitTick() {
	<-t.ticker.C
}

// PollEvents drains the events read since the last tick
func (t *Terminal) PollEvents() []game.Event {
	var out []game.Event
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return append(out, game.QuitEvent())
			}
			if e, ok := t.translate(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

func (t *Terminal) translate(ev tcell.Event) (game.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return game.QuitEvent(), true
		case tcell.KeyUp:
			return game.KeyEvent(game.KeyUp), true
		case tcell.KeyDown:
			return game.KeyEvent(game.KeyDown), true
		case tcell.KeyLeft:
			return game.KeyEvent(game.KeyLeft), true
		case tcell.KeyRight:
			return game.KeyEvent(game.KeyRight), true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return game.QuitEvent(), true
			case 'w':
				return game.KeyEvent(game.KeyUp), true
			case 's':
				return game.KeyEvent(game.KeyDown), true
			case 'a':
				return game.KeyEvent(game.KeyLeft), true
			case 'd':
				return game.KeyEvent(game.KeyRight), true
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return game.Event{}, false
}

func toColor(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
