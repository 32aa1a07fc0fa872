package game

import (
	"context"
	"errors"
	"testing"

	"arcade-snake/game/entity"
	"arcade-snake/game/types"
)

type fakeFrontend struct {
	ops    []string
	cells  []types.Point
	events [][]Event
	waits  int
}

func (f *fakeFrontend) Clear(c types.Color) {
	f.ops = append(f.ops, "clear")
	f.cells = f.cells[:0]
}

func (f *fakeFrontend) DrawCell(p types.Point, c types.Color) {
	f.ops = append(f.ops, "draw")
	f.cells = append(f.cells, p)
}

func (f *fakeFrontend) Present() {
	f.ops = append(f.ops, "present")
}

func (f *fakeFrontend) WaitTick() {
	f.waits++
}

func (f *fakeFrontend) PollEvents() []Event {
	if f.waits-1 < len(f.events) {
		return f.events[f.waits-1]
	}
	return nil
}

type recordingObserver struct {
	reports []types.TickReport
}

func (o *recordingObserver) OnTick(r types.TickReport) {
	o.reports = append(o.reports, r)
}

func newTestGame(t *testing.T, obstacle bool) *Game {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Obstacle = obstacle
	g, err := NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	return g
}

func keyFor(d entity.Direction) Key {
	switch d {
	case entity.UP:
		return KeyUp
	case entity.DOWN:
		return KeyDown
	case entity.LEFT:
		return KeyLeft
	case entity.RIGHT:
		return KeyRight
	}
	return KeyNone
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t, true)

	if len(g.Snake.Body) != 1 || g.Snake.GetHead() != (types.Point{X: 320, Y: 240}) {
		t.Errorf("Expected snake at (320,240), got %v", g.Snake.Body)
	}
	if g.Snake.Direction != entity.RIGHT {
		t.Errorf("Expected initial direction right, got %v", g.Snake.Direction)
	}
	if g.Snake.Occupies(g.Food.Position) {
		t.Errorf("Food spawned on snake at %v", g.Food.Position)
	}
	if g.Obstacle == nil {
		t.Fatal("Expected obstacle when enabled")
	}
	if g.Snake.Occupies(g.Obstacle.Position) || g.Obstacle.Position == g.Food.Position {
		t.Errorf("Obstacle spawned on an occupied cell %v", g.Obstacle.Position)
	}
	if g.Grid.Width != 32 || g.Grid.Height != 24 {
		t.Errorf("Expected 32x24 grid, got %dx%d", g.Grid.Width, g.Grid.Height)
	}
}

func TestNewGameWithoutObstacle(t *testing.T) {
	g := newTestGame(t, false)
	if g.Obstacle != nil {
		t.Errorf("Expected no obstacle, got %v", g.Obstacle.Position)
	}
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellSize = 0
	if _, err := NewGame(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestEatFoodScenario(t *testing.T) {
	g := newTestGame(t, false)
	g.Food.Position = types.Point{X: 340, Y: 240}

	report := g.Step(&fakeFrontend{})

	if report.Head != (types.Point{X: 340, Y: 240}) {
		t.Errorf("Expected head at (340,240), got %v", report.Head)
	}
	if !report.Ate {
		t.Error("Expected food to be eaten")
	}
	if g.Snake.Length != 2 {
		t.Errorf("Expected length 2, got %d", g.Snake.Length)
	}
	food := g.Food.Position
	if food == (types.Point{X: 320, Y: 240}) || food == (types.Point{X: 340, Y: 240}) {
		t.Errorf("Food relocated onto the snake's cells: %v", food)
	}
	if !g.Grid.Contains(food) {
		t.Errorf("Food relocated off grid: %v", food)
	}
}

func TestGrowthAfterSeveralTicks(t *testing.T) {
	g := newTestGame(t, false)
	g.Food.Position = types.Point{X: 340, Y: 240}
	f := &fakeFrontend{}

	g.Step(f)
	// keep the food off the snake's row for the rest of the test
	g.Food.Position = types.Point{X: 0, Y: 0}
	for i := 0; i < 5; i++ {
		if r := g.Step(f); r.Ate || r.Collision != types.NoCollision {
			t.Fatalf("Unexpected event on tick %d: %+v", r.Tick, r)
		}
	}

	if len(g.Snake.Body) != 2 {
		t.Errorf("Expected body of 2 segments, got %d", len(g.Snake.Body))
	}
	if got := g.Stats().FoodEaten; got != 1 {
		t.Errorf("Expected 1 food eaten, got %d", got)
	}
	if g.Snake.GetHead() != (types.Point{X: 440, Y: 240}) {
		t.Errorf("Expected head at (440,240), got %v", g.Snake.GetHead())
	}
}

func TestReverseInputIgnored(t *testing.T) {
	for _, d := range entity.Directions {
		t.Run(d.String(), func(t *testing.T) {
			g := newTestGame(t, false)
			g.Snake.Direction = d
			g.Food.Position = types.Point{X: 0, Y: 0}

			if quit := g.HandleEvents([]Event{KeyEvent(keyFor(d.Opposite()))}); quit {
				t.Fatal("Key event must not quit")
			}
			g.Step(&fakeFrontend{})

			if g.Snake.Direction != d {
				t.Errorf("Expected direction %v, got %v", d, g.Snake.Direction)
			}
		})
	}
}

func TestLastKeyWins(t *testing.T) {
	g := newTestGame(t, false)
	g.Food.Position = types.Point{X: 0, Y: 0}

	g.HandleEvents([]Event{KeyEvent(KeyUp), KeyEvent(KeyDown)})
	g.Step(&fakeFrontend{})

	if g.Snake.Direction != entity.DOWN {
		t.Errorf("Expected direction down, got %v", g.Snake.Direction)
	}
	if g.Snake.GetHead() != (types.Point{X: 320, Y: 260}) {
		t.Errorf("Expected head at (320,260), got %v", g.Snake.GetHead())
	}
}

func TestHandleEventsQuit(t *testing.T) {
	g := newTestGame(t, false)
	if !g.HandleEvents([]Event{QuitEvent(), KeyEvent(KeyUp)}) {
		t.Error("Expected quit to be reported")
	}
	if g.Snake.Pending != entity.NONE {
		t.Errorf("Expected events after quit to be ignored, pending is %v", g.Snake.Pending)
	}
}

func TestSelfCollisionResets(t *testing.T) {
	g := newTestGame(t, false)
	g.Food.Position = types.Point{X: 300, Y: 300}
	g.Snake.Body = []types.Point{{X: 20, Y: 20}, {X: 20, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 20}, {X: 0, Y: 40}}
	g.Snake.Length = 5
	g.Snake.Direction = entity.LEFT

	report := g.Step(&fakeFrontend{})

	if report.Collision != types.SelfCollision {
		t.Fatalf("Expected self collision, got %v", report.Collision)
	}
	assertReset(t, g)
}

func TestMovingStraightDoesNotCollide(t *testing.T) {
	g := newTestGame(t, false)
	g.Food.Position = types.Point{X: 300, Y: 300}
	g.Snake.Body = []types.Point{{X: 80, Y: 0}, {X: 60, Y: 0}, {X: 40, Y: 0}, {X: 20, Y: 0}}
	g.Snake.Length = 4

	report := g.Step(&fakeFrontend{})

	if report.Collision != types.NoCollision {
		t.Errorf("Expected no collision, got %v", report.Collision)
	}
	if len(g.Snake.Body) != 4 || g.Snake.GetHead() != (types.Point{X: 100, Y: 0}) {
		t.Errorf("Unexpected body after move: %v", g.Snake.Body)
	}
}

func TestObstacleCollisionResets(t *testing.T) {
	g := newTestGame(t, true)
	g.Food.Position = types.Point{X: 0, Y: 0}
	g.Obstacle.Position = types.Point{X: 340, Y: 240}

	report := g.Step(&fakeFrontend{})

	if report.Collision != types.ObstacleCollision {
		t.Fatalf("Expected obstacle collision, got %v", report.Collision)
	}
	assertReset(t, g)
	if g.Snake.Occupies(g.Obstacle.Position) || g.Obstacle.Position == g.Food.Position {
		t.Errorf("Obstacle relocated onto an occupied cell %v", g.Obstacle.Position)
	}
	if got := g.Stats().Resets[types.ObstacleCollision]; got != 1 {
		t.Errorf("Expected 1 obstacle reset, got %d", got)
	}
}

func TestFoodAndCollisionCheckedIndependently(t *testing.T) {
	g := newTestGame(t, true)
	g.Food.Position = types.Point{X: 340, Y: 240}
	g.Obstacle.Position = types.Point{X: 340, Y: 240}

	report := g.Step(&fakeFrontend{})

	if !report.Ate {
		t.Error("Expected food check to fire")
	}
	if report.Collision != types.ObstacleCollision {
		t.Errorf("Expected obstacle check to fire, got %v", report.Collision)
	}
	assertReset(t, g)
}

func assertReset(t *testing.T, g *Game) {
	t.Helper()
	if len(g.Snake.Body) != 1 || g.Snake.GetHead() != g.Grid.Center() {
		t.Errorf("Expected single segment at center, got %v", g.Snake.Body)
	}
	if g.Snake.Length != 1 {
		t.Errorf("Expected length 1, got %d", g.Snake.Length)
	}
	valid := false
	for _, d := range entity.Directions {
		if g.Snake.Direction == d {
			valid = true
		}
	}
	if !valid {
		t.Errorf("Expected a valid direction after reset, got %v", g.Snake.Direction)
	}
	if g.Snake.Occupies(g.Food.Position) {
		t.Errorf("Food left on the snake at %v", g.Food.Position)
	}
}

func TestStepRenderOrder(t *testing.T) {
	g := newTestGame(t, true)
	g.Food.Position = types.Point{X: 0, Y: 0}
	g.Obstacle.Position = types.Point{X: 0, Y: 20}
	f := &fakeFrontend{}

	g.Step(f)

	want := []string{"clear", "draw", "draw", "draw", "present"}
	if len(f.ops) != len(want) {
		t.Fatalf("Expected ops %v, got %v", want, f.ops)
	}
	for i := range want {
		if f.ops[i] != want[i] {
			t.Errorf("Op %d: expected %s, got %s", i, want[i], f.ops[i])
		}
	}
	if f.cells[0] != g.Food.Position || f.cells[2] != g.Snake.GetHead() {
		t.Errorf("Unexpected draw targets %v", f.cells)
	}
}

func TestStepClearsScreenOnReset(t *testing.T) {
	g := newTestGame(t, true)
	g.Food.Position = types.Point{X: 0, Y: 0}
	g.Obstacle.Position = types.Point{X: 340, Y: 240}
	f := &fakeFrontend{}

	g.Step(f)

	if f.ops[len(f.ops)-2] != "clear" || f.ops[len(f.ops)-1] != "present" {
		t.Errorf("Expected clear before present on reset, got %v", f.ops)
	}
}

func TestObserversNotified(t *testing.T) {
	g := newTestGame(t, false)
	obs := &recordingObserver{}
	g.AddObserver(obs)
	g.Food.Position = types.Point{X: 340, Y: 240}

	g.Step(&fakeFrontend{})
	g.Food.Position = types.Point{X: 0, Y: 0}
	g.Step(&fakeFrontend{})

	if len(obs.reports) != 2 {
		t.Fatalf("Expected 2 reports, got %d", len(obs.reports))
	}
	if !obs.reports[0].Ate || obs.reports[0].Length != 2 || obs.reports[0].Tick != 1 {
		t.Errorf("Unexpected first report %+v", obs.reports[0])
	}
	if obs.reports[1].Ate || obs.reports[1].Tick != 2 {
		t.Errorf("Unexpected second report %+v", obs.reports[1])
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, true)
	g2 := newTestGame(t, true)

	if g1.Food.Position != g2.Food.Position || g1.Obstacle.Position != g2.Obstacle.Position {
		t.Fatalf("Same seed produced different spawns: %v/%v vs %v/%v",
			g1.Food.Position, g1.Obstacle.Position, g2.Food.Position, g2.Obstacle.Position)
	}

	for i := 0; i < 200; i++ {
		var events []Event
		if i%7 == 3 {
			events = []Event{KeyEvent(KeyDown)}
		} else if i%7 == 5 {
			events = []Event{KeyEvent(KeyRight)}
		}
		g1.HandleEvents(events)
		g2.HandleEvents(events)
		r1 := g1.Step(&fakeFrontend{})
		r2 := g2.Step(&fakeFrontend{})
		if r1 != r2 {
			t.Fatalf("Reports diverged on tick %d: %+v vs %+v", i, r1, r2)
		}
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	g := newTestGame(t, false)
	g.Food.Position = types.Point{X: 0, Y: 0}
	f := &fakeFrontend{events: [][]Event{
		{KeyEvent(KeyDown)},
		{QuitEvent()},
	}}

	if err := g.Run(context.Background(), f); err != nil {
		t.Fatalf("Expected nil error on quit, got %v", err)
	}
	if f.waits != 2 {
		t.Errorf("Expected 2 tick waits, got %d", f.waits)
	}
	if g.Snake.GetHead() != (types.Point{X: 320, Y: 260}) {
		t.Errorf("Expected one step down before quitting, head at %v", g.Snake.GetHead())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	g := newTestGame(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := g.Run(ctx, &fakeFrontend{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
