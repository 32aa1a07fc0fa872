package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"arcade-snake/game/entity"
	"arcade-snake/game/manager"
	"arcade-snake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

type Game struct {
	UUID     string
	Grid     types.Grid
	Snake    *entity.Snake
	Food     *entity.Food
	Obstacle *entity.Obstacle // nil when obstacles are disabled

	cfg          Config
	rng          *rand.Rand
	collisionMgr *manager.CollisionManager
	placementMgr *manager.PlacementManager
	stateMgr     *manager.StateManager
	observers    []Observer
	tick         uint64
}

func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	grid := cfg.Grid()
	gameUUID := uuid.New().String()

	game := &Game{
		UUID:         gameUUID,
		Grid:         grid,
		cfg:          cfg,
		rng:          rng,
		collisionMgr: manager.NewCollisionManager(grid),
		placementMgr: manager.NewPlacementManager(grid, rng),
		stateMgr:     manager.NewStateManager(gameUUID),
	}
	game.observers = []Observer{game.stateMgr}

	game.Snake = entity.NewSnake(grid.Center(), entity.RIGHT, cfg.SnakeColor)

	foodPos, err := game.placementMgr.RandomPosition(manager.Occupied(game.Snake.Body))
	if err != nil {
		return nil, fmt.Errorf("placing food: %w", err)
	}
	game.Food = entity.NewFood(foodPos, cfg.AppleColor)

	if cfg.Obstacle {
		obstaclePos, err := game.placementMgr.RandomPosition(manager.Occupied(game.Snake.Body, foodPos))
		if err != nil {
			return nil, fmt.Errorf("placing obstacle: %w", err)
		}
		game.Obstacle = entity.NewObstacle(obstaclePos, cfg.ObstacleColor)
	}

	return game, nil
}

func (g *Game) Config() Config {
	return g.cfg
}

// AddObserver registers o to be notified after every tick
func (g *Game) AddObserver(o Observer) {
	g.observers = append(g.observers, o)
}

// Stats returns the session statistics collected so far
func (g *Game) Stats() manager.GameStats {
	return g.stateMgr.Stats()
}

// HandleEvents applies queued input to the pending direction. It reports
// whether a quit was requested; events after a quit are ignored.
func (g *Game) HandleEvents(events []Event) bool {
	for _, ev := range events {
		switch ev.Type {
		case EventQuit:
			return true
		case EventKey:
			g.Snake.Steer(ev.Key.Direction())
		}
	}
	return false
}

// Step runs one tick: commit direction, move, draw, then the food and
// collision checks. The two checks are independent of each other.
func (g *Game) Step(r Renderer) types.TickReport {
	g.tick++
	r.Clear(g.cfg.Background)

	g.Snake.UpdateDirection()
	trimmed, wasTrimmed := g.collisionMgr.Advance(g.Snake)
	head := g.Snake.GetHead()

	g.draw(r)

	report := types.TickReport{Tick: g.tick, Head: head}

	if g.collisionMgr.IsFoodCollision(head, g.Food) {
		g.Snake.Grow()
		report.Ate = true

		avoid := make([]types.Point, 0, 2)
		if wasTrimmed {
			avoid = append(avoid, trimmed)
		}
		if g.Obstacle != nil {
			avoid = append(avoid, g.Obstacle.Position)
		}
		g.relocate(&g.Food.Position, manager.Occupied(g.Snake.Body, avoid...), "food")
	}
	report.Length = g.Snake.Length

	if collision := g.collisionMgr.CheckCollision(g.Snake, g.Obstacle); collision != types.NoCollision {
		report.Collision = collision
		g.resetRound()
		r.Clear(g.cfg.Background)
	}

	r.Present()

	for _, o := range g.observers {
		o.OnTick(report)
	}
	return report
}

// Run drives the game until the frontend reports a quit or ctx is done
func (g *Game) Run(ctx context.Context, f Frontend) error {
	log.Printf("session %s: starting on a %dx%d grid at %d ticks/s",
		g.UUID, g.Grid.Width, g.Grid.Height, g.cfg.Speed)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		f.WaitTick()
		if g.HandleEvents(f.PollEvents()) {
			log.Printf("session %s: quit requested after %d ticks", g.UUID, g.tick)
			return nil
		}
		g.Step(f)
	}
}

func (g *Game) draw(r Renderer) {
	r.DrawCell(g.Food.Position, g.Food.Color)
	if g.Obstacle != nil {
		r.DrawCell(g.Obstacle.Position, g.Obstacle.Color)
	}
	for _, p := range g.Snake.Body {
		r.DrawCell(p, g.Snake.Color)
	}
}

func (g *Game) resetRound() {
	center := g.Grid.Center()
	g.Snake.Reset(center, entity.Directions[g.rng.Intn(len(entity.Directions))])

	if g.Food.Position == center {
		g.relocate(&g.Food.Position, g.occupiedExcept(g.Food.Position), "food")
	}
	if g.Obstacle != nil {
		g.relocate(&g.Obstacle.Position, g.occupiedExcept(g.Obstacle.Position), "obstacle")
	}
}

// occupiedExcept returns the cells taken by the snake and by the items other
// than the one sitting at self
func (g *Game) occupiedExcept(self types.Point) map[types.Point]struct{} {
	var extra []types.Point
	if g.Food.Position != self {
		extra = append(extra, g.Food.Position)
	}
	if g.Obstacle != nil && g.Obstacle.Position != self {
		extra = append(extra, g.Obstacle.Position)
	}
	return manager.Occupied(g.Snake.Body, extra...)
}

// relocate moves an item to a free cell. When the grid is full the item
// stays where it is.
func (g *Game) relocate(pos *types.Point, occupied map[types.Point]struct{}, what string) {
	next, err := g.placementMgr.RandomPosition(occupied)
	if err != nil {
		log.Printf("session %s: cannot place %s: %v", g.UUID, what, err)
		return
	}
	*pos = next
}
