package game

import (
	"errors"
	"fmt"

	"arcade-snake/game/types"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds everything the game needs at start-up. There are no
// package-level settings; each Game gets its own copy.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	CellSize     int
	Speed        int // ticks per second

	Background    types.Color
	Border        types.Color
	AppleColor    types.Color
	SnakeColor    types.Color
	ObstacleColor types.Color

	Obstacle bool
	Seed     uint64 // 0 picks a time-based seed
}

func DefaultConfig() Config {
	return Config{
		ScreenWidth:   types.DefaultScreenWidth,
		ScreenHeight:  types.DefaultScreenHeight,
		CellSize:      types.DefaultCellSize,
		Speed:         types.DefaultSpeed,
		Background:    types.Color{R: 0, G: 0, B: 0},
		Border:        types.Color{R: 93, G: 216, B: 228},
		AppleColor:    types.Color{R: 255, G: 0, B: 0},
		SnakeColor:    types.Color{R: 0, G: 255, B: 0},
		ObstacleColor: types.Color{R: 128, G: 128, B: 128},
		Obstacle:      true,
	}
}

func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfig, c.CellSize)
	}
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen must be positive, got %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	if c.ScreenWidth%c.CellSize != 0 || c.ScreenHeight%c.CellSize != 0 {
		return fmt.Errorf("%w: screen %dx%d is not a multiple of cell size %d",
			ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight, c.CellSize)
	}
	if c.Speed <= 0 {
		return fmt.Errorf("%w: speed must be positive, got %d", ErrInvalidConfig, c.Speed)
	}
	return nil
}

// Grid returns the grid geometry described by the config
func (c Config) Grid() types.Grid {
	return types.NewGrid(c.ScreenWidth/c.CellSize, c.ScreenHeight/c.CellSize, c.CellSize)
}
