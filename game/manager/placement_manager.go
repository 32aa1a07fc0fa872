package manager

import (
	"errors"

	"arcade-snake/game/types"

	"golang.org/x/exp/rand"
)

// MaxPlacementAttempts bounds rejection sampling before falling back to a
// scan of the free cells.
const MaxPlacementAttempts = 64

// ErrGridFull is returned when every cell of the grid is occupied
var ErrGridFull = errors.New("no free cell left on the grid")

type PlacementManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewPlacementManager(grid types.Grid, rng *rand.Rand) *PlacementManager {
	return &PlacementManager{
		grid: grid,
		rng:  rng,
	}
}

// RandomPosition draws a uniformly random cell that is not in occupied
func (pm *PlacementManager) RandomPosition(occupied map[types.Point]struct{}) (types.Point, error) {
	for i := 0; i < MaxPlacementAttempts; i++ {
		pos := pm.grid.FromCell(pm.rng.Intn(pm.grid.Width), pm.rng.Intn(pm.grid.Height))
		if _, taken := occupied[pos]; !taken {
			return pos, nil
		}
	}

	// Crowded grid, pick among what is left
	var free []types.Point
	for row := 0; row < pm.grid.Height; row++ {
		for col := 0; col < pm.grid.Width; col++ {
			pos := pm.grid.FromCell(col, row)
			if _, taken := occupied[pos]; !taken {
				free = append(free, pos)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, ErrGridFull
	}
	return free[pm.rng.Intn(len(free))], nil
}

// Occupied builds the set of cells that placement must avoid
func Occupied(body []types.Point, extra ...types.Point) map[types.Point]struct{} {
	set := make(map[types.Point]struct{}, len(body)+len(extra))
	for _, p := range body {
		set[p] = struct{}{}
	}
	for _, p := range extra {
		set[p] = struct{}{}
	}
	return set
}
