package types

// Point is a position on screen, in pixel units. Game positions are always
// multiples of the grid cell size.
type Point struct {
	X, Y int
}

// Color is an RGB triple used by entities and renderers
type Color struct {
	R, G, B uint8
}

// Grid represents the game grid dimensions
type Grid struct {
	Width    int // cells
	Height   int // cells
	CellSize int // pixels per cell side
}

func NewGrid(width, height, cellSize int) Grid {
	return Grid{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
	}
}

func (g Grid) ScreenWidth() int {
	return g.Width * g.CellSize
}

func (g Grid) ScreenHeight() int {
	return g.Height * g.CellSize
}

// Cells returns the number of cells on the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Wrap folds a position back onto the torus, so leaving one edge re-enters
// from the opposite one.
func (g Grid) Wrap(p Point) Point {
	return Point{
		X: mod(p.X, g.ScreenWidth()),
		Y: mod(p.Y, g.ScreenHeight()),
	}
}

// ToCell converts a position to its column and row
func (g Grid) ToCell(p Point) (col, row int) {
	return p.X / g.CellSize, p.Y / g.CellSize
}

// FromCell converts a column and row to the position of the cell's top-left corner
func (g Grid) FromCell(col, row int) Point {
	return Point{X: col * g.CellSize, Y: row * g.CellSize}
}

// Center returns the cell-aligned center of the screen
func (g Grid) Center() Point {
	return g.FromCell(g.Width/2, g.Height/2)
}

// Contains reports whether p is a cell-aligned position inside the grid
func (g Grid) Contains(p Point) bool {
	if p.X < 0 || p.Y < 0 || p.X >= g.ScreenWidth() || p.Y >= g.ScreenHeight() {
		return false
	}
	return p.X%g.CellSize == 0 && p.Y%g.CellSize == 0
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
	ObstacleCollision
)

func (c CollisionType) String() string {
	switch c {
	case SelfCollision:
		return "self"
	case ObstacleCollision:
		return "obstacle"
	default:
		return "none"
	}
}

// TickReport describes what happened during a single tick
type TickReport struct {
	Tick      uint64
	Head      Point
	Length    int
	Ate       bool
	Collision CollisionType
}

// Game constants
const (
	DefaultScreenWidth  = 640
	DefaultScreenHeight = 480
	DefaultCellSize     = 20
	DefaultSpeed        = 7 // ticks per second
)
