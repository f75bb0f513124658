// Package grid implements the playing field: a boolean occupancy mesh that
// mirrors the snake's body cell by cell, plus the current target position.
package grid

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrSaturated is reported by SpawnTarget when every playable cell is
// occupied. The legacy behavior was to retry forever; reporting a distinct
// condition keeps the spawn loop live near board completion.
var ErrSaturated = errors.New("grid: board saturated, no free cell for a target")

// Grid tracks which cells hold a body segment and where the target sits.
// Coordinates run over the closed intervals [0, mapWidth] × [0, mapHeight];
// the boundary row and column are playable space.
type Grid struct {
	mapWidth  int
	mapHeight int
	cells     [][]bool // indexed [y][x]
	occupied  int
	target    core.Point
	rng       *rand.Rand
}

// New creates a grid with all cells free and no target placed yet.
func New(mapWidth, mapHeight int, rng *rand.Rand) *Grid {
	cells := make([][]bool, mapHeight+1)
	for y := range cells {
		cells[y] = make([]bool, mapWidth+1)
	}
	return &Grid{
		mapWidth:  mapWidth,
		mapHeight: mapHeight,
		cells:     cells,
		target:    core.NoPoint,
		rng:       rng,
	}
}

// Width returns the largest playable x coordinate.
func (g *Grid) Width() int {
	return g.mapWidth
}

// Height returns the largest playable y coordinate.
func (g *Grid) Height() int {
	return g.mapHeight
}

// Center returns the middle cell of the playing field.
func (g *Grid) Center() core.Point {
	return core.Point{X: g.mapWidth / 2, Y: g.mapHeight / 2}
}

// PlayableCells returns the total number of cells on the field.
func (g *Grid) PlayableCells() int {
	return (g.mapWidth + 1) * (g.mapHeight + 1)
}

// InsideBounds reports whether p lies on the playing field. Both interval
// ends are closed: the boundary row and column are valid positions, and
// exceeding them in either direction is the losing condition.
func (g *Grid) InsideBounds(p core.Point) bool {
	return p.X >= 0 && p.X <= g.mapWidth && p.Y >= 0 && p.Y <= g.mapHeight
}

// MarkOccupied records a body segment at p. Out-of-field points are
// ignored; the orchestrator detects those through InsideBounds.
func (g *Grid) MarkOccupied(p core.Point) {
	if !g.InsideBounds(p) {
		return
	}
	if !g.cells[p.Y][p.X] {
		g.cells[p.Y][p.X] = true
		g.occupied++
	}
}

// MarkFree records that the body vacated p.
func (g *Grid) MarkFree(p core.Point) {
	if !g.InsideBounds(p) {
		return
	}
	if g.cells[p.Y][p.X] {
		g.cells[p.Y][p.X] = false
		g.occupied--
	}
}

// Occupied reports whether a body segment sits on p.
func (g *Grid) Occupied(p core.Point) bool {
	return g.InsideBounds(p) && g.cells[p.Y][p.X]
}

// OccupiedCells returns the number of cells currently holding a segment.
// At every stable tick boundary this equals the snake's length.
func (g *Grid) OccupiedCells() int {
	return g.occupied
}

// Target returns the current target position, or core.NoPoint before the
// first spawn.
func (g *Grid) Target() core.Point {
	return g.target
}

// SpawnTarget places the target on a cell drawn uniformly from the free
// cells, by rejection sampling over the whole field. The expected number
// of attempts grows as the board fills up; no free-cell index is kept.
// Returns ErrSaturated when no free cell exists at all.
func (g *Grid) SpawnTarget() error {
	if g.occupied >= g.PlayableCells() {
		g.target = core.NoPoint
		return ErrSaturated
	}

	for {
		p := core.Point{
			X: g.rng.Intn(g.mapWidth + 1),
			Y: g.rng.Intn(g.mapHeight + 1),
		}
		if !g.cells[p.Y][p.X] {
			g.target = p
			return nil
		}
	}
}
