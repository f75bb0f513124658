package grid

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestGrid(w, h int) *Grid {
	return New(w, h, rand.New(rand.NewSource(1)))
}

func TestNewGridIsEmpty(t *testing.T) {
	g := newTestGrid(20, 10)

	if g.OccupiedCells() != 0 {
		t.Errorf("OccupiedCells() = %d, expected 0", g.OccupiedCells())
	}
	if g.Target() != core.NoPoint {
		t.Errorf("Target() = %v, expected the no-point sentinel", g.Target())
	}
	if g.PlayableCells() != 21*11 {
		t.Errorf("PlayableCells() = %d, expected %d", g.PlayableCells(), 21*11)
	}
	if g.Center() != (core.Point{X: 10, Y: 5}) {
		t.Errorf("Center() = %v, expected (10, 5)", g.Center())
	}
}

func TestInsideBounds(t *testing.T) {
	g := newTestGrid(20, 10)

	tests := []struct {
		name     string
		p        core.Point
		expected bool
	}{
		{"origin", core.Point{X: 0, Y: 0}, true},
		{"interior", core.Point{X: 5, Y: 5}, true},
		{"max corner is playable", core.Point{X: 20, Y: 10}, true},
		{"boundary column is playable", core.Point{X: 20, Y: 3}, true},
		{"past west edge", core.Point{X: -1, Y: 3}, false},
		{"past east edge", core.Point{X: 21, Y: 3}, false},
		{"past north edge", core.Point{X: 3, Y: -1}, false},
		{"past south edge", core.Point{X: 3, Y: 11}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.InsideBounds(tc.p); got != tc.expected {
				t.Errorf("InsideBounds(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestMarkOccupiedAndFree(t *testing.T) {
	g := newTestGrid(20, 10)
	p := core.Point{X: 4, Y: 7}

	g.MarkOccupied(p)
	if !g.Occupied(p) {
		t.Error("Cell not occupied after MarkOccupied")
	}
	if g.OccupiedCells() != 1 {
		t.Errorf("OccupiedCells() = %d, expected 1", g.OccupiedCells())
	}

	// Re-marking an occupied cell must not double-count.
	g.MarkOccupied(p)
	if g.OccupiedCells() != 1 {
		t.Errorf("OccupiedCells() = %d after duplicate mark, expected 1", g.OccupiedCells())
	}

	g.MarkFree(p)
	if g.Occupied(p) {
		t.Error("Cell still occupied after MarkFree")
	}
	if g.OccupiedCells() != 0 {
		t.Errorf("OccupiedCells() = %d, expected 0", g.OccupiedCells())
	}

	// Freeing a free cell must not underflow.
	g.MarkFree(p)
	if g.OccupiedCells() != 0 {
		t.Errorf("OccupiedCells() = %d after duplicate free, expected 0", g.OccupiedCells())
	}
}

func TestMarkIgnoresOutOfField(t *testing.T) {
	g := newTestGrid(5, 5)

	g.MarkOccupied(core.Point{X: -1, Y: 3})
	g.MarkOccupied(core.Point{X: 6, Y: 3})
	g.MarkFree(core.Point{X: 3, Y: -1})

	if g.OccupiedCells() != 0 {
		t.Errorf("OccupiedCells() = %d, out-of-field marks leaked", g.OccupiedCells())
	}
}

func TestSpawnTargetAvoidsOccupiedCells(t *testing.T) {
	g := newTestGrid(4, 4)

	// Occupy everything except one cell; the spawn must hit that cell.
	free := core.Point{X: 2, Y: 3}
	for y := 0; y <= 4; y++ {
		for x := 0; x <= 4; x++ {
			if (core.Point{X: x, Y: y}) != free {
				g.MarkOccupied(core.Point{X: x, Y: y})
			}
		}
	}

	for range 50 {
		if err := g.SpawnTarget(); err != nil {
			t.Fatalf("SpawnTarget() failed: %v", err)
		}
		if g.Target() != free {
			t.Fatalf("Target() = %v, expected the only free cell %v", g.Target(), free)
		}
	}
}

func TestSpawnTargetNeverOnBody(t *testing.T) {
	g := newTestGrid(10, 10)
	for i := 0; i <= 10; i++ {
		g.MarkOccupied(core.Point{X: i, Y: 5})
	}

	for range 200 {
		if err := g.SpawnTarget(); err != nil {
			t.Fatalf("SpawnTarget() failed: %v", err)
		}
		if g.Occupied(g.Target()) {
			t.Fatalf("Target spawned on an occupied cell at %v", g.Target())
		}
		if !g.InsideBounds(g.Target()) {
			t.Fatalf("Target spawned out of bounds at %v", g.Target())
		}
	}
}

func TestSpawnTargetSaturated(t *testing.T) {
	g := newTestGrid(2, 2)
	for y := 0; y <= 2; y++ {
		for x := 0; x <= 2; x++ {
			g.MarkOccupied(core.Point{X: x, Y: y})
		}
	}

	err := g.SpawnTarget()
	if !errors.Is(err, ErrSaturated) {
		t.Errorf("SpawnTarget() = %v, expected ErrSaturated", err)
	}
	if g.Target() != core.NoPoint {
		t.Errorf("Target() = %v after saturation, expected sentinel", g.Target())
	}
}
