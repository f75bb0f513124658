package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestSnake(center core.Point, dir core.Direction) *Snake {
	s := New(center, rand.New(rand.NewSource(1)))
	s.direction = dir
	return s
}

// build grows a snake along the given path, tail first. The snake ends up
// with one segment per point, head at the last point.
func build(t *testing.T, path []core.Point, dir core.Direction) *Snake {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("build needs at least one point")
	}

	s := newTestSnake(path[0], dir)
	for _, p := range path[1:] {
		// Steer the chain manually so the path need not be straight.
		s.head.next = &segment{pos: p, prev: s.head}
		s.head = s.head.next
		s.length++
	}
	return s
}

func TestNewSnake(t *testing.T) {
	s := New(core.Point{X: 5, Y: 5}, rand.New(rand.NewSource(7)))

	if s.Length() != 1 {
		t.Errorf("Length() = %d, expected 1", s.Length())
	}
	if s.Head() != (core.Point{X: 5, Y: 5}) {
		t.Errorf("Head() = %v, expected (5, 5)", s.Head())
	}
	if d := s.Direction(); d < core.North || d > core.West {
		t.Errorf("Direction() = %v, not a cardinal direction", d)
	}
	if _, ok := s.Neck(); ok {
		t.Error("Single-segment snake should have no neck")
	}
}

func TestAdvanceSingleSegment(t *testing.T) {
	// Length-1 snake at (5,5) facing east: one advance moves head and tail
	// both to (6,5), length stays 1.
	s := newTestSnake(core.Point{X: 5, Y: 5}, core.East)

	old := s.Advance()

	if old.Pos() != (core.Point{X: 5, Y: 5}) {
		t.Errorf("Detached tail at %v, expected (5, 5)", old.Pos())
	}
	if s.Head() != (core.Point{X: 6, Y: 5}) {
		t.Errorf("Head() = %v, expected (6, 5)", s.Head())
	}
	if s.Length() != 1 {
		t.Errorf("Length() = %d, expected 1", s.Length())
	}
	segs := s.Segments()
	if len(segs) != 1 || segs[0] != (core.Point{X: 6, Y: 5}) {
		t.Errorf("Segments() = %v, expected [(6, 5)]", segs)
	}
}

func TestAdvanceDirections(t *testing.T) {
	tests := []struct {
		name     string
		dir      core.Direction
		expected core.Point
	}{
		{"north decrements y", core.North, core.Point{X: 5, Y: 4}},
		{"east increments x", core.East, core.Point{X: 6, Y: 5}},
		{"south increments y", core.South, core.Point{X: 5, Y: 6}},
		{"west decrements x", core.West, core.Point{X: 4, Y: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSnake(core.Point{X: 5, Y: 5}, tc.dir)
			s.Advance()
			if s.Head() != tc.expected {
				t.Errorf("Head() = %v, expected %v", s.Head(), tc.expected)
			}
		})
	}
}

func TestGrowReattachesTail(t *testing.T) {
	// Tail-to-head (3,3)-(4,3)-(5,3), facing east, eats at (6,3).
	s := build(t, []core.Point{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 5, Y: 3}}, core.East)

	old := s.Advance()
	if s.Head() != (core.Point{X: 6, Y: 3}) {
		t.Fatalf("Head() = %v, expected (6, 3)", s.Head())
	}
	s.Grow(old)

	if s.Length() != 4 {
		t.Errorf("Length() = %d, expected 4", s.Length())
	}
	want := []core.Point{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 5, Y: 3}, {X: 6, Y: 3}}
	got := s.Segments()
	if len(got) != len(want) {
		t.Fatalf("Segments() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Segment %d = %v, expected %v", i, got[i], want[i])
		}
	}

	// The reattached tail must be reachable in the prev chain as well,
	// otherwise self-collision scans would skip it.
	count := 0
	for seg := s.head; seg != nil; seg = seg.prev {
		count++
	}
	if count != 4 {
		t.Errorf("prev chain has %d segments, expected 4", count)
	}
}

func TestAdvanceThenDiscardKeepsLength(t *testing.T) {
	s := build(t, []core.Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 2}}, core.East)

	for range 5 {
		old := s.Advance()
		_ = old // discarded: no growth
		if s.Length() != 3 {
			t.Fatalf("Length() = %d after discard, expected 3", s.Length())
		}
	}
	if s.Head() != (core.Point{X: 9, Y: 2}) {
		t.Errorf("Head() = %v, expected (9, 2)", s.Head())
	}
}

func TestChangeDirection(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		current  core.Direction
		request  core.Direction
		expected core.Direction
	}{
		{"same direction ignored", 3, core.East, core.East, core.East},
		{"reverse ignored when long", 3, core.East, core.West, core.East},
		{"reverse allowed at length 1", 1, core.East, core.West, core.West},
		{"perpendicular accepted", 3, core.East, core.North, core.North},
		{"perpendicular accepted at length 1", 1, core.South, core.East, core.East},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := make([]core.Point, tc.length)
			for i := range path {
				path[i] = core.Point{X: i, Y: 5}
			}
			s := build(t, path, tc.current)

			s.ChangeDirection(tc.request)
			if s.Direction() != tc.expected {
				t.Errorf("Direction() = %v, expected %v", s.Direction(), tc.expected)
			}
		})
	}
}

func TestSelfCollisionNoneOnDistinctPositions(t *testing.T) {
	s := build(t, []core.Point{
		{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 2},
	}, core.West)

	if p, hit := s.SelfCollision(); hit {
		t.Errorf("SelfCollision() reported %v on an intact chain", p)
	}
}

func TestSelfCollisionFindsDuplicate(t *testing.T) {
	// Head curls back onto the second segment: ...(2,1) appears twice.
	s := build(t, []core.Point{
		{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1},
	}, core.North)

	p, hit := s.SelfCollision()
	if !hit {
		t.Fatal("SelfCollision() missed a duplicated position")
	}
	if p != (core.Point{X: 2, Y: 1}) {
		t.Errorf("SelfCollision() = %v, expected (2, 1)", p)
	}
}

func TestSelfCollisionScanOrder(t *testing.T) {
	// Two separate duplicate pairs; the scan runs head to tail, so the pair
	// nearest the head must win.
	s := build(t, []core.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}, // tail-side duplicate at (0,0)
		{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1}, // head-side duplicate at (1,1)
	}, core.East)

	p, hit := s.SelfCollision()
	if !hit {
		t.Fatal("SelfCollision() found nothing")
	}
	if p != (core.Point{X: 1, Y: 1}) {
		t.Errorf("SelfCollision() = %v, expected head-side duplicate (1, 1)", p)
	}
}

func TestNeck(t *testing.T) {
	s := build(t, []core.Point{{X: 4, Y: 3}, {X: 5, Y: 3}}, core.East)

	neck, ok := s.Neck()
	if !ok {
		t.Fatal("Neck() not found on a length-2 snake")
	}
	if neck != (core.Point{X: 4, Y: 3}) {
		t.Errorf("Neck() = %v, expected (4, 3)", neck)
	}
}

func TestGrowPanicsOnZeroDetached(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Grow(Detached{}) should panic")
		}
	}()
	s := newTestSnake(core.Point{X: 0, Y: 0}, core.East)
	s.Grow(Detached{})
}
