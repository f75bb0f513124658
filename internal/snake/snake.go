// Package snake implements the snake engine: the ordered segment chain and
// its movement, growth and self-collision rules. The chain is a doubly
// linked list from tail to head; Advance mutates it in O(1) per tick.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// segment is one body cell. next points head-ward, prev tail-ward.
type segment struct {
	pos        core.Point
	prev, next *segment
}

// Detached is the tail segment removed from the chain by Advance. The
// caller owns it until it is discarded or handed back to Grow; it carries
// no live links into the chain.
type Detached struct {
	pos core.Point
	seg *segment
}

// Pos returns the grid position the segment occupied.
func (d Detached) Pos() core.Point {
	return d.pos
}

// Snake is the player-controlled body: a segment chain plus its current
// movement direction. Length always equals the number of chained segments
// and never drops below 1.
type Snake struct {
	head, tail *segment
	direction  core.Direction
	length     int
}

// New creates a snake of one segment at center, facing a direction drawn
// uniformly from rng.
func New(center core.Point, rng *rand.Rand) *Snake {
	seg := &segment{pos: center}
	return &Snake{
		head:      seg,
		tail:      seg,
		direction: core.RandomDirection(rng),
		length:    1,
	}
}

// Head returns the position of the most recently added segment.
func (s *Snake) Head() core.Point {
	return s.head.pos
}

// Neck returns the position of the segment directly behind the head.
// ok is false when the snake is a single segment.
func (s *Snake) Neck() (core.Point, bool) {
	if s.head.prev == nil {
		return core.NoPoint, false
	}
	return s.head.prev.pos, true
}

// Direction returns the current movement direction.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Length returns the number of segments in the chain.
func (s *Snake) Length() int {
	return s.length
}

// ChangeDirection sets the movement direction. Requests for the current
// direction are ignored, as are reversals while the snake is longer than
// one segment, since doubling back would collide with the second segment
// immediately. A single-segment snake may reverse freely.
func (s *Snake) ChangeDirection(dir core.Direction) {
	if dir == s.direction || (s.length > 1 && dir == s.direction.Opposite()) {
		return
	}
	s.direction = dir
}

// Advance moves the snake one cell in its current direction: a new head is
// appended and the tail is detached and returned to the caller. The caller
// either discards the detached tail (plain movement) or passes it to Grow
// in the same tick (the snake ate the target). Runs in O(1).
func (s *Snake) Advance() Detached {
	newHead := &segment{
		pos:  s.head.pos.Add(s.direction.Vector()),
		prev: s.head,
	}
	s.head.next = newHead
	s.head = newHead

	old := s.tail
	s.tail = s.tail.next
	s.tail.prev = nil
	old.next = nil

	return Detached{pos: old.pos, seg: old}
}

// Grow reattaches the tail detached by the immediately preceding Advance,
// lengthening the snake by one. Passing a Detached from an earlier tick or
// from another snake is a caller bug.
func (s *Snake) Grow(d Detached) {
	if d.seg == nil {
		panic("snake: Grow called with a zero Detached")
	}
	d.seg.prev = nil
	d.seg.next = s.tail
	s.tail.prev = d.seg
	s.tail = d.seg
	s.length++
}

// SelfCollision scans for two segments sharing a cell. The outer scan runs
// from head toward tail; for each segment the inner scan compares against
// every segment strictly closer to the tail. The first coincidence found in
// this order is returned. O(n²) in the snake length.
func (s *Snake) SelfCollision() (core.Point, bool) {
	for a := s.head; a != nil; a = a.prev {
		for b := a.prev; b != nil; b = b.prev {
			if a.pos == b.pos {
				return a.pos, true
			}
		}
	}
	return core.NoPoint, false
}

// Segments returns the positions of all segments from tail to head.
// Used by the renderer and by tests; gameplay mutation stays O(1).
func (s *Snake) Segments() []core.Point {
	out := make([]core.Point, 0, s.length)
	for seg := s.tail; seg != nil; seg = seg.next {
		out = append(out, seg.pos)
	}
	return out
}
