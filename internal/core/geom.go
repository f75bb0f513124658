// Package core provides fundamental types shared by the game engine and the
// terminal platform. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "math/rand"

// Point is a grid-relative integer coordinate pair. The origin is the
// top-left of the playing field; y grows downward.
type Point struct {
	X, Y int
}

// NoPoint is the sentinel for "no cell", e.g. no collision happened.
var NoPoint = Point{X: -1, Y: -1}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West

	numDirections = 4
)

// Vector returns the unit vector for the direction. North points toward
// smaller y, matching terminal row order.
func (d Direction) Vector() Point {
	switch d {
	case North:
		return Point{X: 0, Y: -1}
	case East:
		return Point{X: 1, Y: 0}
	case South:
		return Point{X: 0, Y: 1}
	case West:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse of the direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % numDirections
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// RandomDirection draws one of the four directions uniformly from rng.
func RandomDirection(rng *rand.Rand) Direction {
	return Direction(rng.Intn(numDirections))
}
