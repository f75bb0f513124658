// Package game implements the orchestrating state machine: it owns the
// snake engine and the grid, consumes semantic input actions, applies the
// per-tick movement and collision rules, and computes the difficulty-driven
// tick delay. It knows nothing about terminals or key codes.
package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/grid"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// State is the orchestrator's position in the dialog/gameplay flow.
type State int

const (
	StateWelcome State = iota
	StatePlaying
	StateGameOver
	StateWin
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	case StateWin:
		return "win"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Action is a semantic input event, already translated from key codes by
// the platform layer. Direction actions double as difficulty adjustment in
// the dialog states (East raises, West lowers).
type Action int

const (
	ActionNone Action = iota
	ActionNorth
	ActionEast
	ActionSouth
	ActionWest
	ActionConfirm
	ActionQuit
)

// Session is one run of the game from the welcome screen to quitting. It
// is exclusively owned by a single control flow; no method may be called
// concurrently.
type Session struct {
	mapWidth  int
	mapHeight int
	delays    Delays
	rng       *rand.Rand

	difficulty Difficulty
	state      State
	snake      *snake.Snake
	grid       *grid.Grid
	progress   float64
	collision  core.Point
}

// NewSession creates a session in the Welcome state for a playing field of
// the given dimensions (largest playable coordinates, both inclusive).
// All randomness flows through rng; there is no ambient seed state.
func NewSession(mapWidth, mapHeight int, delays Delays, difficulty Difficulty, rng *rand.Rand) *Session {
	return &Session{
		mapWidth:   mapWidth,
		mapHeight:  mapHeight,
		delays:     delays,
		rng:        rng,
		difficulty: difficulty,
		state:      StateWelcome,
		collision:  core.NoPoint,
	}
}

// State returns the current orchestrator state.
func (s *Session) State() State {
	return s.state
}

// Difficulty returns the currently selected difficulty.
func (s *Session) Difficulty() Difficulty {
	return s.difficulty
}

// Progress returns the fraction of the playable surface occupied by the
// snake, in [0, 1].
func (s *Session) Progress() float64 {
	return s.progress
}

// Collision returns the cell of the last fatal coincidence, or
// core.NoPoint when none happened.
func (s *Session) Collision() core.Point {
	return s.collision
}

// Score returns the snake's length, which doubles as the score.
func (s *Session) Score() int {
	if s.snake == nil {
		return 0
	}
	return s.snake.Length()
}

// Snake exposes the snake engine for rendering. Nil before the first Start.
func (s *Session) Snake() *snake.Snake {
	return s.snake
}

// Grid exposes the playing field for rendering. Nil before the first Start.
func (s *Session) Grid() *grid.Grid {
	return s.grid
}

// inDialog reports whether a modal dialog state is active.
func (s *Session) inDialog() bool {
	return s.state == StateWelcome || s.state == StateGameOver || s.state == StateWin
}

// Start begins a fresh round: new grid, new single-segment snake at the
// field center with a random direction, one target spawned, progress and
// collision reset. Valid from any dialog state.
func (s *Session) Start() {
	if !s.inDialog() {
		return
	}

	// A field of one cell (or none) is saturated by the starting segment
	// alone; there is nothing to play, so stay in the dialog.
	if (s.mapWidth+1)*(s.mapHeight+1) <= 1 {
		return
	}

	s.grid = grid.New(s.mapWidth, s.mapHeight, s.rng)
	s.snake = snake.New(s.grid.Center(), s.rng)
	s.grid.MarkOccupied(s.snake.Head())
	if err := s.grid.SpawnTarget(); err != nil {
		// A one-segment snake cannot saturate a multi-cell field.
		panic(err)
	}
	s.progress = float64(s.snake.Length()) / float64(s.grid.PlayableCells())
	s.collision = core.NoPoint
	s.state = StatePlaying
}

// HandleDialogAction processes one input event while a dialog is modal:
// East/West adjust the difficulty within [Incremental, Hard], Confirm
// starts or restarts a round, Quit ends the session. Everything else is
// ignored.
func (s *Session) HandleDialogAction(a Action) {
	if !s.inDialog() {
		return
	}

	switch a {
	case ActionEast:
		if s.difficulty < Hard {
			s.difficulty++
		}
	case ActionWest:
		if s.difficulty > Incremental {
			s.difficulty--
		}
	case ActionConfirm:
		s.Start()
	case ActionQuit:
		s.state = StateQuit
	}
}

// Tick runs one simulation step while playing: apply at most one input
// event, advance the snake, resolve target capture, update the occupancy
// mesh, and check the terminal conditions. Unrecognized or empty actions
// are not an error. The caller suspends for Delay() between ticks.
func (s *Session) Tick(a Action) {
	if s.state != StatePlaying {
		return
	}

	switch a {
	case ActionNorth:
		s.snake.ChangeDirection(core.North)
	case ActionEast:
		s.snake.ChangeDirection(core.East)
	case ActionSouth:
		s.snake.ChangeDirection(core.South)
	case ActionWest:
		s.snake.ChangeDirection(core.West)
	case ActionQuit:
		s.state = StateQuit
		return
	}

	detached := s.snake.Advance()

	if s.snake.Head() == s.grid.Target() {
		// The vacated tail cell stays part of the body.
		s.snake.Grow(detached)
		s.grid.MarkOccupied(detached.Pos())
		if err := s.grid.SpawnTarget(); err != nil && !errors.Is(err, grid.ErrSaturated) {
			panic(err)
		}
		s.progress = float64(s.snake.Length()) / float64(s.grid.PlayableCells())
	} else {
		s.grid.MarkFree(detached.Pos())
	}
	s.grid.MarkOccupied(s.snake.Head())

	// Filling the board wins, and takes priority over any simultaneous
	// collision on the final cell.
	if s.snake.Length() == s.grid.PlayableCells() {
		s.state = StateWin
		return
	}

	if !s.grid.InsideBounds(s.snake.Head()) {
		if neck, ok := s.snake.Neck(); ok {
			s.collision = neck
		} else {
			s.collision = detached.Pos()
		}
		s.state = StateGameOver
		return
	}

	if p, hit := s.snake.SelfCollision(); hit {
		s.collision = p
		s.state = StateGameOver
	}
}

// Delay returns how long to suspend before the next tick, derived from the
// difficulty setting and the current progress.
func (s *Session) Delay() time.Duration {
	return s.delays.For(s.difficulty, s.progress)
}
