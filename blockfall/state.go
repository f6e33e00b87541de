// Package blockfall holds the whole game simulation: the board, the
// falling piece, the piece supply, scoring and leveling, and the Game
// runtime that drives it all from a ticker.
package blockfall

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Board dimensions. Fixed at build time, the board is never resized while
// a game runs.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// State is the simulation: the board, the falling piece, the supply and
// the counters. All methods run synchronously on the caller's goroutine
// and to completion, timing lives entirely with whoever calls Tick.
type State struct {
	World        *World
	Piece        Tetrimino
	Score        int
	Level        int
	LinesCleared int
	Running      bool

	factory *Factory
}

// NewState starts a fresh game on a width x height board. rng feeds the
// piece supply, pass a seeded source for a reproducible piece stream.
func NewState(width, height int, rng *rand.Rand) *State {
	s := &State{
		World:   NewWorld(width, height),
		factory: NewFactory(rng, Position{X: width/2 - 1, Y: 2}),
		Level:   1,
		Running: true,
	}
	s.Piece = s.factory.PopNext()
	return s
}

// Next returns the piece that spawns after the current one locks.
func (s *State) Next() Tetrimino { return s.factory.Next() }

// Tick advances the game one gravity step. The piece falls one row when it
// can. When it can't, it locks into the board, full rows are cleared and
// scored, the level is recomputed, and the next piece spawns; a spawn that
// doesn't fit ends the game. Ticks after a game over do nothing, Reset is
// the only way back.
func (s *State) Tick() {
	if !s.Running {
		return
	}
	if candidate := s.Piece.Move(down); candidate.Fits(s.World) {
		s.Piece = candidate
		return
	}
	s.World.Stamp(s.Piece.Color(), s.Piece.Blocks())
	cleared := s.World.ClearFullLines()
	s.LinesCleared += cleared
	s.Level = 1 + s.LinesCleared/10
	s.Score += scoreIncrease(cleared)
	s.Piece = s.factory.PopNext()
	if !s.Piece.Fits(s.World) {
		s.Running = false
	}
}

// Reset starts over on the same board size: empty board, zeroed counters,
// a redrawn supply and a fresh falling piece. Works any time, during play
// and after a game over alike.
func (s *State) Reset() {
	s.World = NewWorld(s.World.Width(), s.World.Height())
	s.Score = 0
	s.Level = 1
	s.LinesCleared = 0
	s.Running = true
	s.factory.Reset()
	s.Piece = s.factory.PopNext()
}

// UpdateInterval is the time between gravity ticks:
//
//	1000ms * 0.75^(Level-1)
//
// It shrinks every level and has no floor.
func (s *State) UpdateInterval() time.Duration {
	seconds := math.Pow(0.75, float64(s.Level-1))
	return time.Duration(seconds * float64(time.Second))
}

// scoreIncrease maps the rows cleared by one lock to points. A single
// piece can complete at most four rows, anything outside [0, 4] means the
// line-clearing logic is broken.
func scoreIncrease(cleared int) int {
	switch cleared {
	case 0:
		return 0
	case 1:
		return 100
	case 2:
		return 200
	case 3:
		return 400
	case 4:
		return 800
	}
	panic(fmt.Sprintf("blockfall: %d rows cleared by a single piece", cleared))
}
