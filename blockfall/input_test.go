package blockfall

import (
	"reflect"
	"testing"
)

func TestApplyMoves(t *testing.T) {
	// Initial state of every case, T spawned at {4 2}:
	//
	// .	0 1 2 3 4 5 6 7 8 9
	// 1	. . . . . . . . . .
	// 2	. . . O O O . . . .
	// 3	. . . . O . . . . .
	tests := []struct {
		name      string
		action    Action
		blocks    []Position
		wantPivot Position
	}{
		{
			name:      "left unblocked",
			action:    MoveLeft,
			wantPivot: Position{X: 3, Y: 2},
		},
		{
			name:      "left blocked by the stack",
			action:    MoveLeft,
			blocks:    []Position{{X: 2, Y: 2}},
			wantPivot: Position{X: 4, Y: 2},
		},
		{
			name:      "right unblocked",
			action:    MoveRight,
			wantPivot: Position{X: 5, Y: 2},
		},
		{
			name:      "right blocked by the stack",
			action:    MoveRight,
			blocks:    []Position{{X: 6, Y: 2}},
			wantPivot: Position{X: 4, Y: 2},
		},
		{
			name:      "down unblocked",
			action:    MoveDown,
			wantPivot: Position{X: 4, Y: 3},
		},
		{
			name:      "down blocked by the stack",
			action:    MoveDown,
			blocks:    []Position{{X: 4, Y: 4}},
			wantPivot: Position{X: 4, Y: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewTestState(10, 20, T)
			s.World.Stamp(Color{R: 1}, tt.blocks)
			if ff := s.Apply(tt.action); ff {
				t.Error("wanted no fast-forward for a plain move")
			}
			if s.Piece.Pivot() != tt.wantPivot {
				t.Errorf("wanted pivot %v, got %v", tt.wantPivot, s.Piece.Pivot())
			}
		})
	}
}

func TestApplyAgainstTheWall(t *testing.T) {
	s := NewTestState(10, 20, T)
	for range 10 {
		s.Apply(MoveLeft)
	}
	// the T is three blocks wide, its pivot stops one short of the wall
	if s.Piece.Pivot() != (Position{X: 1, Y: 2}) {
		t.Errorf("wanted pivot {1 2}, got %v", s.Piece.Pivot())
	}
}

func TestApplyRotate(t *testing.T) {
	t.Run("accepted when the turned piece fits", func(t *testing.T) {
		t.Parallel()
		s := NewTestState(10, 20, T)
		s.Apply(RotateRight)
		want := []Position{{0, 0}, {0, 1}, {0, -1}, {1, 0}}
		if got := s.Piece.Offsets(); !reflect.DeepEqual(got, want) {
			t.Errorf("wanted %v, got %v", want, got)
		}
	})

	t.Run("rejected against the stack, no wall kick", func(t *testing.T) {
		t.Parallel()
		s := NewTestState(10, 20, T)
		s.World.Stamp(Color{R: 1}, []Position{{X: 4, Y: 1}}) // where the turned T would poke up
		want := s.Piece.Offsets()
		s.Apply(RotateRight)
		if got := s.Piece.Offsets(); !reflect.DeepEqual(got, want) {
			t.Errorf("wanted the rotation dropped, got %v", got)
		}
	})

	t.Run("rejected past the top edge", func(t *testing.T) {
		t.Parallel()
		s := NewTestState(10, 20, T)
		s.Piece = s.Piece.Move(Position{Y: -2}) // pivot on the top row
		want := s.Piece.Offsets()
		s.Apply(RotateRight)
		if got := s.Piece.Offsets(); !reflect.DeepEqual(got, want) {
			t.Errorf("wanted the rotation dropped, got %v", got)
		}
	})

	t.Run("counter-clockwise works the same way", func(t *testing.T) {
		t.Parallel()
		s := NewTestState(10, 20, T)
		s.Apply(RotateLeft)
		want := []Position{{0, 0}, {0, -1}, {0, 1}, {-1, 0}}
		if got := s.Piece.Offsets(); !reflect.DeepEqual(got, want) {
			t.Errorf("wanted %v, got %v", want, got)
		}
	})
}

func TestApplyDrop(t *testing.T) {
	s := NewTestState(10, 20, T)
	ff := s.Apply(DropDown)
	if !ff {
		t.Error("wanted DropDown to ask for an immediate tick")
	}
	if s.Piece.Pivot() != (Position{X: 4, Y: 18}) {
		t.Errorf("wanted the piece on the floor at {4 18}, got %v", s.Piece.Pivot())
	}
	if got := rowsFromWorld(s.World); !reflect.DeepEqual(got, rowsFromWorld(NewWorld(10, 20))) {
		t.Error("wanted the board untouched until the tick locks the piece")
	}

	// the fast-forwarded tick locks the dropped piece right away
	s.Tick()
	if !s.World.At(Position{X: 4, Y: 19}).Solid {
		t.Error("wanted the dropped piece locked into the board")
	}
	if s.Piece.Pivot() != (Position{X: 4, Y: 2}) {
		t.Errorf("wanted the next piece at the spawn, got %v", s.Piece.Pivot())
	}
}

func TestApplyRestart(t *testing.T) {
	t.Run("mid-game", func(t *testing.T) {
		t.Parallel()
		s := NewTestState(10, 20, T)
		s.Score = 500
		s.LinesCleared = 12
		s.Level = 2
		if ff := s.Apply(Restart); ff {
			t.Error("wanted no fast-forward from a restart")
		}
		if s.Score != 0 || s.Level != 1 || s.LinesCleared != 0 || !s.Running {
			t.Errorf("wanted a pristine game, got score %d level %d lines %d running %v",
				s.Score, s.Level, s.LinesCleared, s.Running)
		}
	})

	t.Run("after a game over, bypassing the dead state", func(t *testing.T) {
		t.Parallel()
		s := NewTestState(10, 20, T)
		s.World.Stamp(Color{R: 1}, []Position{{X: 3, Y: 3}, {X: 5, Y: 3}, {X: 4, Y: 4}})
		s.Tick()
		if s.Running {
			t.Fatal("wanted the game to be over")
		}
		s.Apply(Restart)
		if !s.Running {
			t.Error("wanted the restart to revive the game")
		}
	})
}

func TestApplyToggleMusic(t *testing.T) {
	s := NewTestState(10, 20, T)
	pivot := s.Piece.Pivot()
	if ff := s.Apply(ToggleMusic); ff {
		t.Error("wanted no fast-forward from the music toggle")
	}
	if s.Piece.Pivot() != pivot {
		t.Error("wanted the music toggle to leave the game alone")
	}
}

func TestApplyAfterGameOver(t *testing.T) {
	s := NewTestState(10, 20, T)
	s.Running = false
	pivot := s.Piece.Pivot()
	for _, a := range []Action{MoveLeft, MoveRight, MoveDown, RotateRight, RotateLeft, DropDown} {
		if ff := s.Apply(a); ff {
			t.Errorf("wanted %q to be ignored after a game over", a)
		}
	}
	if s.Piece.Pivot() != pivot {
		t.Error("wanted the dead game's piece to stay put")
	}
}
