package blockfall

// Action is a player command. The UI turns key events into Actions and
// feeds them to Game.Action, or straight to State.Apply when it owns the
// loop itself.
type Action string

const (
	MoveLeft    Action = "left"      // Moves the piece one column left.
	MoveRight   Action = "right"     // Moves the piece one column right.
	MoveDown    Action = "down"      // Moves the piece one row down.
	DropDown    Action = "drop"      // Drops the piece to the bottom of the board.
	RotateRight Action = "rotatecw"  // Rotates the piece clockwise.
	RotateLeft  Action = "rotateccw" // Rotates the piece counter-clockwise.
	Restart     Action = "restart"   // Starts over, during play and after a game over.
	ToggleMusic Action = "music"     // Owned by the UI layer, the simulation ignores it.
)

// Apply interprets a player command against the current board. Moves and
// rotations are proposals: a transformed copy of the piece replaces the
// active one only when it fits, otherwise nothing happens. There is no
// wall kick, a rotation against an obstruction simply stays put. The
// returned flag asks the caller to tick right away instead of waiting for
// gravity; only DropDown raises it.
//
// Once the game is over every command but Restart is ignored.
func (s *State) Apply(a Action) bool {
	if !s.Running && a != Restart {
		return false
	}
	switch a {
	case MoveLeft:
		s.propose(s.Piece.Move(left))
	case MoveRight:
		s.propose(s.Piece.Move(right))
	case MoveDown:
		s.propose(s.Piece.Move(down))
	case RotateRight:
		s.propose(s.Piece.RotateRight())
	case RotateLeft:
		s.propose(s.Piece.RotateLeft())
	case DropDown:
		s.propose(s.Piece.Dropped(s.World))
		return true
	case Restart:
		s.Reset()
	}
	return false
}

func (s *State) propose(candidate Tetrimino) {
	if candidate.Fits(s.World) {
		s.Piece = candidate
	}
}
