package blockfall

import "slices"

// Kind names one of the seven catalog shapes.
type Kind string

const (
	O Kind = "O"
	L Kind = "L"
	J Kind = "J"
	I Kind = "I"
	T Kind = "T"
	S Kind = "S"
	Z Kind = "Z"
)

// RotationStrategy tags whether a shape's offsets may be rotated.
type RotationStrategy int

const (
	// ThreeByThree turns the offsets a quarter turn around the pivot,
	// keeping the piece inside its small bounding box. No wall kicks.
	ThreeByThree RotationStrategy = iota
	// NoRotation opts a shape out of rotating. Only the square uses it,
	// its pivot sits on a corner block so turning it would wobble.
	NoRotation
)

// Tetrimino is a falling piece: a pivot position on the board, the block
// offsets around it, and the color and rotation behavior of its shape.
// Every transformation returns a new value, the receiver never changes.
type Tetrimino struct {
	Kind Kind

	pivot    Position
	offsets  []Position
	color    Color
	rotation RotationStrategy
}

// Blocks returns the board positions covered by the piece, in offset
// declaration order.
func (t Tetrimino) Blocks() []Position {
	blocks := make([]Position, len(t.offsets))
	for i, off := range t.offsets {
		blocks[i] = t.pivot.Translate(off.X, off.Y)
	}
	return blocks
}

// Offsets returns the block offsets around the pivot, in declaration order.
func (t Tetrimino) Offsets() []Position {
	return slices.Clone(t.offsets)
}

// Pivot returns the piece's center position.
func (t Tetrimino) Pivot() Position { return t.pivot }

// Color returns the shape's render color.
func (t Tetrimino) Color() Color { return t.color }

// Fits reports whether every block of the piece lands on a free cell of w.
// The piece is checked as a hypothesis, w is not touched, so callers test
// a candidate move against the current board before accepting it.
func (t Tetrimino) Fits(w *World) bool {
	for _, p := range t.Blocks() {
		if !w.IsFree(p) {
			return false
		}
	}
	return true
}

// Move returns the piece with its pivot translated by off.
func (t Tetrimino) Move(off Position) Tetrimino {
	t.pivot = t.pivot.Translate(off.X, off.Y)
	return t
}

// RotateLeft returns the piece turned a quarter turn counter-clockwise
// around its pivot. Shapes tagged NoRotation come back unchanged.
func (t Tetrimino) RotateLeft() Tetrimino {
	return t.rotate(Position.RotateLeft)
}

// RotateRight returns the piece turned a quarter turn clockwise around its
// pivot. Shapes tagged NoRotation come back unchanged.
func (t Tetrimino) RotateRight() Tetrimino {
	return t.rotate(Position.RotateRight)
}

func (t Tetrimino) rotate(fn func(Position) Position) Tetrimino {
	if t.rotation == NoRotation {
		return t
	}
	offsets := make([]Position, len(t.offsets))
	for i, off := range t.offsets {
		offsets[i] = fn(off)
	}
	t.offsets = offsets
	return t
}

// Dropped returns the piece advanced down w as far as it fits. When not
// even one step down fits, the receiver comes back unchanged.
func (t Tetrimino) Dropped(w *World) Tetrimino {
	for {
		next := t.Move(down)
		if !next.Fits(w) {
			return t
		}
		t = next
	}
}

// NewTetrimino returns the catalog piece for k with its pivot at the
// origin. The supply re-centers it on the spawn position.
func NewTetrimino(k Kind) Tetrimino {
	return catalog[k]()
}

// kinds lists the catalog in a fixed order for uniform random draws.
var kinds = []Kind{O, L, J, I, T, S, Z}

var catalog = map[Kind]func() Tetrimino{
	O: newO,
	L: newL,
	J: newJ,
	I: newI,
	T: newT,
	S: newS,
	Z: newZ,
}

/*
.	 0 +1

0	 O  O

+1	 O  O
*/
func newO() Tetrimino {
	return Tetrimino{
		Kind:     O,
		offsets:  []Position{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		color:    Color{R: 255, G: 213, B: 0},
		rotation: NoRotation,
	}
}

/*
.	-1  0 +1

0	 O  O  O

+1	 .  .  O
*/
func newL() Tetrimino {
	return Tetrimino{
		Kind:    L,
		offsets: []Position{{0, 0}, {-1, 0}, {1, 0}, {1, 1}},
		color:   Color{R: 114, G: 203, B: 59},
	}
}

/*
.	-1  0 +1

0	 O  O  O

+1	 O  .  .
*/
func newJ() Tetrimino {
	return Tetrimino{
		Kind:    J,
		offsets: []Position{{0, 0}, {-1, 0}, {1, 0}, {-1, 1}},
		color:   Color{R: 255, G: 151, B: 28},
	}
}

/*
.	-1  0 +1 +2

0	 O  O  O  O
*/
func newI() Tetrimino {
	return Tetrimino{
		Kind:    I,
		offsets: []Position{{0, 0}, {-1, 0}, {1, 0}, {2, 0}},
		color:   Color{R: 3, G: 65, B: 174},
	}
}

/*
.	-1  0 +1

0	 O  O  O

+1	 .  O  .
*/
func newT() Tetrimino {
	return Tetrimino{
		Kind:    T,
		offsets: []Position{{0, 0}, {-1, 0}, {1, 0}, {0, 1}},
		color:   Color{R: 145, G: 79, B: 166},
	}
}

/*
.	-1  0 +1

0	 O  O  .

+1	 .  O  O
*/
func newS() Tetrimino {
	return Tetrimino{
		Kind:    S,
		offsets: []Position{{0, 0}, {-1, 0}, {0, 1}, {1, 1}},
		color:   Color{R: 255, G: 193, B: 124},
	}
}

/*
.	-1  0 +1

0	 .  O  O

+1	 O  O  .
*/
func newZ() Tetrimino {
	return Tetrimino{
		Kind:    Z,
		offsets: []Position{{0, 0}, {1, 0}, {0, 1}, {-1, 1}},
		color:   Color{R: 255, G: 50, B: 19},
	}
}
