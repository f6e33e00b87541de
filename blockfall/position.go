package blockfall

// Position is a point on the board. X grows to the right, Y grows
// downwards, so the row below (x, y) is (x, y+1). Positions are plain
// values, created and thrown away freely.
type Position struct {
	X, Y int
}

// Unit offsets for the three player moves. Gravity reuses down.
var (
	left  = Position{X: -1}
	right = Position{X: 1}
	down  = Position{Y: 1}
)

// Translate returns the position shifted by dx and dy.
func (p Position) Translate(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// RotateLeft returns the position rotated a quarter turn counter-clockwise
// around the origin.
func (p Position) RotateLeft() Position {
	return Position{X: -p.Y, Y: p.X}
}

// RotateRight returns the position rotated a quarter turn clockwise around
// the origin.
func (p Position) RotateRight() Position {
	return Position{X: p.Y, Y: -p.X}
}
