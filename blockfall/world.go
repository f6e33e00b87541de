package blockfall

import "fmt"

// Color is the render color a cell keeps once a piece locks over it.
type Color struct {
	R, G, B uint8
}

// Cell is one board square. The zero value is the empty background.
type Cell struct {
	Color Color
	Solid bool
}

// World is the playfield. Cells live in a flat slice indexed by
// x + y*width with row 0 at the top, so every in-bounds position maps to
// exactly one cell and there are no gaps to special-case.
type World struct {
	width, height int
	cells         []Cell
}

// NewWorld returns an empty width x height board. Both dimensions must be
// positive.
func NewWorld(width, height int) *World {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("blockfall: invalid world size %dx%d", width, height))
	}
	return &World{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (w *World) Width() int  { return w.width }
func (w *World) Height() int { return w.height }

// At returns the cell at p, or the background cell when p is off the board.
func (w *World) At(p Position) Cell {
	if !w.inBounds(p) {
		return Cell{}
	}
	return w.cells[p.X+p.Y*w.width]
}

// IsFree reports whether a block may occupy p. Positions off the board are
// never free, which makes this the single bounds check the movement and
// rotation rules go through.
func (w *World) IsFree(p Position) bool {
	return w.inBounds(p) && !w.cells[p.X+p.Y*w.width].Solid
}

// Stamp fixes c onto every position in ps that is still free. Occupied and
// out-of-bounds positions are skipped without complaint, so stamping the
// same blocks twice leaves the board as it was after the first call.
func (w *World) Stamp(c Color, ps []Position) {
	for _, p := range ps {
		if w.IsFree(p) {
			w.cells[p.X+p.Y*w.width] = Cell{Color: c, Solid: true}
		}
	}
}

// ClearFullLines removes every row with no free cell left, moving all rows
// above it down one step and leaving a fresh background row at the top.
// The scan runs bottom to top and stays on the same row index after a
// collapse: the row that just moved in may itself be full. Returns the
// number of rows cleared.
func (w *World) ClearFullLines() int {
	var cleared int
	for y := w.height - 1; y >= 0; {
		if !w.rowFull(y) {
			y--
			continue
		}
		cleared++
		for ty := y; ty > 0; ty-- {
			copy(w.row(ty), w.row(ty-1))
		}
		clear(w.row(0))
	}
	return cleared
}

func (w *World) rowFull(y int) bool {
	for _, c := range w.row(y) {
		if !c.Solid {
			return false
		}
	}
	return true
}

func (w *World) row(y int) []Cell {
	return w.cells[y*w.width : (y+1)*w.width]
}

func (w *World) inBounds(p Position) bool {
	return p.X >= 0 && p.X < w.width && p.Y >= 0 && p.Y < w.height
}

func (w *World) copy() *World {
	cells := make([]Cell, len(w.cells))
	copy(cells, w.cells)
	return &World{width: w.width, height: w.height, cells: cells}
}
