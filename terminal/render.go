package terminal

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"blockfall/blockfall"
)

const (
	resetPos = "\033[H" // Reset cursor position to 0,0

	gameOver = "game over! press r to restart"
)

//go:embed "layout.tmpl"
var layout string

// frame is what the layout renders: one published view plus the options
// that never change during a run.
type frame struct {
	*blockfall.View
	NoGhost bool
}

func loadTemplate() (*template.Template, error) {
	funcMap := template.FuncMap{
		"stack":     stack,
		"nextPiece": nextPiece,
		"counter":   counter,
		"status":    status,
	}

	// we use the console raw so new lines don't automatically transform into carriage return
	// to fix that we add a carriage return to every new line in the layout.
	l := strings.ReplaceAll(layout, "\n", "\r\n")
	l = strings.ReplaceAll(l, "B L O C K F A L L", "\033[1mB L O C K F A L L\033[0m")
	return template.New("layout").Funcs(funcMap).Parse(l)
}

// stack renders the settled cells, the ghost and the falling piece into
// one string per board row. Both overlays disappear when the game is over
// so the final stack is all the player sees.
func stack(f *frame) []string {
	w, h := f.World.Width(), f.World.Height()
	cells := make([]string, w*h)
	for i := range cells {
		cells[i] = "  "
	}
	set := func(p blockfall.Position, cell string) {
		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			return
		}
		cells[p.X+p.Y*w] = cell
	}

	for y := range h {
		for x := range w {
			p := blockfall.Position{X: x, Y: y}
			if c := f.World.At(p); c.Solid {
				set(p, block(c.Color))
			}
		}
	}
	if f.Running {
		if !f.NoGhost {
			for _, p := range f.Ghost.Blocks() {
				set(p, "[]")
			}
		}
		for _, p := range f.Piece.Blocks() {
			set(p, block(f.Piece.Color()))
		}
	}

	rendered := make([]string, h)
	for y := range h {
		rendered[y] = strings.Join(cells[y*w:(y+1)*w], "")
	}
	return rendered
}

// nextPiece renders the buffered piece into two rows of four cells, the
// box every freshly spawned piece fits in.
func nextPiece(f *frame) []string {
	rendered := make([]string, 2)
	for y := range 2 {
		row := []string{"  ", "  ", "  ", "  "}
		for _, off := range f.Next.Offsets() {
			if off.Y == y {
				row[off.X+1] = block(f.Next.Color())
			}
		}
		rendered[y] = strings.Join(row, "")
	}
	return rendered
}

func counter(n int) string {
	return fmt.Sprintf("%7d", n)
}

// status pads to a constant width so a stale message never survives a
// redraw.
func status(f *frame) string {
	if f.Running {
		return strings.Repeat(" ", len(gameOver))
	}
	return gameOver
}

func block(c blockfall.Color) string {
	return fmt.Sprintf("\x1b[7m\x1b[38;2;%d;%d;%dm[]\x1b[0m", c.R, c.G, c.B)
}
