package blockfall

import "math/rand"

// Factory deals the piece stream. It holds exactly one pre-drawn piece at
// all times so the UI can preview what spawns after the active one.
type Factory struct {
	rng   *rand.Rand
	spawn Position
	next  Tetrimino
}

// NewFactory seeds the supply. Every dealt piece has its pivot at spawn.
func NewFactory(rng *rand.Rand, spawn Position) *Factory {
	f := &Factory{rng: rng, spawn: spawn}
	f.Reset()
	return f
}

// PopNext hands out the buffered piece and immediately draws its
// replacement. Draws are uniform over the seven shapes, independent of
// anything dealt before. No bag.
func (f *Factory) PopNext() Tetrimino {
	t := f.next
	f.Reset()
	return t
}

// Reset throws the buffered piece away and draws a fresh one. The piece a
// caller already popped is unaffected.
func (f *Factory) Reset() {
	t := NewTetrimino(kinds[f.rng.Intn(len(kinds))])
	t.pivot = f.spawn
	f.next = t
}

// Next peeks at the buffered piece without consuming it.
func (f *Factory) Next() Tetrimino { return f.next }
