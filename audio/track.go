package audio

import (
	"math"
	"time"
)

// Pitches the track uses, in hertz.
const (
	rest = 0
	a4   = 440.00
	b4   = 493.88
	c5   = 523.25
	d5   = 587.33
	e5   = 659.25
	f5   = 698.46
	g5   = 783.99
	a5   = 880.00
)

const (
	// sixteenth is the shortest note the score can hold, an eight of a
	// second so a quarter note at 120 bpm lasts half a second.
	sixteenth = time.Second / 8

	volume = 0.06
)

// gap silences the tail of every note so repeated pitches don't blur
// into one long tone.
var gap = sampleRate.N(time.Second / 64)

type note struct {
	pitch      float64
	sixteenths int
}

// korobeiniki is the folk tune every falling block player hums along to.
var korobeiniki = []note{
	{e5, 4}, {b4, 2}, {c5, 2}, {d5, 4}, {c5, 2}, {b4, 2},
	{a4, 4}, {a4, 2}, {c5, 2}, {e5, 4}, {d5, 2}, {c5, 2},
	{b4, 6}, {c5, 2}, {d5, 4}, {e5, 4},
	{c5, 4}, {a4, 4}, {a4, 8},
	{rest, 2}, {d5, 4}, {f5, 2}, {a5, 4}, {g5, 2}, {f5, 2},
	{e5, 6}, {c5, 2}, {e5, 4}, {d5, 2}, {c5, 2},
	{b4, 4}, {b4, 2}, {c5, 2}, {d5, 4}, {e5, 4},
	{c5, 4}, {a4, 4}, {a4, 8}, {rest, 4},
}

// track streams a score as a square wave, note after note, starting
// over at the end. It never reports a playback error.
type track struct {
	notes []note
	i     int // current note
	pos   int // samples into the current note
}

func newTrack(notes []note) *track {
	return &track{notes: notes}
}

func (t *track) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		n := t.notes[t.i]
		length := sampleRate.N(time.Duration(n.sixteenths) * sixteenth)
		var v float64
		if n.pitch > 0 && t.pos < length-gap {
			period := float64(sampleRate) / n.pitch
			v = -volume
			if math.Mod(float64(t.pos), period) < period/2 {
				v = volume
			}
		}
		samples[i][0], samples[i][1] = v, v
		if t.pos++; t.pos >= length {
			t.pos = 0
			t.i = (t.i + 1) % len(t.notes)
		}
	}
	return len(samples), true
}

func (t *track) Err() error { return nil }
