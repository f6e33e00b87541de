// Package audio plays the background track through the default output
// device. The track is synthesized on the fly so the binary ships
// without sound assets.
package audio

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate = beep.SampleRate(44100)

type Player struct {
	ctrl   *beep.Ctrl
	logger *slog.Logger
}

// NewPlayer initializes the speaker and starts the looping track. The
// error is returned instead of handled so a machine without an audio
// device can still play silently.
func NewPlayer(logger *slog.Logger) (*Player, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("unable to initialize the speaker: %w", err)
	}
	p := &Player{
		ctrl:   &beep.Ctrl{Streamer: newTrack(korobeiniki)},
		logger: logger,
	}
	speaker.Play(p.ctrl)
	logger.Info("music started")
	return p, nil
}

// Toggle pauses or resumes the track.
func (p *Player) Toggle() {
	speaker.Lock()
	p.ctrl.Paused = !p.ctrl.Paused
	paused := p.ctrl.Paused
	speaker.Unlock()
	p.logger.Info("music toggled", slog.Bool("paused", paused))
}

// Close silences the speaker.
func (p *Player) Close() {
	speaker.Clear()
}
