package terminal

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"text/template"

	"blockfall/blockfall"

	"github.com/eiannone/keyboard"
)

// Game is the slice of the engine the terminal drives. Tests swap in a
// scripted implementation.
type Game interface {
	Start()
	Stop()
	Action(blockfall.Action)
	Updates() <-chan *blockfall.View
	View() *blockfall.View
}

// MusicPlayer toggles the background track on and off.
type MusicPlayer interface {
	Toggle()
}

type Terminal struct {
	writer       io.Writer
	game         Game
	template     *template.Template
	logger       *slog.Logger
	keysEventsCh <-chan keyboard.KeyEvent
	doneCh       chan bool
	noGhost      bool
	music        MusicPlayer
}

type Options struct {
	Writer  io.Writer
	Logger  *slog.Logger
	NoGhost bool
	Music   MusicPlayer
}

func New(game Game, o *Options) *Terminal {
	tp, err := loadTemplate()
	if err != nil {
		log.Fatalf("unable to load template: %v\n", err)
	}
	kc, err := keyboard.GetKeys(20)
	if err != nil {
		log.Fatalf("unable to open keyboard: %v\n", err)
	}
	w := io.Writer(os.Stdout)
	if o.Writer != nil {
		w = o.Writer
	}
	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Terminal{
		writer:       w,
		game:         game,
		template:     tp,
		keysEventsCh: kc,
		doneCh:       make(chan bool),
		logger:       logger,
		noGhost:      o.NoGhost,
		music:        o.Music,
	}
}

// Start renders the first frame, starts the game and blocks until the
// player quits.
func (t *Terminal) Start() {
	t.render(t.game.View())
	go t.listenGame()
	go t.listenKB()
	t.game.Start()
	<-t.doneCh
	close(t.doneCh)
	t.game.Stop()
	keyboard.Close()
}

func (t *Terminal) listenGame() {
	for v := range t.game.Updates() {
		t.render(v)
	}
}

func (t *Terminal) listenKB() {
	for {
		event, ok := <-t.keysEventsCh
		if !ok {
			t.logger.Error("keyboard events channel closed unexpectedly")
			break
		}
		if event.Err != nil {
			t.logger.Error("keysEvents error", slog.String("error", event.Err.Error()))
			break
		}
		if event.Key == keyboard.KeyEsc || event.Key == keyboard.KeyCtrlC {
			break
		}
		a, ok := action(event)
		if !ok {
			continue
		}
		if a == blockfall.ToggleMusic {
			if t.music != nil {
				t.music.Toggle()
			}
			continue
		}
		t.game.Action(a)
	}
	t.doneCh <- true
}

func action(event keyboard.KeyEvent) (blockfall.Action, bool) {
	switch {
	case event.Key == keyboard.KeyArrowDown || event.Rune == 's':
		return blockfall.MoveDown, true
	case event.Key == keyboard.KeyArrowLeft || event.Rune == 'a':
		return blockfall.MoveLeft, true
	case event.Key == keyboard.KeyArrowRight || event.Rune == 'd':
		return blockfall.MoveRight, true
	case event.Key == keyboard.KeyArrowUp || event.Rune == 'e':
		return blockfall.RotateRight, true
	case event.Rune == 'q':
		return blockfall.RotateLeft, true
	case event.Key == keyboard.KeySpace:
		return blockfall.DropDown, true
	case event.Rune == 'r':
		return blockfall.Restart, true
	case event.Rune == 'm':
		return blockfall.ToggleMusic, true
	}
	return "", false
}

func (t *Terminal) render(v *blockfall.View) {
	fmt.Fprint(t.writer, resetPos)
	if err := t.template.Execute(t.writer, &frame{View: v, NoGhost: t.noGhost}); err != nil {
		t.logger.Error("unable to execute template", slog.String("error", err.Error()))
	}
}
