package blockfall

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Ticker abstracts time.Ticker so tests can fire gravity by hand.
type Ticker interface {
	C() <-chan time.Time
	Reset(time.Duration)
	Stop()
}

type wrappedTicker struct {
	ticker *time.Ticker
}

func newWrappedTicker(d time.Duration) *wrappedTicker {
	return &wrappedTicker{ticker: time.NewTicker(d)}
}

func (t *wrappedTicker) C() <-chan time.Time   { return t.ticker.C }
func (t *wrappedTicker) Stop()                 { t.ticker.Stop() }
func (t *wrappedTicker) Reset(d time.Duration) { t.ticker.Reset(d) }

// View is a copy of the game at one instant, safe to keep and read while
// the game moves on. Ghost is the falling piece projected down to where it
// would land.
type View struct {
	World        *World
	Piece        Tetrimino
	Ghost        Tetrimino
	Next         Tetrimino
	Score        int
	Level        int
	LinesCleared int
	Running      bool
}

// Game runs a State on its own goroutine. It turns ticker fires and player
// actions into simulation steps and publishes a fresh View after each one.
type Game struct {
	state    *State
	ticker   Ticker
	updateCh chan *View
	actionCh chan Action
	doneCh   chan bool
	logger   *slog.Logger
	seed     int64
	id       string

	mu sync.RWMutex
}

// NewGame creates a game on the default 10x20 board, stopped until Start.
// seed fixes the piece stream for reproducible runs, 0 draws one from the
// clock.
func NewGame(seed int64, logger *slog.Logger) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Game{
		state:    NewState(DefaultWidth, DefaultHeight, rand.New(rand.NewSource(seed))),
		ticker:   newWrappedTicker(time.Hour),
		updateCh: make(chan *View),
		actionCh: make(chan Action),
		doneCh:   make(chan bool, 1),
		logger:   logger,
		seed:     seed,
		id:       uuid.New().String(),
	}
}

// Start arms the gravity ticker and begins consuming ticks and actions.
func (g *Game) Start() {
	g.logger.Info("game started",
		slog.String("game_id", g.id),
		slog.Int64("seed", g.seed))
	g.ticker.Reset(tickerInterval(g.state))
	go g.listen()
}

// Stop ends the run and closes the update channel.
func (g *Game) Stop() {
	g.ticker.Stop()
	g.doneCh <- true
}

// Action hands a player command to the game. It blocks until the game
// picks the command up.
func (g *Game) Action(a Action) {
	g.actionCh <- a
}

// Updates delivers a View after every change until the game stops.
func (g *Game) Updates() <-chan *View {
	return g.updateCh
}

// View returns a snapshot of the game, safe for concurrent use.
func (g *Game) View() *View {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snapshot()
}

func (g *Game) snapshot() *View {
	return &View{
		World:        g.state.World.copy(),
		Piece:        g.state.Piece,
		Ghost:        g.state.Piece.Dropped(g.state.World),
		Next:         g.state.Next(),
		Score:        g.state.Score,
		Level:        g.state.Level,
		LinesCleared: g.state.LinesCleared,
		Running:      g.state.Running,
	}
}

func (g *Game) listen() {
	for {
		var v *View
		select {
		case <-g.ticker.C():
			g.mu.Lock()
			g.gravity()
			v = g.snapshot()
			g.mu.Unlock()
		case a := <-g.actionCh:
			g.mu.Lock()
			g.handle(a)
			v = g.snapshot()
			g.mu.Unlock()
		case <-g.doneCh:
			close(g.updateCh)
			return
		}
		select {
		case g.updateCh <- v:
		case <-g.doneCh:
			close(g.updateCh)
			return
		}
	}
}

// gravity runs one tick and keeps the ticker in step with the level, which
// may have changed when the tick locked a piece.
func (g *Game) gravity() {
	wasRunning := g.state.Running
	lines := g.state.LinesCleared
	g.state.Tick()
	if cleared := g.state.LinesCleared - lines; cleared > 0 {
		g.logger.Info("lines cleared",
			slog.String("game_id", g.id),
			slog.Int("cleared", cleared),
			slog.Int("lines", g.state.LinesCleared),
			slog.Int("level", g.state.Level),
			slog.Int("score", g.state.Score))
	}
	if !g.state.Running {
		g.ticker.Stop()
		if wasRunning {
			g.logger.Info("game over",
				slog.String("game_id", g.id),
				slog.Int("score", g.state.Score),
				slog.Int("lines", g.state.LinesCleared),
				slog.Int("level", g.state.Level))
		}
		return
	}
	g.ticker.Reset(tickerInterval(g.state))
}

func (g *Game) handle(a Action) {
	switch a {
	case ToggleMusic:
		// the UI owns the music player, nothing to do here
	case Restart:
		g.state.Apply(a)
		g.id = uuid.New().String()
		g.ticker.Reset(tickerInterval(g.state))
		g.logger.Info("game restarted", slog.String("game_id", g.id))
	default:
		if g.state.Apply(a) {
			g.gravity()
		}
	}
}

// tickerInterval is the state's update interval made safe for time.Ticker,
// which rejects non-positive durations. The raw formula only underflows a
// millisecond deep into double-digit levels.
func tickerInterval(s *State) time.Duration {
	return max(s.UpdateInterval(), time.Millisecond)
}
