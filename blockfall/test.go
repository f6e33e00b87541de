package blockfall

import (
	"log/slog"
	"math/rand"
	"sync"
	"time"
)

// MockTicker is a hand-driven Ticker for tests.
type MockTicker struct {
	ch          chan time.Time
	stop, reset bool
	mu          sync.Mutex
}

func newMockTicker() *MockTicker          { return &MockTicker{ch: make(chan time.Time)} }
func (m *MockTicker) C() <-chan time.Time { return m.ch }
func (m *MockTicker) Tick()               { m.ch <- time.Now() }
func (m *MockTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stop = true
}
func (m *MockTicker) Reset(time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset = true
}
func (m *MockTicker) IsReset() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reset
}
func (m *MockTicker) IsStop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stop
}

// NewTestGame wires a Game around st with a manual ticker and no logging.
func NewTestGame(st *State) (*Game, *MockTicker) {
	ticker := newMockTicker()
	return &Game{
		state:    st,
		ticker:   ticker,
		updateCh: make(chan *View),
		actionCh: make(chan Action),
		doneCh:   make(chan bool, 1),
		logger:   slog.New(slog.DiscardHandler),
		id:       "test",
	}, ticker
}

// NewTestState builds a width x height game whose active piece and
// buffered next piece are both kind k, spawned at the usual pivot. Draws
// after those two come from a fixed seed.
func NewTestState(width, height int, k Kind) *State {
	spawn := Position{X: width/2 - 1, Y: 2}
	piece := NewTetrimino(k)
	piece.pivot = spawn
	f := NewFactory(rand.New(rand.NewSource(1)), spawn)
	f.next = piece
	s := &State{
		World:   NewWorld(width, height),
		Piece:   piece,
		Level:   1,
		Running: true,
		factory: f,
	}
	return s
}
