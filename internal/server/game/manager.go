package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"chessai/internal/chess"
	"chessai/internal/engine"
)

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrNoEngine      = errors.New("game has no engine")
	ErrStalePosition = errors.New("position changed")
)

// Options configures a new game. AIColor NoColor means two human players.
type Options struct {
	AIColor chess.Color
	Depth   int
	FEN     string
	Book    engine.Book
}

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

func (m *Manager) NewGame(opts Options) (*GameState, error) {
	startFEN := opts.FEN
	if startFEN == "" {
		startFEN = chess.StartFEN
	}
	board, toMove, err := chess.DecodeFEN(startFEN)
	if err != nil {
		return nil, errors.Wrap(err, "new game")
	}

	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Board:     board,
		ToMove:    toMove,
		StartFEN:  startFEN,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if opts.AIColor == chess.White || opts.AIColor == chess.Black {
		g.AI = engine.New(opts.AIColor, opts.Depth)
		g.AI.Book = opts.Book
	}

	m.mu.Lock()
	m.games[g.ID] = g
	m.mu.Unlock()
	return g, nil
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, errors.Wrapf(ErrGameNotFound, "id %q", id)
	}
	return g, nil
}

func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return false
	}
	delete(m.games, id)
	return true
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
