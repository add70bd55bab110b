package game

import (
	"sync"
	"time"

	nchess "github.com/notnil/chess"
	"github.com/pkg/errors"

	"chessai/internal/chess"
	"chessai/internal/engine"
)

// GameState is one session. All access goes through its methods, which
// serialize on mu; the board itself is not safe for concurrent use.
type GameState struct {
	mu sync.Mutex

	ID        string
	Board     *chess.Board
	ToMove    chess.Color
	StartFEN  string
	AI        *engine.Engine
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	StatusOngoing = "ongoing"
	StatusNoMoves = "no_moves"
)

// Snapshot is a consistent read of a game taken under its lock.
type Snapshot struct {
	ID         string
	FEN        string
	Hash       uint64
	ToMove     chess.Color
	AIColor    chess.Color
	LegalMoves []chess.Move
	WhiteScore int
	BlackScore int
	InCheck    bool
	Status     string
	History    []chess.Move
}

func (g *GameState) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (g *GameState) snapshot() Snapshot {
	legal := g.Board.LegalMoves(g.ToMove)
	status := StatusOngoing
	if len(legal) == 0 {
		status = StatusNoMoves
	}
	aiColor := chess.NoColor
	if g.AI != nil {
		aiColor = g.AI.Color
	}
	return Snapshot{
		ID:         g.ID,
		FEN:        g.Board.FEN(g.ToMove),
		Hash:       g.Board.Hash(),
		ToMove:     g.ToMove,
		AIColor:    aiColor,
		LegalMoves: legal,
		WhiteScore: g.Board.Score(chess.White),
		BlackScore: g.Board.Score(chess.Black),
		InCheck:    g.Board.InCheck(g.ToMove),
		Status:     status,
		History:    g.Board.History(),
	}
}

// Play applies a human move for the side to move. A non-zero expectHash must
// match the current position.
func (g *GameState) Play(mv chess.Move, expectHash uint64) (chess.Move, bool, Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if expectHash != 0 && expectHash != g.Board.Hash() {
		return chess.Move{}, false, Snapshot{}, ErrStalePosition
	}
	if g.AI != nil && g.AI.Color == g.ToMove {
		return chess.Move{}, false, Snapshot{}, errors.Wrapf(ErrNotYourTurn, "%s is played by the engine", g.ToMove)
	}
	captured := g.Board.IsCapture(mv)
	rec, err := g.Board.Play(g.ToMove, mv)
	if err != nil {
		return chess.Move{}, false, Snapshot{}, err
	}
	g.ToMove = g.ToMove.Opponent()
	g.UpdatedAt = time.Now()
	return rec, captured, g.snapshot(), nil
}

// AIMove lets the engine pick and play a move. found is false when the
// engine's side has no legal move; the board is then left as is.
func (g *GameState) AIMove() (engine.SearchResult, bool, Snapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.AI == nil {
		return engine.SearchResult{}, false, Snapshot{}, ErrNoEngine
	}
	if g.AI.Color != g.ToMove {
		return engine.SearchResult{}, false, Snapshot{}, errors.Wrapf(ErrNotYourTurn, "engine plays %s", g.AI.Color)
	}
	res := g.AI.Search(g.Board)
	if !res.Found {
		return res, false, g.snapshot(), nil
	}
	captured := g.Board.IsCapture(res.BestMove)
	if err := g.Board.MakeMove(res.BestMove.Piece, res.BestMove); err != nil {
		return res, false, Snapshot{}, errors.Wrapf(err, "engine move %s", res.BestMove)
	}
	g.ToMove = g.ToMove.Opponent()
	g.UpdatedAt = time.Now()
	return res, captured, g.snapshot(), nil
}

// Undo takes back one ply. It reports false when no move has been played.
func (g *GameState) Undo() (bool, Snapshot) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.Board.UndoMove() {
		return false, g.snapshot()
	}
	g.ToMove = g.ToMove.Opponent()
	g.UpdatedAt = time.Now()
	return true, g.snapshot()
}

// PGN replays the game through notnil/chess to produce standard notation.
func (g *GameState) PGN() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	opts := []func(*nchess.Game){nchess.UseNotation(nchess.UCINotation{})}
	if g.StartFEN != chess.StartFEN {
		fen, err := nchess.FEN(g.StartFEN)
		if err != nil {
			return "", errors.Wrap(err, "start position")
		}
		opts = append(opts, fen)
	}
	replay := nchess.NewGame(opts...)
	for i, mv := range g.Board.History() {
		if err := replay.MoveStr(mv.String()); err != nil {
			return "", errors.Wrapf(err, "ply %d (%s)", i+1, mv)
		}
	}
	return replay.String(), nil
}
