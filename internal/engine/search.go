package engine

import (
	"math"
	"time"

	"chessai/internal/chess"
)

const scoreInf = 1_000_000_000

type SearchResult struct {
	BestMove chess.Move
	Found    bool // false when the side to move had no legal move
	Score    int  // from the engine color's point of view
	Depth    int
	Nodes    int64
	TimeUsed time.Duration
	FromBook bool
}

// Search runs the book, then a depth-limited alpha-beta over b. Moves are
// tried in board scan order, so equal inputs give equal results. b is
// returned to its original state.
func (e *Engine) Search(b *chess.Board) SearchResult {
	start := time.Now()
	if e.Book != nil {
		if mv, ok := e.Book.Next(b, e.Color); ok {
			return SearchResult{
				BestMove: mv,
				Found:    true,
				Score:    Evaluate(b, e.Color),
				TimeUsed: time.Since(start),
				FromBook: true,
			}
		}
	}

	e.nodes = 0
	depth := e.depth()
	mv, found, score := e.alphaBeta(b, depth, -scoreInf, scoreInf, true)
	return SearchResult{
		BestMove: mv,
		Found:    found,
		Score:    score,
		Depth:    depth,
		Nodes:    e.nodes,
		TimeUsed: time.Since(start),
	}
}

// alphaBeta searches from the side that is to move at this node: the engine
// color when maximizing, its opponent otherwise. Positions without legal moves
// are scored like any other leaf.
func (e *Engine) alphaBeta(b *chess.Board, depth int, alpha, beta int, maximizing bool) (chess.Move, bool, int) {
	e.nodes++

	if depth == 0 {
		return chess.Move{}, false, Evaluate(b, e.Color)
	}

	side := e.Color
	if !maximizing {
		side = side.Opponent()
	}
	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		return chess.Move{}, false, Evaluate(b, e.Color)
	}

	var best chess.Move
	found := false
	if maximizing {
		bestScore := math.MinInt
		for _, mv := range moves {
			if err := b.MakeMove(mv.Piece, mv); err != nil {
				continue
			}
			_, _, score := e.alphaBeta(b, depth-1, alpha, beta, false)
			b.UndoMove()
			if score > bestScore {
				bestScore = score
				best = mv
				found = true
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break
			}
		}
		return best, found, bestScore
	}

	bestScore := math.MaxInt
	for _, mv := range moves {
		if err := b.MakeMove(mv.Piece, mv); err != nil {
			continue
		}
		_, _, score := e.alphaBeta(b, depth-1, alpha, beta, true)
		b.UndoMove()
		if score < bestScore {
			bestScore = score
			best = mv
			found = true
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return best, found, bestScore
}
