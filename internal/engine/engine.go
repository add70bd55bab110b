package engine

import (
	"chessai/internal/chess"
)

const (
	DefaultDepth = 3
	MaxDepth     = 6
)

// Engine picks moves for one side with a fixed-depth search. It is not safe
// for concurrent use: a search mutates the board it is given and restores it.
type Engine struct {
	Color chess.Color
	Depth int  // plies; clamped to [1, MaxDepth]
	Book  Book // optional, consulted before searching

	nodes int64
}

func New(color chess.Color, depth int) *Engine {
	return &Engine{Color: color, Depth: depth}
}

func (e *Engine) depth() int {
	switch {
	case e.Depth <= 0:
		return DefaultDepth
	case e.Depth > MaxDepth:
		return MaxDepth
	}
	return e.Depth
}

// FindBestMove returns the move to play, or false when the side has no legal
// move; the caller decides what that means for the game.
func (e *Engine) FindBestMove(b *chess.Board) (chess.Move, bool) {
	res := e.Search(b)
	return res.BestMove, res.Found
}
