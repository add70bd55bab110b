package engine

import "chessai/internal/chess"

// Evaluate is the material balance from color's point of view, read from the
// board's running scores.
func Evaluate(b *chess.Board, color chess.Color) int {
	score := b.Score(chess.White) - b.Score(chess.Black)
	if color == chess.Black {
		return -score
	}
	return score
}
