package chess

import "sync"

var (
	zobristOnce sync.Once

	zobristPieces   [2][King + 1][Rows * Cols]uint64
	zobristUnmoved  [Rows * Cols]uint64 // king or rook that still has castling rights
	zobristPassable [Rows * Cols]uint64 // pawn carrying the en-passant flag
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for k := Pawn; k <= King; k++ {
				for sq := 0; sq < Rows*Cols; sq++ {
					zobristPieces[side][k][sq] = next()
				}
			}
		}
		for sq := 0; sq < Rows*Cols; sq++ {
			zobristUnmoved[sq] = next()
			zobristPassable[sq] = next()
		}
	})
}

// Hash is a Zobrist key of the grid, including the flags that change which
// moves are available (unmoved kings/rooks, the en-passant pawn).
func (b *Board) Hash() uint64 {
	initZobrist()

	var h uint64
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := b.squares[r][c].Piece
			if p == nil || p.Color == NoColor {
				continue
			}
			sq := r*Cols + c
			h ^= zobristPieces[p.Color][p.Kind][sq]
			if !p.Moved && (p.Kind == King || p.Kind == Rook) {
				h ^= zobristUnmoved[sq]
			}
			if p.EnPassant {
				h ^= zobristPassable[sq]
			}
		}
	}
	return h
}
