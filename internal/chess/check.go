package chess

// IsAttacked reports whether any piece of by has a raw move landing on target.
// Raw moves are used on purpose: legal generation calls back into this. Pawn
// diagonals only count when target is occupied, which holds for a king square.
func (b *Board) IsAttacked(target Coord, by Color) bool {
	var moves []Move
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := b.squares[r][c].Piece
			if p == nil || p.Color != by {
				continue
			}
			moves = moves[:0]
			b.genRawMoves(Coord{Row: r, Col: c}, &moves)
			for _, m := range moves {
				if m.To == target {
					return true
				}
			}
		}
	}
	return false
}

// InCheck reports whether color's king can be captured. A side without a king
// is never in check.
func (b *Board) InCheck(color Color) bool {
	k, ok := b.kingSquare(color)
	if !ok {
		return false
	}
	return b.IsAttacked(k, color.Opponent())
}

// leavesKingAttacked plays m on a private copy of the grid and tests the
// mover's king there. The copy is dropped afterwards.
func (b *Board) leavesKingAttacked(m Move) bool {
	mover := b.at(m.From).Color
	tmp := b.cloneGrid(cloner{})
	tmp.apply(m)
	return tmp.InCheck(mover)
}
