package chess

var kingOffsets = [][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

func genKingMoves(b *Board, from Coord, moves *[]Move) {
	genStepMoves(b, from, kingOffsets, moves)
	genCastleMoves(b, from, moves)
}

// genCastleMoves only checks that king and rook are unmoved and the squares
// between them are empty. Squares the king crosses are not tested for attack.
func genCastleMoves(b *Board, from Coord, moves *[]Move) {
	k := b.at(from)
	if k.Moved {
		return
	}
	for wing, rookCol := range [2]int{0, Cols - 1} {
		dir := sign(rookCol - from.Col)
		if abs(rookCol-from.Col) < 3 {
			continue
		}
		r := b.squares[from.Row][rookCol].Piece
		if r == nil || r.Kind != Rook || r.Color != k.Color || r.Moved {
			continue
		}
		clear := true
		for c := from.Col + dir; c != rookCol; c += dir {
			if !b.squares[from.Row][c].Empty() {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		k.rooks[wing] = r
		*moves = append(*moves, b.newMove(from, Coord{Row: from.Row, Col: from.Col + 2*dir}))
	}
}

// castleRook locates the rook that goes with a two-column king move.
func (b *Board) castleRook(k *Piece, m Move) (*Piece, Coord, Coord, bool) {
	dir := sign(m.To.Col - m.From.Col)
	wing, rookCol := 0, 0
	if dir > 0 {
		wing, rookCol = 1, Cols-1
	}
	from := Coord{Row: m.From.Row, Col: rookCol}
	to := Coord{Row: m.From.Row, Col: m.From.Col + dir}
	r := k.rooks[wing]
	if r == nil || b.at(from) != r {
		r = b.at(from)
	}
	if r == nil || r.Kind != Rook || r.Color != k.Color {
		return nil, from, to, false
	}
	return r, from, to, true
}
