package chess

// Pawn direction: white moves up the grid (-1), black down (+1).
func pawnDir(c Color) int {
	if c == White {
		return -1
	}
	return +1
}

func promotionRow(c Color) int {
	if c == White {
		return 0
	}
	return Rows - 1
}

// Row a pawn must stand on to capture en passant (its fifth rank).
func enPassantRow(c Color) int {
	if c == White {
		return 3
	}
	return 4
}

func genPawnMoves(b *Board, from Coord, moves *[]Move) {
	p := b.at(from)
	dir := pawnDir(p.Color)

	// Forward: blocked by any piece.
	steps := 1
	if !p.Moved {
		steps = 2
	}
	for i := 1; i <= steps; i++ {
		to := Coord{Row: from.Row + dir*i, Col: from.Col}
		if !to.Valid() || !b.squares[to.Row][to.Col].Empty() {
			break
		}
		*moves = append(*moves, b.newMove(from, to))
	}

	// Diagonal captures.
	for _, dc := range []int{-1, +1} {
		to := Coord{Row: from.Row + dir, Col: from.Col + dc}
		if to.Valid() && b.squares[to.Row][to.Col].HasEnemy(p.Color) {
			*moves = append(*moves, b.newMove(from, to))
		}
	}

	// En passant: the captured pawn sits beside us, the destination is behind it.
	if from.Row != enPassantRow(p.Color) {
		return
	}
	for _, dc := range []int{-1, +1} {
		beside := Coord{Row: from.Row, Col: from.Col + dc}
		if !beside.Valid() {
			continue
		}
		q := b.at(beside)
		if q == nil || q.Color == p.Color || q.Kind != Pawn || !q.EnPassant {
			continue
		}
		to := Coord{Row: from.Row + dir, Col: from.Col + dc}
		if b.squares[to.Row][to.Col].Empty() {
			*moves = append(*moves, b.newMove(from, to))
		}
	}
}
