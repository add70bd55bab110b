package chess

var (
	rookDirs   = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	bishopDirs = [][2]int{{-1, 1}, {-1, -1}, {1, 1}, {1, -1}}
	queenDirs  = append(append([][2]int{}, bishopDirs...), rookDirs...)
)

// newMove builds the record for from->to as it would be played on b right now.
func (b *Board) newMove(from, to Coord) Move {
	p := b.at(from)
	m := Move{From: from, To: to, Piece: p, Captured: b.at(to), CaptureAt: to}
	switch p.Kind {
	case Pawn:
		if to.Col != from.Col && m.Captured == nil {
			m.EnPassant = true
			m.CaptureAt = Coord{Row: from.Row, Col: to.Col}
			m.Captured = b.at(m.CaptureAt)
		} else if to.Row == promotionRow(p.Color) {
			m.Promotion = true
		}
	case King:
		if abs(to.Col-from.Col) == 2 {
			m.Castle = true
		}
	}
	return m
}

// genSlidingMoves walks every ray until the first occupied square, which is
// included only when it holds an enemy.
func genSlidingMoves(b *Board, from Coord, dirs [][2]int, moves *[]Move) {
	side := b.at(from).Color
	for _, d := range dirs {
		to := Coord{Row: from.Row + d[0], Col: from.Col + d[1]}
		for to.Valid() {
			sq := &b.squares[to.Row][to.Col]
			if sq.Empty() {
				*moves = append(*moves, b.newMove(from, to))
			} else {
				if sq.HasEnemy(side) {
					*moves = append(*moves, b.newMove(from, to))
				}
				break
			}
			to.Row += d[0]
			to.Col += d[1]
		}
	}
}

// genStepMoves keeps every in-bounds offset not occupied by a friendly piece.
func genStepMoves(b *Board, from Coord, offsets [][2]int, moves *[]Move) {
	side := b.at(from).Color
	for _, d := range offsets {
		to := Coord{Row: from.Row + d[0], Col: from.Col + d[1]}
		if !to.Valid() {
			continue
		}
		if b.squares[to.Row][to.Col].HasFriend(side) {
			continue
		}
		*moves = append(*moves, b.newMove(from, to))
	}
}

func genRookMoves(b *Board, from Coord, moves *[]Move) {
	genSlidingMoves(b, from, rookDirs, moves)
}

func genBishopMoves(b *Board, from Coord, moves *[]Move) {
	genSlidingMoves(b, from, bishopDirs, moves)
}

func genQueenMoves(b *Board, from Coord, moves *[]Move) {
	genSlidingMoves(b, from, queenDirs, moves)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
