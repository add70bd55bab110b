package chess

import "github.com/pkg/errors"

// frame is one history entry. A castle is a single frame that owns the rook
// shift, so one undo reverts the whole ply.
type frame struct {
	move     Move
	piece    *Piece // piece that left move.From
	promoted *Piece // queen placed on move.To, if any
	wasMoved bool
	cleared  []*Piece // pawns whose EnPassant flag this ply cleared
	rook     *rookShift
}

type rookShift struct {
	piece    *Piece
	from, to Coord
	wasMoved bool
}

func (f frame) clone(cl cloner) frame {
	nf := frame{
		move:     cl.move(f.move),
		piece:    cl.piece(f.piece),
		promoted: cl.piece(f.promoted),
		wasMoved: f.wasMoved,
	}
	if len(f.cleared) > 0 {
		nf.cleared = make([]*Piece, len(f.cleared))
		for i, p := range f.cleared {
			nf.cleared[i] = cl.piece(p)
		}
	}
	if f.rook != nil {
		nf.rook = &rookShift{piece: cl.piece(f.rook.piece), from: f.rook.from, to: f.rook.to, wasMoved: f.rook.wasMoved}
	}
	return nf
}

// MakeMove plays m for p without consulting the legal move list; the search
// feeds it moves that came from LegalMoves. Coordinates and the piece's
// location are checked before anything is touched.
func (b *Board) MakeMove(p *Piece, m Move) error {
	if !m.From.Valid() || !m.To.Valid() {
		return errors.Wrapf(ErrOutOfBounds, "move %s", m)
	}
	if p == nil || b.at(m.From) != p {
		return errors.Wrapf(ErrIllegalMove, "%s: piece is not on %s", m, m.From)
	}
	if dst := b.at(m.To); dst != nil && dst.Color == p.Color {
		return errors.Wrapf(ErrIllegalMove, "%s: destination holds a friendly piece", m)
	}
	if p.Kind == Pawn && m.From.Col != m.To.Col && b.at(m.To) == nil {
		if q := b.at(Coord{Row: m.From.Row, Col: m.To.Col}); q != nil && q.Color == p.Color {
			return errors.Wrapf(ErrIllegalMove, "%s: en passant onto a friendly pawn", m)
		}
	}
	if p.Kind == King && abs(m.To.Col-m.From.Col) == 2 {
		if _, _, _, ok := b.castleRook(p, m); !ok {
			return errors.Wrapf(ErrIllegalMove, "%s: no rook to castle with", m)
		}
	}
	b.apply(m)
	return nil
}

// Play applies m for color only if it is one of color's legal moves. The
// recorded move is returned; on error the board is unchanged.
func (b *Board) Play(color Color, m Move) (Move, error) {
	if !m.From.Valid() || !m.To.Valid() {
		return Move{}, errors.Wrapf(ErrOutOfBounds, "move %s", m)
	}
	p := b.at(m.From)
	if p == nil || p.Color != color {
		return Move{}, errors.Wrapf(ErrIllegalMove, "%s: no %s piece on %s", m, color, m.From)
	}
	legal, _ := b.PieceMoves(m.From)
	for _, lm := range legal {
		if lm.Equal(m) {
			return b.apply(lm), nil
		}
	}
	return Move{}, errors.Wrapf(ErrIllegalMove, "%s", m)
}

// apply mutates the board for a move that is known to be playable. Nothing in
// here can fail, so grid, scores and history always change together.
func (b *Board) apply(m Move) Move {
	p := b.at(m.From)
	f := frame{piece: p, wasMoved: p.Moved}
	rec := Move{From: m.From, To: m.To, Piece: p, CaptureAt: m.To}

	if p.Kind == Pawn && m.From.Col != m.To.Col && b.at(m.To) == nil {
		rec.EnPassant = true
		rec.CaptureAt = Coord{Row: m.From.Row, Col: m.To.Col}
	}
	if captured := b.at(rec.CaptureAt); captured != nil {
		rec.Captured = captured
		b.adjustScore(captured.Color, -kindValue[captured.Kind])
		b.set(rec.CaptureAt, nil)
	}

	b.set(m.From, nil)
	b.set(m.To, p)

	if p.Kind == Pawn && !rec.EnPassant && m.To.Row == promotionRow(p.Color) {
		q := NewPiece(Queen, p.Color)
		q.Moved = true
		b.set(m.To, q)
		b.adjustScore(p.Color, kindValue[Queen]-kindValue[Pawn])
		rec.Promotion = true
		f.promoted = q
	}

	if p.Kind == King && abs(m.To.Col-m.From.Col) == 2 {
		r, from, to, _ := b.castleRook(p, m)
		f.rook = &rookShift{piece: r, from: from, to: to, wasMoved: r.Moved}
		b.set(from, nil)
		b.set(to, r)
		r.Moved = true
		r.clearMoves()
		rec.Castle = true
	}

	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if q := b.squares[row][col].Piece; q != nil && q.EnPassant {
				q.EnPassant = false
				f.cleared = append(f.cleared, q)
			}
		}
	}
	if p.Kind == Pawn && abs(m.To.Row-m.From.Row) == 2 {
		p.EnPassant = true
	}

	p.Moved = true
	p.clearMoves()
	f.move = rec
	b.history = append(b.history, f)
	return rec
}

// UndoMove reverts the most recent ply. It returns false when there is
// nothing to undo.
func (b *Board) UndoMove() bool {
	if len(b.history) == 0 {
		return false
	}
	f := b.history[len(b.history)-1]
	b.history[len(b.history)-1] = frame{}
	b.history = b.history[:len(b.history)-1]
	m := f.move

	if f.rook != nil {
		b.set(f.rook.to, nil)
		b.set(f.rook.from, f.rook.piece)
		f.rook.piece.Moved = f.rook.wasMoved
	}
	if f.promoted != nil {
		b.adjustScore(f.piece.Color, kindValue[Pawn]-kindValue[Queen])
	}

	b.set(m.To, nil)
	b.set(m.From, f.piece)
	if m.Captured != nil {
		b.set(m.CaptureAt, m.Captured)
		b.adjustScore(m.Captured.Color, kindValue[m.Captured.Kind])
	}

	f.piece.EnPassant = false
	for _, q := range f.cleared {
		q.EnPassant = true
	}
	f.piece.Moved = f.wasMoved
	f.piece.clearMoves()
	return true
}

// IsCapture reports whether m takes a piece on the current board, counting
// the pawn removed by en passant.
func (b *Board) IsCapture(m Move) bool {
	if !m.From.Valid() || !m.To.Valid() {
		return false
	}
	if b.at(m.To) != nil {
		return true
	}
	p := b.at(m.From)
	if p == nil || p.Kind != Pawn || m.From.Col == m.To.Col {
		return false
	}
	return b.at(Coord{Row: m.From.Row, Col: m.To.Col}) != nil
}
