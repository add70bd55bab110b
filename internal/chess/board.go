package chess

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	Rows = 8
	Cols = 8
)

// Coord addresses a cell: row 0 is rank 8, col 0 is file a.
type Coord struct {
	Row, Col int
}

func (c Coord) Valid() bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols
}

func (c Coord) String() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{byte('a' + c.Col), byte('8' - c.Row)})
}

func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 {
		return Coord{}, errors.Wrapf(ErrOutOfBounds, "square %q", s)
	}
	c := Coord{Row: int('8') - int(s[1]), Col: int(s[0]) - int('a')}
	if !c.Valid() {
		return Coord{}, errors.Wrapf(ErrOutOfBounds, "square %q", s)
	}
	return c, nil
}

type Square struct {
	Coord
	Piece *Piece
}

func (s *Square) Empty() bool { return s.Piece == nil }

func (s *Square) HasEnemy(c Color) bool { return s.Piece != nil && s.Piece.Color != c }

func (s *Square) HasFriend(c Color) bool { return s.Piece != nil && s.Piece.Color == c }

// Board owns every Square and, through them, every Piece in play.
type Board struct {
	squares    [Rows][Cols]Square
	whiteScore int
	blackScore int
	history    []frame
}

func NewEmptyBoard() *Board {
	b := &Board{}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			b.squares[r][c].Coord = Coord{Row: r, Col: c}
		}
	}
	return b
}

var backRank = [Cols]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting layout.
func NewBoard() *Board {
	b := NewEmptyBoard()
	for c := 0; c < Cols; c++ {
		b.squares[0][c].Piece = NewPiece(backRank[c], Black)
		b.squares[1][c].Piece = NewPiece(Pawn, Black)
		b.squares[6][c].Piece = NewPiece(Pawn, White)
		b.squares[7][c].Piece = NewPiece(backRank[c], White)
	}
	b.recomputeScores()
	return b
}

func (b *Board) at(c Coord) *Piece { return b.squares[c.Row][c.Col].Piece }

func (b *Board) set(c Coord, p *Piece) { b.squares[c.Row][c.Col].Piece = p }

func (b *Board) Square(c Coord) (*Square, error) {
	if !c.Valid() {
		return nil, errors.Wrapf(ErrOutOfBounds, "%+v", c)
	}
	return &b.squares[c.Row][c.Col], nil
}

func (b *Board) PieceAt(c Coord) (*Piece, error) {
	if !c.Valid() {
		return nil, errors.Wrapf(ErrOutOfBounds, "%+v", c)
	}
	return b.at(c), nil
}

// Place puts p on an empty square (nil clears the square). It is meant for
// setting up positions and keeps the running scores in step with the grid.
func (b *Board) Place(c Coord, p *Piece) error {
	if !c.Valid() {
		return errors.Wrapf(ErrOutOfBounds, "%+v", c)
	}
	if old := b.at(c); old != nil {
		b.adjustScore(old.Color, -kindValue[old.Kind])
	}
	b.set(c, p)
	if p != nil {
		b.adjustScore(p.Color, kindValue[p.Kind])
	}
	return nil
}

func (b *Board) Score(c Color) int {
	if c == White {
		return b.whiteScore
	}
	if c == Black {
		return b.blackScore
	}
	return 0
}

func (b *Board) adjustScore(c Color, delta int) {
	if c == White {
		b.whiteScore += delta
	} else if c == Black {
		b.blackScore += delta
	}
}

func (b *Board) recomputeScores() {
	b.whiteScore, b.blackScore = 0, 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if p := b.squares[r][c].Piece; p != nil {
				b.adjustScore(p.Color, kindValue[p.Kind])
			}
		}
	}
}

func (b *Board) HistoryLen() int { return len(b.history) }

func (b *Board) LastMove() (Move, bool) {
	if len(b.history) == 0 {
		return Move{}, false
	}
	return b.history[len(b.history)-1].move, true
}

// History returns the recorded plies, oldest first.
func (b *Board) History() []Move {
	out := make([]Move, len(b.history))
	for i, f := range b.history {
		out[i] = f.move
	}
	return out
}

func (b *Board) kingSquare(color Color) (Coord, bool) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p := b.squares[r][c].Piece
			if p != nil && p.Kind == King && p.Color == color {
				return Coord{Row: r, Col: c}, true
			}
		}
	}
	return Coord{}, false
}

func (b *Board) KingExists(color Color) bool {
	_, ok := b.kingSquare(color)
	return ok
}

// cloner deep-copies pieces, keeping pointer identity consistent across the
// grid, history and king-rook references.
type cloner map[*Piece]*Piece

func (cl cloner) piece(p *Piece) *Piece {
	if p == nil {
		return nil
	}
	if q, ok := cl[p]; ok {
		return q
	}
	q := &Piece{Kind: p.Kind, Color: p.Color, Moved: p.Moved, EnPassant: p.EnPassant}
	cl[p] = q
	q.rooks[0] = cl.piece(p.rooks[0])
	q.rooks[1] = cl.piece(p.rooks[1])
	return q
}

func (cl cloner) move(m Move) Move {
	m.Piece = cl.piece(m.Piece)
	m.Captured = cl.piece(m.Captured)
	return m
}

func (b *Board) cloneGrid(cl cloner) *Board {
	nb := &Board{whiteScore: b.whiteScore, blackScore: b.blackScore}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			nb.squares[r][c] = Square{Coord: Coord{Row: r, Col: c}, Piece: cl.piece(b.squares[r][c].Piece)}
		}
	}
	return nb
}

// Clone returns an independent deep copy, history included.
func (b *Board) Clone() *Board {
	cl := cloner{}
	nb := b.cloneGrid(cl)
	nb.history = make([]frame, len(b.history))
	for i, f := range b.history {
		nb.history[i] = f.clone(cl)
	}
	return nb
}

// Equal compares the grid (kinds, colors and flags), the scores and the history.
func (b *Board) Equal(o *Board) bool {
	if b.whiteScore != o.whiteScore || b.blackScore != o.blackScore {
		return false
	}
	if len(b.history) != len(o.history) {
		return false
	}
	for i := range b.history {
		if !b.history[i].move.Equal(o.history[i].move) {
			return false
		}
	}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			p, q := b.squares[r][c].Piece, o.squares[r][c].Piece
			if (p == nil) != (q == nil) {
				return false
			}
			if p == nil {
				continue
			}
			if p.Kind != q.Kind || p.Color != q.Color || p.Moved != q.Moved || p.EnPassant != q.EnPassant {
				return false
			}
		}
	}
	return true
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b.squares[r][c].Piece.Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
