package chess

type Color int8

const (
	NoColor Color = -1
	White   Color = 0
	Black   Color = 1
)

func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

type Kind int8

const (
	KindNone Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "none"
	}
	return kindNames[k]
}

// Material values. The king is not part of the running score, so each side starts at 39.
var kindValue = [...]int{
	KindNone: 0,
	Pawn:     1,
	Knight:   3,
	Bishop:   3,
	Rook:     5,
	Queen:    9,
	King:     0,
}

// Piece lives on exactly one Square; a move relocates the pointer, never copies it.
type Piece struct {
	Kind      Kind
	Color     Color
	Moved     bool
	EnPassant bool // pawn only: just advanced two squares

	moves []Move    // legal moves, filled during generation and cleared after use
	rooks [2]*Piece // king only: queenside/kingside castling rooks, not owned
}

func NewPiece(k Kind, c Color) *Piece {
	return &Piece{Kind: k, Color: c}
}

// Value is signed: positive for white, negative for black.
func (p *Piece) Value() int {
	v := kindValue[p.Kind]
	if p.Color == Black {
		return -v
	}
	return v
}

func (p *Piece) Moves() []Move { return p.moves }

func (p *Piece) clearMoves() { p.moves = nil }

// CastleRook returns the rook the king last saw as a castling partner on the given wing.
func (p *Piece) CastleRook(kingside bool) *Piece {
	if kingside {
		return p.rooks[1]
	}
	return p.rooks[0]
}

var kindLetters = [...]byte{KindNone: '.', Pawn: 'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q', King: 'k'}

func (p *Piece) Letter() byte {
	if p == nil {
		return '.'
	}
	b := kindLetters[p.Kind]
	if p.Color == White {
		b -= 'a' - 'A'
	}
	return b
}

func (p *Piece) String() string {
	if p == nil {
		return "none"
	}
	return p.Color.String() + " " + p.Kind.String()
}

func kindFromLetter(ch byte) (Kind, Color, bool) {
	color := Black
	if ch >= 'A' && ch <= 'Z' {
		color = White
		ch += 'a' - 'A'
	}
	for k, l := range kindLetters {
		if Kind(k) != KindNone && l == ch {
			return Kind(k), color, true
		}
	}
	return KindNone, NoColor, false
}
