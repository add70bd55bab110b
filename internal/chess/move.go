package chess

import "github.com/pkg/errors"

// Move is one ply. Moves returned by the generator or recorded in history are
// never mutated afterwards.
type Move struct {
	From     Coord
	To       Coord
	Piece    *Piece // piece moved (the pawn, for a promotion)
	Captured *Piece

	Promotion bool
	EnPassant bool
	Castle    bool

	// CaptureAt is where Captured stood. It differs from To only for en passant.
	CaptureAt Coord
}

// Equal compares coordinates only.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To
}

// String returns UCI notation, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion {
		s += "q"
	}
	return s
}

// ParseMove reads UCI notation. Only the coordinates are filled in; a trailing
// promotion letter is accepted and ignored since pawns always promote to a queen.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, errors.Wrapf(ErrOutOfBounds, "move %q", s)
	}
	from, err := ParseCoord(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseCoord(s[2:4])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to, CaptureAt: to}, nil
}
