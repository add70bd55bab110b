package chess

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN encodes the board with toMove as the side to play. Castling rights are
// derived from the unmoved king and rooks, the en-passant target from the
// flagged pawn.
func (b *Board) FEN(toMove Color) string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			p := b.squares[r][c].Piece
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	sb.WriteByte(' ')
	if toMove == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}

	sb.WriteByte(' ')
	rights := b.castlingRights()
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)

	sb.WriteByte(' ')
	ep := "-"
	for r := 0; r < Rows && ep == "-"; r++ {
		for c := 0; c < Cols; c++ {
			if p := b.squares[r][c].Piece; p != nil && p.Kind == Pawn && p.EnPassant {
				ep = Coord{Row: r - pawnDir(p.Color), Col: c}.String()
				break
			}
		}
	}
	sb.WriteString(ep)

	sb.WriteString(" 0 ")
	sb.WriteString(strconv.Itoa(1 + len(b.history)/2))
	return sb.String()
}

var castleFlags = []struct {
	letter   byte
	color    Color
	row, col int
}{
	{'K', White, 7, 7},
	{'Q', White, 7, 0},
	{'k', Black, 0, 7},
	{'q', Black, 0, 0},
}

func (b *Board) castlingRights() string {
	var out []byte
	for _, cf := range castleFlags {
		k := b.squares[cf.row][4].Piece
		r := b.squares[cf.row][cf.col].Piece
		if k == nil || k.Kind != King || k.Color != cf.color || k.Moved {
			continue
		}
		if r == nil || r.Kind != Rook || r.Color != cf.color || r.Moved {
			continue
		}
		out = append(out, cf.letter)
	}
	return string(out)
}

// DecodeFEN parses a FEN string into a board and the side to move. Every
// problem found is reported, not just the first. Move counters are ignored.
func DecodeFEN(fen string) (*Board, Color, error) {
	var merr *multierror.Error
	fail := func(format string, args ...interface{}) {
		merr = multierror.Append(merr, errors.Wrapf(ErrInvalidFEN, format, args...))
	}

	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, NoColor, errors.Wrapf(ErrInvalidFEN, "%q: need at least placement and side to move", fen)
	}

	b := NewEmptyBoard()
	rows := strings.Split(fields[0], "/")
	if len(rows) != Rows {
		fail("placement has %d ranks", len(rows))
	}
	for r := 0; r < len(rows) && r < Rows; r++ {
		c := 0
		for i := 0; i < len(rows[r]); i++ {
			ch := rows[r][i]
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			kind, color, ok := kindFromLetter(ch)
			if !ok {
				fail("rank %d: unknown piece %q", Rows-r, ch)
				continue
			}
			if c >= Cols {
				c++
				continue
			}
			p := NewPiece(kind, color)
			if kind == Pawn {
				p.Moved = r != pawnHomeRow(color)
			}
			if kind == King || kind == Rook {
				p.Moved = true
			}
			b.squares[r][c].Piece = p
			c++
		}
		if c != Cols {
			fail("rank %d has %d files", Rows-r, c)
		}
	}

	toMove := NoColor
	switch fields[1] {
	case "w":
		toMove = White
	case "b":
		toMove = Black
	default:
		fail("side to move %q", fields[1])
	}

	if len(fields) > 2 && fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			found := false
			for _, cf := range castleFlags {
				if cf.letter != fields[2][i] {
					continue
				}
				found = true
				k := b.squares[cf.row][4].Piece
				r := b.squares[cf.row][cf.col].Piece
				if k == nil || k.Kind != King || k.Color != cf.color || r == nil || r.Kind != Rook || r.Color != cf.color {
					fail("castling right %q without king and rook in place", cf.letter)
					continue
				}
				k.Moved = false
				r.Moved = false
			}
			if !found {
				fail("castling field %q", fields[2])
			}
		}
	}

	if len(fields) > 3 && fields[3] != "-" {
		target, err := ParseCoord(fields[3])
		switch {
		case err != nil:
			fail("en passant square %q", fields[3])
		case target.Row != 2 && target.Row != 5:
			fail("en passant square %q not on the third or sixth rank", fields[3])
		default:
			color := White
			if target.Row == 2 {
				color = Black
			}
			at := Coord{Row: target.Row + pawnDir(color), Col: target.Col}
			p := b.at(at)
			if p == nil || p.Kind != Pawn || p.Color != color {
				fail("en passant square %q without a pawn on %s", fields[3], at)
			} else {
				p.EnPassant = true
			}
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, NoColor, err
	}
	b.recomputeScores()
	return b, toMove, nil
}

func pawnHomeRow(c Color) int {
	if c == White {
		return 6
	}
	return 1
}
