package engine

import (
	"github.com/pkg/errors"

	"chessai/internal/chess"
)

// Book supplies moves ahead of the search. Returning false hands control to
// the search.
type Book interface {
	Next(b *chess.Board, color chess.Color) (chess.Move, bool)
}

// ScriptedBook plays a fixed opening line per color, one entry per call.
// Entries that are not legal when their turn comes are dropped.
type ScriptedBook struct {
	lines map[chess.Color][]chess.Move
}

func NewScriptedBook(white, black []string) (*ScriptedBook, error) {
	sb := &ScriptedBook{lines: make(map[chess.Color][]chess.Move, 2)}
	for color, line := range map[chess.Color][]string{chess.White: white, chess.Black: black} {
		for _, s := range line {
			mv, err := chess.ParseMove(s)
			if err != nil {
				return nil, errors.Wrapf(err, "%s book", color)
			}
			sb.lines[color] = append(sb.lines[color], mv)
		}
	}
	return sb, nil
}

func (sb *ScriptedBook) Next(b *chess.Board, color chess.Color) (chess.Move, bool) {
	for len(sb.lines[color]) > 0 {
		want := sb.lines[color][0]
		sb.lines[color] = sb.lines[color][1:]

		p, err := b.PieceAt(want.From)
		if err != nil || p == nil || p.Color != color {
			continue
		}
		legal, _ := b.PieceMoves(want.From)
		for _, mv := range legal {
			if mv.Equal(want) {
				return mv, true
			}
		}
	}
	return chess.Move{}, false
}

// Remaining reports how many scripted moves are left for color.
func (sb *ScriptedBook) Remaining(color chess.Color) int {
	return len(sb.lines[color])
}
