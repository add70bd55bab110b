package chess

import (
	"errors"
	"testing"
)

func findMove(moves []Move, uci string) (Move, bool) {
	for _, m := range moves {
		if m.From.String()+m.To.String() == uci[:4] {
			return m, true
		}
	}
	return Move{}, false
}

func play(t *testing.T, b *Board, color Color, uci string) Move {
	t.Helper()
	m, err := ParseMove(uci)
	if err != nil {
		t.Fatalf("parse %q: %v", uci, err)
	}
	rec, err := b.Play(color, m)
	if err != nil {
		t.Fatalf("play %s for %v: %v", uci, color, err)
	}
	return rec
}

func TestMakeUndoSymmetryEveryLegalMove(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"4k3/1P6/8/3pP3/8/8/6p1/R3K2R w KQ d6 0 1",
	}
	for _, fen := range fens {
		b, toMove := mustDecode(t, fen)
		for _, side := range []Color{toMove, toMove.Opponent()} {
			for _, m := range b.LegalMoves(side) {
				before := b.Clone()
				hash := b.Hash()
				if err := b.MakeMove(m.Piece, m); err != nil {
					t.Fatalf("%s: make %s: %v", fen, m, err)
				}
				if b.HistoryLen() != before.HistoryLen()+1 {
					t.Fatalf("%s: %s pushed %d frames", fen, m, b.HistoryLen()-before.HistoryLen())
				}
				if !b.UndoMove() {
					t.Fatalf("%s: undo %s failed", fen, m)
				}
				if !b.Equal(before) || b.Hash() != hash {
					t.Fatalf("%s: undo %s did not restore the board:\n%s\nwant:\n%s", fen, m, b, before)
				}
			}
		}
	}
}

func TestMakeUndoSymmetryDeepSequence(t *testing.T) {
	b := NewBoard()
	start := b.Clone()
	color := White
	plies := 0
	for ; plies < 40; plies++ {
		moves := b.LegalMoves(color)
		if len(moves) == 0 {
			break
		}
		m := moves[(plies*7)%len(moves)]
		if err := b.MakeMove(m.Piece, m); err != nil {
			t.Fatalf("ply %d: %v", plies, err)
		}
		color = color.Opponent()
	}
	for i := 0; i < plies; i++ {
		if !b.UndoMove() {
			t.Fatalf("undo %d failed", i)
		}
	}
	if !b.Equal(start) {
		t.Fatalf("board not restored after %d make/undo pairs:\n%s", plies, b)
	}
	if b.UndoMove() {
		t.Fatalf("undo on empty history reported success")
	}
}

func TestScoreConservation(t *testing.T) {
	b, _ := mustDecode(t, "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1")
	total := b.Score(White) + b.Score(Black)

	quiet := play(t, b, White, "e1f1")
	if quiet.Captured != nil || b.Score(White)+b.Score(Black) != total {
		t.Fatalf("quiet move changed the total score")
	}
	b.UndoMove()

	rec := play(t, b, White, "e4d5")
	if rec.Captured == nil || rec.Captured.Kind != Queen {
		t.Fatalf("capture not recorded: %+v", rec)
	}
	if got := b.Score(White) + b.Score(Black); got != total-9 {
		t.Fatalf("total after capture = %d want %d", got, total-9)
	}
	if b.Score(Black) != 0 {
		t.Fatalf("black score = %d want 0", b.Score(Black))
	}
	b.UndoMove()
	if b.Score(White)+b.Score(Black) != total {
		t.Fatalf("undo did not restore the score")
	}
}

func TestEnPassantCapturesAdjacentPawn(t *testing.T) {
	b, _ := mustDecode(t, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")
	play(t, b, Black, "d7d5")

	d5 := mustCoord(t, "d5")
	d6 := mustCoord(t, "d6")
	bp, _ := b.PieceAt(d5)
	if bp == nil || !bp.EnPassant {
		t.Fatalf("double-stepped pawn not flagged")
	}
	before := b.Clone()

	m, ok := findMove(b.LegalMoves(White), "e5d6")
	if !ok || !m.EnPassant {
		t.Fatalf("exd6 en passant not generated: %+v", m)
	}
	if m.CaptureAt != d5 || m.Captured != bp {
		t.Fatalf("en passant targets %s, want the pawn on d5", m.CaptureAt)
	}
	if !b.IsCapture(m) {
		t.Fatalf("IsCapture(exd6) = false")
	}

	rec := play(t, b, White, "e5d6")
	if !rec.EnPassant || rec.Captured != bp {
		t.Fatalf("record = %+v", rec)
	}
	if p, _ := b.PieceAt(d5); p != nil {
		t.Fatalf("d5 still holds %v", p)
	}
	if p, _ := b.PieceAt(d6); p == nil || p.Kind != Pawn || p.Color != White {
		t.Fatalf("d6 = %v want white pawn", p)
	}
	if b.Score(Black) != 0 {
		t.Fatalf("black score = %d", b.Score(Black))
	}

	b.UndoMove()
	if !b.Equal(before) {
		t.Fatalf("undo en passant:\n%s", b)
	}
	if p, _ := b.PieceAt(d5); p != bp || !p.EnPassant {
		t.Fatalf("captured pawn not restored to d5 with its flag")
	}
}

func TestEnPassantExpiresAfterOnePly(t *testing.T) {
	b, _ := mustDecode(t, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")
	play(t, b, Black, "d7d5")
	play(t, b, White, "e1f1")
	play(t, b, Black, "e8f8")
	if _, ok := findMove(b.LegalMoves(White), "e5d6"); ok {
		t.Fatalf("en passant still available two plies later")
	}
}

func TestCastlingBothWings(t *testing.T) {
	for _, tc := range []struct {
		uci, king, rook, rookFrom string
	}{
		{"e1g1", "g1", "f1", "h1"},
		{"e1c1", "c1", "d1", "a1"},
	} {
		t.Run(tc.uci, func(t *testing.T) {
			b, _ := mustDecode(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
			before := b.Clone()

			m, ok := findMove(b.LegalMoves(White), tc.uci)
			if !ok || !m.Castle {
				t.Fatalf("castle %s not generated", tc.uci)
			}
			rook, _ := b.PieceAt(mustCoord(t, tc.rookFrom))

			rec := play(t, b, White, tc.uci)
			if !rec.Castle {
				t.Fatalf("record not marked as castle")
			}
			if b.HistoryLen() != 1 {
				t.Fatalf("castle pushed %d frames", b.HistoryLen())
			}
			if k, _ := b.PieceAt(mustCoord(t, tc.king)); k == nil || k.Kind != King {
				t.Fatalf("king not on %s", tc.king)
			}
			if r, _ := b.PieceAt(mustCoord(t, tc.rook)); r != rook || !r.Moved {
				t.Fatalf("rook not relocated to %s", tc.rook)
			}
			if r, _ := b.PieceAt(mustCoord(t, tc.rookFrom)); r != nil {
				t.Fatalf("%s not vacated", tc.rookFrom)
			}

			if !b.UndoMove() {
				t.Fatalf("undo failed")
			}
			if !b.Equal(before) || b.HistoryLen() != 0 {
				t.Fatalf("undo castle:\n%s", b)
			}
		})
	}
}

func TestCastlingBlockedOrSpent(t *testing.T) {
	fens := map[string]string{
		"piece between":  "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1",
		"rook has moved": "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1",
	}
	for name, fen := range fens {
		b, _ := mustDecode(t, fen)
		if _, ok := findMove(b.LegalMoves(White), "e1g1"); ok {
			t.Fatalf("%s: kingside castle generated", name)
		}
	}
}

func TestCastlingDoesNotTestCrossedSquares(t *testing.T) {
	// f1 is attacked by the rook on f8; only the destination is checked.
	b, _ := mustDecode(t, "4kr2/8/8/8/8/8/8/4K2R w K - 0 1")
	if _, ok := findMove(b.LegalMoves(White), "e1g1"); !ok {
		t.Fatalf("castle through an attacked square not generated")
	}
}

func TestPromotionAndUndo(t *testing.T) {
	b, _ := mustDecode(t, "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	before := b.Clone()
	pawn, _ := b.PieceAt(mustCoord(t, "a7"))

	for _, uci := range []string{"a7a8", "a7b8"} {
		rec := play(t, b, White, uci)
		if !rec.Promotion || rec.Piece != pawn {
			t.Fatalf("%s: record = %+v", uci, rec)
		}
		q, _ := b.PieceAt(rec.To)
		if q == nil || q.Kind != Queen || q.Color != White {
			t.Fatalf("%s: %s = %v want white queen", uci, rec.To, q)
		}
		if got, want := b.Score(White), before.Score(White)+8; got != want {
			t.Fatalf("%s: white score = %d want %d", uci, got, want)
		}
		b.UndoMove()
		if p, _ := b.PieceAt(mustCoord(t, "a7")); p != pawn || p.Kind != Pawn {
			t.Fatalf("%s: undo did not restore the pawn", uci)
		}
		if !b.Equal(before) {
			t.Fatalf("%s: undo promotion:\n%s", uci, b)
		}
	}
}

func TestPlayRejectsIllegalMove(t *testing.T) {
	b := NewBoard()
	before := b.Clone()
	for _, tc := range []struct {
		color Color
		uci   string
	}{
		{White, "e2e5"},
		{White, "e7e5"},
		{Black, "e2e4"},
		{White, "e4e5"},
		{White, "g1g3"},
	} {
		m, err := ParseMove(tc.uci)
		if err != nil {
			t.Fatalf("parse %s: %v", tc.uci, err)
		}
		if _, err := b.Play(tc.color, m); !errors.Is(err, ErrIllegalMove) {
			t.Fatalf("Play(%v, %s) err = %v want ErrIllegalMove", tc.color, tc.uci, err)
		}
	}
	if !b.Equal(before) {
		t.Fatalf("rejected moves changed the board")
	}
}

func TestMakeMoveRejectsWrongPiece(t *testing.T) {
	b := NewBoard()
	knight, _ := b.PieceAt(mustCoord(t, "g1"))
	err := b.MakeMove(knight, Move{From: mustCoord(t, "e2"), To: mustCoord(t, "e4")})
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("err = %v", err)
	}
	if b.HistoryLen() != 0 {
		t.Fatalf("history grew on rejected move")
	}
}
