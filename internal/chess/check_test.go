package chess

import "testing"

func TestPinnedPieceHasNoMoves(t *testing.T) {
	b, _ := mustDecode(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	moves, err := b.PieceMoves(mustCoord(t, "e2"))
	if err != nil {
		t.Fatalf("PieceMoves: %v", err)
	}
	if len(moves) != 0 {
		t.Fatalf("pinned bishop has %d moves: %v", len(moves), moves)
	}
	if raw := b.RawMoves(mustCoord(t, "e2")); len(raw) == 0 {
		t.Fatalf("raw moves should ignore the pin")
	}
}

func TestKingCannotStepIntoAttack(t *testing.T) {
	b, _ := mustDecode(t, "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1")
	legal := b.LegalMoves(White)
	for _, m := range legal {
		if m.To.Row == 6 && m.To.Col != 3 {
			t.Fatalf("king steps onto rank 2 next to the rook: %s", m)
		}
		if m.To.Col == 3 && m.To.Row == 7 {
			t.Fatalf("king steps onto the d-file: %s", m)
		}
	}
	if _, ok := findMove(legal, "e1d2"); !ok {
		t.Fatalf("capturing the unprotected rook should be legal")
	}
}

func TestCheckMustBeAnswered(t *testing.T) {
	b, _ := mustDecode(t, "4k3/8/8/8/8/8/PP6/4K2r w - - 0 1")
	if !b.InCheck(White) {
		t.Fatalf("white should be in check")
	}
	for _, m := range b.LegalMoves(White) {
		if m.Piece.Kind != King {
			t.Fatalf("non-king move %s leaves the king in check", m)
		}
	}
}

func TestIsAttackedUsesPawnDiagonals(t *testing.T) {
	b, _ := mustDecode(t, "4k3/8/8/8/8/3p4/2NNN3/4K3 w - - 0 1")
	if !b.IsAttacked(mustCoord(t, "e2"), Black) || !b.IsAttacked(mustCoord(t, "c2"), Black) {
		t.Fatalf("pawn on d3 should attack the knights on c2 and e2")
	}
	if b.IsAttacked(mustCoord(t, "d2"), Black) {
		t.Fatalf("pawn does not attack straight ahead")
	}
	if b.IsAttacked(mustCoord(t, "f1"), Black) {
		t.Fatalf("nothing reaches f1")
	}
}

func TestNoKingMeansNoCheck(t *testing.T) {
	b, _ := mustDecode(t, "4k3/8/8/8/8/8/8/R7 b - - 0 1")
	if b.InCheck(White) {
		t.Fatalf("a side without a king cannot be in check")
	}
	if len(b.LegalMoves(White)) == 0 {
		t.Fatalf("rook should still have moves")
	}
}

func TestSlidingRaysStopAtFirstPiece(t *testing.T) {
	b, _ := mustDecode(t, "4k3/8/8/1p6/8/8/8/1R2K3 w - - 0 1")
	raw := b.RawMoves(mustCoord(t, "b1"))
	var up []string
	for _, m := range raw {
		if m.To.Col == 1 {
			up = append(up, m.To.String())
		}
	}
	want := []string{"b2", "b3", "b4", "b5"}
	if len(up) != len(want) {
		t.Fatalf("b-file targets = %v want %v", up, want)
	}
	for i := range want {
		if up[i] != want[i] {
			t.Fatalf("b-file targets = %v want %v", up, want)
		}
	}
}
