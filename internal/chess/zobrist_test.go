package chess

import "testing"

func TestHashRestoredByUndo(t *testing.T) {
	b := NewBoard()
	start := b.Hash()
	for _, s := range []string{"e2e4", "d7d5", "e4d5", "d8d5"} {
		side := White
		if b.HistoryLen()%2 == 1 {
			side = Black
		}
		before := b.Hash()
		play(t, b, side, s)
		if b.Hash() == before {
			t.Fatalf("hash unchanged by %s", s)
		}
	}
	for b.UndoMove() {
	}
	if b.Hash() != start {
		t.Fatalf("hash after full undo = %x want %x", b.Hash(), start)
	}
}

func TestHashTransposition(t *testing.T) {
	b := NewBoard()
	start := b.Hash()
	for _, s := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
		side := White
		if b.HistoryLen()%2 == 1 {
			side = Black
		}
		play(t, b, side, s)
	}
	if b.Hash() != start {
		t.Fatalf("knight shuffle changed the hash")
	}

	// Same squares, but the rook has lost its castling right.
	b = NewBoard()
	for _, s := range []string{"h2h4", "h7h5", "h1h3", "a7a6", "h3h1", "a6a5"} {
		side := White
		if b.HistoryLen()%2 == 1 {
			side = Black
		}
		play(t, b, side, s)
	}
	ref, _ := mustDecode(t, "rnbqkbnr/1pppppp1/8/p6p/7P/8/PPPPPPP1/RNBQKBNR w KQkq - 0 4")
	if b.Hash() == ref.Hash() {
		t.Fatalf("moved rook hashed like an unmoved one")
	}
}

func TestHashMatchesDecodedFEN(t *testing.T) {
	b := NewBoard()
	side := White
	for _, s := range []string{"e2e4", "c7c5", "e4e5", "d7d5", "g1f3", "b8c6"} {
		play(t, b, side, s)
		side = side.Opponent()
		decoded, _ := mustDecode(t, b.FEN(side))
		if decoded.Hash() != b.Hash() {
			t.Fatalf("after %s: decoded %q hashes differently", s, b.FEN(side))
		}
	}
}
