package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"chessai/internal/chess"
)

// Counts node totals with the package generator and, with -check, compares
// each root move against dragontoothmg. Under-promotions are left out of the
// reference since only queen promotions are generated here.
func main() {
	fen := flag.String("fen", chess.StartFEN, "position to count from")
	depth := flag.Int("depth", 3, "perft depth")
	check := flag.Bool("check", true, "compare every root move with dragontoothmg")
	flag.Parse()

	b, toMove, err := chess.DecodeFEN(*fen)
	if err != nil {
		log.Fatalf("bad fen: %v", err)
	}
	fmt.Println("FEN:", b.FEN(toMove))

	start := time.Now()
	total := b.Perft(toMove, *depth)
	fmt.Printf("perft(%d) = %d in %s\n", *depth, total, time.Since(start).Round(time.Millisecond))
	if !*check || *depth < 1 {
		return
	}

	ours := divide(b, toMove, *depth)
	ref := referenceDivide(*fen, *depth)

	keys := make([]string, 0, len(ours)+len(ref))
	for k := range ours {
		keys = append(keys, k)
	}
	for k := range ref {
		if _, ok := ours[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	mismatches := 0
	for _, k := range keys {
		mark := ""
		if ours[k] != ref[k] {
			mark = "  <-- mismatch"
			mismatches++
		}
		fmt.Printf("%-6s %10d %10d%s\n", k, ours[k], ref[k], mark)
	}
	if mismatches > 0 {
		fmt.Printf("%d root moves differ\n", mismatches)
		os.Exit(1)
	}
	fmt.Println("all root moves agree")
}

func divide(b *chess.Board, side chess.Color, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	for _, mv := range b.LegalMoves(side) {
		if err := b.MakeMove(mv.Piece, mv); err != nil {
			log.Fatalf("make %s: %v", mv, err)
		}
		out[mv.String()] = b.Perft(side.Opponent(), depth-1)
		b.UndoMove()
	}
	return out
}

func referenceDivide(fen string, depth int) map[string]uint64 {
	board := dragontoothmg.ParseFen(fen)
	out := make(map[string]uint64)
	for _, m := range queenOnly(board.GenerateLegalMoves()) {
		unapply := board.Apply(m)
		out[m.String()] = referencePerft(&board, depth-1)
		unapply()
	}
	return out
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := queenOnly(b.GenerateLegalMoves())
	if depth == 1 {
		return uint64(len(moves))
	}
	var n uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		n += referencePerft(b, depth-1)
		unapply()
	}
	return n
}

func queenOnly(moves []dragontoothmg.Move) []dragontoothmg.Move {
	out := moves[:0]
	for _, m := range moves {
		if s := m.String(); len(s) == 5 && s[4] != 'q' {
			continue
		}
		out = append(out, m)
	}
	return out
}
