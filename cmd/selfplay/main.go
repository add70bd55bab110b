package main

import (
	"flag"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"chessai/internal/chess"
	"chessai/internal/engine"
)

type PlayerConfig struct {
	Name  string
	Depth int
}

type result struct {
	game       int
	white      string
	winner     string // player name, or "" for a draw
	reason     string
	plies      int
	whiteScore int
	blackScore int
	moves      []string
}

func main() {
	totalGames := flag.Int("games", 4, "number of games to play")
	depthA := flag.Int("a-depth", 2, "search depth of player A")
	depthB := flag.Int("b-depth", 3, "search depth of player B")
	maxPlies := flag.Int("maxplies", 200, "plies before a game is scored on material")
	workers := flag.Int("workers", 2, "games played at once")
	verbose := flag.Bool("v", false, "print the move list of every game")
	flag.Parse()

	playerA := PlayerConfig{Name: fmt.Sprintf("A (depth %d)", *depthA), Depth: *depthA}
	playerB := PlayerConfig{Name: fmt.Sprintf("B (depth %d)", *depthB), Depth: *depthB}

	var (
		mu      sync.Mutex
		results = make([]result, *totalGames)
	)
	start := time.Now()

	var eg errgroup.Group
	eg.SetLimit(*workers)
	for g := 0; g < *totalGames; g++ {
		g := g
		white, black := playerA, playerB
		if g%2 == 1 {
			white, black = playerB, playerA
		}
		eg.Go(func() error {
			res, err := playGame(white, black, *maxPlies)
			if err != nil {
				return fmt.Errorf("game %d: %w", g+1, err)
			}
			res.game = g + 1
			mu.Lock()
			results[g] = res
			mu.Unlock()
			log.Printf("game %d done: %s after %d plies", res.game, describe(res), res.plies)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}

	wins := map[string]int{}
	draws := 0
	for _, r := range results {
		fmt.Printf("\n=== Game %d: White [%s] ===\n", r.game, r.white)
		fmt.Printf("Result: %s (%s), material %d-%d\n", describe(r), r.reason, r.whiteScore, r.blackScore)
		if *verbose {
			fmt.Println(r.moves)
		}
		if r.winner == "" {
			draws++
		} else {
			wins[r.winner]++
		}
	}

	fmt.Printf("\n=== Final Score (%s) ===\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("%s: %d\n", playerA.Name, wins[playerA.Name])
	fmt.Printf("%s: %d\n", playerB.Name, wins[playerB.Name])
	fmt.Printf("Draws: %d\n", draws)
}

func describe(r result) string {
	if r.winner == "" {
		return "Draw"
	}
	return r.winner + " wins"
}

// playGame plays one engine game on its own board. A side without a legal
// move loses if in check; otherwise the game ends on material.
func playGame(white, black PlayerConfig, maxPlies int) (result, error) {
	b := chess.NewBoard()
	players := map[chess.Color]PlayerConfig{chess.White: white, chess.Black: black}
	engines := map[chess.Color]*engine.Engine{
		chess.White: engine.New(chess.White, white.Depth),
		chess.Black: engine.New(chess.Black, black.Depth),
	}

	res := result{white: white.Name}
	side := chess.White
	for ply := 0; ply < maxPlies; ply++ {
		mv, ok := engines[side].FindBestMove(b)
		if !ok {
			if b.InCheck(side) {
				res.winner = players[side.Opponent()].Name
				res.reason = "checkmate"
			} else {
				res.reason = "no moves"
			}
			break
		}
		if err := b.MakeMove(mv.Piece, mv); err != nil {
			return res, err
		}
		res.moves = append(res.moves, mv.String())
		side = side.Opponent()
	}
	if res.reason == "" {
		res.reason = "move limit"
	}

	res.plies = b.HistoryLen()
	res.whiteScore = b.Score(chess.White)
	res.blackScore = b.Score(chess.Black)
	if res.reason != "checkmate" && res.whiteScore != res.blackScore {
		if res.whiteScore > res.blackScore {
			res.winner = white.Name
		} else {
			res.winner = black.Name
		}
	}
	return res, nil
}
