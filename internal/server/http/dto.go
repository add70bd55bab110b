package httpserver

import (
	"strconv"

	"chessai/internal/chess"
	"chessai/internal/engine"
	"chessai/internal/server/game"
)

// NewGameRequest: ai_color is "white", "black" or empty for two humans.
type NewGameRequest struct {
	AIColor   string   `json:"ai_color"`
	Depth     int      `json:"depth"`
	FEN       string   `json:"fen"`
	BookWhite []string `json:"book_white"`
	BookBlack []string `json:"book_black"`
}

type GameRequest struct {
	GameID string `json:"game_id"`
}

type PlayRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"` // UCI, e.g. "e2e4" or "e7e8q"
	// PositionHash, when set, must match the server's current position.
	PositionHash string `json:"position_hash"`
}

// StateResponse is shared by every endpoint that returns a position.
type StateResponse struct {
	GameID       string   `json:"game_id"`
	Position     string   `json:"position"` // FEN
	PositionHash string   `json:"position_hash"`
	ToMove       string   `json:"to_move"`
	AIColor      string   `json:"ai_color,omitempty"`
	LegalMoves   []string `json:"legal_moves"`
	WhiteScore   int      `json:"white_score"`
	BlackScore   int      `json:"black_score"`
	InCheck      bool     `json:"in_check"`
	Status       string   `json:"status"`
	History      []string `json:"history"`
}

type PlayResponse struct {
	StateResponse
	Move     string `json:"move"`
	Captured bool   `json:"captured"`
}

type AiMoveResponse struct {
	StateResponse
	BestMove string `json:"best_move,omitempty"`
	Captured bool   `json:"captured"`
	Score    int    `json:"score"`
	Depth    int    `json:"depth"`
	Nodes    int64  `json:"nodes"`
	TimeMs   int64  `json:"time_ms"`
	FromBook bool   `json:"from_book"`
}

type UndoResponse struct {
	StateResponse
	Undone bool `json:"undone"`
}

type PGNResponse struct {
	GameID string `json:"game_id"`
	PGN    string `json:"pgn"`
}

func parseColor(s string) (chess.Color, bool) {
	switch s {
	case "white", "w":
		return chess.White, true
	case "black", "b":
		return chess.Black, true
	case "", "none":
		return chess.NoColor, true
	default:
		return chess.NoColor, false
	}
}

func colorName(c chess.Color) string {
	if c == chess.NoColor {
		return ""
	}
	return c.String()
}

func formatHash(h uint64) string {
	return strconv.FormatUint(h, 16)
}

func parseHash(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 16, 64)
}

func movesToDTO(ms []chess.Move) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.String()
	}
	return out
}

func stateToDTO(s game.Snapshot) StateResponse {
	return StateResponse{
		GameID:       s.ID,
		Position:     s.FEN,
		PositionHash: formatHash(s.Hash),
		ToMove:       colorName(s.ToMove),
		AIColor:      colorName(s.AIColor),
		LegalMoves:   movesToDTO(s.LegalMoves),
		WhiteScore:   s.WhiteScore,
		BlackScore:   s.BlackScore,
		InCheck:      s.InCheck,
		Status:       s.Status,
		History:      movesToDTO(s.History),
	}
}

func searchToDTO(res engine.SearchResult, captured bool, s game.Snapshot) AiMoveResponse {
	resp := AiMoveResponse{
		StateResponse: stateToDTO(s),
		Captured:      captured,
		Score:         res.Score,
		Depth:         res.Depth,
		Nodes:         res.Nodes,
		TimeMs:        res.TimeUsed.Milliseconds(),
		FromBook:      res.FromBook,
	}
	if res.Found {
		resp.BestMove = res.BestMove.String()
	}
	return resp
}
