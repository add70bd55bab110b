package httpserver

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pkg/errors"

	"chessai/internal/chess"
	"chessai/internal/engine"
	"chessai/internal/server/game"
)

// Handler implements http.Handler for the /api/* routes.
type Handler struct {
	games *game.Manager
	depth int
}

// NewHandler serves games from m. depth is used when a new_game request
// does not name one.
func NewHandler(m *game.Manager, depth int) *Handler {
	if m == nil {
		m = game.NewManager()
	}
	return &Handler{games: m, depth: depth}
}

func (h *Handler) Manager() *game.Manager {
	return h.games
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/ai_move":
		h.handleAiMove(w, r)
	case "/api/undo":
		h.handleUndo(w, r)
	case "/api/pgn":
		h.handlePGN(w, r)
	case "/api/delete_game":
		h.handleDelete(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if !decode(w, r, &req) {
		return
	}
	aiColor, ok := parseColor(req.AIColor)
	if !ok {
		http.Error(w, "bad ai_color", http.StatusBadRequest)
		return
	}
	depth := req.Depth
	if depth <= 0 {
		depth = h.depth
	}

	opts := game.Options{AIColor: aiColor, Depth: depth, FEN: req.FEN}
	if len(req.BookWhite) > 0 || len(req.BookBlack) > 0 {
		book, err := engine.NewScriptedBook(req.BookWhite, req.BookBlack)
		if err != nil {
			writeError(w, err)
			return
		}
		opts.Book = book
	}

	g, err := h.games.NewGame(opts)
	if err != nil {
		writeError(w, err)
		return
	}
	log.Printf("new game %s (ai=%s depth=%d)", g.ID, aiColor, depth)
	writeJSON(w, stateToDTO(g.Snapshot()))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	g, ok := h.lookup(w, r, nil)
	if !ok {
		return
	}
	writeJSON(w, stateToDTO(g.Snapshot()))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	g, ok := h.lookup(w, r, &req)
	if !ok {
		return
	}
	mv, err := chess.ParseMove(req.Move)
	if err != nil {
		writeError(w, err)
		return
	}
	expect, err := parseHash(req.PositionHash)
	if err != nil {
		http.Error(w, "bad position_hash", http.StatusBadRequest)
		return
	}

	rec, captured, snap, err := g.Play(mv, expect)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, PlayResponse{
		StateResponse: stateToDTO(snap),
		Move:          rec.String(),
		Captured:      captured,
	})
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	g, ok := h.lookup(w, r, nil)
	if !ok {
		return
	}
	res, captured, snap, err := g.AIMove()
	if err != nil {
		writeError(w, err)
		return
	}
	if res.Found {
		log.Printf("game %s: ai plays %s score=%d depth=%d nodes=%d time=%s book=%v",
			g.ID, res.BestMove, res.Score, res.Depth, res.Nodes, res.TimeUsed, res.FromBook)
	} else {
		log.Printf("game %s: ai has no legal move", g.ID)
	}
	writeJSON(w, searchToDTO(res, captured, snap))
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	g, ok := h.lookup(w, r, nil)
	if !ok {
		return
	}
	undone, snap := g.Undo()
	writeJSON(w, UndoResponse{StateResponse: stateToDTO(snap), Undone: undone})
}

func (h *Handler) handlePGN(w http.ResponseWriter, r *http.Request) {
	g, ok := h.lookup(w, r, nil)
	if !ok {
		return
	}
	pgn, err := g.PGN()
	if err != nil {
		log.Printf("game %s: pgn export: %v", g.ID, err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, PGNResponse{GameID: g.ID, PGN: pgn})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	if !h.games.Delete(req.GameID) {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// lookup decodes the body into dst (a GameRequest when nil) and resolves
// its game id.
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request, dst interface{ gameID() string }) (*game.GameState, bool) {
	if dst == nil {
		dst = &GameRequest{}
	}
	if !decode(w, r, dst) {
		return nil, false
	}
	g, err := h.games.Get(dst.gameID())
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return g, true
}

func (r *GameRequest) gameID() string { return r.GameID }

func (r *PlayRequest) gameID() string { return r.GameID }

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrStalePosition):
		return http.StatusConflict
	case errors.Is(err, chess.ErrIllegalMove),
		errors.Is(err, chess.ErrOutOfBounds),
		errors.Is(err, chess.ErrInvalidFEN),
		errors.Is(err, game.ErrNotYourTurn),
		errors.Is(err, game.ErrNoEngine):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Println("request error:", err)
	}
	http.Error(w, err.Error(), code)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
