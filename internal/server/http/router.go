package httpserver

import (
	"net/http"

	"chessai/internal/server/game"
)

type Config struct {
	WebDir       string // desktop assets; empty disables static routes
	MobileWebDir string // defaults to WebDir
	Depth        int    // default engine depth for new games
}

// Server bundles the API handler with the static asset routes.
type Server struct {
	api *Handler
	mux *http.ServeMux
}

func NewServer(cfg Config, m *game.Manager) *Server {
	s := &Server{
		api: NewHandler(m, cfg.Depth),
		mux: http.NewServeMux(),
	}
	s.mux.Handle("/api/", s.api)
	if cfg.WebDir != "" {
		RegisterStaticRoutes(s.mux, cfg.WebDir, cfg.MobileWebDir)
	}
	return s
}

func (s *Server) Handler() *Handler {
	return s.api
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
