package mobile

import (
	"log"
	"net/http"

	"chessai/internal/server/game"
	httpserver "chessai/internal/server/http"
)

// StartServer starts the local HTTP server for an embedding app.
// webDir: physical path to the extracted web assets
// port: port to listen on, e.g. "2888"
// depth: default engine depth, 0 for the engine default
func StartServer(webDir string, port string, depth int) {
	srv := httpserver.NewServer(httpserver.Config{
		WebDir:       webDir,
		MobileWebDir: webDir,
		Depth:        depth,
	}, game.NewManager())

	// Run in background so it doesn't block the host UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, srv); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}
