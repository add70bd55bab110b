package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"chessai/internal/engine"
	"chessai/internal/server/game"
	httpserver "chessai/internal/server/http"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // headless hosts have no browser
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("ignoring %s=%q: %v", key, v, err)
		return def
	}
	return n
}

func main() {
	addr := flag.String("addr", getenv("CHESS_ADDR", ":2888"), "listen address")
	webDir := flag.String("web", getenv("CHESS_WEB", "./web"), "directory with index.html / js / svg")
	mobileDir := flag.String("web-mobile", getenv("CHESS_WEB_MOBILE", ""), "mobile asset directory (defaults to -web)")
	depth := flag.Int("depth", getenvInt("CHESS_DEPTH", engine.DefaultDepth), "default search depth for new games")
	noBrowser := flag.Bool("no-browser", false, "do not open a browser window")
	flag.Parse()

	if *depth < 1 || *depth > engine.MaxDepth {
		log.Printf("depth %d out of range, using %d", *depth, engine.DefaultDepth)
		*depth = engine.DefaultDepth
	}

	srv := httpserver.NewServer(httpserver.Config{
		WebDir:       *webDir,
		MobileWebDir: *mobileDir,
		Depth:        *depth,
	}, game.NewManager())

	log.Printf("listening on %s, serving static from %s, depth %d", *addr, *webDir, *depth)

	if !*noBrowser {
		// give ListenAndServe a moment to bind
		go func() {
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	if err := http.ListenAndServe(*addr, srv); err != nil {
		log.Fatal(err)
	}
}
