package httpserver

import (
	"net/http"

	"go.uber.org/zap"

	"anvilchess/internal/anvilchess"
	"anvilchess/internal/game"
)

// NewServer mounts the API under /api/ and a health probe on /healthz.
func NewServer(games *game.Manager, rng anvilchess.Rand, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/", NewHandler(games, rng, logger))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return mux
}
