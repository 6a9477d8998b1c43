package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"anvilchess/internal/anvilchess"
	"anvilchess/internal/game"
)

// Handler serves the /api/* routes over a game manager.
type Handler struct {
	games  *game.Manager
	logger *zap.Logger

	// rng is shared by all games.
	rngMu sync.Mutex
	rng   anvilchess.Rand
}

func NewHandler(games *game.Manager, rng anvilchess.Rand, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if games == nil {
		games = game.NewManager()
	}
	return &Handler{games: games, rng: rng, logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api/watch" {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleWatch(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/legal":
		h.handleLegal(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
	}
	pos := anvilchess.NewInitialPosition()
	if req.Position != "" {
		var err error
		if pos, err = anvilchess.DecodePosition(req.Position); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	h.rngMu.Lock()
	g := h.games.NewGameFrom(pos, h.rng)
	h.rngMu.Unlock()

	var resp StateResponse
	_ = h.games.View(g.ID, func(g *game.GameState) { resp = stateOf(g) })
	h.logger.Info("new game", zap.String("game", g.ID), zap.String("fen", resp.Position))
	writeJSON(w, h.logger, resp)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	m, err := dtoToMove(req.Move)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.rngMu.Lock()
	res, err := h.games.Play(req.GameID, m, h.rng)
	h.rngMu.Unlock()
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case errors.Is(err, game.ErrIllegalMove):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, game.ErrGameOver):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var resp PlayResponse
	if err := h.games.View(req.GameID, func(g *game.GameState) { resp.StateResponse = stateOf(g) }); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	for _, ev := range res.Events {
		resp.Events = append(resp.Events, ev.String())
	}
	h.logger.Debug("move",
		zap.String("game", req.GameID),
		zap.Stringer("move", m),
		zap.Int("events", len(res.Events)),
		zap.String("outcome", resp.Outcome))
	writeJSON(w, h.logger, resp)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	var resp StateResponse
	if err := h.games.View(req.GameID, func(g *game.GameState) { resp = stateOf(g) }); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, h.logger, resp)
}

func (h *Handler) handleLegal(w http.ResponseWriter, r *http.Request) {
	var req LegalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	from, err := anvilchess.ParseSquare(req.From)
	if err != nil || from == anvilchess.NoSquare {
		http.Error(w, "bad square", http.StatusBadRequest)
		return
	}
	resp := LegalResponse{From: from.String(), Destinations: []string{}}
	err = h.games.View(req.GameID, func(g *game.GameState) {
		if g.Over() {
			return
		}
		for _, sq := range g.Pos.Board.GenerateLegalMoves(from, g.Pos.ToMove, g.Pos.EnPassant) {
			resp.Destinations = append(resp.Destinations, sq.String())
		}
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, h.logger, resp)
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("writeJSON", zap.Error(err))
	}
}
