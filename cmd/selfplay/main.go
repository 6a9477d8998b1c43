package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"anvilchess/internal/anvilchess"
	"anvilchess/internal/game"
)

type config struct {
	games     int
	maxPlies  int
	workers   int
	seed      uint64
	debug     bool
	pprof     string
	bench     bool
	benchIter int
}

func main() {
	var cfg config
	flag.IntVar(&cfg.games, "games", getenvInt("ANVILCHESS_GAMES", 100), "number of games to play")
	flag.IntVar(&cfg.maxPlies, "plies", getenvInt("ANVILCHESS_MAX_PLIES", 300), "ply limit per game")
	flag.IntVar(&cfg.workers, "workers", getenvInt("ANVILCHESS_WORKERS", 4), "games played in parallel")
	flag.Uint64Var(&cfg.seed, "seed", uint64(getenvInt("ANVILCHESS_SEED", 1)), "base seed; game i uses seed+i")
	flag.BoolVar(&cfg.debug, "debug", getenb("ANVILCHESS_DEBUG", false), "log every move")
	flag.StringVar(&cfg.pprof, "pprof", getenv("ANVILCHESS_PPROF", ""), "pprof listen address, empty to disable")
	flag.BoolVar(&cfg.bench, "bench", false, "time move generation instead of playing games")
	flag.IntVar(&cfg.benchIter, "bench-iter", 200, "positions per benchmark run")
	flag.Parse()

	logger := newLogger(cfg.debug)
	defer logger.Sync() //nolint:errcheck

	if cfg.pprof != "" {
		go func() {
			logger.Info("pprof listening", zap.String("addr", cfg.pprof))
			if err := http.ListenAndServe(cfg.pprof, nil); err != nil {
				logger.Warn("pprof failed", zap.Error(err))
			}
		}()
	}

	if cfg.bench {
		runBenchmark(logger, cfg.seed, cfg.benchIter)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	stats, err := run(ctx, logger, cfg)
	if err != nil {
		logger.Fatal("selfplay failed", zap.Error(err))
	}
	logger.Info("selfplay finished",
		zap.Int("games", stats.games),
		zap.Int("white", stats.outcomes[game.WhiteWins]),
		zap.Int("black", stats.outcomes[game.BlackWins]),
		zap.Int("draw", stats.outcomes[game.Draw]),
		zap.Int("unfinished", stats.outcomes[game.Ongoing]),
		zap.Int("plies", stats.plies),
		zap.Duration("elapsed", time.Since(start)))
	for reason, n := range stats.reasons {
		fmt.Printf("%-24s %d\n", reason, n)
	}
}

type stats struct {
	mu       sync.Mutex
	games    int
	plies    int
	outcomes map[game.Outcome]int
	reasons  map[string]int
}

func (s *stats) add(g *game.GameState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games++
	s.plies += g.Ply
	s.outcomes[g.Outcome]++
	if g.Reason != "" {
		s.reasons[g.Reason]++
	}
}

// run plays cfg.games random games, at most cfg.workers at a time. Any game
// that breaks a rule invariant aborts the whole run.
func run(ctx context.Context, logger *zap.Logger, cfg config) (*stats, error) {
	st := &stats{outcomes: make(map[game.Outcome]int), reasons: make(map[string]int)}
	mgr := game.NewManager()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i := 0; i < cfg.games; i++ {
		seed := cfg.seed + uint64(i)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := anvilchess.NewRand(seed)
			g := mgr.NewGame(rng)
			defer mgr.Delete(g.ID)

			log := logger.With(zap.String("game", g.ID), zap.Uint64("seed", seed))
			if err := playRandom(ctx, log, g, rng, cfg.maxPlies); err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			log.Debug("game over",
				zap.Stringer("outcome", g.Outcome),
				zap.String("reason", g.Reason),
				zap.Int("plies", g.Ply))
			st.add(g)
			return nil
		})
	}
	return st, eg.Wait()
}

func playRandom(ctx context.Context, log *zap.Logger, g *game.GameState, rng *anvilchess.SeededRand, maxPlies int) error {
	for !g.Over() && g.Ply < maxPlies {
		if err := ctx.Err(); err != nil {
			return err
		}
		mover := g.Pos.ToMove
		moves := g.Pos.Board.AllLegalMoves(mover, g.Pos.EnPassant)
		if len(moves) == 0 {
			return fmt.Errorf("ply %d: no legal moves in an ongoing game: %s", g.Ply, g.Pos.Encode())
		}
		m := moves[rng.IntN(len(moves))]
		res, err := g.Play(m, rng)
		if err != nil {
			return fmt.Errorf("ply %d: %w", g.Ply, err)
		}
		if err := checkInvariants(g, mover, res); err != nil {
			return fmt.Errorf("ply %d %v: %w", g.Ply, m, err)
		}
		if ce := log.Check(zap.DebugLevel, "move"); ce != nil {
			ce.Write(
				zap.Int("ply", g.Ply),
				zap.Stringer("move", m),
				zap.Int("events", len(res.Events)),
				zap.String("fen", g.Pos.Encode()))
		}
	}
	return nil
}

// checkInvariants verifies what every legal move must preserve.
func checkInvariants(g *game.GameState, mover anvilchess.Color, res anvilchess.Result) error {
	b := &g.Pos.Board
	if !res.InfiltrationWin && !res.SelfCheckByPushBack && b.IsKingInCheck(mover) {
		return fmt.Errorf("mover left in check:\n%s", b.String())
	}
	for sq := anvilchess.Square(0); sq < anvilchess.NumSquares; sq++ {
		pc, ok := b.PieceAt(sq)
		if !ok {
			continue
		}
		if pc.Level < 1 {
			return fmt.Errorf("%v on %v has level %d", pc, sq, pc.Level)
		}
		if pc.Type == anvilchess.Queen && pc.Level > anvilchess.MaxQueenLevel {
			return fmt.Errorf("queen on %v above the level cap", sq)
		}
		if b.ItemAt(sq) == anvilchess.Anvil {
			return fmt.Errorf("piece under an anvil on %v", sq)
		}
	}
	fen := g.Pos.Encode()
	decoded, err := anvilchess.DecodePosition(fen)
	if err != nil {
		return fmt.Errorf("decode %q: %w", fen, err)
	}
	if decoded.Hash() != g.Pos.Hash() || decoded.Key() != g.Pos.Key() {
		return fmt.Errorf("encoding %q does not round trip", fen)
	}
	return nil
}

func newLogger(debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return zap.NewNop()
	}
	return logger
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}
