package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"anvilchess/internal/anvilchess"
)

// debug prints a position, the destinations of one piece, and optionally the
// result of a move in "e2e4" or "e7e8q" form.
func main() {
	fen := flag.String("fen", "", "position to inspect, empty for the initial position")
	from := flag.String("from", "", "square whose legal destinations are listed")
	move := flag.String("move", "", "move to apply, e.g. e2e4 or e7e8n")
	seed := flag.Uint64("seed", 1, "seed for conversion draws")
	debug := flag.Bool("debug", false, "development logging")
	flag.Parse()

	logger := newLogger(*debug)
	defer logger.Sync() //nolint:errcheck

	pos := anvilchess.NewInitialPosition()
	if *fen != "" {
		var err error
		if pos, err = anvilchess.DecodePosition(*fen); err != nil {
			logger.Fatal("decode position", zap.String("fen", *fen), zap.Error(err))
		}
	}
	fmt.Print(pos.Board.String())
	fmt.Println("FEN:", pos.Encode())
	fmt.Println("Status:", pos.Board.Status(pos.ToMove, pos.EnPassant))
	fmt.Println("Legal moves:", len(pos.Board.AllLegalMoves(pos.ToMove, pos.EnPassant)))

	if *from != "" {
		sq, err := anvilchess.ParseSquare(*from)
		if err != nil {
			logger.Fatal("parse square", zap.String("from", *from), zap.Error(err))
		}
		var dests []string
		for _, d := range pos.Board.GenerateLegalMoves(sq, pos.ToMove, pos.EnPassant) {
			dests = append(dests, d.String())
		}
		fmt.Printf("%s: %s\n", sq, strings.Join(dests, " "))
	}

	if *move != "" {
		m, err := parseMove(*move)
		if err != nil {
			logger.Fatal("parse move", zap.String("move", *move), zap.Error(err))
		}
		next, res, ok := pos.Play(m, anvilchess.MoveContext{Rand: anvilchess.NewRand(*seed)})
		if !ok {
			logger.Fatal("illegal move", zap.String("move", *move), zap.String("fen", pos.Encode()))
		}
		logger.Debug("applied", zap.String("move", *move), zap.Int("events", len(res.Events)))
		for _, ev := range res.Events {
			fmt.Println("event:", ev)
		}
		fmt.Print(next.Board.String())
		fmt.Println("FEN:", next.Encode())
	}
}

func parseMove(s string) (anvilchess.Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return anvilchess.Move{}, fmt.Errorf("bad move %q", s)
	}
	from, err := anvilchess.ParseSquare(s[:2])
	if err != nil {
		return anvilchess.Move{}, err
	}
	to, err := anvilchess.ParseSquare(s[2:4])
	if err != nil {
		return anvilchess.Move{}, err
	}
	m := anvilchess.Move{From: from, To: to}
	if len(s) == 5 {
		pt, err := anvilchess.ParsePieceType(s[4:])
		if err != nil {
			return anvilchess.Move{}, err
		}
		m.Type, m.PromoteTo = anvilchess.MovePromotion, pt
	}
	return m, nil
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
