package main

import (
	"time"

	"go.uber.org/zap"

	"anvilchess/internal/anvilchess"
)

// runBenchmark samples positions from random games and times legal move
// generation and move application over them.
func runBenchmark(logger *zap.Logger, seed uint64, n int) {
	rng := anvilchess.NewRand(seed)
	positions := samplePositions(rng, n)

	start := time.Now()
	total := 0
	for _, pos := range positions {
		total += len(pos.Board.AllLegalMoves(pos.ToMove, pos.EnPassant))
	}
	genTime := time.Since(start)

	start = time.Now()
	applied := 0
	for _, pos := range positions {
		for _, m := range pos.Board.AllLegalMoves(pos.ToMove, pos.EnPassant) {
			pos.Board.ApplyMove(m, anvilchess.MoveContext{EnPassant: pos.EnPassant, Rand: rng})
			applied++
		}
	}
	applyTime := time.Since(start)

	logger.Info("benchmark",
		zap.Int("positions", len(positions)),
		zap.Int("legal_moves", total),
		zap.Duration("generate", genTime),
		zap.Float64("positions_per_sec", perSecond(len(positions), genTime)),
		zap.Int("applied", applied),
		zap.Duration("generate_and_apply", applyTime),
		zap.Float64("moves_per_sec", perSecond(applied, applyTime)))
}

func samplePositions(rng *anvilchess.SeededRand, n int) []*anvilchess.Position {
	var out []*anvilchess.Position
	pos := anvilchess.NewInitialPosition()
	for ply := 1; len(out) < n; ply++ {
		moves := pos.Board.AllLegalMoves(pos.ToMove, pos.EnPassant)
		if len(moves) == 0 || ply > 200 {
			pos, ply = anvilchess.NewInitialPosition(), 0
			continue
		}
		next, res, ok := pos.Play(moves[rng.IntN(len(moves))], anvilchess.MoveContext{Rand: rng})
		if !ok || res.InfiltrationWin || res.SelfCheckByPushBack {
			pos, ply = anvilchess.NewInitialPosition(), 0
			continue
		}
		if ply%anvilchess.AnvilInterval == 0 {
			next.Board, _ = next.Board.SpawnAnvil(rng)
		}
		pos = next
		out = append(out, pos)
	}
	return out
}

func perSecond(n int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}
