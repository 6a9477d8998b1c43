package main

import (
	"encoding/json"
	"flag"
	"os"
	"slices"

	"go.uber.org/zap"

	"anvilchess/internal/anvilchess"
)

// TestCase is one position from a random game with every legal move in it.
// Other implementations of the rules replay these to compare move
// generation square by square.
type TestCase struct {
	FEN    string `json:"fen"`
	ToMove string `json:"toMove"`
	Status string `json:"status"`
	// Destinations maps each movable square to its legal targets.
	Destinations map[string][]string `json:"destinations"`
	Chosen       string              `json:"chosen"`
	Events       []string            `json:"events,omitempty"`
}

func main() {
	numGames := flag.Int("games", 10, "random games to sample")
	maxPlies := flag.Int("plies", 200, "ply limit per game")
	seed := flag.Uint64("seed", 1, "random seed")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync() //nolint:errcheck

	rng := anvilchess.NewRand(*seed)
	var testCases []TestCase
	for g := 0; g < *numGames; g++ {
		testCases = append(testCases, sampleGame(rng, *maxPlies)...)
	}

	data, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		logger.Fatal("marshal", zap.Error(err))
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Fatal("write", zap.String("path", *out), zap.Error(err))
	}
	logger.Info("generated test cases",
		zap.Int("cases", len(testCases)),
		zap.Int("games", *numGames),
		zap.String("path", *out))
}

func sampleGame(rng *anvilchess.SeededRand, maxPlies int) []TestCase {
	var cases []TestCase
	pos := anvilchess.NewInitialPosition()
	nextShroom := anvilchess.NextShroomInterval(rng)
	for ply := 1; ply <= maxPlies; ply++ {
		moves := pos.Board.AllLegalMoves(pos.ToMove, pos.EnPassant)
		tc := TestCase{
			FEN:          pos.Encode(),
			ToMove:       pos.ToMove.String(),
			Status:       pos.Board.Status(pos.ToMove, pos.EnPassant).String(),
			Destinations: make(map[string][]string),
		}
		for _, m := range moves {
			from := m.From.String()
			if !slices.Contains(tc.Destinations[from], m.To.String()) {
				tc.Destinations[from] = append(tc.Destinations[from], m.To.String())
			}
		}
		if len(moves) == 0 {
			cases = append(cases, tc)
			break
		}

		chosen := moves[rng.IntN(len(moves))]
		next, res, ok := pos.Play(chosen, anvilchess.MoveContext{Rand: rng})
		if !ok {
			break
		}
		tc.Chosen = chosen.String()
		for _, ev := range res.Events {
			tc.Events = append(tc.Events, ev.String())
		}
		cases = append(cases, tc)
		if res.InfiltrationWin || res.SelfCheckByPushBack {
			break
		}

		pos = next
		if ply%anvilchess.AnvilInterval == 0 {
			pos.Board, _ = pos.Board.SpawnAnvil(rng)
		}
		if ply >= nextShroom {
			pos.Board, _ = pos.Board.SpawnShroom(rng)
			nextShroom = ply + anvilchess.NextShroomInterval(rng)
		}
	}
	return cases
}
