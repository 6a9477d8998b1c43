package anvilchess

import (
	"sort"
	"testing"
)

func destinations(t *testing.T, pos *Position, from string) []string {
	t.Helper()
	var out []string
	for _, sq := range pos.Board.GenerateLegalMoves(MustSquare(from), pos.ToMove, pos.EnPassant) {
		out = append(out, sq.String())
	}
	sort.Strings(out)
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func hasMove(moves []Move, from, to string, mt MoveType) bool {
	for _, m := range moves {
		if m.From == MustSquare(from) && m.To == MustSquare(to) && m.Type == mt {
			return true
		}
	}
	return false
}

func TestInitialLegalMoveCount(t *testing.T) {
	pos := NewInitialPosition()
	if n := len(pos.Board.AllLegalMoves(White, NoSquare)); n != 20 {
		t.Fatalf("white moves: got %d want 20", n)
	}
	if n := len(pos.Board.AllLegalMoves(Black, NoSquare)); n != 20 {
		t.Fatalf("black moves: got %d want 20", n)
	}
}

func TestPawnForwardMoves(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want []string
	}{
		{"open", "4k3/8/8/8/8/8/4P3/4K3 w -", []string{"e3", "e4"}},
		{"blocked at two", "4k3/8/8/8/4p3/8/4P3/4K3 w -", []string{"e3"}},
		{"blocked at one", "4k3/8/8/8/8/4p3/4P3/4K3 w -", nil},
		{"anvil at two", "4k3/8/8/8/4#3/8/4P3/4K3 w -", []string{"e3"}},
	}
	for _, tc := range cases {
		got := destinations(t, mustPosition(t, tc.fen), "e2")
		if len(got) != len(tc.want) {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
			}
		}
	}
}

func TestPawnLeveledSteps(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/3P[3]'4/8/8/4K3 w -")
	got := destinations(t, pos, "d4")
	want := []string{"c4", "d3", "d5", "e4"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}

	pos = mustPosition(t, "4k3/8/8/8/3P[2]'4/8/8/4K3 w -")
	got = destinations(t, pos, "d4")
	if len(got) != 2 || !contains(got, "d3") || contains(got, "c4") {
		t.Fatalf("level 2: got %v", got)
	}
}

func TestPawnPromotionChoices(t *testing.T) {
	pos := mustPosition(t, "4k3/1P6/8/8/8/8/8/4K3 w -")
	moves := pos.Board.LegalMoves(MustSquare("b7"), White, NoSquare)
	if len(moves) != 4 {
		t.Fatalf("promotion moves: got %d want 4", len(moves))
	}
	seen := make(map[PieceType]bool)
	for _, m := range moves {
		if m.Type != MovePromotion {
			t.Fatalf("move %v: type %v", m, m.Type)
		}
		seen[m.PromoteTo] = true
	}
	for _, pt := range []PieceType{Queen, Rook, Bishop, Knight} {
		if !seen[pt] {
			t.Fatalf("missing promotion to %v", pt.Name())
		}
	}
	if got := destinations(t, pos, "b7"); len(got) != 1 || got[0] != "b8" {
		t.Fatalf("destinations: got %v", got)
	}
}

func TestKnightLevels(t *testing.T) {
	cases := []struct {
		fen  string
		want int
	}{
		{"7k/8/8/8/3N4/8/8/7K w -", 8},
		{"7k/8/8/8/3N[2]4/8/8/7K w -", 12},
		{"7k/8/8/8/3N[3]4/8/8/7K w -", 16},
		// anvil on d5 closes the step and the jump to d7
		{"7k/8/8/3#4/3N[3]4/8/8/7K w -", 14},
		// anvil on f5 takes one L square
		{"7k/8/8/5#2/3N4/8/8/7K w -", 7},
	}
	for _, tc := range cases {
		got := destinations(t, mustPosition(t, tc.fen), "d4")
		if len(got) != tc.want {
			t.Fatalf("%s: got %d %v want %d", tc.fen, len(got), got, tc.want)
		}
	}
}

func TestKnightSwapAndSelfDestruct(t *testing.T) {
	pos := mustPosition(t, "7k/8/8/8/3N[5]4/8/8/2B4K w -")
	moves := pos.Board.LegalMoves(MustSquare("d4"), White, NoSquare)
	if !hasMove(moves, "d4", "c1", MoveSwap) {
		t.Fatalf("no swap with c1 in %v", moves)
	}
	if !hasMove(moves, "d4", "d4", MoveSelfDestruct) {
		t.Fatalf("no self-destruct in %v", moves)
	}

	bishop := pos.Board.LegalMoves(MustSquare("c1"), White, NoSquare)
	if hasMove(bishop, "c1", "d4", MoveSwap) {
		t.Fatal("level 1 bishop offered a swap")
	}

	pos = mustPosition(t, "7k/8/8/8/3N[3]4/8/8/2B4K w -")
	moves = pos.Board.LegalMoves(MustSquare("d4"), White, NoSquare)
	if hasMove(moves, "d4", "c1", MoveSwap) || hasMove(moves, "d4", "d4", MoveSelfDestruct) {
		t.Fatalf("level 3 knight has level 4+ moves: %v", moves)
	}
}

func TestBishopPhase(t *testing.T) {
	pos := mustPosition(t, "8/7k/8/8/8/2P5/1B6/K7 w -")
	if got := destinations(t, pos, "b2"); contains(got, "d4") {
		t.Fatalf("level 1 bishop passed its own pawn: %v", got)
	}
	pos = mustPosition(t, "8/7k/8/8/8/2P5/1B[2]6/K7 w -")
	got := destinations(t, pos, "b2")
	for _, sq := range []string{"d4", "e5", "f6", "g7"} {
		if !contains(got, sq) {
			t.Fatalf("level 2 bishop missing %s: %v", sq, got)
		}
	}
	if contains(got, "c3") {
		t.Fatalf("bishop may land on its own pawn: %v", got)
	}

	// enemy pieces still block
	pos = mustPosition(t, "8/7k/8/8/8/2p5/1B[2]6/K7 w -")
	got = destinations(t, pos, "b2")
	if !contains(got, "c3") || contains(got, "d4") {
		t.Fatalf("enemy should stop the ray at c3: %v", got)
	}
}

func TestKingTwoStep(t *testing.T) {
	pos := mustPosition(t, "7k/8/8/8/3K[2]'4/8/8/8 w -")
	if got := destinations(t, pos, "d4"); len(got) != 16 {
		t.Fatalf("level 2 king: got %d %v want 16", len(got), got)
	}

	// rook on a5 covers the fifth rank, so every step across it is refused
	pos = mustPosition(t, "7k/8/8/r7/3K[2]'4/8/8/8 w -")
	got := destinations(t, pos, "d4")
	for _, sq := range []string{"b6", "d6", "f6", "c5", "d5", "e5"} {
		if contains(got, sq) {
			t.Fatalf("king may reach %s: %v", sq, got)
		}
	}
	if !contains(got, "d2") || !contains(got, "b2") {
		t.Fatalf("king lost safe two-steps: %v", got)
	}
}

func TestKingTwoStepCapturesMiddleAttacker(t *testing.T) {
	// d5 is covered only by the rook being taken on d6
	pos := mustPosition(t, "7k/8/3r4/8/3K[2]'4/8/8/8 w -")
	moves := pos.Board.LegalMoves(MustSquare("d4"), White, pos.EnPassant)
	if !hasMove(moves, "d4", "d6", MoveCapture) {
		t.Fatalf("no two-step capture in %v", moves)
	}

	// a second rook on a5 still guards d5
	pos = mustPosition(t, "7k/8/3r4/r7/3K[2]'4/8/8/8 w -")
	if got := destinations(t, pos, "d4"); contains(got, "d6") {
		t.Fatalf("king crossed a guarded square: %v", got)
	}
}

func TestKingKnightJump(t *testing.T) {
	pos := mustPosition(t, "7k/8/8/8/3K[5]'4/8/8/8 w -")
	got := destinations(t, pos, "d4")
	for _, sq := range []string{"c2", "e2", "b3", "f3", "b5", "f5", "c6", "e6"} {
		if !contains(got, sq) {
			t.Fatalf("level 5 king missing %s: %v", sq, got)
		}
	}
}

func TestCastling(t *testing.T) {
	pos := mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w -")
	moves := pos.Board.LegalMoves(MustSquare("e1"), White, NoSquare)
	if !hasMove(moves, "e1", "g1", MoveCastle) || !hasMove(moves, "e1", "c1", MoveCastle) {
		t.Fatalf("castling missing: %v", moves)
	}

	// black rook on f8 covers f1
	pos = mustPosition(t, "r3kr2/8/8/8/8/8/8/R3K2R w -")
	moves = pos.Board.LegalMoves(MustSquare("e1"), White, NoSquare)
	if hasMove(moves, "e1", "g1", MoveCastle) {
		t.Fatal("castled through an attacked square")
	}
	if !hasMove(moves, "e1", "c1", MoveCastle) {
		t.Fatal("queenside castling should stay available")
	}

	// no castling out of check
	pos = mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K1rR w -")
	if moves = pos.Board.LegalMoves(MustSquare("e1"), White, NoSquare); hasMove(moves, "e1", "c1", MoveCastle) {
		t.Fatal("castled out of check")
	}

	// an anvil in the path
	pos = mustPosition(t, "r3k2r/8/8/8/8/8/8/R3K#1R w -")
	if moves = pos.Board.LegalMoves(MustSquare("e1"), White, NoSquare); hasMove(moves, "e1", "g1", MoveCastle) {
		t.Fatal("castled over an anvil")
	}
}

func TestItemsInGeneration(t *testing.T) {
	pos := mustPosition(t, "7k/8/8/8/*7/8/8/R3K3 w -")
	got := destinations(t, pos, "a1")
	for _, sq := range []string{"a4", "a5", "a8"} {
		if !contains(got, sq) {
			t.Fatalf("shroom should not block, missing %s: %v", sq, got)
		}
	}

	pos = mustPosition(t, "7k/8/8/8/#7/8/8/R3K3 w -")
	got = destinations(t, pos, "a1")
	if !contains(got, "a3") || contains(got, "a4") || contains(got, "a5") {
		t.Fatalf("anvil should stop the rook at a3: %v", got)
	}
}
