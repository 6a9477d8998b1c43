package anvilchess

import "testing"

func TestCanCapture(t *testing.T) {
	piece := func(pt PieceType, c Color, level int) Piece {
		return Piece{Type: pt, Color: c, Level: level}
	}
	cases := []struct {
		name             string
		attacker, target Piece
		want             bool
	}{
		{"plain", piece(Pawn, White, 1), piece(Knight, Black, 1), true},
		{"own piece", piece(Rook, White, 1), piece(Pawn, White, 1), false},
		{"empty target", piece(Rook, White, 1), Piece{}, false},
		{"queen 7 vs rook 3", piece(Rook, White, 3), piece(Queen, Black, 7), false},
		{"queen 7 vs queen 7", piece(Queen, White, 7), piece(Queen, Black, 7), true},
		{"queen 7 vs rook 8", piece(Rook, White, 8), piece(Queen, Black, 7), true},
		{"queen 7 vs infiltrator 1", piece(Infiltrator, White, 1), piece(Queen, Black, 7), true},
		{"queen 7 vs commander 1", piece(Commander, White, 1), piece(Queen, Black, 7), true},
		{"queen 7 vs hero 1", piece(Hero, White, 1), piece(Queen, Black, 7), true},
		{"queen 6 vs pawn 1", piece(Pawn, White, 1), piece(Queen, Black, 6), true},
		{"bishop 3 vs pawn", piece(Pawn, White, 9), piece(Bishop, Black, 3), false},
		{"bishop 3 vs commander", piece(Commander, White, 1), piece(Bishop, Black, 3), false},
		{"bishop 3 vs infiltrator", piece(Infiltrator, White, 1), piece(Bishop, Black, 3), false},
		{"bishop 3 vs knight", piece(Knight, White, 1), piece(Bishop, Black, 3), true},
		{"bishop 2 vs pawn", piece(Pawn, White, 1), piece(Bishop, Black, 2), true},
		{"shielded", piece(Queen, White, 7), Piece{Type: Pawn, Color: Black, Level: 1, Shield: 1}, false},
	}
	for _, tc := range cases {
		if got := CanCapture(tc.attacker, tc.target); got != tc.want {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestLevelSevenQueenShield(t *testing.T) {
	pos := mustPosition(t, "K5k1/8/8/8/3q[7]3R[3]/8/8/8 w -")
	if got := destinations(t, pos, "h4"); contains(got, "d4") {
		t.Fatalf("level 3 rook may take the level 7 queen: %v", got)
	}
	if !contains(destinations(t, pos, "h4"), "e4") {
		t.Fatal("rook should still slide up to the queen")
	}

	pos = mustPosition(t, "K5k1/8/8/8/3q[7]4/2I5/8/8 w -")
	if got := destinations(t, pos, "c3"); !contains(got, "d4") {
		t.Fatalf("infiltrator should take the level 7 queen: %v", got)
	}
}

func TestIsSquareAttacked(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/8/8/8/R3K3 w -")
	b := pos.Board
	if !b.IsSquareAttacked(MustSquare("a8"), White, NoSquare) {
		t.Fatal("rook should attack a8")
	}
	if b.IsSquareAttacked(MustSquare("a8"), White, MustSquare("a1")) {
		t.Fatal("ignored rook still attacks a8")
	}
	if !b.IsSquareAttacked(MustSquare("d2"), White, NoSquare) {
		t.Fatal("king should attack d2")
	}
	if b.IsSquareAttacked(MustSquare("c3"), White, NoSquare) {
		t.Fatal("nothing attacks c3")
	}

	// anvils block sight
	pos = mustPosition(t, "4k3/8/8/8/#7/8/8/R3K3 w -")
	if pos.Board.IsSquareAttacked(MustSquare("a8"), White, NoSquare) {
		t.Fatal("rook sees through an anvil")
	}
	// shrooms do not
	pos = mustPosition(t, "4k3/8/8/8/*7/8/8/R3K3 w -")
	if !pos.Board.IsSquareAttacked(MustSquare("a8"), White, NoSquare) {
		t.Fatal("shroom blocked the rook")
	}
}

func TestIsKingInCheck(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/8/8/8/8/4R1K1 b -")
	if !pos.Board.IsKingInCheck(Black) {
		t.Fatal("rook on e1 checks e8")
	}
	if pos.Board.IsKingInCheck(White) {
		t.Fatal("white is not in check")
	}

	// a missing king counts as checked
	pos = mustPosition(t, "8/8/8/8/8/8/8/4K3 w -")
	if !pos.Board.IsKingInCheck(Black) {
		t.Fatal("missing king should report check")
	}
}

func TestBishopImmuneToPawns(t *testing.T) {
	pos := mustPosition(t, "4k3/8/8/3b[3]4/4P3/8/8/4K3 w -")
	if got := destinations(t, pos, "e4"); contains(got, "d5") {
		t.Fatalf("pawn may take a level 3 bishop: %v", got)
	}
	pos = mustPosition(t, "4k3/8/8/3b[2]4/4P3/8/8/4K3 w -")
	if got := destinations(t, pos, "e4"); !contains(got, "d5") {
		t.Fatalf("pawn should take a level 2 bishop: %v", got)
	}
}
