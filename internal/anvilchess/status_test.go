package anvilchess

import "testing"

func TestCheckmate(t *testing.T) {
	pos := mustPosition(t, "R5k1/5ppp/8/8/8/8/8/6K1 b -")
	if !pos.Board.IsCheckmate(Black, NoSquare) {
		t.Fatal("back-rank mate not detected")
	}
	if pos.Board.IsStalemate(Black, NoSquare) {
		t.Fatal("checkmate reported as stalemate")
	}
	if s := pos.Board.Status(Black, NoSquare); s != StatusCheckmate {
		t.Fatalf("status: got %v", s)
	}
}

func TestStalemate(t *testing.T) {
	pos := mustPosition(t, "7k/5Q2/6K1/8/8/8/8/8 b -")
	if !pos.Board.IsStalemate(Black, NoSquare) {
		t.Fatal("stalemate not detected")
	}
	if pos.Board.IsCheckmate(Black, NoSquare) {
		t.Fatal("stalemate reported as checkmate")
	}
	if s := pos.Board.Status(Black, NoSquare); s != StatusStalemate {
		t.Fatalf("status: got %v", s)
	}
}

func TestStatusCheckAndOngoing(t *testing.T) {
	b := NewInitialBoard()
	if s := b.Status(White, NoSquare); s != StatusOngoing {
		t.Fatalf("initial: got %v", s)
	}
	pos := mustPosition(t, "4k3/8/8/8/8/8/8/4R1K1 b -")
	if s := pos.Board.Status(Black, NoSquare); s != StatusCheck {
		t.Fatalf("rook check: got %v", s)
	}
}

// A level 2 king escapes a mate pattern with its two-square step.
func TestLeveledKingEscapes(t *testing.T) {
	pos := mustPosition(t, "R5k1/5ppp/8/8/8/8/8/6K1 b -")
	pos.Board.Cells[MustSquare("g8")].Piece.Level = 2
	pos.Board.Cells[MustSquare("g8")].Piece.HasMoved = true
	pos.Board.Clear(MustSquare("g7"))
	if pos.Board.IsCheckmate(Black, NoSquare) {
		t.Fatalf("king should escape to g6:\n%s", pos.Board.String())
	}
	if got := destinations(t, pos, "g8"); !contains(got, "g6") {
		t.Fatalf("king moves: %v", got)
	}
}
