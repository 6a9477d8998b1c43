package anvilchess

// CanCapture reports whether attacker may take target by an ordinary capture.
// Self-destruct does not consult it.
func CanCapture(attacker, target Piece) bool {
	if target.IsEmpty() || attacker.IsEmpty() || attacker.Color == target.Color {
		return false
	}
	if target.Shield > 0 {
		return false
	}
	switch target.Type {
	case Queen:
		if target.Level >= MaxQueenLevel && attacker.Level < target.Level {
			switch attacker.Type {
			case Commander, Hero, Infiltrator:
			default:
				return false
			}
		}
	case Bishop:
		if target.Level >= 3 && pawnLineage(attacker.Type) {
			return false
		}
	}
	return true
}

// IsSquareAttacked reports whether any piece of color by attacks sq. The
// piece on ignore, if any, is left out; pass NoSquare to consider everything.
func (b *Board) IsSquareAttacked(sq Square, by Color, ignore Square) bool {
	if !sq.Valid() {
		return false
	}
	target := b.Cells[sq].Piece
	for s := Square(0); s < NumSquares; s++ {
		if s == ignore || s == sq {
			continue
		}
		pc := b.Cells[s].Piece
		if pc.IsEmpty() || pc.Color != by {
			continue
		}
		if !target.IsEmpty() && target.Color != by && !CanCapture(pc, target) {
			continue
		}
		if b.attacks(s, sq) {
			return true
		}
	}
	return false
}

// IsKingInCheck is true when color's king is attacked, and also when color
// has no king at all.
func (b *Board) IsKingInCheck(color Color) bool {
	k := b.FindKing(color)
	if k == NoSquare {
		return true
	}
	return b.IsSquareAttacked(k, color.Opposite(), NoSquare)
}

// attacks checks the capture pattern of the piece on from against to,
// ignoring what stands on to.
func (b *Board) attacks(from, to Square) bool {
	pc := b.Cells[from].Piece
	dr := to.Rank() - from.Rank()
	df := to.File() - from.File()

	switch pc.Type {
	case Pawn, Commander, Infiltrator:
		return dr == pawnDir(pc.Color) && abs(df) == 1
	case Knight, Hero:
		if isKnightJump(dr, df) {
			return true
		}
		if pc.Level >= 2 && abs(dr)+abs(df) == 1 {
			return true
		}
		if pc.Level >= 3 && (dr == 0 || df == 0) && abs(dr)+abs(df) == 3 {
			return b.rayClear(from, to, NoColor)
		}
		return false
	case Bishop:
		if abs(dr) != abs(df) || dr == 0 {
			return false
		}
		phase := NoColor
		if pc.Level >= 2 {
			phase = pc.Color
		}
		return b.rayClear(from, to, phase)
	case Rook:
		if (dr != 0) == (df != 0) {
			return false
		}
		return b.rayClear(from, to, NoColor)
	case Queen:
		if !aligned(dr, df) {
			return false
		}
		return b.rayClear(from, to, NoColor)
	case King:
		if abs(dr) <= 1 && abs(df) <= 1 {
			return true
		}
		if pc.Level >= 2 && aligned(dr, df) && max(abs(dr), abs(df)) == 2 {
			return b.rayClear(from, to, NoColor)
		}
		if pc.Level >= 5 && isKnightJump(dr, df) {
			return true
		}
	}
	return false
}

// rayClear walks the squares strictly between from and to. Anvils always
// block; pieces block unless they belong to phase.
func (b *Board) rayClear(from, to Square, phase Color) bool {
	dr := sign(to.Rank() - from.Rank())
	df := sign(to.File() - from.File())
	r, f := from.Rank()+dr, from.File()+df
	for indexOf(r, f) != to {
		c := b.Cells[indexOf(r, f)]
		if c.Item == Anvil {
			return false
		}
		if !c.Piece.IsEmpty() && (phase == NoColor || c.Piece.Color != phase) {
			return false
		}
		r += dr
		f += df
	}
	return true
}

func isKnightJump(dr, df int) bool {
	return (abs(dr) == 2 && abs(df) == 1) || (abs(dr) == 1 && abs(df) == 2)
}

// aligned: same rank, file or diagonal, and not the same square.
func aligned(dr, df int) bool {
	if dr == 0 && df == 0 {
		return false
	}
	return dr == 0 || df == 0 || abs(dr) == abs(df)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
