package anvilchess

// simulate plays m without randomness: conversions never fire and there is
// no graveyard to resurrect from.
func (b *Board) simulate(m Move, ep Square) Result {
	return b.ApplyMove(m, MoveContext{EnPassant: ep, Rand: noDraw{}})
}

// LegalMoves returns the moves of color's piece on from that do not leave
// color's king attacked. Two outcomes are kept even though the king ends up
// attacked: an infiltration win, which ends the game at once, and a push-back
// that exposes the king, which the caller scores as a loss for the mover.
func (b *Board) LegalMoves(from Square, color Color, ep Square) []Move {
	if !from.Valid() {
		return nil
	}
	pc := b.Cells[from].Piece
	if pc.IsEmpty() || pc.Color != color {
		return nil
	}
	pseudo := b.generate(from, ep, true)
	out := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		res := b.simulate(m, ep)
		if !res.Applied {
			continue
		}
		if res.InfiltrationWin || res.SelfCheckByPushBack || !res.Board.IsKingInCheck(color) {
			out = append(out, m)
		}
	}
	return out
}

// GenerateLegalMoves lists the distinct destinations of the piece on from.
// A promotion counts once however many piece choices it offers.
func (b *Board) GenerateLegalMoves(from Square, color Color, ep Square) []Square {
	var out []Square
	var seen [NumSquares]bool
	for _, m := range b.LegalMoves(from, color, ep) {
		if seen[m.To] {
			continue
		}
		seen[m.To] = true
		out = append(out, m.To)
	}
	return out
}

// AllLegalMoves enumerates every legal move of color.
func (b *Board) AllLegalMoves(color Color, ep Square) []Move {
	var out []Move
	for sq := Square(0); sq < NumSquares; sq++ {
		if pc := b.Cells[sq].Piece; pc.IsEmpty() || pc.Color != color {
			continue
		}
		out = append(out, b.LegalMoves(sq, color, ep)...)
	}
	return out
}

func (b *Board) HasLegalMove(color Color, ep Square) bool {
	for sq := Square(0); sq < NumSquares; sq++ {
		if pc := b.Cells[sq].Piece; pc.IsEmpty() || pc.Color != color {
			continue
		}
		if len(b.LegalMoves(sq, color, ep)) > 0 {
			return true
		}
	}
	return false
}
