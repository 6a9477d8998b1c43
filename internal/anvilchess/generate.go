package anvilchess

// PseudoMoves lists the moves of the piece on from, ignoring whether they
// leave its own king attacked. Castling still requires a safe path.
func (b *Board) PseudoMoves(from Square, ep Square) []Move {
	return b.generate(from, ep, false)
}

// generate dispatches on the piece type. strict adds the transit-square
// safety test of the king's two-square step, which only the legality filter
// asks for.
func (b *Board) generate(from Square, ep Square, strict bool) []Move {
	if !from.Valid() {
		return nil
	}
	pc := b.Cells[from].Piece
	var moves []Move
	switch pc.Type {
	case Pawn, Commander, Infiltrator:
		genPawnMoves(b, from, ep, &moves)
	case Knight, Hero:
		genKnightMoves(b, from, &moves)
	case Bishop:
		genBishopMoves(b, from, &moves)
	case Rook:
		genSlideMoves(b, from, rookDirs, false, &moves)
	case Queen:
		genSlideMoves(b, from, queenDirs, false, &moves)
	case King:
		genKingMoves(b, from, strict, &moves)
	}
	return moves
}

// landing classifies a one-hop destination for pc. ok is false for anvils,
// friendly pieces and enemies pc cannot capture.
func (b *Board) landing(pc Piece, to Square) (MoveType, bool) {
	c := b.Cells[to]
	if c.Item == Anvil {
		return MoveNormal, false
	}
	if c.Piece.IsEmpty() {
		return MoveNormal, true
	}
	if !CanCapture(pc, c.Piece) {
		return MoveNormal, false
	}
	return MoveCapture, true
}

// addStep appends from->(from+d) when the square exists and pc can land there.
func addStep(b *Board, from Square, dr, df int, moves *[]Move) {
	r, f := from.Rank()+dr, from.File()+df
	if !onBoard(r, f) {
		return
	}
	to := indexOf(r, f)
	if mt, ok := b.landing(b.Cells[from].Piece, to); ok {
		*moves = append(*moves, Move{From: from, To: to, Type: mt})
	}
}

// swapPartners appends a swap with every friendly piece accepted by match.
func swapPartners(b *Board, from Square, match func(PieceType) bool, moves *[]Move) {
	color := b.Cells[from].Piece.Color
	for sq := Square(0); sq < NumSquares; sq++ {
		pc := b.Cells[sq].Piece
		if sq == from || pc.IsEmpty() || pc.Color != color || !match(pc.Type) {
			continue
		}
		*moves = append(*moves, Move{From: from, To: sq, Type: MoveSwap})
	}
}
