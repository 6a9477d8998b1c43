package anvilchess

var promotionChoices = []PieceType{Queen, Rook, Bishop, Knight}

// Pawns, commanders and infiltrators. Level 2 adds a backward step, level 3
// sideways steps; neither captures.
func genPawnMoves(b *Board, from Square, ep Square, moves *[]Move) {
	pc := b.Cells[from].Piece
	rank, file := from.Rank(), from.File()
	dir := pawnDir(pc.Color)

	if onBoard(rank+dir, file) {
		one := indexOf(rank+dir, file)
		if b.isOpen(one) {
			addPawnMove(pc, from, one, MoveNormal, moves)
			if pc.Type != Infiltrator && rank == pawnStartRank(pc.Color) && onBoard(rank+2*dir, file) {
				two := indexOf(rank+2*dir, file)
				if b.isOpen(two) {
					*moves = append(*moves, Move{From: from, To: two, Type: MoveNormal})
				}
			}
		}
	}

	for _, df := range []int{-1, 1} {
		if !onBoard(rank+dir, file+df) {
			continue
		}
		to := indexOf(rank+dir, file+df)
		c := b.Cells[to]
		if c.Item == Anvil {
			continue
		}
		if !c.Piece.IsEmpty() {
			if CanCapture(pc, c.Piece) {
				addPawnMove(pc, from, to, MoveCapture, moves)
			}
			continue
		}
		if pc.Type != Infiltrator && to == ep && b.enPassantVictim(pc, to) != NoSquare {
			*moves = append(*moves, Move{From: from, To: to, Type: MoveEnPassant})
		}
	}

	if pc.Level >= 2 && onBoard(rank-dir, file) {
		if back := indexOf(rank-dir, file); b.isOpen(back) {
			*moves = append(*moves, Move{From: from, To: back, Type: MoveNormal})
		}
	}
	if pc.Level >= 3 {
		for _, df := range []int{-1, 1} {
			if !onBoard(rank, file+df) {
				continue
			}
			if side := indexOf(rank, file+df); b.isOpen(side) {
				*moves = append(*moves, Move{From: from, To: side, Type: MoveNormal})
			}
		}
	}
}

// addPawnMove expands a pawn's arrival on the far rank into one move per
// promotion choice. Commanders turn into heroes on their own.
func addPawnMove(pc Piece, from, to Square, mt MoveType, moves *[]Move) {
	if pc.Type == Pawn && to.Rank() == farRank(pc.Color) {
		for _, pt := range promotionChoices {
			*moves = append(*moves, Move{From: from, To: to, Type: MovePromotion, PromoteTo: pt})
		}
		return
	}
	*moves = append(*moves, Move{From: from, To: to, Type: mt})
}

// enPassantVictim returns the square of the double-stepped piece that a
// pawn-lineage mover landing on target would take, or NoSquare. Only the
// square skipped by a double step can be a target.
func (b *Board) enPassantVictim(mover Piece, target Square) Square {
	if !target.Valid() || target.Rank() != farRank(mover.Color)-2*pawnDir(mover.Color) {
		return NoSquare
	}
	r := target.Rank() - pawnDir(mover.Color)
	sq := indexOf(r, target.File())
	victim := b.Cells[sq].Piece
	if victim.IsEmpty() || victim.Color == mover.Color {
		return NoSquare
	}
	if victim.Type != Pawn && victim.Type != Commander {
		return NoSquare
	}
	return sq
}
