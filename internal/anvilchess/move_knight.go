package anvilchess

// Knights and heroes. Abilities by level:
//
//	1  L-shaped jump
//	2  one square orthogonally
//	3  three squares orthogonally, both squares in between clear
//	4  swap places with any friendly bishop
//	5  self-destruct in place
func genKnightMoves(b *Board, from Square, moves *[]Move) {
	pc := b.Cells[from].Piece
	row, col := from.Rank(), from.File()

	for _, d := range knightDirs {
		addStep(b, from, d[0], d[1], moves)
	}
	if pc.Level >= 2 {
		for _, d := range rookDirs {
			addStep(b, from, d[0], d[1], moves)
		}
	}
	if pc.Level >= 3 {
		for _, d := range rookDirs {
			r1, c1 := row+d[0], col+d[1]
			r2, c2 := row+2*d[0], col+2*d[1]
			if !onBoard(row+3*d[0], col+3*d[1]) {
				continue
			}
			if !b.isOpen(indexOf(r1, c1)) || !b.isOpen(indexOf(r2, c2)) {
				continue
			}
			addStep(b, from, 3*d[0], 3*d[1], moves)
		}
	}
	if pc.Level >= 4 {
		swapPartners(b, from, func(pt PieceType) bool { return pt == Bishop }, moves)
	}
	if pc.Level >= 5 {
		*moves = append(*moves, Move{From: from, To: from, Type: MoveSelfDestruct})
	}
}

// Bishops slide diagonally, phase through friendly pieces from level 2 and
// swap with a friendly knight or hero from level 4.
func genBishopMoves(b *Board, from Square, moves *[]Move) {
	pc := b.Cells[from].Piece
	genSlideMoves(b, from, bishopDirs, pc.Level >= 2, moves)
	if pc.Level >= 4 {
		swapPartners(b, from, knightLike, moves)
	}
}
