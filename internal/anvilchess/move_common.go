package anvilchess

// genSlideMoves walks each direction until something stops it. Anvils always
// stop the ray, shrooms never do. With phase set the slider passes over its
// own pieces instead of stopping.
func genSlideMoves(b *Board, from Square, dirs [][2]int, phase bool, moves *[]Move) {
	pc := b.Cells[from].Piece
	for _, d := range dirs {
		r, f := from.Rank()+d[0], from.File()+d[1]
		for onBoard(r, f) {
			to := indexOf(r, f)
			c := b.Cells[to]
			if c.Item == Anvil {
				break
			}
			if c.Piece.IsEmpty() {
				*moves = append(*moves, Move{From: from, To: to, Type: MoveNormal})
			} else if c.Piece.Color == pc.Color {
				if !phase {
					break
				}
			} else {
				if CanCapture(pc, c.Piece) {
					*moves = append(*moves, Move{From: from, To: to, Type: MoveCapture})
				}
				break
			}
			r += d[0]
			f += d[1]
		}
	}
}

// King moves by level:
//
//	1  one square in any direction, castling
//	2  two squares in a straight line over an open square
//	5  knight jump
func genKingMoves(b *Board, from Square, strict bool, moves *[]Move) {
	pc := b.Cells[from].Piece
	enemy := pc.Color.Opposite()
	row, col := from.Rank(), from.File()

	for _, d := range kingDirs {
		addStep(b, from, d[0], d[1], moves)
	}

	if pc.Level >= 2 {
		for _, d := range kingDirs {
			if !onBoard(row+2*d[0], col+2*d[1]) {
				continue
			}
			mid := indexOf(row+d[0], col+d[1])
			to := indexOf(row+2*d[0], col+2*d[1])
			if !b.isOpen(mid) {
				continue
			}
			// Two files along the back rank from the start square is castling
			// geometry; leave it to genCastling while it is still available.
			if d[0] == 0 && b.castlingRook(from, d[1]) != NoSquare {
				continue
			}
			mt, ok := b.landing(pc, to)
			if !ok {
				continue
			}
			if strict {
				ignore := NoSquare
				if mt == MoveCapture {
					ignore = to
				}
				if b.IsSquareAttacked(mid, enemy, ignore) {
					continue
				}
			}
			*moves = append(*moves, Move{From: from, To: to, Type: mt})
		}
	}

	if pc.Level >= 5 {
		for _, d := range knightDirs {
			addStep(b, from, d[0], d[1], moves)
		}
	}

	genCastling(b, from, moves)
}

// castlingRook returns the square of the unmoved rook the king on from could
// castle with toward side (+1 kingside, -1 queenside), or NoSquare.
func (b *Board) castlingRook(from Square, side int) Square {
	king := b.Cells[from].Piece
	if king.Type != King || king.HasMoved {
		return NoSquare
	}
	if from != indexOf(backRank(king.Color), 4) {
		return NoSquare
	}
	file := 7
	if side < 0 {
		file = 0
	}
	sq := indexOf(backRank(king.Color), file)
	rook := b.Cells[sq].Piece
	if rook.Type != Rook || rook.Color != king.Color || rook.HasMoved {
		return NoSquare
	}
	return sq
}

func genCastling(b *Board, from Square, moves *[]Move) {
	king := b.Cells[from].Piece
	enemy := king.Color.Opposite()
	for _, side := range []int{1, -1} {
		rookSq := b.castlingRook(from, side)
		if rookSq == NoSquare {
			continue
		}
		clear := true
		for f := from.File() + side; f != rookSq.File(); f += side {
			if !b.isOpen(indexOf(from.Rank(), f)) {
				clear = false
				break
			}
		}
		if !clear || b.IsSquareAttacked(from, enemy, NoSquare) {
			continue
		}
		mid := indexOf(from.Rank(), from.File()+side)
		to := indexOf(from.Rank(), from.File()+2*side)
		if b.IsSquareAttacked(mid, enemy, NoSquare) || b.IsSquareAttacked(to, enemy, NoSquare) {
			continue
		}
		*moves = append(*moves, Move{From: from, To: to, Type: MoveCastle})
	}
}
