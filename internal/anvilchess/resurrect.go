package anvilchess

// pieceValue ranks graveyard entries for resurrection.
var pieceValue = map[PieceType]int{
	Queen:       9,
	Hero:        8,
	Rook:        5,
	Commander:   4,
	Bishop:      3,
	Knight:      3,
	Infiltrator: 2,
	Pawn:        1,
}

// PieceValue is the resurrection priority of pt; kings are worth nothing.
func PieceValue(pt PieceType) int { return pieceValue[pt] }

// resurrect brings the most valuable piece of color's graveyard back onto
// color's back rank, as close to the rook on rookSq as possible. The piece
// returns at level 1 with a new identity and a one-turn shield. Nothing
// happens when the pool is empty or the back rank has no free square.
func (b *Board) resurrect(rookSq Square, color Color, graveyard []Piece, rng Rand, res *Result) {
	best := -1
	for i, pc := range graveyard {
		if pc.IsEmpty() || pc.Type == King || pc.Color != color {
			continue
		}
		if best < 0 || PieceValue(pc.Type) > PieceValue(graveyard[best].Type) {
			best = i
		}
	}
	if best < 0 {
		return
	}
	sq := b.backRankSlot(color, rookSq.File())
	if sq == NoSquare {
		return
	}
	src := graveyard[best]
	pc := Piece{
		ID:       newPieceID(rng),
		Type:     src.Type,
		Color:    color,
		Level:    1,
		HasMoved: true,
		Shield:   1,
	}
	b.Cells[sq] = Cell{Piece: pc}
	res.Events = append(res.Events, ResurrectionEvent{Square: sq, Piece: pc, Source: src})
}

// backRankSlot finds the empty, item-free back-rank square nearest to file,
// preferring the queenside on ties.
func (b *Board) backRankSlot(color Color, file int) Square {
	rank := backRank(color)
	for dist := 0; dist < Files; dist++ {
		for _, f := range []int{file - dist, file + dist} {
			if f < 0 || f >= Files {
				continue
			}
			sq := indexOf(rank, f)
			if c := b.Cells[sq]; c.Piece.IsEmpty() && c.Item == ItemNone {
				return sq
			}
		}
	}
	return NoSquare
}
