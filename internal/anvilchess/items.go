package anvilchess

// AnvilInterval is the number of moves between anvil drops.
const AnvilInterval = 9

// Shroom drops come every MinShroomInterval..MaxShroomInterval moves.
const (
	MinShroomInterval = 5
	MaxShroomInterval = 10
)

// NextShroomInterval draws the number of moves until the next shroom.
func NextShroomInterval(rng Rand) int {
	if rng == nil {
		rng = globalRand{}
	}
	return MinShroomInterval + rng.IntN(MaxShroomInterval-MinShroomInterval+1)
}

// SpawnAnvil drops an anvil on a random empty, item-free square. The square is
// NoSquare and the board unchanged when there is no room.
func (b *Board) SpawnAnvil(rng Rand) (Board, Square) { return b.spawn(Anvil, rng) }

// SpawnShroom is SpawnAnvil for shrooms.
func (b *Board) SpawnShroom(rng Rand) (Board, Square) { return b.spawn(Shroom, rng) }

func (b *Board) spawn(it Item, rng Rand) (Board, Square) {
	if rng == nil {
		rng = globalRand{}
	}
	free := b.freeSquares()
	nb := *b
	if len(free) == 0 {
		return nb, NoSquare
	}
	sq := free[rng.IntN(len(free))]
	nb.Cells[sq].Item = it
	return nb, sq
}

func (b *Board) freeSquares() []Square {
	var out []Square
	for sq := Square(0); sq < NumSquares; sq++ {
		if c := b.Cells[sq]; c.Piece.IsEmpty() && c.Item == ItemNone {
			out = append(out, sq)
		}
	}
	return out
}
