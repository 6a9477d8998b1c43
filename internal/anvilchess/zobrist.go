package anvilchess

import "sync"

const zobristPieceTypes = 10 // PieceType in [1..9], 0 is empty

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristPieceTypes][NumSquares]uint64
	zobristItems  [3][NumSquares]uint64
	zobristEP     [NumSquares]uint64
	zobristSide   uint64
)

func splitmix(seed *uint64) uint64 {
	*seed += 0x9E3779B97F4A7C15
	z := *seed
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		for side := 0; side < 2; side++ {
			for pt := 1; pt < zobristPieceTypes; pt++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][pt][sq] = splitmix(&seed)
				}
			}
		}
		for it := 1; it < len(zobristItems); it++ {
			for sq := 0; sq < NumSquares; sq++ {
				zobristItems[it][sq] = splitmix(&seed)
			}
		}
		for sq := 0; sq < NumSquares; sq++ {
			zobristEP[sq] = splitmix(&seed)
		}
		zobristSide = splitmix(&seed)
	})
}

// pieceKey folds the level in with one more mixing round, since levels are
// unbounded and cannot get a table of their own.
func pieceKey(pc Piece, sq Square) uint64 {
	if pc.IsEmpty() || pc.Color == NoColor || int(pc.Type) >= zobristPieceTypes {
		return 0
	}
	k := zobristPieces[pc.Color][pc.Type][sq]
	if pc.Level > 1 {
		seed := k + uint64(pc.Level)
		k ^= splitmix(&seed)
	}
	return k
}

// Key is a 64-bit fingerprint of the same fields PositionHash covers, except
// castling rights. It is cheap to compare but may collide; use Hash for
// repetition.
func (p *Position) Key() uint64 {
	initZobrist()

	var h uint64
	for sq := Square(0); sq < NumSquares; sq++ {
		c := p.Board.Cells[sq]
		h ^= pieceKey(c.Piece, sq)
		if c.Item != ItemNone {
			h ^= zobristItems[c.Item][sq]
		}
	}
	if p.EnPassant.Valid() {
		h ^= zobristEP[p.EnPassant]
	}
	if p.ToMove == Black {
		h ^= zobristSide
	}
	return h
}
