package anvilchess

import (
	"strconv"
	"strings"
)

// PositionHash is the repetition key: for each square the occupant's colour,
// type and level (or ".."), then the item marker; then side to move,
// castling rights and the en passant target, separated by '|'.
func (b *Board) PositionHash(toMove Color, castling string, ep Square) string {
	var sb strings.Builder
	sb.Grow(NumSquares*4 + 16)
	for sq := Square(0); sq < NumSquares; sq++ {
		c := b.Cells[sq]
		if c.Piece.IsEmpty() {
			sb.WriteString("..")
		} else {
			if c.Piece.Color == White {
				sb.WriteByte('w')
			} else {
				sb.WriteByte('b')
			}
			sb.WriteString(c.Piece.Type.String())
			sb.WriteString(strconv.Itoa(c.Piece.Level))
		}
		switch c.Item {
		case Anvil:
			sb.WriteByte('A')
		case Shroom:
			sb.WriteByte('S')
		default:
			sb.WriteByte('-')
		}
	}
	sb.WriteByte('|')
	if toMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte('|')
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)
	sb.WriteByte('|')
	sb.WriteString(ep.String())
	return sb.String()
}

// CastlingRights derives the usual "KQkq" string from which kings and corner
// rooks have not moved yet; "-" when nobody can castle.
func (b *Board) CastlingRights() string {
	var sb strings.Builder
	for _, c := range []Color{White, Black} {
		king := indexOf(backRank(c), 4)
		for _, side := range []int{1, -1} {
			if b.castlingRook(king, side) == NoSquare || b.Cells[king].Piece.Color != c {
				continue
			}
			letter := byte('K')
			if side < 0 {
				letter = 'Q'
			}
			if c == Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// RepetitionThreshold is how many occurrences of one hash make a draw.
const RepetitionThreshold = 3

// RepetitionTable counts position hashes over a game. The caller owns it and
// records one hash per position reached.
type RepetitionTable struct {
	counts map[string]int
}

func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[string]int)}
}

// Record adds one occurrence of hash and returns the new count.
func (t *RepetitionTable) Record(hash string) int {
	if t.counts == nil {
		t.counts = make(map[string]int)
	}
	t.counts[hash]++
	return t.counts[hash]
}

func (t *RepetitionTable) Count(hash string) int { return t.counts[hash] }

// IsDraw reports whether hash has occurred often enough to end the game.
func (t *RepetitionTable) IsDraw(hash string) bool {
	return t.counts[hash] >= RepetitionThreshold
}

func (t *RepetitionTable) Len() int { return len(t.counts) }
