package anvilchess

import (
	"errors"
	"fmt"
	"strings"
)

const (
	Ranks      = 8
	Files      = 8
	NumSquares = Ranks * Files
)

// Square is rank*8+file; rank 0 is White's back rank, file 0 is the a-file.
type Square int8

const NoSquare Square = -1

var ErrInvalidSquare = errors.New("invalid square")

func indexOf(rank, file int) Square { return Square(rank*Files + file) }

func onBoard(rank, file int) bool {
	return rank >= 0 && rank < Ranks && file >= 0 && file < Files
}

func (s Square) Rank() int   { return int(s) / Files }
func (s Square) File() int   { return int(s) % Files }
func (s Square) Valid() bool { return s >= 0 && int(s) < NumSquares }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// ParseSquare converts algebraic notation ("e4") to a Square. "-" and "" map
// to NoSquare.
func ParseSquare(s string) (Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "-" {
		return NoSquare, nil
	}
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return indexOf(int(s[1]-'1'), int(s[0]-'a')), nil
}

// MustSquare is ParseSquare for literals known to be valid.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// pawnDir: White moves up the ranks, Black down.
func pawnDir(c Color) int {
	if c == Black {
		return -1
	}
	return 1
}

func backRank(c Color) int {
	if c == Black {
		return Ranks - 1
	}
	return 0
}

func pawnStartRank(c Color) int { return backRank(c) + pawnDir(c) }

// farRank is the opponent's back rank.
func farRank(c Color) int { return backRank(c.Opposite()) }

// Direction tables, {dRank, dFile}. kingDirs runs clockwise from north.
var (
	rookDirs   = [][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	bishopDirs = [][2]int{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
	kingDirs   = [][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	knightDirs = [][2]int{{2, 1}, {1, 2}, {-1, 2}, {-2, 1}, {-2, -1}, {-1, -2}, {1, -2}, {2, -1}}
	queenDirs  = append(append([][2]int{}, rookDirs...), bishopDirs...)
)

var backRankOrder = [Files]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is an 8x8 grid of cells. It holds no pointers, so assigning a Board
// copies it completely.
type Board struct {
	Cells [NumSquares]Cell `json:"cells"`
}

func NewPiece(pt PieceType, c Color) Piece {
	return Piece{ID: newPieceID(nil), Type: pt, Color: c, Level: 1}
}

// NewInitialBoard returns the standard starting layout, every piece at level 1.
func NewInitialBoard() Board {
	var b Board
	for _, c := range []Color{White, Black} {
		for file, pt := range backRankOrder {
			b.Cells[indexOf(backRank(c), file)].Piece = NewPiece(pt, c)
		}
		for file := 0; file < Files; file++ {
			b.Cells[indexOf(pawnStartRank(c), file)].Piece = NewPiece(Pawn, c)
		}
	}
	return b
}

func (b *Board) At(sq Square) Cell {
	if !sq.Valid() {
		return Cell{}
	}
	return b.Cells[sq]
}

func (b *Board) PieceAt(sq Square) (Piece, bool) {
	pc := b.At(sq).Piece
	return pc, !pc.IsEmpty()
}

func (b *Board) ItemAt(sq Square) Item { return b.At(sq).Item }

// Place puts pc on sq, removing any item there. Used to build positions.
func (b *Board) Place(sq Square, pc Piece) {
	if !sq.Valid() {
		return
	}
	if pc.Level < 1 {
		pc.Level = 1
	}
	b.Cells[sq] = Cell{Piece: pc}
}

// PlaceItem puts an item on sq, removing any piece there.
func (b *Board) PlaceItem(sq Square, it Item) {
	if !sq.Valid() {
		return
	}
	b.Cells[sq] = Cell{Item: it}
}

func (b *Board) Clear(sq Square) {
	if sq.Valid() {
		b.Cells[sq] = Cell{}
	}
}

// isOpen: no piece and nothing that blocks a piece from entering.
func (b *Board) isOpen(sq Square) bool {
	c := b.Cells[sq]
	return c.Piece.IsEmpty() && c.Item != Anvil
}

// FindKing returns NoSquare when color has no king.
func (b *Board) FindKing(color Color) Square {
	for sq := Square(0); sq < NumSquares; sq++ {
		pc := b.Cells[sq].Piece
		if pc.Type == King && pc.Color == color {
			return sq
		}
	}
	return NoSquare
}

// String renders rank 8 at the top, for logs and test failures.
func (b *Board) String() string {
	var sb strings.Builder
	for r := Ranks - 1; r >= 0; r-- {
		for f := 0; f < Files; f++ {
			c := b.Cells[indexOf(r, f)]
			switch {
			case !c.Piece.IsEmpty():
				sb.WriteString(pieceRune(c.Piece))
			case c.Item == Anvil:
				sb.WriteByte('#')
			case c.Item == Shroom:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func pieceRune(pc Piece) string {
	s := pc.Type.String()
	if pc.Color == Black {
		return strings.ToLower(s)
	}
	return s
}
