package anvilchess

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Encode writes a FEN-like string: ranks 8 to 1 joined by '/', digits for
// empty runs, '#' anvil, '*' shroom. A piece letter may carry "[level]",
// "{shield}" and a trailing apostrophe once it has moved. Then the side to
// move and the en passant target.
//
//	rnbqkbnr/pppppppp/8/8/4P'3/8/PPPP1PPP/RNBQKBNR b e3
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := Ranks - 1; r >= 0; r-- {
		if r < Ranks-1 {
			sb.WriteByte('/')
		}
		empty := 0
		for f := 0; f < Files; f++ {
			c := p.Board.Cells[indexOf(r, f)]
			if c.Piece.IsEmpty() && c.Item == ItemNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			switch {
			case !c.Piece.IsEmpty():
				sb.WriteString(encodePiece(c.Piece))
			case c.Item == Anvil:
				sb.WriteByte('#')
			default:
				sb.WriteByte('*')
			}
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if p.ToMove == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())
	return sb.String()
}

func encodePiece(pc Piece) string {
	s := pieceRune(pc)
	if pc.Level > 1 {
		s += "[" + strconv.Itoa(pc.Level) + "]"
	}
	if pc.Shield > 0 {
		s += "{" + strconv.Itoa(pc.Shield) + "}"
	}
	if pc.HasMoved {
		s += "'"
	}
	return s
}

var ErrInvalidFEN = errors.New("invalid FEN")

// DecodePosition parses Encode's format. The en passant field may be omitted.
// Pieces get fresh identities.
func DecodePosition(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("%w: want 2 or 3 fields, got %d", ErrInvalidFEN, len(parts))
	}
	ranks := strings.Split(parts[0], "/")
	if len(ranks) != Ranks {
		return nil, fmt.Errorf("%w: want %d ranks, got %d", ErrInvalidFEN, Ranks, len(ranks))
	}
	var b Board
	for i, row := range ranks {
		r := Ranks - 1 - i
		if err := decodeRank(&b, r, row); err != nil {
			return nil, err
		}
	}

	pos := &Position{Board: b, EnPassant: NoSquare}
	switch parts[1] {
	case "w":
		pos.ToMove = White
	case "b":
		pos.ToMove = Black
	default:
		return nil, fmt.Errorf("%w: side %q", ErrInvalidFEN, parts[1])
	}
	if len(parts) == 3 {
		ep, err := ParseSquare(parts[2])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
		}
		pos.EnPassant = ep
	}
	return pos, nil
}

func decodeRank(b *Board, r int, row string) error {
	f := 0
	for i := 0; i < len(row); {
		ch := row[i]
		i++
		if ch >= '1' && ch <= '8' {
			f += int(ch - '0')
			if f > Files {
				return fmt.Errorf("%w: rank %d too long", ErrInvalidFEN, r+1)
			}
			continue
		}
		if f >= Files {
			return fmt.Errorf("%w: rank %d too long", ErrInvalidFEN, r+1)
		}
		sq := indexOf(r, f)
		f++
		switch ch {
		case '#':
			b.Cells[sq].Item = Anvil
			continue
		case '*':
			b.Cells[sq].Item = Shroom
			continue
		}
		pt, err := ParsePieceType(string(ch))
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidFEN, ch)
		}
		color := Black
		if ch >= 'A' && ch <= 'Z' {
			color = White
		}
		pc := NewPiece(pt, color)
		level, next, err := bracketed(row, i, '[', ']')
		if err != nil {
			return err
		}
		if level > 0 {
			pc.Level = level
		}
		shield, next, err := bracketed(row, next, '{', '}')
		if err != nil {
			return err
		}
		pc.Shield = shield
		i = next
		if i < len(row) && row[i] == '\'' {
			pc.HasMoved = true
			i++
		}
		b.Cells[sq].Piece = pc
	}
	if f != Files {
		return fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, r+1, f)
	}
	return nil
}

// bracketed reads an optional "<open>number<close>" at row[i:].
func bracketed(row string, i int, lb, rb byte) (int, int, error) {
	if i >= len(row) || row[i] != lb {
		return 0, i, nil
	}
	end := strings.IndexByte(row[i:], rb)
	if end < 0 {
		return 0, i, fmt.Errorf("%w: unclosed %q", ErrInvalidFEN, lb)
	}
	n, err := strconv.Atoi(row[i+1 : i+end])
	if err != nil || n < 1 {
		return 0, i, fmt.Errorf("%w: bad number %q", ErrInvalidFEN, row[i+1:i+end])
	}
	return n, i + end + 1, nil
}
