package anvilchess

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Color int8

const (
	NoColor Color = -1
	White   Color = 0
	Black   Color = 1
)

func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

type PieceType int8

const (
	PieceNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	Commander   // pawn that captured a commander or made the first capture
	Hero        // commander that reached the far rank
	Infiltrator // pawn that completed an en passant capture
)

// MaxQueenLevel caps queen levels; every other type is unbounded.
const MaxQueenLevel = 7

var pieceLetters = map[PieceType]byte{
	Pawn:        'P',
	Knight:      'N',
	Bishop:      'B',
	Rook:        'R',
	Queen:       'Q',
	King:        'K',
	Commander:   'C',
	Hero:        'H',
	Infiltrator: 'I',
}

func (pt PieceType) String() string {
	if b, ok := pieceLetters[pt]; ok {
		return string(b)
	}
	return "."
}

// Name is the long lowercase name used in logs and fixtures.
func (pt PieceType) Name() string {
	switch pt {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	case Commander:
		return "commander"
	case Hero:
		return "hero"
	case Infiltrator:
		return "infiltrator"
	}
	return "none"
}

var ErrInvalidPiece = errors.New("invalid piece")

// ParsePieceType accepts a letter ("q") or a name ("queen").
func ParsePieceType(s string) (PieceType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for pt, b := range pieceLetters {
		if s == strings.ToLower(string(b)) || s == pt.Name() {
			return pt, nil
		}
	}
	return PieceNone, fmt.Errorf("%w: %q", ErrInvalidPiece, s)
}

// pawnLineage reports the types that move and attack like pawns.
func pawnLineage(pt PieceType) bool {
	return pt == Pawn || pt == Commander || pt == Infiltrator
}

func knightLike(pt PieceType) bool {
	return pt == Knight || pt == Hero
}

// Piece is a value; the zero Piece is an empty square.
type Piece struct {
	ID       uuid.UUID `json:"id"`
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	Level    int       `json:"level"`
	HasMoved bool      `json:"has_moved"`
	Shield   int       `json:"shield,omitempty"` // invulnerable turns remaining
}

func (p Piece) IsEmpty() bool { return p.Type == PieceNone }

func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	s := p.Type.String()
	if p.Color == Black {
		s = strings.ToLower(s)
	}
	if p.Level > 1 {
		s += fmt.Sprintf("[%d]", p.Level)
	}
	return s
}

// addLevel changes the level by delta, keeping it >= 1 and the queen cap.
func (p *Piece) addLevel(delta int) {
	p.Level += delta
	if p.Level < 1 {
		p.Level = 1
	}
	if p.Type == Queen && p.Level > MaxQueenLevel {
		p.Level = MaxQueenLevel
	}
}

type Item int8

const (
	ItemNone Item = iota
	Anvil         // blocks movement and sight, pushable
	Shroom        // +1 level to whatever steps on it, single use
)

func (it Item) String() string {
	switch it {
	case Anvil:
		return "anvil"
	case Shroom:
		return "shroom"
	}
	return "none"
}

type Cell struct {
	Piece Piece `json:"piece"`
	Item  Item  `json:"item"`
}

type MoveType int8

const (
	MoveNormal MoveType = iota
	MoveCapture
	MoveCastle
	MoveEnPassant
	MovePromotion
	MoveSwap
	MoveSelfDestruct // To == From
)

func (mt MoveType) String() string {
	switch mt {
	case MoveNormal:
		return "move"
	case MoveCapture:
		return "capture"
	case MoveCastle:
		return "castle"
	case MoveEnPassant:
		return "enpassant"
	case MovePromotion:
		return "promotion"
	case MoveSwap:
		return "swap"
	case MoveSelfDestruct:
		return "selfdestruct"
	}
	return "?"
}

type Move struct {
	From      Square    `json:"from"`
	To        Square    `json:"to"`
	Type      MoveType  `json:"type"`
	PromoteTo PieceType `json:"promote_to,omitempty"`
}

func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Type == MovePromotion && m.PromoteTo != PieceNone {
		s += strings.ToLower(m.PromoteTo.String())
	}
	return s
}
