package httpserver

import (
	"fmt"

	"anvilchess/internal/anvilchess"
	"anvilchess/internal/game"
)

// MoveDTO is a move in algebraic squares, e.g. {"from":"e7","to":"e8","promote":"q"}.
type MoveDTO struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Promote string `json:"promote,omitempty"`
}

func dtoToMove(d MoveDTO) (anvilchess.Move, error) {
	from, err := anvilchess.ParseSquare(d.From)
	if err != nil {
		return anvilchess.Move{}, err
	}
	to, err := anvilchess.ParseSquare(d.To)
	if err != nil {
		return anvilchess.Move{}, err
	}
	if from == anvilchess.NoSquare || to == anvilchess.NoSquare {
		return anvilchess.Move{}, fmt.Errorf("%w: move needs both squares", anvilchess.ErrInvalidSquare)
	}
	m := anvilchess.Move{From: from, To: to}
	if d.Promote != "" {
		pt, err := anvilchess.ParsePieceType(d.Promote)
		if err != nil {
			return anvilchess.Move{}, err
		}
		m.Type, m.PromoteTo = anvilchess.MovePromotion, pt
	}
	return m, nil
}

func moveToDTO(m anvilchess.Move) MoveDTO {
	d := MoveDTO{From: m.From.String(), To: m.To.String()}
	if m.Type == anvilchess.MovePromotion {
		d.Promote = m.PromoteTo.String()
	}
	return d
}

func movesToDTO(ms []anvilchess.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

// NewGameRequest may carry a starting position; empty means the standard one.
type NewGameRequest struct {
	Position string `json:"position,omitempty"`
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

// StateRequest asks for the current position of a game, e.g. after a reload.
type StateRequest struct {
	GameID string `json:"game_id"`
}

// LegalRequest asks for the destinations of the piece on From.
type LegalRequest struct {
	GameID string `json:"game_id"`
	From   string `json:"from"`
}

type LegalResponse struct {
	From         string   `json:"from"`
	Destinations []string `json:"destinations"`
}

type StateResponse struct {
	GameID     string    `json:"game_id"`
	Position   string    `json:"position"`
	ToMove     string    `json:"to_move"`
	Ply        int       `json:"ply"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	// Status is the rules status of the side to move: ongoing, check,
	// checkmate or stalemate.
	Status  string `json:"status"`
	Outcome string `json:"outcome"`
	Reason  string `json:"reason,omitempty"`
}

type PlayResponse struct {
	StateResponse
	Events []string `json:"events,omitempty"`
}

func stateOf(g *game.GameState) StateResponse {
	pos := g.Pos
	resp := StateResponse{
		GameID:   g.ID,
		Position: pos.Encode(),
		ToMove:   pos.ToMove.String(),
		Ply:      g.Ply,
		Status:   pos.Board.Status(pos.ToMove, pos.EnPassant).String(),
		Outcome:  g.Outcome.String(),
		Reason:   g.Reason,
	}
	if g.Over() {
		resp.LegalMoves = []MoveDTO{}
	} else {
		resp.LegalMoves = movesToDTO(pos.Board.AllLegalMoves(pos.ToMove, pos.EnPassant))
	}
	return resp
}
