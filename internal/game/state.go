package game

import (
	"time"

	"anvilchess/internal/anvilchess"
)

type Outcome int8

const (
	Ongoing Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "white"
	case BlackWins:
		return "black"
	case Draw:
		return "draw"
	}
	return "ongoing"
}

func winner(c anvilchess.Color) Outcome {
	if c == anvilchess.White {
		return WhiteWins
	}
	return BlackWins
}

// Reasons a game ended.
const (
	ReasonCheckmate     = "checkmate"
	ReasonStalemate     = "stalemate"
	ReasonRepetition    = "repetition"
	ReasonInfiltration  = "infiltration"
	ReasonPushBackCheck = "push-back self-check"
	ReasonAutoCheckmate = "extra turn with check"
)

// StreakForExtraTurn is the number of kills in consecutive capturing turns
// that earns an extra turn.
const StreakForExtraTurn = 6

// GameState is everything the turn loop carries between moves.
type GameState struct {
	ID  string
	Pos *anvilchess.Position

	// Graveyard[c] holds c's pieces that were taken and may come back.
	Graveyard [2][]anvilchess.Piece
	Streak    [2]int
	Ply       int
	// NextShroom is the ply at which the next shroom drops.
	NextShroom   int
	FirstCapture bool
	Repetition   *anvilchess.RepetitionTable

	Outcome Outcome
	Reason  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Over reports whether the game has a result.
func (g *GameState) Over() bool { return g.Outcome != Ongoing }
