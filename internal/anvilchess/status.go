package anvilchess

type Status int8

const (
	StatusOngoing Status = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
)

func (s Status) String() string {
	switch s {
	case StatusCheck:
		return "check"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	}
	return "ongoing"
}

// Status classifies the position for color, who is about to move.
func (b *Board) Status(color Color, ep Square) Status {
	check := b.IsKingInCheck(color)
	moves := b.HasLegalMove(color, ep)
	switch {
	case check && !moves:
		return StatusCheckmate
	case !check && !moves:
		return StatusStalemate
	case check:
		return StatusCheck
	}
	return StatusOngoing
}

func (b *Board) IsCheckmate(color Color, ep Square) bool {
	return b.IsKingInCheck(color) && !b.HasLegalMove(color, ep)
}

func (b *Board) IsStalemate(color Color, ep Square) bool {
	return !b.IsKingInCheck(color) && !b.HasLegalMove(color, ep)
}

// IsAutoCheckmate: mover was granted an extra turn by a move that also put
// the opponent in check, which wins outright.
func (b *Board) IsAutoCheckmate(mover Color, extraTurn bool) bool {
	return extraTurn && b.IsKingInCheck(mover.Opposite())
}
