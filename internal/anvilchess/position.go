package anvilchess

// Position bundles a board with the state a caller carries between moves.
type Position struct {
	Board     Board
	ToMove    Color
	EnPassant Square
}

func NewInitialPosition() *Position {
	return &Position{Board: NewInitialBoard(), ToMove: White, EnPassant: NoSquare}
}

// Hash is the repetition key of the position.
func (p *Position) Hash() string {
	return p.Board.PositionHash(p.ToMove, p.Board.CastlingRights(), p.EnPassant)
}

// Play applies m for the side to move and returns the resulting position
// together with the move's result. ok is false when m is not legal here.
func (p *Position) Play(m Move, ctx MoveContext) (*Position, Result, bool) {
	if !p.IsLegal(m) {
		return p, Result{Board: p.Board, EnPassant: NoSquare}, false
	}
	ctx.EnPassant = p.EnPassant
	res := p.Board.ApplyMove(m, ctx)
	next := &Position{Board: res.Board, ToMove: p.ToMove.Opposite(), EnPassant: res.EnPassant}
	return next, res, true
}

// IsLegal reports whether m is among the legal moves of the side to move.
func (p *Position) IsLegal(m Move) bool {
	for _, lm := range p.Board.LegalMoves(m.From, p.ToMove, p.EnPassant) {
		if lm.From == m.From && lm.To == m.To && (lm.Type != MovePromotion || lm.PromoteTo == m.PromoteTo) {
			return true
		}
	}
	return false
}
