package anvilchess

import "fmt"

// Event is a side effect reported by ApplyMove. The set of implementations is
// closed; switch on the concrete type.
type Event interface {
	event()
	String() string
}

// ConversionEvent: an adjacent enemy switched to the bishop's colour. Piece is
// the converted piece as it now stands.
type ConversionEvent struct {
	Square Square
	Piece  Piece
}

// AnvilCrushEvent: a pushed anvil landed on Victim.
type AnvilCrushEvent struct {
	Square Square
	Victim Piece
}

// QueenDrainEvent: King's Dominion lowered an opposing queen.
type QueenDrainEvent struct {
	Square   Square
	OldLevel int
	NewLevel int
}

// ResurrectionEvent: Piece came back on Square. Source is the graveyard entry
// it was drawn from, so the caller can drop it from the pool.
type ResurrectionEvent struct {
	Square Square
	Piece  Piece
	Source Piece
}

// PushEvent: the entity on From was shoved to To. To is NoSquare for an anvil
// pushed off the board.
type PushEvent struct {
	From  Square
	To    Square
	Item  Item
	Piece Piece
}

type ShroomEvent struct {
	Square Square
	Piece  Piece
}

// RallyEvent: the capturer on Source raised every piece on Boosted by one.
type RallyEvent struct {
	Source  Square
	Hero    bool
	Boosted []Square
}

type PromotionEvent struct {
	Square Square
	From   PieceType
	To     PieceType
	Level  int
}

type SelfDestructEvent struct {
	Square  Square
	Victims []Piece
	Anvils  []Square
}

func (ConversionEvent) event()   {}
func (AnvilCrushEvent) event()   {}
func (QueenDrainEvent) event()   {}
func (ResurrectionEvent) event() {}
func (PushEvent) event()         {}
func (ShroomEvent) event()       {}
func (RallyEvent) event()        {}
func (PromotionEvent) event()    {}
func (SelfDestructEvent) event() {}

func (e ConversionEvent) String() string {
	return fmt.Sprintf("convert %s %s to %s", e.Square, e.Piece.Type.Name(), e.Piece.Color)
}

func (e AnvilCrushEvent) String() string {
	return fmt.Sprintf("anvil crushes %s on %s", e.Victim, e.Square)
}

func (e QueenDrainEvent) String() string {
	return fmt.Sprintf("queen %s drained %d->%d", e.Square, e.OldLevel, e.NewLevel)
}

func (e ResurrectionEvent) String() string {
	return fmt.Sprintf("resurrect %s on %s", e.Piece.Type.Name(), e.Square)
}

func (e PushEvent) String() string {
	what := e.Piece.String()
	if e.Item != ItemNone {
		what = e.Item.String()
	}
	return fmt.Sprintf("push %s %s->%s", what, e.From, e.To)
}

func (e ShroomEvent) String() string {
	return fmt.Sprintf("shroom %s eaten by %s", e.Square, e.Piece)
}

func (e RallyEvent) String() string {
	return fmt.Sprintf("rally from %s boosts %d", e.Source, len(e.Boosted))
}

func (e PromotionEvent) String() string {
	return fmt.Sprintf("promote %s %s->%s level %d", e.Square, e.From.Name(), e.To.Name(), e.Level)
}

func (e SelfDestructEvent) String() string {
	return fmt.Sprintf("self-destruct %s: %d pieces, %d anvils", e.Square, len(e.Victims), len(e.Anvils))
}
