package anvilchess

// MoveContext is the ambient state a caller threads between moves.
type MoveContext struct {
	// EnPassant is the target left by the previous move, or NoSquare.
	EnPassant Square
	// Rand drives conversion draws and fresh piece IDs. nil uses the
	// package-level generator.
	Rand Rand
	// Graveyard holds the mover's captured pieces, drawn on by resurrection.
	Graveyard []Piece
	// FirstCapture is set while nobody has captured yet this game.
	FirstCapture bool
}

// Result describes everything one move did. Board is always set; for an
// inconsistent move it is the input board and Applied is false.
type Result struct {
	Board    Board
	Captured *Piece
	// Obliterated: the captor was an infiltrator, so Captured must not be
	// added to any graveyard.
	Obliterated bool
	// Destroyed lists pieces removed by self-destruct or anvil crush.
	Destroyed []Piece
	Events    []Event

	EnPassantCapture     bool
	InfiltratorPromotion bool
	InfiltrationWin      bool
	// EnPassant is the target for the next move.
	EnPassant           Square
	SelfCheckByPushBack bool
	// ExtraTurn is granted by a promotion to level 5 or more.
	ExtraTurn bool
	Applied   bool
}

// Kills counts everything this move removed, for streak bookkeeping.
func (r Result) Kills() int {
	n := len(r.Destroyed)
	if r.Captured != nil {
		n++
	}
	return n
}

func (r Result) Conversions() []ConversionEvent { return eventsOf[ConversionEvent](r.Events) }
func (r Result) AnvilCrushes() []AnvilCrushEvent { return eventsOf[AnvilCrushEvent](r.Events) }
func (r Result) QueenDrains() []QueenDrainEvent { return eventsOf[QueenDrainEvent](r.Events) }
func (r Result) Resurrections() []ResurrectionEvent { return eventsOf[ResurrectionEvent](r.Events) }
func (r Result) Pushes() []PushEvent { return eventsOf[PushEvent](r.Events) }
func (r Result) Promotions() []PromotionEvent { return eventsOf[PromotionEvent](r.Events) }
func (r Result) SelfDestructs() []SelfDestructEvent { return eventsOf[SelfDestructEvent](r.Events) }
func (r Result) Rallies() []RallyEvent { return eventsOf[RallyEvent](r.Events) }
func (r Result) Shrooms() []ShroomEvent { return eventsOf[ShroomEvent](r.Events) }

func eventsOf[T Event](events []Event) []T {
	var out []T
	for _, e := range events {
		if t, ok := e.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// captureGain is the level a capturer earns for each victim type.
func captureGain(pt PieceType) int {
	switch pt {
	case Knight, Bishop, Rook, Hero:
		return 2
	case Queen:
		return 3
	case PieceNone:
		return 0
	}
	return 1
}

// promotionLevel is the starting level of a promoted pawn, by what it took on
// the promoting move.
func promotionLevel(captured *Piece) int {
	if captured == nil {
		return 1
	}
	switch captured.Type {
	case Knight, Bishop:
		return 3
	case Rook, Hero:
		return 4
	case Queen:
		return 5
	}
	return 2
}

// ApplyMove plays m on a copy of b and returns the copy together with every
// side effect. The receiver is never modified.
func (b *Board) ApplyMove(m Move, ctx MoveContext) Result {
	noop := Result{Board: *b, EnPassant: NoSquare}
	if !m.From.Valid() || !m.To.Valid() {
		return noop
	}
	mover := b.Cells[m.From].Piece
	if mover.IsEmpty() {
		return noop
	}
	dest := b.Cells[m.To]
	if dest.Item == Anvil {
		return noop
	}
	rng := ctx.Rand
	if rng == nil {
		rng = globalRand{}
	}

	nb := *b
	res := Result{EnPassant: NoSquare, Applied: true}
	nb.tickShields(mover.Color)
	mover = nb.Cells[m.From].Piece

	// Swap.
	if isSwapPair(mover, dest.Piece) {
		a, o := mover, dest.Piece
		a.HasMoved, o.HasMoved = true, true
		nb.Cells[m.From].Piece = o
		nb.Cells[m.To].Piece = a
		if dest.Item == Shroom {
			nb.eatShroom(m.To, &res)
		}
		res.Board = nb
		return res
	}

	if m.From == m.To {
		if knightLike(mover.Type) && mover.Level >= 5 {
			nb.selfDestruct(m.From, &res)
			res.Board = nb
			return res
		}
		return noop
	}

	if !dest.Piece.IsEmpty() && dest.Piece.Color == mover.Color {
		return noop
	}

	// En passant (forward diagonals only), then an ordinary capture.
	var captured *Piece
	if m.To == ctx.EnPassant && dest.Piece.IsEmpty() && pawnLineage(mover.Type) &&
		mover.Type != Infiltrator && m.To.File() != m.From.File() &&
		m.To.Rank()-m.From.Rank() == pawnDir(mover.Color) {
		if v := nb.enPassantVictim(mover, m.To); v != NoSquare {
			victim := nb.Cells[v].Piece
			captured = &victim
			nb.Cells[v] = Cell{}
			res.EnPassantCapture = true
		}
	}
	if !dest.Piece.IsEmpty() {
		if !CanCapture(mover, dest.Piece) {
			return noop
		}
		victim := dest.Piece
		captured = &victim
	}
	res.Captured = captured

	// Relocate.
	startLevel := mover.Level
	wasMoved := mover.HasMoved
	capturerType := mover.Type
	mover.HasMoved = true
	nb.Cells[m.From] = Cell{}
	nb.Cells[m.To] = Cell{Piece: mover, Item: dest.Item}
	if dest.Item == Shroom {
		nb.eatShroom(m.To, &res)
	}
	p := &nb.Cells[m.To].Piece

	if (p.Type == Pawn || p.Type == Commander) && abs(m.To.Rank()-m.From.Rank()) == 2 && m.To.File() == m.From.File() {
		res.EnPassant = indexOf((m.From.Rank()+m.To.Rank())/2, m.From.File())
	}

	// Castling.
	if p.Type == King && !wasMoved && m.To.Rank() == m.From.Rank() && abs(m.To.File()-m.From.File()) == 2 {
		side := sign(m.To.File() - m.From.File())
		if rookSq := b.castlingRook(m.From, side); rookSq != NoSquare {
			rook := nb.Cells[rookSq].Piece
			rook.HasMoved = true
			land := indexOf(m.To.Rank(), m.To.File()-side)
			item := nb.Cells[land].Item
			nb.Cells[rookSq] = Cell{}
			nb.Cells[land] = Cell{Piece: rook, Item: item}
			if item == Shroom {
				nb.eatShroom(land, &res)
			}
		}
	}

	// Leveling on capture.
	levelBeforeCapture := p.Level
	if captured != nil {
		p.addLevel(captureGain(captured.Type))
		res.Obliterated = capturerType == Infiltrator
		if p.Type == Pawn && !res.EnPassantCapture && m.To.Rank() != farRank(p.Color) &&
			(captured.Type == Commander || ctx.FirstCapture) {
			p.Type = Commander
		}
		switch capturerType {
		case Commander:
			nb.rally(m.To, mover.Color, false, &res)
		case Hero:
			nb.rally(m.To, mover.Color, true, &res)
		}
	}
	captureDelta := p.Level - levelBeforeCapture

	// Promotion.
	nb.promote(m, captured, rng, &res)
	p = &nb.Cells[m.To].Piece
	if p.Type == Infiltrator && m.To.Rank() == farRank(p.Color) {
		res.InfiltrationWin = true
	}

	if capturerType == Rook && startLevel < 4 && p.Level >= 4 {
		nb.resurrect(m.To, p.Color, ctx.Graveyard, rng, &res)
	}

	// King's Dominion.
	if p.Type == King && captureDelta > 0 {
		nb.drainQueens(p.Color.Opposite(), captureDelta, &res)
	}

	if (p.Type == Pawn || p.Type == Commander) && p.Level >= 4 {
		safe := !nb.IsKingInCheck(p.Color)
		nb.pushBack(m.To, &res)
		if safe && nb.IsKingInCheck(p.Color) {
			res.SelfCheckByPushBack = true
		}
	}

	if p.Type == Bishop && p.Level >= 5 {
		nb.convert(m.To, rng, &res)
	}

	res.Board = nb
	return res
}

func isSwapPair(a, b Piece) bool {
	if a.IsEmpty() || b.IsEmpty() || a.Color != b.Color {
		return false
	}
	switch {
	case knightLike(a.Type) && b.Type == Bishop:
		return a.Level >= 4
	case a.Type == Bishop && knightLike(b.Type):
		return a.Level >= 4
	}
	return false
}

// tickShields spends one turn of every shield color owns.
func (b *Board) tickShields(color Color) {
	for sq := range b.Cells {
		pc := &b.Cells[sq].Piece
		if !pc.IsEmpty() && pc.Color == color && pc.Shield > 0 {
			pc.Shield--
		}
	}
}

// eatShroom consumes the shroom under the piece on sq.
func (b *Board) eatShroom(sq Square, res *Result) {
	c := &b.Cells[sq]
	if c.Item != Shroom || c.Piece.IsEmpty() {
		return
	}
	c.Item = ItemNone
	c.Piece.addLevel(1)
	res.Events = append(res.Events, ShroomEvent{Square: sq, Piece: c.Piece})
}

// selfDestruct removes the piece on sq, every adjacent enemy other than the
// king and every adjacent anvil. Invulnerability does not apply.
func (b *Board) selfDestruct(sq Square, res *Result) {
	color := b.Cells[sq].Piece.Color
	b.Cells[sq] = Cell{}
	ev := SelfDestructEvent{Square: sq}
	for _, d := range kingDirs {
		r, f := sq.Rank()+d[0], sq.File()+d[1]
		if !onBoard(r, f) {
			continue
		}
		adj := indexOf(r, f)
		c := &b.Cells[adj]
		if c.Item == Anvil {
			c.Item = ItemNone
			ev.Anvils = append(ev.Anvils, adj)
		}
		if !c.Piece.IsEmpty() && c.Piece.Color != color && c.Piece.Type != King {
			ev.Victims = append(ev.Victims, c.Piece)
			res.Destroyed = append(res.Destroyed, c.Piece)
			c.Piece = Piece{}
		}
	}
	res.Events = append(res.Events, ev)
}

// rally gives +1 to the capturer's allies: pawns only, or everything for a
// hero.
func (b *Board) rally(source Square, color Color, hero bool, res *Result) {
	ev := RallyEvent{Source: source, Hero: hero}
	for sq := Square(0); sq < NumSquares; sq++ {
		pc := &b.Cells[sq].Piece
		if sq == source || pc.IsEmpty() || pc.Color != color {
			continue
		}
		if !hero && pc.Type != Pawn {
			continue
		}
		pc.addLevel(1)
		ev.Boosted = append(ev.Boosted, sq)
	}
	if len(ev.Boosted) > 0 {
		res.Events = append(res.Events, ev)
	}
}

func (b *Board) promote(m Move, captured *Piece, rng Rand, res *Result) {
	pc := b.Cells[m.To].Piece
	from := pc.Type
	switch {
	case res.EnPassantCapture && pc.Type == Pawn:
		pc.Type = Infiltrator
		res.InfiltratorPromotion = true
	case pc.Type == Pawn && m.To.Rank() == farRank(pc.Color):
		pc.Type = promotionTarget(m.PromoteTo)
		pc.Level = promotionLevel(captured)
		if pc.Level >= 5 {
			res.ExtraTurn = true
		}
	case pc.Type == Commander && m.To.Rank() == farRank(pc.Color):
		pc.Type = Hero
	default:
		return
	}
	pc.ID = newPieceID(rng)
	b.Cells[m.To].Piece = pc
	res.Events = append(res.Events, PromotionEvent{Square: m.To, From: from, To: pc.Type, Level: pc.Level})
}

func promotionTarget(pt PieceType) PieceType {
	switch pt {
	case Queen, Rook, Bishop, Knight:
		return pt
	}
	return Queen
}

// drainQueens lowers every queen of color by delta.
func (b *Board) drainQueens(color Color, delta int, res *Result) {
	for sq := Square(0); sq < NumSquares; sq++ {
		pc := &b.Cells[sq].Piece
		if pc.Type != Queen || pc.Color != color {
			continue
		}
		old := pc.Level
		pc.addLevel(-delta)
		if pc.Level != old {
			res.Events = append(res.Events, QueenDrainEvent{Square: sq, OldLevel: old, NewLevel: pc.Level})
		}
	}
}

// convert draws once per adjacent enemy on an item-free square; below one
// half the enemy changes sides with a fresh identity.
func (b *Board) convert(sq Square, rng Rand, res *Result) {
	color := b.Cells[sq].Piece.Color
	for _, d := range kingDirs {
		r, f := sq.Rank()+d[0], sq.File()+d[1]
		if !onBoard(r, f) {
			continue
		}
		adj := indexOf(r, f)
		c := &b.Cells[adj]
		if c.Piece.IsEmpty() || c.Piece.Color == color || c.Piece.Type == King || c.Item != ItemNone {
			continue
		}
		if rng.Float64() >= 0.5 {
			continue
		}
		c.Piece.Color = color
		c.Piece.ID = newPieceID(rng)
		res.Events = append(res.Events, ConversionEvent{Square: adj, Piece: c.Piece})
	}
}
