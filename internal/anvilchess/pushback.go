package anvilchess

// pushBack shoves every enemy piece and anvil next to sq one square further
// out, scanning clockwise from north. A push that cannot land is skipped.
func (b *Board) pushBack(sq Square, res *Result) {
	color := b.Cells[sq].Piece.Color
	for _, d := range kingDirs {
		r, f := sq.Rank()+d[0], sq.File()+d[1]
		if !onBoard(r, f) {
			continue
		}
		adj := indexOf(r, f)
		c := b.Cells[adj]
		switch {
		case c.Item == Anvil:
			b.pushAnvil(adj, d, res)
		case !c.Piece.IsEmpty() && c.Piece.Color != color:
			b.pushPiece(adj, d, res)
		}
	}
}

// pushAnvil falls off the edge, crushes whatever non-king piece it lands on,
// and fails against another anvil or a king.
func (b *Board) pushAnvil(from Square, d [2]int, res *Result) {
	r, f := from.Rank()+d[0], from.File()+d[1]
	if !onBoard(r, f) {
		b.Cells[from].Item = ItemNone
		res.Events = append(res.Events, PushEvent{From: from, To: NoSquare, Item: Anvil})
		return
	}
	to := indexOf(r, f)
	land := b.Cells[to]
	if land.Item == Anvil || land.Piece.Type == King {
		return
	}
	if !land.Piece.IsEmpty() {
		res.Destroyed = append(res.Destroyed, land.Piece)
		res.Events = append(res.Events, AnvilCrushEvent{Square: to, Victim: land.Piece})
	}
	b.Cells[from].Item = ItemNone
	b.Cells[to] = Cell{Item: Anvil}
	res.Events = append(res.Events, PushEvent{From: from, To: to, Item: Anvil})
}

// pushPiece only lands on an empty square or a shroom, which it eats.
func (b *Board) pushPiece(from Square, d [2]int, res *Result) {
	r, f := from.Rank()+d[0], from.File()+d[1]
	if !onBoard(r, f) {
		return
	}
	to := indexOf(r, f)
	land := b.Cells[to]
	if land.Item == Anvil || !land.Piece.IsEmpty() {
		return
	}
	pc := b.Cells[from].Piece
	pc.HasMoved = true
	b.Cells[from].Piece = Piece{}
	b.Cells[to] = Cell{Piece: pc, Item: land.Item}
	res.Events = append(res.Events, PushEvent{From: from, To: to, Piece: pc})
	b.eatShroom(to, res)
}
