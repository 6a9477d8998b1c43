package game

import (
	"errors"
	"fmt"
	"time"

	"anvilchess/internal/anvilchess"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrIllegalMove = errors.New("illegal move")
)

// newGameState starts a game from pos. rng schedules the first shroom.
func newGameState(id string, pos *anvilchess.Position, rng anvilchess.Rand) *GameState {
	now := time.Now()
	g := &GameState{
		ID:           id,
		Pos:          pos,
		NextShroom:   anvilchess.NextShroomInterval(rng),
		FirstCapture: true,
		Repetition:   anvilchess.NewRepetitionTable(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	g.Repetition.Record(pos.Hash())
	return g
}

// Play runs one turn: the move and its bookkeeping, item drops, and the
// end-of-game checks. An extra turn leaves the same side to move.
func (g *GameState) Play(m anvilchess.Move, rng anvilchess.Rand) (anvilchess.Result, error) {
	if g.Over() {
		return anvilchess.Result{}, ErrGameOver
	}
	mover := g.Pos.ToMove
	opp := mover.Opposite()
	ctx := anvilchess.MoveContext{
		Rand:         rng,
		Graveyard:    g.Graveyard[mover],
		FirstCapture: g.FirstCapture,
	}
	next, res, ok := g.Pos.Play(m, ctx)
	if !ok {
		return res, fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}

	g.bury(res)
	for _, ev := range res.Resurrections() {
		g.Graveyard[mover] = removePiece(g.Graveyard[mover], ev.Source)
	}

	kills := res.Kills()
	extra := res.ExtraTurn
	if kills > 0 {
		g.FirstCapture = false
		g.Streak[mover] += kills
		if g.Streak[mover] >= StreakForExtraTurn {
			g.Streak[mover] = 0
			extra = true
		}
	} else {
		g.Streak[mover] = 0
	}

	if extra {
		next.ToMove = mover
	}
	g.Pos = next
	g.Ply++
	g.UpdatedAt = time.Now()

	switch {
	case res.InfiltrationWin:
		g.finish(winner(mover), ReasonInfiltration)
		return res, nil
	case res.SelfCheckByPushBack:
		g.finish(winner(opp), ReasonPushBackCheck)
		return res, nil
	case next.Board.IsAutoCheckmate(mover, extra):
		g.finish(winner(mover), ReasonAutoCheckmate)
		return res, nil
	}

	g.dropItems(rng)

	if g.Repetition.Record(g.Pos.Hash()) >= anvilchess.RepetitionThreshold {
		g.finish(Draw, ReasonRepetition)
		return res, nil
	}
	switch g.Pos.Board.Status(g.Pos.ToMove, g.Pos.EnPassant) {
	case anvilchess.StatusCheckmate:
		g.finish(winner(g.Pos.ToMove.Opposite()), ReasonCheckmate)
	case anvilchess.StatusStalemate:
		g.finish(Draw, ReasonStalemate)
	}
	return res, nil
}

func (g *GameState) finish(o Outcome, reason string) {
	g.Outcome = o
	g.Reason = reason
}

// bury files taken pieces under their owner. Infiltrator victims are gone
// for good.
func (g *GameState) bury(res anvilchess.Result) {
	if res.Captured != nil && !res.Obliterated {
		c := res.Captured.Color
		g.Graveyard[c] = append(g.Graveyard[c], *res.Captured)
	}
	for _, pc := range res.Destroyed {
		g.Graveyard[pc.Color] = append(g.Graveyard[pc.Color], pc)
	}
}

// dropItems spawns an anvil every AnvilInterval plies and a shroom whenever
// the shroom countdown runs out.
func (g *GameState) dropItems(rng anvilchess.Rand) {
	if g.Ply%anvilchess.AnvilInterval == 0 {
		g.Pos.Board, _ = g.Pos.Board.SpawnAnvil(rng)
	}
	if g.Ply >= g.NextShroom {
		g.Pos.Board, _ = g.Pos.Board.SpawnShroom(rng)
		g.NextShroom = g.Ply + anvilchess.NextShroomInterval(rng)
	}
}

func removePiece(pool []anvilchess.Piece, pc anvilchess.Piece) []anvilchess.Piece {
	for i, p := range pool {
		if p.ID == pc.ID {
			return append(pool[:i:i], pool[i+1:]...)
		}
	}
	return pool
}
