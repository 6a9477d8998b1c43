package game

import "anvilchess/internal/anvilchess"

// watchBuffer is how many updates a slow watcher may fall behind before
// updates to it are dropped.
const watchBuffer = 16

// Update is broadcast to a game's watchers after every accepted move.
type Update struct {
	GameID  string   `json:"game_id"`
	Ply     int      `json:"ply"`
	Move    string   `json:"move"`
	FEN     string   `json:"fen"`
	ToMove  string   `json:"to_move"`
	Events  []string `json:"events,omitempty"`
	Outcome string   `json:"outcome"`
	Reason  string   `json:"reason,omitempty"`
}

func newUpdate(g *GameState, m anvilchess.Move, res anvilchess.Result) Update {
	u := Update{
		GameID:  g.ID,
		Ply:     g.Ply,
		Move:    m.String(),
		FEN:     g.Pos.Encode(),
		ToMove:  g.Pos.ToMove.String(),
		Outcome: g.Outcome.String(),
		Reason:  g.Reason,
	}
	for _, ev := range res.Events {
		u.Events = append(u.Events, ev.String())
	}
	return u
}

// Watch subscribes to a game's updates. The channel is closed by the returned
// cancel func or when the game is deleted.
func (m *Manager) Watch(id string) (<-chan Update, func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return nil, nil, ErrGameNotFound
	}
	ch := make(chan Update, watchBuffer)
	m.watchers[id] = append(m.watchers[id], ch)
	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.unwatch(id, ch)
	}
	return ch, cancel, nil
}

// unwatch must be called with m.mu held.
func (m *Manager) unwatch(id string, ch chan Update) {
	list := m.watchers[id]
	for i, c := range list {
		if c == ch {
			close(c)
			m.watchers[id] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(m.watchers[id]) == 0 {
		delete(m.watchers, id)
	}
}

// broadcast must be called with m.mu held. Full channels miss the update.
func (m *Manager) broadcast(u Update) {
	for _, ch := range m.watchers[u.GameID] {
		select {
		case ch <- u:
		default:
		}
	}
}
