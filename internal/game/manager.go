package game

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"anvilchess/internal/anvilchess"
)

var ErrGameNotFound = errors.New("game not found")

// Manager keeps games in memory, keyed by a random ID.
type Manager struct {
	mu       sync.RWMutex
	games    map[string]*GameState
	watchers map[string][]chan Update
}

func NewManager() *Manager {
	return &Manager{
		games:    make(map[string]*GameState),
		watchers: make(map[string][]chan Update),
	}
}

// NewGame starts from the initial position.
func (m *Manager) NewGame(rng anvilchess.Rand) *GameState {
	return m.NewGameFrom(anvilchess.NewInitialPosition(), rng)
}

func (m *Manager) NewGameFrom(pos *anvilchess.Position, rng anvilchess.Rand) *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	g := newGameState(uuid.NewString(), pos, rng)
	m.games[g.ID] = g
	return g
}

// Play applies a move to the game with the given ID and notifies its
// watchers.
func (m *Manager) Play(id string, mv anvilchess.Move, rng anvilchess.Rand) (anvilchess.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return anvilchess.Result{}, ErrGameNotFound
	}
	res, err := g.Play(mv, rng)
	if err != nil {
		return res, err
	}
	m.broadcast(newUpdate(g, mv, res))
	return res, nil
}

// View runs fn with the game locked for reading. The *GameState must not be
// retained after fn returns.
func (m *Manager) View(id string, fn func(*GameState)) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return ErrGameNotFound
	}
	fn(g)
	return nil
}

// Delete forgets a game and closes its watchers.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.watchers[id] {
		close(ch)
	}
	delete(m.watchers, id)
	delete(m.games, id)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
