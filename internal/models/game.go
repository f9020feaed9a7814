package models

import (
	"math/rand"
	"sync"
	"time"
)

// Game is the authoritative state for one room. All mutation happens with
// the write lock held for a full read-modify-write-snapshot cycle; no action
// observes a partially applied mutation from another session.
type Game struct {
	Code string

	PresenterID      string // at most one; empty until a presenter joins
	PresenterSession string
	PresenterOnline  bool

	Contestants map[string]*Contestant // contestant ID -> record
	JoinOrder   []string               // contestant IDs; rotation order is join order
	BySession   map[string]string      // session token -> contestant ID

	Round           Round
	ActivePlayerID  string
	CurrentQuestion *Question
	PastQuestions   []string  // append-only, keeps the oracle from repeating itself
	TimerStart      time.Time // zero iff CurrentQuestion is nil
	LastPointerID   string    // round 2: who holds the right to point next
	DecisionPending bool

	// Rng drives random player selection. Injected so tests can seed it.
	Rng *rand.Rand

	mu      sync.RWMutex
	clients map[chan Envelope]ClientInfo // connected sessions, guarded by mu
}

// ClientInfo describes one connected session for broadcast routing
type ClientInfo struct {
	SessionID string
	Role      Role
}

// NewGame creates an empty game in the lobby phase
func NewGame(code string, rng *rand.Rand) *Game {
	return &Game{
		Code:        code,
		Contestants: make(map[string]*Contestant),
		BySession:   make(map[string]string),
		Round:       RoundLobby,
		Rng:         rng,
		clients:     make(map[chan Envelope]ClientInfo),
	}
}

// Lock acquires the game's write lock
func (g *Game) Lock() {
	g.mu.Lock()
}

// Unlock releases the game's write lock
func (g *Game) Unlock() {
	g.mu.Unlock()
}

// RLock acquires the game's read lock
func (g *Game) RLock() {
	g.mu.RLock()
}

// RUnlock releases the game's read lock
func (g *Game) RUnlock() {
	g.mu.RUnlock()
}

// AddClient registers a connected session (must be called with lock held)
func (g *Game) AddClient(client chan Envelope, info ClientInfo) {
	if g.clients == nil {
		g.clients = make(map[chan Envelope]ClientInfo)
	}
	g.clients[client] = info
}

// RemoveClient unregisters a session (must be called with lock held)
func (g *Game) RemoveClient(client chan Envelope) {
	delete(g.clients, client)
}

// SetClientInfo updates a registered session's role binding (lock held)
func (g *Game) SetClientInfo(client chan Envelope, info ClientInfo) {
	if _, ok := g.clients[client]; ok {
		g.clients[client] = info
	}
}

// Clients returns a copy of the connected session map (lock held)
func (g *Game) Clients() map[chan Envelope]ClientInfo {
	clients := make(map[chan Envelope]ClientInfo, len(g.clients))
	for ch, info := range g.clients {
		clients[ch] = info
	}
	return clients
}

// ClientCount returns the number of connected sessions (lock held)
func (g *Game) ClientCount() int {
	return len(g.clients)
}
