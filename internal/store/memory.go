package store

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
	"sync"

	"github.com/parkerc/last-quiz-standing/internal/models"
)

const (
	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 6

	// RoomCodeChars excludes ambiguous characters
	RoomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// GameStore holds every live game room, keyed by room code
type GameStore struct {
	games map[string]*models.Game
	mu    sync.RWMutex
}

// NewGameStore creates an empty game store
func NewGameStore() *GameStore {
	return &GameStore{
		games: make(map[string]*models.Game),
	}
}

// Get retrieves a game by room code
func (s *GameStore) Get(code string) (*models.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, exists := s.games[code]
	return g, exists
}

// Set stores a game
func (s *GameStore) Set(code string, g *models.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[code] = g
}

// Delete removes a game
func (s *GameStore) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, code)
}

// Exists checks if a room code is taken
func (s *GameStore) Exists(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.games[code]
	return exists
}

// UniqueCode generates a room code no live game is using
func (s *GameStore) UniqueCode() string {
	for {
		code := GenerateRoomCode()
		if !s.Exists(code) {
			return code
		}
	}
}

// GenerateRoomCode creates a random room code
func GenerateRoomCode() string {
	code := make([]byte, RoomCodeLength)
	for i := 0; i < RoomCodeLength; i++ {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(RoomCodeChars))))
		if err != nil {
			// fallback to math/rand if crypto fails
			code[i] = RoomCodeChars[rand.Intn(len(RoomCodeChars))]
			continue
		}
		code[i] = RoomCodeChars[n.Int64()]
	}
	return string(code)
}
