package database

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/trentd187/players-api/internal/models"
)

// MemoryStore keeps players in a map guarded by a RWMutex.
// Selected with DATABASE_URL=memory:// and used by the router tests.
type MemoryStore struct {
	mu      sync.RWMutex
	players map[string]models.Player
	order   []string // insertion order, so List is stable
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{players: make(map[string]models.Player)}
}

func (s *MemoryStore) ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (s *MemoryStore) List(ctx context.Context) ([]models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := make([]models.Player, 0, len(s.order))
	for _, id := range s.order {
		players = append(players, s.players[id])
	}
	return players, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) Create(ctx context.Context, p *models.Player) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *p
	stored.ID = uuid.NewString()
	s.players[stored.ID] = stored
	s.order = append(s.order, stored.ID)
	return stored.ID, nil
}

func (s *MemoryStore) Update(ctx context.Context, id string, p *models.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[id]; !ok {
		return ErrNotFound
	}
	// id may be a zero-copy view of the request (c.Params); keep our own copy.
	id = strings.Clone(id)
	stored := *p
	stored.ID = id
	s.players[id] = stored
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.players[id]; !ok {
		return ErrNotFound
	}
	delete(s.players, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }
