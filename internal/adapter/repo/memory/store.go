package memory

import (
	"sync"

	"worldseed/internal/app/ports"
)

// Store holds all in-memory state shared by the repos. Repos do not lock;
// TxManager serializes mutating sections around store.mu.
type Store struct {
	mu     sync.RWMutex
	worlds map[string]ports.WorldRecord
}

func NewStore() *Store {
	return &Store{
		worlds: make(map[string]ports.WorldRecord),
	}
}

func (s *Store) SeedWorld(record ports.WorldRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.worlds[record.ID] = record
}
