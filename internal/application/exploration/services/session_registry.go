package services

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/tradeworks/tradeworks-go/internal/domain/trading"
)

// SessionRegistry keeps finished explorations in memory so statistics
// and route queries can run repeatedly against one exploration without
// re-running the search. Sessions live for the process lifetime; nothing
// is persisted.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*trading.Explorer
}

// NewSessionRegistry creates an empty registry
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[uuid.UUID]*trading.Explorer)}
}

// Add stores an explorer and returns its session ID
func (r *SessionRegistry) Add(explorer *trading.Explorer) uuid.UUID {
	id := uuid.New()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = explorer
	return id
}

// Get looks up an explorer by session ID
func (r *SessionRegistry) Get(id uuid.UUID) (*trading.Explorer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	explorer, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("exploration session %s not found", id)
	}
	return explorer, nil
}

// Count returns the number of registered sessions
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
