package statestore

import (
	"context"
	"sync"
	"time"

	"rosterbot/internal/domain/entities"
	"rosterbot/internal/ports/output"
)

var _ output.ConversationStore = (*Memory)(nil)

// Memory keeps conversations in process memory. State is lost on restart.
type Memory struct {
	mu    sync.RWMutex
	items map[int64]entities.Conversation
}

func NewMemory() *Memory {
	return &Memory{items: make(map[int64]entities.Conversation)}
}

func (m *Memory) Get(_ context.Context, userID int64) (*entities.Conversation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.items[userID]
	if !ok {
		return &entities.Conversation{UserID: userID}, nil
	}
	return &c, nil
}

func (m *Memory) Put(_ context.Context, c *entities.Conversation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[c.UserID] = *c
	return nil
}

func (m *Memory) Clear(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, userID)
	return nil
}

func (m *Memory) Expire(_ context.Context, before time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, c := range m.items {
		if c.UpdatedAt.Before(before) {
			delete(m.items, id)
			n++
		}
	}
	return n, nil
}
