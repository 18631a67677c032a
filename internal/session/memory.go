package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// Memory is an in-process Store with the same sliding-expiry semantics
// as the Redis implementation. Used in tests and cache-less deployments.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (m *Memory) Create(_ context.Context, userID, schoolID int64) (string, error) {
	token := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[token] = memoryEntry{
		session:   Session{UserID: userID, SchoolID: schoolID},
		expiresAt: m.now().Add(m.ttl),
	}

	return token, nil
}

func (m *Memory) Get(_ context.Context, token string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[token]
	if !ok {
		return Session{}, ErrNotFound
	}

	if m.now().After(entry.expiresAt) {
		delete(m.entries, token)
		return Session{}, ErrNotFound
	}

	entry.expiresAt = m.now().Add(m.ttl)
	m.entries[token] = entry

	return entry.session, nil
}

func (m *Memory) Remove(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, token)

	return nil
}
