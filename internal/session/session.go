package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

const (
	// TTL is the fixed session lifetime (one week).
	TTL = 7 * 24 * time.Hour
	// CookieName is the client-held session cookie.
	CookieName = "portfolio_session"
)

// Store tracks authenticated sessions keyed by an opaque token.
type Store interface {
	// Create establishes a session for a user and returns the token.
	Create(ctx context.Context, userID int) (string, error)
	// Get resolves a token to a user id. ok is false for unknown or
	// expired tokens.
	Get(ctx context.Context, token string) (userID int, ok bool, err error)
	// Delete removes a session. Deleting an unknown token is a no-op.
	Delete(ctx context.Context, token string) error
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(buf), nil
}

type memoryEntry struct {
	userID    int
	expiresAt time.Time
}

// Memory is the default in-process session store. Expiry is checked lazily on
// access; there is no background sweep.
type Memory struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	now      func() time.Time
}

// NewMemory returns an empty in-memory session store.
func NewMemory() *Memory {
	return &Memory{
		sessions: make(map[string]memoryEntry),
		now:      time.Now,
	}
}

func (m *Memory) Create(_ context.Context, userID int) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = memoryEntry{
		userID:    userID,
		expiresAt: m.now().Add(TTL),
	}
	return token, nil
}

func (m *Memory) Get(_ context.Context, token string) (int, bool, error) {
	if token == "" {
		return 0, false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.sessions[token]
	if !ok {
		return 0, false, nil
	}
	if m.now().After(entry.expiresAt) {
		delete(m.sessions, token)
		return 0, false, nil
	}
	return entry.userID, true, nil
}

func (m *Memory) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}
