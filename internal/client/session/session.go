// Package session persists the single signed-in user session.
package session

import (
	"context"
	"sync"
)

// Session is the token triple and identity obtained at login.
type Session struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Store holds at most one session. Read returns (nil, nil) when nothing
// usable is stored.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Read(ctx context.Context) (*Session, error)
	Clear(ctx context.Context) error
}

// MemoryStore keeps the session in process memory only.
type MemoryStore struct {
	mu sync.RWMutex
	s  *Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s == nil {
		m.s = nil
		return nil
	}
	cp := *s
	m.s = &cp
	return nil
}

func (m *MemoryStore) Read(_ context.Context) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.s == nil {
		return nil, nil
	}
	cp := *m.s
	return &cp, nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	m.s = nil
	m.mu.Unlock()
	return nil
}

// Tokens exposes the stored ID token to the request layer. A missing
// session yields an empty token.
type Tokens struct {
	Store Store
}

func (t Tokens) IDToken(ctx context.Context) (string, error) {
	s, err := t.Store.Read(ctx)
	if err != nil || s == nil {
		return "", err
	}
	return s.IDToken, nil
}
