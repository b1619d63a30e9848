package profile

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MockService implements Service in memory for unit tests.
type MockService struct {
	mu          sync.RWMutex
	profiles    map[string]*Profile
	SignupSongs int
}

// NewMockService creates a new mock service granting one free song on signup.
func NewMockService() *MockService {
	return &MockService{
		profiles:    make(map[string]*Profile),
		SignupSongs: 1,
	}
}

func (m *MockService) Resolve(_ context.Context, uid, email string) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p, exists := m.profiles[uid]; exists {
		cp := *p
		return &cp, nil
	}

	now := time.Now().UTC()
	p := &Profile{
		ID:                 uid,
		Email:              strings.ToLower(strings.TrimSpace(email)),
		FreeSongsRemaining: m.SignupSongs,
		IsPremium:          false,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	m.profiles[uid] = p
	cp := *p
	return &cp, nil
}

func (m *MockService) Get(_ context.Context, uid string) (*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, exists := m.profiles[uid]
	if !exists {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *MockService) Upgrade(_ context.Context, uid string, songs int) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, exists := m.profiles[uid]
	if !exists {
		return nil, ErrNotFound
	}
	p.IsPremium = true
	p.FreeSongsRemaining = songs
	p.UpdatedAt = time.Now().UTC()
	cp := *p
	return &cp, nil
}

// Set stores a profile directly, bypassing Resolve defaults.
func (m *MockService) Set(p *Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.profiles[p.ID] = &cp
}

// Clear removes all profiles (useful for test cleanup).
func (m *MockService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles = make(map[string]*Profile)
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
