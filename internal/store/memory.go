package store

import (
	"sync"

	"clarity/internal/domain"
)

// MemoryStore is an in-memory ports.StateStore used in tests and as a
// fallback when the durable store cannot be opened.
type MemoryStore struct {
	mu       sync.Mutex
	profile  *domain.Profile
	sessions []domain.Session
	usedIDs  []string
}

func NewMemory() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Profile() (*domain.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return nil, nil
	}
	copied := *m.profile
	copied.Domains = append([]domain.Domain(nil), m.profile.Domains...)
	return &copied, nil
}

func (m *MemoryStore) SaveProfile(profile domain.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	profile.Domains = append([]domain.Domain(nil), profile.Domains...)
	m.profile = &profile
	return nil
}

func (m *MemoryStore) ClearProfile() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = nil
	return nil
}

func (m *MemoryStore) Sessions() ([]domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Session, len(m.sessions))
	copy(out, m.sessions)
	return out, nil
}

func (m *MemoryStore) SaveSession(session domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session.Attempts = append([]domain.Attempt(nil), session.Attempts...)
	for i := range m.sessions {
		if m.sessions[i].ID == session.ID {
			m.sessions[i] = session
			return nil
		}
	}
	m.sessions = append([]domain.Session{session}, m.sessions...)
	return nil
}

func (m *MemoryStore) UsedPromptIDs() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.usedIDs))
	copy(out, m.usedIDs)
	return out, nil
}

func (m *MemoryStore) MarkPromptUsed(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.usedIDs {
		if existing == id {
			return nil
		}
	}
	m.usedIDs = append(m.usedIDs, id)
	return nil
}

func (m *MemoryStore) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = nil
	m.sessions = nil
	m.usedIDs = nil
	return nil
}
