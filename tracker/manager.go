package tracker

import (
	"clementus360/growth-tracker/auth"
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/types"
	"sync"

	"github.com/sirupsen/logrus"
)

// Factory builds the tracker for an identity.
type Factory func(identity auth.Identity) (*Tracker, error)

// Manager keeps exactly one tracker for the provider's current identity. On
// every identity change the old tracker is closed and a new one built; a
// tracker is never re-pointed at another user.
type Manager struct {
	mu          sync.Mutex
	factory     Factory
	current     *Tracker
	buildErr    error
	unsubscribe func()
}

func NewManager(provider *auth.Provider, factory Factory) *Manager {
	m := &Manager{factory: factory}
	m.unsubscribe = provider.Subscribe(m.onIdentityChange)
	if identity, ok := provider.Current(); ok {
		m.onIdentityChange(identity, true)
	}
	return m
}

func (m *Manager) onIdentityChange(identity auth.Identity, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		m.current.Close()
		m.current = nil
	}
	m.buildErr = nil
	if !ok {
		return
	}

	t, err := m.factory(identity)
	if err != nil {
		config.Logger.WithFields(logrus.Fields{"user_id": identity.UserID}).Error("Failed to build tracker:", err)
		m.buildErr = err
		return
	}
	m.current = t
}

// Current returns the tracker for the signed-in identity.
func (m *Manager) Current() (*Tracker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.buildErr != nil {
		return nil, m.buildErr
	}
	if m.current == nil {
		return nil, types.ErrNoIdentity
	}
	return m.current, nil
}

func (m *Manager) Close() {
	m.unsubscribe()
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil {
		m.current.Close()
		m.current = nil
	}
}
