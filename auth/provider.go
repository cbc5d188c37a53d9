package auth

import (
	"clementus360/growth-tracker/config"
	"sync"

	"github.com/sirupsen/logrus"
)

// Listener is called with the new identity, or ok=false after sign-out.
type Listener func(identity Identity, ok bool)

// Provider holds the current identity and notifies listeners when it changes.
type Provider struct {
	mu        sync.Mutex
	current   *Identity
	nextID    int
	listeners map[int]Listener
}

func NewProvider() *Provider {
	return &Provider{listeners: make(map[int]Listener)}
}

// Current returns a snapshot of the signed-in identity.
func (p *Provider) Current() (Identity, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return Identity{}, false
	}
	return *p.current, true
}

// SignIn replaces the current identity with the one carried by accessToken.
func (p *Provider) SignIn(accessToken string) (Identity, error) {
	identity, err := ParseAccessToken(accessToken)
	if err != nil {
		return Identity{}, err
	}

	p.mu.Lock()
	p.current = &identity
	listeners := p.snapshotListeners()
	p.mu.Unlock()

	config.Logger.WithFields(logrus.Fields{"user_id": identity.UserID}).Info("Signed in")
	for _, l := range listeners {
		l(identity, true)
	}
	return identity, nil
}

func (p *Provider) SignOut() {
	p.mu.Lock()
	if p.current == nil {
		p.mu.Unlock()
		return
	}
	p.current = nil
	listeners := p.snapshotListeners()
	p.mu.Unlock()

	config.Logger.Info("Signed out")
	for _, l := range listeners {
		l(Identity{}, false)
	}
}

// Subscribe registers l for identity changes and returns a function that removes it.
func (p *Provider) Subscribe(l Listener) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.listeners[id] = l

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.listeners, id)
	}
}

// listeners run outside the lock so they may call Current
func (p *Provider) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(p.listeners))
	for _, l := range p.listeners {
		out = append(out, l)
	}
	return out
}
