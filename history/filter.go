package history

import (
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/types"
	"slices"
	"strings"
	"sync"
)

// Filter is the conjunction of a persona filter and a text search.
type Filter struct {
	Persona string // config.PersonaAll or "" matches every persona
	Search  string
}

func (f Filter) matchesPersona(s types.Session) bool {
	if f.Persona == "" || f.Persona == config.PersonaAll {
		return true
	}
	return s.PersonaType == f.Persona
}

// matchesSearch is a case-insensitive substring match against the notes or any topic.
// Absent notes or topics simply do not match.
func (f Filter) matchesSearch(s types.Session) bool {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	if s.Notes != nil && strings.Contains(strings.ToLower(*s.Notes), term) {
		return true
	}
	return slices.ContainsFunc(s.Topics, func(topic string) bool {
		return strings.Contains(strings.ToLower(topic), term)
	})
}

func (f Filter) Match(s types.Session) bool {
	return f.matchesPersona(s) && f.matchesSearch(s)
}

// Apply returns the matching sessions in input order. The result never aliases sessions.
func (f Filter) Apply(sessions []types.Session) []types.Session {
	out := make([]types.Session, 0, len(sessions))
	for _, s := range sessions {
		if f.Match(s) {
			out = append(out, s)
		}
	}
	return out
}

// FilterOptions lists the persona filter values, "all" first.
func FilterOptions() []string {
	return append([]string{config.PersonaAll}, config.Personas...)
}

// Browser keeps the full session collection and recomputes the visible
// sessions from it whenever the collection or either filter input changes.
type Browser struct {
	mu       sync.Mutex
	all      []types.Session
	filter   Filter
	filtered []types.Session
}

func NewBrowser(sessions []types.Session) *Browser {
	b := &Browser{filter: Filter{Persona: config.PersonaAll}}
	b.SetSessions(sessions)
	return b
}

func (b *Browser) SetSessions(sessions []types.Session) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.all = slices.Clone(sessions)
	b.refilterLocked()
}

func (b *Browser) SetPersona(persona string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter.Persona = persona
	b.refilterLocked()
}

func (b *Browser) SetSearch(term string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filter.Search = term
	b.refilterLocked()
}

func (b *Browser) Filter() Filter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filter
}

// Results returns a copy of the visible sessions.
func (b *Browser) Results() []types.Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.filtered)
}

// Total is the size of the unfiltered collection.
func (b *Browser) Total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.all)
}

func (b *Browser) refilterLocked() {
	b.filtered = b.filter.Apply(b.all)
}
