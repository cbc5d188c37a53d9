package tracker

import (
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/types"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

var errStoreDown = errors.New("store unavailable")

var _ Store = (*memoryStore)(nil)

// memoryStore is an in-memory Store. failReads and failWrites make every
// read or write fail; block holds inserts until released.
type memoryStore struct {
	mu          sync.Mutex
	userID      string
	sessions    []types.Session
	moodEntries []types.MoodEntry
	assessments []types.WheelAssessment
	goals       []types.Goal
	profile     *types.Profile

	failReads  bool
	failWrites bool
	inserts    int
	reads      map[string]int

	block   chan struct{}
	entered chan struct{}
}

func newMemoryStore(userID string) *memoryStore {
	return &memoryStore{userID: userID, reads: make(map[string]int)}
}

func (m *memoryStore) setFailReads(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failReads = v
}

func (m *memoryStore) setFailWrites(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrites = v
}

func (m *memoryStore) readCount(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads[collection]
}

func (m *memoryStore) write(collection string) error {
	if m.failWrites {
		return &types.StoreWriteError{Collection: collection, Op: "insert", Err: errStoreDown}
	}
	m.inserts++
	return nil
}

func (m *memoryStore) read(collection string) error {
	m.reads[collection]++
	if m.failReads {
		return &types.StoreReadError{Collection: collection, Err: errStoreDown}
	}
	return nil
}

func (m *memoryStore) waitIfBlocked() {
	m.mu.Lock()
	block, entered := m.block, m.entered
	m.mu.Unlock()
	if block != nil {
		close(entered)
		<-block
	}
}

func (m *memoryStore) InsertSession(s types.Session) (types.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.write(config.CollectionSessions); err != nil {
		return types.Session{}, err
	}
	s.ID = uuid.NewString()
	s.UserID = m.userID
	m.sessions = append(m.sessions, s)
	return s, nil
}

func (m *memoryStore) CompleteSession(id string, c types.SessionCompletion) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrites {
		return &types.StoreWriteError{Collection: config.CollectionSessions, Op: "update", Err: errStoreDown}
	}
	for i := range m.sessions {
		if m.sessions[i].ID == id {
			endedAt, duration := c.EndedAt, c.DurationSeconds
			m.sessions[i].Status = c.Status
			m.sessions[i].EndedAt = &endedAt
			m.sessions[i].DurationSeconds = &duration
			return nil
		}
	}
	return &types.StoreWriteError{Collection: config.CollectionSessions, Op: "update", Err: types.ErrNotFound}
}

func (m *memoryStore) ListSessions() ([]types.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.read(config.CollectionSessions); err != nil {
		return nil, err
	}
	out := slices.Clone(m.sessions)
	slices.SortStableFunc(out, func(a, b types.Session) int { return b.StartedAt.Compare(a.StartedAt) })
	return out, nil
}

func (m *memoryStore) CountSessions() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.read(config.CollectionSessions); err != nil {
		return 0, err
	}
	return len(m.sessions), nil
}

func (m *memoryStore) InsertMoodEntry(e types.MoodEntry) (types.MoodEntry, error) {
	m.waitIfBlocked()
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.write(config.CollectionMood); err != nil {
		return types.MoodEntry{}, err
	}
	e.ID = uuid.NewString()
	e.UserID = m.userID
	m.moodEntries = append(m.moodEntries, e)
	return e, nil
}

func (m *memoryStore) ListMoodEntries(limit int) ([]types.MoodEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.read(config.CollectionMood); err != nil {
		return nil, err
	}
	out := slices.Clone(m.moodEntries)
	slices.SortStableFunc(out, func(a, b types.MoodEntry) int { return a.TrackedAt.Compare(b.TrackedAt) })
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (m *memoryStore) InsertWheelAssessment(a types.WheelAssessment) (types.WheelAssessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.write(config.CollectionWheel); err != nil {
		return types.WheelAssessment{}, err
	}
	a.ID = uuid.NewString()
	a.UserID = m.userID
	m.assessments = append(m.assessments, a)
	return a, nil
}

func (m *memoryStore) ListWheelAssessments() ([]types.WheelAssessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.read(config.CollectionWheel); err != nil {
		return nil, err
	}
	return slices.Clone(m.assessments), nil
}

func (m *memoryStore) InsertGoal(g types.Goal) (types.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.write(config.CollectionGoals); err != nil {
		return types.Goal{}, err
	}
	g.ID = uuid.NewString()
	g.UserID = m.userID
	now := time.Now()
	g.CreatedAt = &now
	m.goals = append([]types.Goal{g}, m.goals...)
	return g, nil
}

func (m *memoryStore) ListGoals(status string) ([]types.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.read(config.CollectionGoals); err != nil {
		return nil, err
	}
	var out []types.Goal
	for _, g := range m.goals {
		if status == "" || g.Status == status {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memoryStore) CountGoals(status string) (int, error) {
	goals, err := m.ListGoals(status)
	return len(goals), err
}

func (m *memoryStore) GetProfile() (types.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.read(config.CollectionProfiles); err != nil {
		return types.Profile{}, err
	}
	if m.profile == nil {
		return types.Profile{}, types.ErrNotFound
	}
	return *m.profile, nil
}

func (m *memoryStore) UpsertProfile(p types.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.write(config.CollectionProfiles); err != nil {
		return err
	}
	p.ID = m.userID
	m.profile = &p
	return nil
}

func (m *memoryStore) UpdatePreferences(persona string, prefs types.CommunicationPreferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.write(config.CollectionProfiles); err != nil {
		return err
	}
	if m.profile == nil {
		return &types.StoreWriteError{Collection: config.CollectionProfiles, Op: "update", Err: types.ErrNotFound}
	}
	m.profile.PersonaPreference = persona
	m.profile.CommunicationPreferences = prefs
	return nil
}

func (m *memoryStore) TouchProfile(at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile == nil {
		return &types.StoreWriteError{Collection: config.CollectionProfiles, Op: "update", Err: types.ErrNotFound}
	}
	m.profile.LastActive = &at
	return nil
}
