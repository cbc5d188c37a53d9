package supabase

import (
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/types"
	"fmt"

	"github.com/google/uuid"
)

// InsertSession creates the in-progress session row and returns it with its store id.
func (s *Store) InsertSession(session types.Session) (types.Session, error) {
	session.UserID = s.userID
	// Do NOT set ID

	created, err := insertOne(s, config.CollectionSessions, session)
	if err != nil {
		return types.Session{}, err
	}
	if _, err := uuid.Parse(created.ID); err != nil {
		return types.Session{}, &types.StoreWriteError{Collection: config.CollectionSessions, Op: "insert", Err: fmt.Errorf("invalid session id %q: %w", created.ID, err)}
	}
	return created, nil
}

// CompleteSession writes the terminal status, end time and duration.
func (s *Store) CompleteSession(sessionID string, completion types.SessionCompletion) error {
	if _, err := uuid.Parse(sessionID); err != nil {
		return fmt.Errorf("%w: invalid session id %q", types.ErrValidation, sessionID)
	}
	return s.update(config.CollectionSessions, sessionID, completion)
}

// ListSessions returns every session, newest first.
func (s *Store) ListSessions() ([]types.Session, error) {
	var sessions []types.Session
	err := s.query(config.CollectionSessions, Query{OrderBy: "started_at"}, &sessions)
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (s *Store) CountSessions() (int, error) {
	return s.count(config.CollectionSessions, nil)
}
