package tracker

import (
	"clementus360/growth-tracker/session"
	"clementus360/growth-tracker/types"
	"time"
)

// Store is the record store bound to one user, as implemented by supabase.Store.
type Store interface {
	session.Store

	ListSessions() ([]types.Session, error)
	CountSessions() (int, error)

	InsertMoodEntry(entry types.MoodEntry) (types.MoodEntry, error)
	ListMoodEntries(limit int) ([]types.MoodEntry, error)

	InsertWheelAssessment(assessment types.WheelAssessment) (types.WheelAssessment, error)
	ListWheelAssessments() ([]types.WheelAssessment, error)

	InsertGoal(goal types.Goal) (types.Goal, error)
	ListGoals(status string) ([]types.Goal, error)
	CountGoals(status string) (int, error)

	GetProfile() (types.Profile, error)
	UpsertProfile(profile types.Profile) error
	UpdatePreferences(persona string, prefs types.CommunicationPreferences) error
	TouchProfile(at time.Time) error
}
