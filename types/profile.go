package types

import "time"

type CommunicationPreferences struct {
	Notifications bool `json:"notifications"`
}

// Profile is the per-user singleton; ID equals the user id.
type Profile struct {
	ID                       string                   `json:"id"`
	FullName                 *string                  `json:"full_name,omitempty"`
	PersonaPreference        string                   `json:"ai_persona_preference,omitempty"`
	CommunicationPreferences CommunicationPreferences `json:"communication_preferences"`
	MemberSince              *time.Time               `json:"member_since,omitempty"`
	LastActive               *time.Time               `json:"last_active,omitempty"`
}

// ProfileSummary is the profile view with lifetime counts.
type ProfileSummary struct {
	Profile        Profile `json:"profile"`
	TotalSessions  int     `json:"total_sessions"`
	GoalsCompleted int     `json:"goals_completed"`
}
