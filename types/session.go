package types

import "time"

// Session is one counseling session row in ai_sessions.
type Session struct {
	ID              string     `json:"id,omitempty"` // <-- omitempty is critical
	UserID          string     `json:"user_id"`
	PersonaType     string     `json:"persona_type"`
	Status          string     `json:"status"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	DurationSeconds *int       `json:"duration_seconds,omitempty"`
	MoodBefore      *int       `json:"mood_before,omitempty"`
	MoodAfter       *int       `json:"mood_after,omitempty"`
	Topics          []string   `json:"topics,omitempty"`
	KeyInsights     []string   `json:"key_insights,omitempty"`
	Notes           *string    `json:"session_notes,omitempty"`
}

// SessionCompletion is the patch written when a session ends.
type SessionCompletion struct {
	Status          string    `json:"status"`
	EndedAt         time.Time `json:"ended_at"`
	DurationSeconds int       `json:"duration_seconds"`
}

// SessionRow is a history list entry.
type SessionRow struct {
	ID              string    `json:"id"`
	PersonaType     string    `json:"persona_type"`
	PersonaName     string    `json:"persona_name"`
	Status          string    `json:"status"`
	StartedAt       time.Time `json:"started_at"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	Topics          []string  `json:"topics,omitempty"`
	KeyInsights     []string  `json:"key_insights,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

type GetSessionsResponse struct {
	Success  bool         `json:"success"`
	Sessions []SessionRow `json:"sessions"`
	Total    int          `json:"total"`
}
