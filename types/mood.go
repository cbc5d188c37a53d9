package types

import "time"

type MoodEntry struct {
	ID          string    `json:"id,omitempty"`
	UserID      string    `json:"user_id"`
	MoodScore   int       `json:"mood_score"`
	EnergyLevel *int      `json:"energy_level,omitempty"`
	StressLevel *int      `json:"stress_level,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	TrackedAt   time.Time `json:"tracked_at"`
}

// MoodPoint is one point of the mood line chart.
type MoodPoint struct {
	Date      string    `json:"date"`
	TrackedAt time.Time `json:"tracked_at"`
	Score     int       `json:"score"`
}
