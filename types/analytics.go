package types

// Dashboard is the summary shown on the dashboard view.
type Dashboard struct {
	TotalSessions  int          `json:"total_sessions"`
	CurrentStreak  int          `json:"current_streak"`
	GoalsCompleted int          `json:"goals_completed"`
	AverageMood    float64      `json:"avg_mood"`
	TotalMinutes   int          `json:"total_minutes"`
	Wheel          WheelScores  `json:"wheel"`
	RecentSessions []SessionRow `json:"recent_sessions"`
}

// RadarSeries is chart input for the Wheel of Life radar.
type RadarSeries struct {
	Labels []string `json:"labels"`
	Max    int      `json:"max"`
	Values []int    `json:"values"`
}

// Progress is the progress view: counts, chart series and active goals.
type Progress struct {
	AssessmentCount int         `json:"assessment_count"`
	ActiveGoalCount int         `json:"active_goal_count"`
	MoodEntryCount  int         `json:"mood_entry_count"`
	HasAssessment   bool        `json:"has_assessment"`
	Wheel           RadarSeries `json:"wheel"`
	Mood            []MoodPoint `json:"mood"`
	ActiveGoals     []Goal      `json:"active_goals"`
}
