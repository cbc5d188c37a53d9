package metrics

import (
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/types"
	"fmt"
	"time"
)

// FormatElapsed renders a live timer as mm:ss. Minutes grow past 59.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// DurationMinutes returns whole minutes of a stored duration, or nil when absent.
func DurationMinutes(durationSeconds *int) *int {
	if durationSeconds == nil {
		return nil
	}
	m := *durationSeconds / 60
	return &m
}

func SessionRow(s types.Session) types.SessionRow {
	row := types.SessionRow{
		ID:              s.ID,
		PersonaType:     s.PersonaType,
		PersonaName:     config.PersonaNames[s.PersonaType],
		Status:          s.Status,
		StartedAt:       s.StartedAt,
		DurationMinutes: DurationMinutes(s.DurationSeconds),
		Topics:          s.Topics,
		KeyInsights:     s.KeyInsights,
	}
	if row.PersonaName == "" {
		row.PersonaName = s.PersonaType
	}
	if s.Notes != nil {
		row.Notes = *s.Notes
	}
	return row
}

func SessionRows(sessions []types.Session) []types.SessionRow {
	rows := make([]types.SessionRow, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, SessionRow(s))
	}
	return rows
}

// WheelRadar is radar chart input for scores.
func WheelRadar(scores types.WheelScores) types.RadarSeries {
	return types.RadarSeries{
		Labels: types.WheelLabels,
		Max:    config.MaxScore,
		Values: scores.Values(),
	}
}

// DashboardInput is everything the dashboard is derived from.
type DashboardInput struct {
	Sessions    []types.Session
	Goals       []types.Goal
	MoodEntries []types.MoodEntry
	Assessments []types.WheelAssessment
}

func BuildDashboard(in DashboardInput, settings config.Settings, now time.Time) types.Dashboard {
	wheel, _ := LatestWheelSnapshot(in.Assessments, settings.WheelFallback)
	return types.Dashboard{
		TotalSessions:  SessionCount(in.Sessions),
		CurrentStreak:  CurrentStreak(in.Sessions, now),
		GoalsCompleted: GoalsCompletedCount(in.Goals),
		AverageMood:    AverageMood(in.MoodEntries, settings.MoodWindow),
		TotalMinutes:   CompletedSessionDuration(in.Sessions) / 60,
		Wheel:          wheel,
		RecentSessions: SessionRows(RecentSessions(in.Sessions, settings.RecentSessions)),
	}
}

// ProgressInput is everything the progress view is derived from.
type ProgressInput struct {
	Goals       []types.Goal
	MoodEntries []types.MoodEntry
	Assessments []types.WheelAssessment
}

func BuildProgress(in ProgressInput, settings config.Settings, loc *time.Location) types.Progress {
	wheel, ok := LatestWheelSnapshot(in.Assessments, settings.WheelFallback)
	active := ActiveGoals(in.Goals)
	return types.Progress{
		AssessmentCount: len(in.Assessments),
		ActiveGoalCount: len(active),
		MoodEntryCount:  len(in.MoodEntries),
		HasAssessment:   ok,
		Wheel:           WheelRadar(wheel),
		Mood:            MoodSeries(in.MoodEntries, settings.MoodSeriesLimit, loc),
		ActiveGoals:     active,
	}
}
