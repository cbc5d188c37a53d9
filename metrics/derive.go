// Package metrics derives dashboard statistics and chart series from record
// collections already fetched for one user. Every function is pure: inputs are
// never mutated and an empty collection yields the documented default.
package metrics

import (
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/types"
	"slices"
	"time"
)

// SessionCount counts every session regardless of status.
func SessionCount(sessions []types.Session) int {
	return len(sessions)
}

func isCompleted(s types.Session) bool {
	return s.Status == config.SessionCompleted
}

// CompletedSessionDuration sums durationSeconds over completed sessions.
// In-progress sessions, including orphaned ones, and absent durations add nothing.
func CompletedSessionDuration(sessions []types.Session) int {
	total := 0
	for _, s := range sessions {
		if !isCompleted(s) || s.DurationSeconds == nil {
			continue
		}
		total += *s.DurationSeconds
	}
	return total
}

// CurrentStreak counts consecutive calendar days in now's location that each hold
// at least one completed session. The walk starts today; when today has no
// completed session yet it starts yesterday, so a streak survives until a full
// day passes without one.
func CurrentStreak(sessions []types.Session, now time.Time) int {
	loc := now.Location()
	days := make(map[string]struct{})
	for _, s := range sessions {
		if !isCompleted(s) {
			continue
		}
		days[dayKey(s.StartedAt.In(loc))] = struct{}{}
	}
	if len(days) == 0 {
		return 0
	}

	day := startOfDay(now)
	if _, ok := days[dayKey(day)]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := days[dayKey(day)]; !ok {
			return streak
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func dayKey(t time.Time) string {
	return t.Format(time.DateOnly)
}

// GoalsCompletedCount counts goals with status completed.
func GoalsCompletedCount(goals []types.Goal) int {
	n := 0
	for _, g := range goals {
		if g.Status == config.GoalCompleted {
			n++
		}
	}
	return n
}

// ActiveGoals returns goals with status active, keeping input order.
func ActiveGoals(goals []types.Goal) []types.Goal {
	out := make([]types.Goal, 0, len(goals))
	for _, g := range goals {
		if g.Status == config.GoalActive {
			out = append(out, g)
		}
	}
	return out
}

// byTrackedAt returns a chronological copy; entries sharing a timestamp keep input order.
func byTrackedAt(entries []types.MoodEntry) []types.MoodEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b types.MoodEntry) int {
		return a.TrackedAt.Compare(b.TrackedAt)
	})
	return sorted
}

// lastN returns the trailing n elements, or all of them when there are fewer.
func lastN[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}

// AverageMood is the mean moodScore over the most recent window entries.
// It returns 0 for an empty collection.
func AverageMood(entries []types.MoodEntry, window int) float64 {
	recent := lastN(byTrackedAt(entries), window)
	if len(recent) == 0 {
		return 0
	}
	sum := 0
	for _, e := range recent {
		sum += e.MoodScore
	}
	return float64(sum) / float64(len(recent))
}

// AverageEnergy is the mean energy level over the window, skipping entries
// without one. ok is false when no entry in the window has a value.
func AverageEnergy(entries []types.MoodEntry, window int) (avg float64, ok bool) {
	return averageOptional(lastN(byTrackedAt(entries), window), func(e types.MoodEntry) *int { return e.EnergyLevel })
}

// AverageStress mirrors AverageEnergy for stress levels.
func AverageStress(entries []types.MoodEntry, window int) (avg float64, ok bool) {
	return averageOptional(lastN(byTrackedAt(entries), window), func(e types.MoodEntry) *int { return e.StressLevel })
}

func averageOptional(entries []types.MoodEntry, field func(types.MoodEntry) *int) (float64, bool) {
	sum, n := 0, 0
	for _, e := range entries {
		v := field(e)
		if v == nil {
			continue
		}
		sum += *v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// LatestWheelSnapshot returns the scores of the assessment with the greatest
// assessedAt (the later one in input order on a tie). Without any assessment
// every domain is set to fallback and ok is false.
func LatestWheelSnapshot(assessments []types.WheelAssessment, fallback int) (scores types.WheelScores, ok bool) {
	if len(assessments) == 0 {
		return types.UniformWheel(fallback), false
	}
	latest := assessments[0]
	for _, a := range assessments[1:] {
		if !a.AssessedAt.Before(latest.AssessedAt) {
			latest = a
		}
	}
	return latest.Scores(), true
}

// MoodSeries returns the most recent limit entries as chart points in
// ascending trackedAt order, labelled by calendar date in loc.
func MoodSeries(entries []types.MoodEntry, limit int, loc *time.Location) []types.MoodPoint {
	recent := lastN(byTrackedAt(entries), limit)
	points := make([]types.MoodPoint, 0, len(recent))
	for _, e := range recent {
		points = append(points, types.MoodPoint{
			Date:      e.TrackedAt.In(loc).Format(time.DateOnly),
			TrackedAt: e.TrackedAt,
			Score:     e.MoodScore,
		})
	}
	return points
}

// RecentSessions returns the k latest sessions by startedAt, newest first.
func RecentSessions(sessions []types.Session, k int) []types.Session {
	sorted := slices.Clone(sessions)
	slices.SortStableFunc(sorted, func(a, b types.Session) int {
		return b.StartedAt.Compare(a.StartedAt)
	})
	if k < 0 {
		k = 0
	}
	if len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}
