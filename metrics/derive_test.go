package metrics

import (
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/types"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 17, 15, 30, 0, 0, time.UTC)

func intp(v int) *int { return &v }

func completed(startedAt time.Time, seconds int) types.Session {
	return types.Session{
		PersonaType:     config.PersonaCounselor,
		Status:          config.SessionCompleted,
		StartedAt:       startedAt,
		DurationSeconds: intp(seconds),
	}
}

func inProgress(startedAt time.Time) types.Session {
	return types.Session{
		PersonaType: config.PersonaCoach,
		Status:      config.SessionInProgress,
		StartedAt:   startedAt,
	}
}

func daysAgo(n int) time.Time {
	return now.AddDate(0, 0, -n)
}

func TestSessionCount_CountsEveryStatus(t *testing.T) {
	sessions := []types.Session{completed(daysAgo(1), 60), inProgress(daysAgo(0))}
	assert.Equal(t, 2, SessionCount(sessions))
	assert.Equal(t, 0, SessionCount(nil))
}

func TestCompletedSessionDuration(t *testing.T) {
	sessions := []types.Session{completed(daysAgo(2), 300)}
	total := CompletedSessionDuration(sessions)
	assert.Equal(t, 300, total)

	// adding in-progress sessions leaves the total unchanged
	sessions = append(sessions, inProgress(daysAgo(1)), inProgress(daysAgo(0)))
	assert.Equal(t, total, CompletedSessionDuration(sessions))

	// adding completed sessions never decreases it
	for _, d := range []int{0, 45, 1200} {
		sessions = append(sessions, completed(daysAgo(0), d))
		next := CompletedSessionDuration(sessions)
		assert.GreaterOrEqual(t, next, total)
		total = next
	}
	assert.Equal(t, 1545, total)
}

func TestCompletedSessionDuration_AbsentDurationIsNotZeroed(t *testing.T) {
	broken := types.Session{Status: config.SessionCompleted, StartedAt: daysAgo(0)}
	sessions := []types.Session{completed(daysAgo(1), 120), broken}
	assert.Equal(t, 120, CompletedSessionDuration(sessions))
}

func TestCurrentStreak(t *testing.T) {
	sessions := []types.Session{
		completed(daysAgo(0), 60),
		completed(daysAgo(1), 60),
		completed(daysAgo(2), 60),
	}
	assert.Equal(t, 3, CurrentStreak(sessions, now))

	// a session after the gap at today-3 does not extend the streak
	sessions = append(sessions, completed(daysAgo(4), 60))
	assert.Equal(t, 3, CurrentStreak(sessions, now))
}

func TestCurrentStreak_Empty(t *testing.T) {
	assert.Equal(t, 0, CurrentStreak(nil, now))
}

func TestCurrentStreak_IgnoresInProgress(t *testing.T) {
	sessions := []types.Session{
		completed(daysAgo(0), 60),
		inProgress(daysAgo(1)),
		completed(daysAgo(2), 60),
	}
	assert.Equal(t, 1, CurrentStreak(sessions, now))
	assert.Equal(t, 0, CurrentStreak([]types.Session{inProgress(daysAgo(0))}, now))
}

func TestCurrentStreak_MultipleSessionsSameDay(t *testing.T) {
	morning := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)
	sessions := []types.Session{
		completed(morning, 60),
		completed(morning.Add(4*time.Hour), 60),
		completed(morning.AddDate(0, 0, -1), 60),
	}
	assert.Equal(t, 2, CurrentStreak(sessions, now))
}

func TestCurrentStreak_TodayNotYetDone(t *testing.T) {
	sessions := []types.Session{
		completed(daysAgo(1), 60),
		completed(daysAgo(2), 60),
	}
	assert.Equal(t, 2, CurrentStreak(sessions, now))

	// two days without a session break it
	sessions = []types.Session{completed(daysAgo(2), 60), completed(daysAgo(3), 60)}
	assert.Equal(t, 0, CurrentStreak(sessions, now))
}

func TestCurrentStreak_UsesNowLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	localNow := time.Date(2026, 10, 17, 8, 0, 0, 0, tokyo)
	// 23:30 UTC on the 16th is the 17th in Tokyo
	sessions := []types.Session{
		completed(time.Date(2026, 10, 16, 23, 30, 0, 0, time.UTC), 60),
		completed(time.Date(2026, 10, 16, 1, 0, 0, 0, time.UTC), 60),
	}
	assert.Equal(t, 2, CurrentStreak(sessions, localNow))
}

func TestGoalsCompletedCount(t *testing.T) {
	goals := []types.Goal{
		{Title: "run", Status: config.GoalCompleted},
		{Title: "read", Status: config.GoalActive},
		{Title: "save", Status: config.GoalCompleted},
	}
	assert.Equal(t, 2, GoalsCompletedCount(goals))
	assert.Equal(t, 0, GoalsCompletedCount(nil))
	assert.Len(t, ActiveGoals(goals), 1)
}

func mood(score int, at time.Time) types.MoodEntry {
	return types.MoodEntry{MoodScore: score, TrackedAt: at}
}

func TestAverageMood(t *testing.T) {
	assert.Equal(t, 0.0, AverageMood(nil, 30))
	assert.Equal(t, 0.0, AverageMood([]types.MoodEntry{}, 30))

	entries := []types.MoodEntry{
		mood(2, daysAgo(3)),
		mood(6, daysAgo(2)),
		mood(8, daysAgo(1)),
		mood(7, daysAgo(0)),
	}
	assert.InDelta(t, 5.75, AverageMood(entries, 30), 1e-9)
	// only the three most recent
	assert.InDelta(t, 7.0, AverageMood(entries, 3), 1e-9)
}

func TestAverageMood_WindowUsesTrackedAtNotInputOrder(t *testing.T) {
	entries := []types.MoodEntry{
		mood(10, daysAgo(0)),
		mood(1, daysAgo(5)),
		mood(4, daysAgo(1)),
	}
	assert.InDelta(t, 7.0, AverageMood(entries, 2), 1e-9)
}

func TestAverageEnergy_SkipsAbsentValues(t *testing.T) {
	entries := []types.MoodEntry{
		{MoodScore: 5, EnergyLevel: intp(4), TrackedAt: daysAgo(2)},
		{MoodScore: 5, TrackedAt: daysAgo(1)},
		{MoodScore: 5, EnergyLevel: intp(8), StressLevel: intp(3), TrackedAt: daysAgo(0)},
	}
	avg, ok := AverageEnergy(entries, 30)
	require.True(t, ok)
	assert.InDelta(t, 6.0, avg, 1e-9)

	stress, ok := AverageStress(entries, 30)
	require.True(t, ok)
	assert.InDelta(t, 3.0, stress, 1e-9)

	_, ok = AverageStress(entries[:2], 30)
	assert.False(t, ok)
}

func TestLatestWheelSnapshot_Fallback(t *testing.T) {
	scores, ok := LatestWheelSnapshot(nil, 5)
	assert.False(t, ok)
	assert.Equal(t, []int{5, 5, 5, 5, 5, 5, 5, 5}, scores.Values())
}

func TestLatestWheelSnapshot_ReturnsLatestNotAverage(t *testing.T) {
	day1 := types.NewWheelAssessment("u1", types.UniformWheel(5), nil, daysAgo(9))
	changed := types.UniformWheel(5)
	changed.Career = 8
	day10 := types.NewWheelAssessment("u1", changed, nil, daysAgo(0))

	for _, in := range [][]types.WheelAssessment{{day1, day10}, {day10, day1}} {
		scores, ok := LatestWheelSnapshot(in, 5)
		require.True(t, ok)
		assert.Equal(t, changed, scores)
	}
}

func TestMoodSeries(t *testing.T) {
	entries := []types.MoodEntry{
		mood(7, daysAgo(0)),
		mood(3, daysAgo(2)),
		mood(5, daysAgo(1)),
	}
	series := MoodSeries(entries, 30, time.UTC)
	require.Len(t, series, 3)
	assert.Equal(t, []int{3, 5, 7}, []int{series[0].Score, series[1].Score, series[2].Score})
	assert.Equal(t, "2026-10-15", series[0].Date)
	assert.Equal(t, "2026-10-17", series[2].Date)

	recent := MoodSeries(entries, 2, time.UTC)
	require.Len(t, recent, 2)
	assert.Equal(t, 5, recent[0].Score)
	assert.Equal(t, 7, recent[1].Score)

	assert.Empty(t, MoodSeries(nil, 30, time.UTC))
}

func TestMoodSeries_StableOnDuplicateTimestamps(t *testing.T) {
	at := daysAgo(1)
	entries := []types.MoodEntry{
		{ID: "a", MoodScore: 2, TrackedAt: at},
		{ID: "b", MoodScore: 9, TrackedAt: at},
		{ID: "c", MoodScore: 4, TrackedAt: at},
		{ID: "d", MoodScore: 6, TrackedAt: daysAgo(2)},
	}
	first := MoodSeries(entries, 30, time.UTC)
	second := MoodSeries(entries, 30, time.UTC)
	assert.Equal(t, first, second)
	assert.Equal(t, []int{6, 2, 9, 4}, []int{first[0].Score, first[1].Score, first[2].Score, first[3].Score})

	// input untouched
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, "d", entries[3].ID)
}

func TestRecentSessions(t *testing.T) {
	sessions := []types.Session{
		completed(daysAgo(3), 60),
		completed(daysAgo(0), 60),
		inProgress(daysAgo(1)),
	}
	top := RecentSessions(sessions, 2)
	require.Len(t, top, 2)
	assert.Equal(t, daysAgo(0), top[0].StartedAt)
	assert.Equal(t, daysAgo(1), top[1].StartedAt)

	assert.Len(t, RecentSessions(sessions, 10), 3)
	assert.Empty(t, RecentSessions(nil, 5))
	assert.Equal(t, daysAgo(3), sessions[0].StartedAt)
}
