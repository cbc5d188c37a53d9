package tracker

import (
	"clementus360/growth-tracker/auth"
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/history"
	"clementus360/growth-tracker/metrics"
	"clementus360/growth-tracker/middleware"
	"clementus360/growth-tracker/session"
	"clementus360/growth-tracker/types"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// Result is the outcome of a command.
type Result struct {
	Action string
	// Session is the controller state after a session command.
	Session *session.Snapshot
	// Record is the stored record for inserts.
	Record any
	// RefreshErr is set when the write succeeded but re-reading the collection failed.
	RefreshErr error
}

// collections last read from the store
type cache struct {
	sessions    []types.Session
	moodEntries []types.MoodEntry
	assessments []types.WheelAssessment
	goals       []types.Goal
}

// Tracker is the per-identity workspace: it owns the session controller, runs
// commands and derives the dashboard, progress and history views. A tracker
// never changes identity; build a new one instead.
type Tracker struct {
	identity   auth.Identity
	store      Store
	settings   config.Settings
	loc        *time.Location
	clock      clockwork.Clock
	controller *session.Controller
	handler    middleware.Handler[Result]
	log        *logrus.Entry

	mu     sync.Mutex
	cache  cache
	closed bool
}

func New(identity auth.Identity, store Store, settings config.Settings, clock clockwork.Clock) (*Tracker, error) {
	if identity.UserID == "" {
		return nil, types.ErrNoIdentity
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	loc, err := settings.Location()
	if err != nil {
		return nil, err
	}

	t := &Tracker{
		identity:   identity,
		store:      store,
		settings:   settings,
		loc:        loc,
		clock:      clock,
		controller: session.NewController(store, clock, identity.UserID),
		log:        config.Logger.WithFields(logrus.Fields{"user_id": identity.UserID}),
	}
	t.handler = middleware.Chain(
		middleware.LoggingMiddleware[Result](identity.UserID),
		middleware.AuthMiddleware[Result](t.checkIdentity),
		middleware.SubmitGuardMiddleware[Result](middleware.NewSubmitGuard()),
	)(t.dispatch)
	return t, nil
}

func (t *Tracker) Identity() auth.Identity {
	return t.identity
}

// Session returns the current state of the live session.
func (t *Tracker) Session() session.Snapshot {
	return t.controller.Snapshot()
}

// Close stops the live session ticker. Commands fail with types.ErrNoIdentity afterwards.
func (t *Tracker) Close() {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
	t.controller.Close()
}

func (t *Tracker) checkIdentity() error {
	t.mu.Lock()
	closed := t.closed
	t.mu.Unlock()
	if closed {
		return types.ErrNoIdentity
	}
	if t.identity.Expired(t.clock.Now()) {
		return fmt.Errorf("%w: access token expired", types.ErrNoIdentity)
	}
	return nil
}

func (t *Tracker) now() time.Time {
	return t.clock.Now().In(t.loc)
}

// Execute runs cmd through logging, identity and submit-guard middleware.
func (t *Tracker) Execute(cmd middleware.Command) (Result, error) {
	return t.handler(cmd)
}

func (t *Tracker) dispatch(cmd middleware.Command) (Result, error) {
	result := Result{Action: cmd.Action()}
	if err := validateCommand(cmd, t.now()); err != nil {
		return result, err
	}

	switch c := cmd.(type) {
	case SelectPersona:
		err := t.controller.SelectPersona(c.Persona)
		return t.withSession(result), err

	case StartSession:
		if c.Persona != "" {
			if err := t.controller.SelectPersona(c.Persona); err != nil {
				return t.withSession(result), err
			}
		}
		snap, err := t.controller.Start()
		result.Session = &snap
		if err != nil {
			return result, err
		}
		result.Record = snap.Session
		_, result.RefreshErr = t.Sessions()
		return result, nil

	case EndSession:
		snap, err := t.controller.End()
		result.Session = &snap
		if err != nil {
			return result, err
		}
		result.Record = snap.Session
		_, result.RefreshErr = t.Sessions()
		if err := t.store.TouchProfile(t.clock.Now()); err != nil {
			t.log.Warn("Failed to update last_active:", err)
		}
		return result, nil

	case ToggleAudio:
		err := t.controller.SetAudioEnabled(c.Enabled)
		return t.withSession(result), err

	case ToggleVideo:
		err := t.controller.SetVideoEnabled(c.Enabled)
		return t.withSession(result), err

	case LogMood:
		entry := types.MoodEntry{
			MoodScore:   c.Score,
			EnergyLevel: c.Energy,
			StressLevel: c.Stress,
			Notes:       optional(c.Notes),
			TrackedAt:   t.clock.Now(),
		}
		created, err := t.store.InsertMoodEntry(entry)
		if err != nil {
			return result, err
		}
		result.Record = created
		_, result.RefreshErr = t.MoodEntries()
		return result, nil

	case CreateGoal:
		category := c.Category
		if category == "" {
			category = config.DefaultGoalCategory
		}
		goal := types.Goal{
			Title:              c.Title,
			Description:        optional(c.Description),
			Category:           &category,
			TargetDate:         optional(c.TargetDate),
			ProgressPercentage: 0,
			Status:             config.GoalActive,
		}
		created, err := t.store.InsertGoal(goal)
		if err != nil {
			return result, err
		}
		result.Record = created
		_, result.RefreshErr = t.Goals()
		return result, nil

	case SubmitAssessment:
		assessment := types.NewWheelAssessment(t.identity.UserID, c.Scores, optional(c.Notes), t.clock.Now())
		created, err := t.store.InsertWheelAssessment(assessment)
		if err != nil {
			return result, err
		}
		result.Record = created
		_, result.RefreshErr = t.Assessments()
		return result, nil

	case UpdatePreferences:
		prefs := types.CommunicationPreferences{Notifications: c.Notifications}
		err := t.store.UpdatePreferences(c.Persona, prefs)
		if errors.Is(err, types.ErrNotFound) {
			// no profile row yet
			now := t.clock.Now()
			err = t.store.UpsertProfile(types.Profile{
				PersonaPreference:        c.Persona,
				CommunicationPreferences: prefs,
				MemberSince:              &now,
				LastActive:               &now,
			})
		}
		if err != nil {
			return result, err
		}
		profile, err := t.Profile()
		result.Record = profile.Profile
		result.RefreshErr = err
		return result, nil

	default:
		return result, fmt.Errorf("unsupported command %T", cmd)
	}
}

func (t *Tracker) withSession(r Result) Result {
	snap := t.controller.Snapshot()
	r.Session = &snap
	return r
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Sessions re-reads every session, newest first. On failure it returns the
// last-known collection together with the error.
func (t *Tracker) Sessions() ([]types.Session, error) {
	sessions, err := t.store.ListSessions()
	return refresh(t, config.CollectionSessions, sessions, err, func(c *cache) *[]types.Session { return &c.sessions })
}

// MoodEntries re-reads the recent mood entries, oldest first.
func (t *Tracker) MoodEntries() ([]types.MoodEntry, error) {
	limit := max(t.settings.MoodWindow, t.settings.MoodSeriesLimit)
	entries, err := t.store.ListMoodEntries(limit)
	return refresh(t, config.CollectionMood, entries, err, func(c *cache) *[]types.MoodEntry { return &c.moodEntries })
}

func (t *Tracker) Assessments() ([]types.WheelAssessment, error) {
	assessments, err := t.store.ListWheelAssessments()
	return refresh(t, config.CollectionWheel, assessments, err, func(c *cache) *[]types.WheelAssessment { return &c.assessments })
}

// Goals re-reads goals of every status, newest first.
func (t *Tracker) Goals() ([]types.Goal, error) {
	goals, err := t.store.ListGoals("")
	return refresh(t, config.CollectionGoals, goals, err, func(c *cache) *[]types.Goal { return &c.goals })
}

// refresh replaces the cached collection with fresh, or falls back to the
// cached copy when the read failed.
func refresh[T any](t *Tracker, collection string, fresh []T, err error, field func(*cache) *[]T) ([]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	slot := field(&t.cache)
	if err != nil {
		t.log.WithFields(logrus.Fields{"collection": collection}).Warn("Read failed, using last-known data:", err)
		var readErr *types.StoreReadError
		if !errors.As(err, &readErr) {
			err = &types.StoreReadError{Collection: collection, Err: err}
		}
		return slices.Clone(*slot), err
	}
	*slot = slices.Clone(fresh)
	return fresh, nil
}

// Dashboard derives the dashboard. Collections that fail to load fall back to
// their last-known copy; the joined read errors are returned with the view.
func (t *Tracker) Dashboard() (types.Dashboard, error) {
	sessions, sErr := t.Sessions()
	goals, gErr := t.Goals()
	moods, mErr := t.MoodEntries()
	assessments, aErr := t.Assessments()

	dashboard := metrics.BuildDashboard(metrics.DashboardInput{
		Sessions:    sessions,
		Goals:       goals,
		MoodEntries: moods,
		Assessments: assessments,
	}, t.settings, t.now())
	return dashboard, errors.Join(sErr, gErr, mErr, aErr)
}

func (t *Tracker) Progress() (types.Progress, error) {
	goals, gErr := t.Goals()
	moods, mErr := t.MoodEntries()
	assessments, aErr := t.Assessments()

	progress := metrics.BuildProgress(metrics.ProgressInput{
		Goals:       goals,
		MoodEntries: moods,
		Assessments: assessments,
	}, t.settings, t.loc)
	return progress, errors.Join(gErr, mErr, aErr)
}

// History returns history rows matching f, newest first.
func (t *Tracker) History(f history.Filter) ([]types.SessionRow, error) {
	sessions, err := t.Sessions()
	return metrics.SessionRows(f.Apply(sessions)), err
}

// Browser returns a history browser over the full session collection.
func (t *Tracker) Browser() (*history.Browser, error) {
	sessions, err := t.Sessions()
	return history.NewBrowser(sessions), err
}

// Profile returns the profile with lifetime counts, creating the profile row
// on first use.
func (t *Tracker) Profile() (types.ProfileSummary, error) {
	profile, err := t.store.GetProfile()
	if errors.Is(err, types.ErrNotFound) {
		now := t.clock.Now()
		profile = types.Profile{
			ID:                       t.identity.UserID,
			PersonaPreference:        config.PersonaCounselor,
			CommunicationPreferences: types.CommunicationPreferences{Notifications: true},
			MemberSince:              &now,
			LastActive:               &now,
		}
		err = t.store.UpsertProfile(profile)
	}
	if err != nil {
		return types.ProfileSummary{}, err
	}

	summary := types.ProfileSummary{Profile: profile}
	var errs []error
	if summary.TotalSessions, err = t.store.CountSessions(); err != nil {
		errs = append(errs, err)
	}
	if summary.GoalsCompleted, err = t.store.CountGoals(config.GoalCompleted); err != nil {
		errs = append(errs, err)
	}
	return summary, errors.Join(errs...)
}
