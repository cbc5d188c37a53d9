// Package session drives a single counseling session record from persona
// selection through completion and keeps its elapsed-time counter.
package session

import (
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/types"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

type State int

const (
	Idle State = iota
	PersonaSelected
	Active
	Ended
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PersonaSelected:
		return "persona_selected"
	case Active:
		return "active"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Store is the part of the record store the controller writes to.
type Store interface {
	InsertSession(session types.Session) (types.Session, error)
	CompleteSession(sessionID string, completion types.SessionCompletion) error
}

// Snapshot is a consistent copy of the controller's state.
type Snapshot struct {
	State          State
	Persona        string
	Session        types.Session
	ElapsedSeconds int
	AudioEnabled   bool
	VideoEnabled   bool
	Finalizing     bool
}

// Controller is the session state machine. Its methods are safe for concurrent use;
// the elapsed ticker runs on its own goroutine while the session is Active.
type Controller struct {
	mu    sync.Mutex
	store Store
	clock clockwork.Clock
	log   *logrus.Entry

	state      State
	persona    string
	session    types.Session
	elapsed    int
	lastTick   time.Time
	finalizing bool
	writing    bool
	audio      bool
	video      bool
	stopTicker func()
}

func NewController(store Store, clock clockwork.Clock, userID string) *Controller {
	return &Controller{
		store: store,
		clock: clock,
		log:   config.Logger.WithFields(logrus.Fields{"user_id": userID}),
		audio: true,
		video: true,
	}
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	session := c.session
	session.Topics = slices.Clone(c.session.Topics)
	session.KeyInsights = slices.Clone(c.session.KeyInsights)
	return Snapshot{
		State:          c.state,
		Persona:        c.persona,
		Session:        session,
		ElapsedSeconds: c.elapsed,
		AudioEnabled:   c.audio,
		VideoEnabled:   c.video,
		Finalizing:     c.finalizing,
	}
}

func transitionError(op string, from State) error {
	return fmt.Errorf("%w: cannot %s while %s", types.ErrInvalidTransition, op, from)
}

// SelectPersona records the chosen persona. It touches no store state.
func (c *Controller) SelectPersona(persona string) error {
	if !slices.Contains(config.Personas, persona) {
		return fmt.Errorf("%w: unknown persona %q", types.ErrValidation, persona)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Idle && c.state != PersonaSelected {
		return transitionError("select persona", c.state)
	}
	if c.writing {
		return types.ErrSubmissionInFlight
	}
	c.persona = persona
	c.state = PersonaSelected
	return nil
}

// Start inserts the in-progress session and starts the elapsed counter at zero.
// On a failed insert the controller stays in PersonaSelected.
func (c *Controller) Start() (Snapshot, error) {
	c.mu.Lock()
	if c.state != PersonaSelected {
		defer c.mu.Unlock()
		return c.snapshotLocked(), transitionError("start", c.state)
	}
	if c.writing {
		defer c.mu.Unlock()
		return c.snapshotLocked(), types.ErrSubmissionInFlight
	}
	c.writing = true
	startedAt := c.clock.Now()
	record := types.Session{
		PersonaType: c.persona,
		Status:      config.SessionInProgress,
		StartedAt:   startedAt,
	}
	c.mu.Unlock()

	created, err := c.store.InsertSession(record)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.writing = false
	if err != nil {
		c.log.WithFields(logrus.Fields{"persona": record.PersonaType}).Error("Failed to start session:", err)
		return c.snapshotLocked(), asWriteError(config.CollectionSessions, "insert", err)
	}

	c.session = created
	c.state = Active
	c.elapsed = 0
	c.lastTick = startedAt.Truncate(time.Second)
	c.startTickerLocked()

	c.log.WithFields(logrus.Fields{"session_id": created.ID, "persona": created.PersonaType}).Info("Session started")
	return c.snapshotLocked(), nil
}

// Tick advances the elapsed counter by one second for the discrete second at
// falls in. Repeated ticks within one second, ticks for an earlier second, and
// any tick outside Active (or once End has begun) are ignored.
// It reports whether the counter moved.
func (c *Controller) Tick(at time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tickLocked(at)
}

func (c *Controller) tickLocked(at time.Time) bool {
	if c.state != Active || c.finalizing {
		return false
	}
	second := at.Truncate(time.Second)
	if !second.After(c.lastTick) {
		return false
	}
	c.lastTick = second
	c.elapsed++
	return true
}

// End writes the completion with durationSeconds equal to the elapsed count at
// the moment End is called. The ticker is stopped under the same lock that
// captures the count, so no tick lands between the two. If the write fails the
// session stays Active, the ticker resumes and the caller may retry.
func (c *Controller) End() (Snapshot, error) {
	c.mu.Lock()
	if c.state != Active {
		defer c.mu.Unlock()
		return c.snapshotLocked(), transitionError("end", c.state)
	}
	if c.finalizing {
		defer c.mu.Unlock()
		return c.snapshotLocked(), types.ErrSubmissionInFlight
	}
	c.finalizing = true
	c.stopTickerLocked()
	sessionID := c.session.ID
	completion := types.SessionCompletion{
		Status:          config.SessionCompleted,
		EndedAt:         c.clock.Now(),
		DurationSeconds: c.elapsed,
	}
	c.mu.Unlock()

	err := c.store.CompleteSession(sessionID, completion)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.finalizing = false
	if err != nil {
		c.log.WithFields(logrus.Fields{"session_id": sessionID}).Error("Failed to end session:", err)
		// seconds spent on the failed write still count
		c.catchUpLocked(c.clock.Now())
		c.startTickerLocked()
		return c.snapshotLocked(), asWriteError(config.CollectionSessions, "update", err)
	}

	endedAt := completion.EndedAt
	duration := completion.DurationSeconds
	c.session.Status = completion.Status
	c.session.EndedAt = &endedAt
	c.session.DurationSeconds = &duration
	c.state = Ended

	c.log.WithFields(logrus.Fields{"session_id": sessionID, "duration_seconds": duration}).Info("Session completed")
	return c.snapshotLocked(), nil
}

// catchUpLocked applies one tick per whole second between the last tick and now.
func (c *Controller) catchUpLocked(now time.Time) {
	for s := c.lastTick.Add(time.Second); !s.After(now); s = s.Add(time.Second) {
		c.tickLocked(s)
	}
}

// SetAudioEnabled and SetVideoEnabled are display flags with no persistence.
func (c *Controller) SetAudioEnabled(enabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Active && c.state != Ended {
		return transitionError("toggle audio", c.state)
	}
	c.audio = enabled
	return nil
}

func (c *Controller) SetVideoEnabled(enabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Active && c.state != Ended {
		return transitionError("toggle video", c.state)
	}
	c.video = enabled
	return nil
}

// Close stops the ticker. A session still Active stays in_progress in the store.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTickerLocked()
	if c.state == Active {
		c.log.WithFields(logrus.Fields{"session_id": c.session.ID}).Warn("Closing controller with session still in progress")
	}
}

func (c *Controller) startTickerLocked() {
	c.stopTickerLocked()

	ticker := c.clock.NewTicker(time.Second)
	done := make(chan struct{})
	var once sync.Once
	c.stopTicker = func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}

	go func() {
		for {
			select {
			case <-done:
				return
			case at := <-ticker.Chan():
				c.mu.Lock()
				// a tick already received when the ticker was stopped must not count
				select {
				case <-done:
					c.mu.Unlock()
					return
				default:
				}
				c.tickLocked(at)
				c.mu.Unlock()
			}
		}
	}()
}

func (c *Controller) stopTickerLocked() {
	if c.stopTicker != nil {
		c.stopTicker()
		c.stopTicker = nil
	}
}

func asWriteError(collection, op string, err error) error {
	var writeErr *types.StoreWriteError
	if errors.As(err, &writeErr) || errors.Is(err, types.ErrValidation) {
		return err
	}
	return &types.StoreWriteError{Collection: collection, Op: op, Err: err}
}
