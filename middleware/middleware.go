// middleware/middleware.go
package middleware

import (
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/types"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

// Command is a user intent routed through the tracker.
type Command interface {
	// Action names the logical action, e.g. "log_mood". Submissions are guarded per action.
	Action() string
	// Mutates reports whether the command writes to the store.
	Mutates() bool
}

// Handler executes a command and returns its result.
type Handler[R any] func(cmd Command) (R, error)

// Middleware wraps a Handler.
type Middleware[R any] func(next Handler[R]) Handler[R]

// LoggingMiddleware logs each command with its outcome and duration
func LoggingMiddleware[R any](userID string) Middleware[R] {
	return func(next Handler[R]) Handler[R] {
		return func(cmd Command) (R, error) {
			start := time.Now()

			result, err := next(cmd)

			entry := config.Logger.WithFields(logrus.Fields{
				"user_id":  userID,
				"action":   cmd.Action(),
				"duration": time.Since(start).String(),
			})
			switch {
			case err == nil:
				entry.Debug("Command handled")
			case errors.Is(err, types.ErrValidation), errors.Is(err, types.ErrInvalidTransition), errors.Is(err, types.ErrSubmissionInFlight):
				entry.Warn("Command rejected: ", err)
			default:
				entry.Error("Command failed: ", err)
			}
			return result, err
		}
	}
}

// AuthMiddleware rejects commands when check reports the identity is no longer usable
func AuthMiddleware[R any](check func() error) Middleware[R] {
	return func(next Handler[R]) Handler[R] {
		return func(cmd Command) (R, error) {
			if err := check(); err != nil {
				var zero R
				return zero, err
			}
			return next(cmd)
		}
	}
}

// SubmitGuard allows one mutating command per action in flight. A second
// submission of the same action while the first is pending fails with
// types.ErrSubmissionInFlight instead of issuing a duplicate insert.
type SubmitGuard struct {
	mu    sync.Mutex
	slots map[string]*semaphore.Weighted
}

func NewSubmitGuard() *SubmitGuard {
	return &SubmitGuard{slots: make(map[string]*semaphore.Weighted)}
}

func (g *SubmitGuard) slot(action string) *semaphore.Weighted {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.slots[action]
	if !ok {
		s = semaphore.NewWeighted(1)
		g.slots[action] = s
	}
	return s
}

// SubmitGuardMiddleware applies g to mutating commands
func SubmitGuardMiddleware[R any](g *SubmitGuard) Middleware[R] {
	return func(next Handler[R]) Handler[R] {
		return func(cmd Command) (R, error) {
			if !cmd.Mutates() {
				return next(cmd)
			}
			s := g.slot(cmd.Action())
			if !s.TryAcquire(1) {
				var zero R
				return zero, types.ErrSubmissionInFlight
			}
			defer s.Release(1)
			return next(cmd)
		}
	}
}

// Chain allows chaining multiple middleware functions
func Chain[R any](middlewares ...Middleware[R]) Middleware[R] {
	return func(final Handler[R]) Handler[R] {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
