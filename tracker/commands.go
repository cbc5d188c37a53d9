package tracker

import (
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/types"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Action names, also used as submit-guard keys.
const (
	ActionSelectPersona     = "select_persona"
	ActionStartSession      = "start_session"
	ActionEndSession        = "end_session"
	ActionToggleAudio       = "toggle_audio"
	ActionToggleVideo       = "toggle_video"
	ActionLogMood           = "log_mood"
	ActionCreateGoal        = "create_goal"
	ActionSubmitAssessment  = "submit_assessment"
	ActionUpdatePreferences = "update_preferences"
)

type SelectPersona struct {
	Persona string `validate:"required,persona"`
}

// StartSession selects Persona first when it is set.
type StartSession struct {
	Persona string `validate:"omitempty,persona"`
}

type EndSession struct{}

type ToggleAudio struct {
	Enabled bool
}

type ToggleVideo struct {
	Enabled bool
}

type LogMood struct {
	Score  int    `validate:"min=1,max=10"`
	Energy *int   `validate:"omitempty,min=1,max=10"`
	Stress *int   `validate:"omitempty,min=1,max=10"`
	Notes  string `validate:"max=2000"`
}

type CreateGoal struct {
	Title       string `validate:"notblank,max=200"`
	Description string `validate:"max=2000"`
	Category    string `validate:"omitempty,goalcategory"`
	TargetDate  string `validate:"omitempty,datetime=2006-01-02"`
}

type SubmitAssessment struct {
	Scores types.WheelScores
	Notes  string `validate:"max=2000"`
}

type UpdatePreferences struct {
	Persona       string `validate:"required,persona"`
	Notifications bool
}

func (SelectPersona) Action() string     { return ActionSelectPersona }
func (StartSession) Action() string      { return ActionStartSession }
func (EndSession) Action() string        { return ActionEndSession }
func (ToggleAudio) Action() string       { return ActionToggleAudio }
func (ToggleVideo) Action() string       { return ActionToggleVideo }
func (LogMood) Action() string           { return ActionLogMood }
func (CreateGoal) Action() string        { return ActionCreateGoal }
func (SubmitAssessment) Action() string  { return ActionSubmitAssessment }
func (UpdatePreferences) Action() string { return ActionUpdatePreferences }

func (SelectPersona) Mutates() bool     { return false }
func (StartSession) Mutates() bool      { return true }
func (EndSession) Mutates() bool        { return true }
func (ToggleAudio) Mutates() bool       { return false }
func (ToggleVideo) Mutates() bool       { return false }
func (LogMood) Mutates() bool           { return true }
func (CreateGoal) Mutates() bool        { return true }
func (SubmitAssessment) Mutates() bool  { return true }
func (UpdatePreferences) Mutates() bool { return true }

// commandValidate is the validator instance for tracker commands.
var commandValidate *validator.Validate

func init() {
	commandValidate = validator.New()
	_ = commandValidate.RegisterValidation("persona", func(fl validator.FieldLevel) bool {
		return slices.Contains(config.Personas, fl.Field().String())
	})
	_ = commandValidate.RegisterValidation("goalcategory", func(fl validator.FieldLevel) bool {
		return slices.Contains(config.GoalCategories, fl.Field().String())
	})
	_ = commandValidate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// validateCommand checks cmd's fields before any store write. today is the
// first acceptable goal target date.
func validateCommand(cmd any, today time.Time) error {
	if err := commandValidate.Struct(cmd); err != nil {
		var invalid validator.ValidationErrors
		if !errors.As(err, &invalid) {
			return fmt.Errorf("%w: %v", types.ErrValidation, err)
		}
		msgs := make([]string, 0, len(invalid))
		for _, fe := range invalid {
			msgs = append(msgs, fieldMessage(fe))
		}
		return fmt.Errorf("%w: %s", types.ErrValidation, strings.Join(msgs, "; "))
	}

	if goal, ok := cmd.(CreateGoal); ok && goal.TargetDate != "" {
		target, _ := time.ParseInLocation(time.DateOnly, goal.TargetDate, today.Location())
		if target.Before(startOfDay(today)) {
			return fmt.Errorf("%w: target date %s is in the past", types.ErrValidation, goal.TargetDate)
		}
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min", "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", fe.Namespace(), fe.Param())
		}
		return fmt.Sprintf("%s must be between %d and %d", fe.Namespace(), config.MinScore, config.MaxScore)
	case "notblank", "required":
		return fmt.Sprintf("%s is required", fe.Namespace())
	case "persona":
		return fmt.Sprintf("%s %q is not one of %s", fe.Namespace(), fe.Value(), strings.Join(config.Personas, ", "))
	case "goalcategory":
		return fmt.Sprintf("%s %q is not one of %s", fe.Namespace(), fe.Value(), strings.Join(config.GoalCategories, ", "))
	case "datetime":
		return fmt.Sprintf("%s must be a YYYY-MM-DD date", fe.Namespace())
	default:
		return fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag())
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
