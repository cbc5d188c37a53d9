package cli

import (
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/middleware"
	"clementus360/growth-tracker/tracker"
	"clementus360/growth-tracker/types"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// run executes cmd on the signed-in tracker and prints the stored record.
func run(a *app, cmd middleware.Command, done string) error {
	t, err := a.current()
	if err != nil {
		return explain(err)
	}

	result, err := t.Execute(cmd)
	if err != nil {
		return explain(err)
	}
	if a.jsonOut {
		return writeJSON(a.out, result.Record)
	}
	fmt.Fprintln(a.out, titleStyle.Render(done))
	writeReadWarning(a.out, result.RefreshErr)
	return nil
}

func newMoodCommand(a *app) *cobra.Command {
	mood := &cobra.Command{
		Use:   "mood",
		Short: "Mood tracking",
	}

	var (
		req            tracker.LogMood
		energy, stress int
	)
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Log how you are feeling (1-10)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("energy") {
				req.Energy = &energy
			}
			if cmd.Flags().Changed("stress") {
				req.Stress = &stress
			}
			return run(a, req, fmt.Sprintf("Mood %d/10 saved", req.Score))
		},
	}
	logCmd.Flags().IntVar(&req.Score, "score", 5, "mood score, 1 (very low) to 10 (excellent)")
	logCmd.Flags().IntVar(&energy, "energy", 0, "energy level 1-10 (optional)")
	logCmd.Flags().IntVar(&stress, "stress", 0, "stress level 1-10 (optional)")
	logCmd.Flags().StringVar(&req.Notes, "notes", "", "what's influencing your mood today?")

	mood.AddCommand(logCmd)
	return mood
}

func newGoalCommand(a *app) *cobra.Command {
	goal := &cobra.Command{
		Use:   "goal",
		Short: "Goals",
	}

	var req tracker.CreateGoal
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an active goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(a, req, fmt.Sprintf("Goal %q created", req.Title))
		},
	}
	create.Flags().StringVar(&req.Title, "title", "", "goal title (required)")
	create.Flags().StringVar(&req.Description, "description", "", "what does success look like?")
	create.Flags().StringVar(&req.Category, "category", config.DefaultGoalCategory, "one of: "+strings.Join(config.GoalCategories, ", "))
	create.Flags().StringVar(&req.TargetDate, "target-date", "", "target date, YYYY-MM-DD")

	goal.AddCommand(create)
	return goal
}

func newWheelCommand(a *app) *cobra.Command {
	wheel := &cobra.Command{
		Use:   "wheel",
		Short: "Wheel of Life assessments",
	}

	req := tracker.SubmitAssessment{Scores: types.UniformWheel(5)}
	submit := &cobra.Command{
		Use:   "submit",
		Short: "Record a new life balance assessment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(a, req, "Assessment saved")
		},
	}
	f := submit.Flags()
	f.IntVar(&req.Scores.Career, "career", 5, "career score 1-10")
	f.IntVar(&req.Scores.Health, "health", 5, "health score 1-10")
	f.IntVar(&req.Scores.Relationships, "relationships", 5, "relationships score 1-10")
	f.IntVar(&req.Scores.PersonalGrowth, "personal-growth", 5, "personal growth score 1-10")
	f.IntVar(&req.Scores.Finances, "finances", 5, "finances score 1-10")
	f.IntVar(&req.Scores.Fun, "fun", 5, "fun score 1-10")
	f.IntVar(&req.Scores.Environment, "environment", 5, "environment score 1-10")
	f.IntVar(&req.Scores.Spirituality, "spirituality", 5, "spirituality score 1-10")
	f.StringVar(&req.Notes, "notes", "", "notes (optional)")

	wheel.AddCommand(submit)
	return wheel
}
