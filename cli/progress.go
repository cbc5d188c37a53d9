package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProgressCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show life balance, mood trend and active goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.current()
			if err != nil {
				return explain(err)
			}

			progress, readErr := t.Progress()
			if a.jsonOut {
				return writeJSON(a.out, progress)
			}
			writeReadWarning(a.out, readErr)

			w := a.out
			fmt.Fprintln(w, titleStyle.Render("Progress"))
			field(w, "Assessments", progress.AssessmentCount)
			field(w, "Active goals", progress.ActiveGoalCount)
			field(w, "Mood entries", progress.MoodEntryCount)

			fmt.Fprintln(w)
			fmt.Fprintln(w, titleStyle.Render("Wheel of Life"))
			if !progress.HasAssessment {
				fmt.Fprintln(w, labelStyle.Render("Complete your first assessment to see your life balance"))
			} else {
				for i, label := range progress.Wheel.Labels {
					field(w, label, fmt.Sprintf("%d/%d", progress.Wheel.Values[i], progress.Wheel.Max))
				}
			}

			fmt.Fprintln(w)
			fmt.Fprintln(w, titleStyle.Render("Mood trend"))
			if len(progress.Mood) == 0 {
				fmt.Fprintln(w, labelStyle.Render("Log your mood to see trends"))
			}
			for _, p := range progress.Mood {
				field(w, p.Date, fmt.Sprintf("%2d %s", p.Score, bar(p.Score*10)))
			}

			fmt.Fprintln(w)
			fmt.Fprintln(w, titleStyle.Render("Active goals"))
			if len(progress.ActiveGoals) == 0 {
				fmt.Fprintln(w, labelStyle.Render("No active goals. Create one with `growth goal create`."))
			}
			for _, g := range progress.ActiveGoals {
				fmt.Fprintf(w, "%s %3d%% %s\n", bar(g.ProgressPercentage), g.ProgressPercentage, g.Title)
			}
			return nil
		},
	}
}
