package cli

import (
	"clementus360/growth-tracker/types"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newDashboardCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show session totals, streak, goals, mood and life balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.current()
			if err != nil {
				return explain(err)
			}

			dashboard, readErr := t.Dashboard()
			if a.jsonOut {
				return writeJSON(a.out, dashboard)
			}
			writeReadWarning(a.out, readErr)
			renderDashboard(a, dashboard)
			return nil
		},
	}
}

func renderDashboard(a *app, d types.Dashboard) {
	w := a.out
	fmt.Fprintln(w, titleStyle.Render("Dashboard"))
	field(w, "Total sessions", d.TotalSessions)
	field(w, "Current streak", fmt.Sprintf("%d days", d.CurrentStreak))
	field(w, "Goals completed", d.GoalsCompleted)
	field(w, "Average mood", fmt.Sprintf("%.1f/10", d.AverageMood))
	field(w, "Time in sessions", fmt.Sprintf("%d min", d.TotalMinutes))

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Life balance"))
	for i, v := range d.Wheel.Values() {
		field(w, types.WheelLabels[i], fmt.Sprintf("%2d %s", v, strings.Repeat("*", v)))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Recent sessions"))
	if len(d.RecentSessions) == 0 {
		fmt.Fprintln(w, labelStyle.Render("No sessions yet. Start one with `growth session`."))
		return
	}
	for _, s := range d.RecentSessions {
		fmt.Fprintln(w, sessionLine(s))
	}
}

func sessionLine(s types.SessionRow) string {
	line := fmt.Sprintf("%s  %-16s %s", s.StartedAt.Local().Format("Jan 2 2006"), s.PersonaName, s.Status)
	if s.DurationMinutes != nil {
		line += fmt.Sprintf("  %d minutes", *s.DurationMinutes)
	}
	return line
}

