package cli

import (
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/tracker"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newProfileCommand(a *app) *cobra.Command {
	profile := &cobra.Command{
		Use:   "profile",
		Short: "Profile and preferences",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.current()
			if err != nil {
				return explain(err)
			}
			summary, err := t.Profile()
			if err != nil && summary.Profile.ID == "" {
				return explain(err)
			}
			if a.jsonOut {
				return writeJSON(a.out, summary)
			}
			writeReadWarning(a.out, err)

			w := a.out
			p := summary.Profile
			name := "User"
			if p.FullName != nil && *p.FullName != "" {
				name = *p.FullName
			}
			fmt.Fprintln(w, titleStyle.Render(name))
			if email := t.Identity().Email; email != "" {
				field(w, "Email", email)
			}
			if p.MemberSince != nil {
				field(w, "Member since", p.MemberSince.Local().Format("Jan 2, 2006"))
			}
			field(w, "Preferred persona", personaName(p.PersonaPreference))
			field(w, "Notifications", p.CommunicationPreferences.Notifications)
			field(w, "Total sessions", summary.TotalSessions)
			field(w, "Goals completed", summary.GoalsCompleted)
			return nil
		},
	}

	var req tracker.UpdatePreferences
	set := &cobra.Command{
		Use:   "set",
		Short: "Update your preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(a, req, "Preferences updated")
		},
	}
	set.Flags().StringVar(&req.Persona, "persona", config.PersonaCounselor, "preferred persona: "+strings.Join(config.Personas, ", "))
	set.Flags().BoolVar(&req.Notifications, "notifications", true, "receive session reminders and progress updates")

	profile.AddCommand(show, set)
	return profile
}
