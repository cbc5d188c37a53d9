package cli

import (
	"clementus360/growth-tracker/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newSessionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Start a live counseling session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.current()
			if err != nil {
				return explain(err)
			}

			preferred := ""
			if summary, err := t.Profile(); err == nil {
				preferred = summary.Profile.PersonaPreference
			}

			program := tea.NewProgram(tui.NewSessionModel(t, preferred),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = program.Run()
			return err
		},
	}
}
