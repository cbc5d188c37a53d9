package cli

import (
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/history"
	"clementus360/growth-tracker/types"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

func newHistoryCommand(a *app) *cobra.Command {
	var filter history.Filter

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse past sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(history.FilterOptions(), filter.Persona) {
				return fmt.Errorf("invalid persona %q: expected one of %s", filter.Persona, strings.Join(history.FilterOptions(), ", "))
			}

			t, err := a.current()
			if err != nil {
				return explain(err)
			}

			browser, readErr := t.Browser()
			browser.SetPersona(filter.Persona)
			browser.SetSearch(filter.Search)
			sessions := browser.Results()

			if a.jsonOut {
				return writeJSON(a.out, types.GetSessionsResponse{
					Success:  readErr == nil,
					Sessions: rows(sessions),
					Total:    browser.Total(),
				})
			}
			writeReadWarning(a.out, readErr)

			w := a.out
			fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Session history (%d of %d)", len(sessions), browser.Total())))
			if len(sessions) == 0 {
				if browser.Total() == 0 {
					fmt.Fprintln(w, labelStyle.Render("No sessions yet"))
				} else {
					fmt.Fprintln(w, labelStyle.Render("No sessions match your filters"))
				}
				return nil
			}
			for _, row := range rows(sessions) {
				fmt.Fprintln(w, sessionLine(row))
				if len(row.Topics) > 0 {
					fmt.Fprintln(w, "  "+labelStyle.Render("topics: ")+strings.Join(row.Topics, ", "))
				}
				for _, insight := range row.KeyInsights {
					fmt.Fprintln(w, "  - "+insight)
				}
				if row.Notes != "" {
					fmt.Fprintln(w, "  "+labelStyle.Render(row.Notes))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filter.Persona, "persona", config.PersonaAll, "filter by persona: "+strings.Join(history.FilterOptions(), ", "))
	cmd.Flags().StringVar(&filter.Search, "search", "", "search notes and topics")
	return cmd
}
