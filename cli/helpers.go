package cli

import (
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/metrics"
	"clementus360/growth-tracker/types"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6B7FE8"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func writeJSON(w io.Writer, payload any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// writeReadWarning reports a read failure without failing the command; the
// view was rendered from last-known or empty data.
func writeReadWarning(w io.Writer, err error) {
	if err == nil {
		return
	}
	config.Logger.Warn("Showing last-known data: ", err)
	fmt.Fprintln(w, warnStyle.Render("! some data could not be refreshed; showing last-known values"))
}

// explain turns command errors into a user-facing message.
func explain(err error) error {
	var writeErr *types.StoreWriteError
	switch {
	case errors.As(err, &writeErr):
		return fmt.Errorf("could not save (%s): please try again", writeErr.Collection)
	case errors.Is(err, types.ErrNoIdentity):
		return fmt.Errorf("not signed in: %w", err)
	default:
		return err
	}
}

func field(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "%s %v\n", labelStyle.Render(fmt.Sprintf("%-18s", label+":")), value)
}

func bar(percent int) string {
	percent = max(0, min(percent, 100))
	filled := percent / 5
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", 20-filled) + "]"
}

func personaName(id string) string {
	if name, ok := config.PersonaNames[id]; ok {
		return name
	}
	return id
}

func rows(sessions []types.Session) []types.SessionRow {
	return metrics.SessionRows(sessions)
}
