// Package tui is the interactive live-session screen.
package tui

import (
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/metrics"
	"clementus360/growth-tracker/middleware"
	"clementus360/growth-tracker/session"
	"clementus360/growth-tracker/tracker"
	"clementus360/growth-tracker/types"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Runner is the slice of *tracker.Tracker the screen drives.
type Runner interface {
	Execute(cmd middleware.Command) (tracker.Result, error)
	Session() session.Snapshot
}

type refreshMsg time.Time

type resultMsg struct {
	result tracker.Result
	err    error
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6B7FE8"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#6B7FE8"))
	timerStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder())
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// SessionModel picks a persona, starts the session, shows the running timer
// and ends it. All store writes run as commands off the update loop.
type SessionModel struct {
	runner Runner
	cursor int
	snap   session.Snapshot
	busy   bool
	err    error
}

func NewSessionModel(runner Runner, preferredPersona string) SessionModel {
	m := SessionModel{runner: runner, snap: runner.Session()}
	if i := slices.Index(config.Personas, preferredPersona); i >= 0 {
		m.cursor = i
	}
	return m
}

func (m SessionModel) Init() tea.Cmd {
	return nil
}

func refresh() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return refreshMsg(t) })
}

func (m SessionModel) execute(cmd middleware.Command) tea.Cmd {
	return func() tea.Msg {
		result, err := m.runner.Execute(cmd)
		return resultMsg{result: result, err: err}
	}
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case refreshMsg:
		m.snap = m.runner.Session()
		if m.snap.State == session.Active {
			return m, refresh()
		}
		return m, nil

	case resultMsg:
		m.busy = false
		m.err = msg.err
		if msg.result.Session != nil {
			m.snap = *msg.result.Session
		}
		switch {
		case msg.err != nil:
			return m, nil
		case msg.result.Action == tracker.ActionStartSession:
			return m, refresh()
		case msg.result.Action == tracker.ActionEndSession:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}
	if m.busy {
		return m, nil
	}

	switch m.snap.State {
	case session.Idle, session.PersonaSelected:
		switch key {
		case "up", "k":
			m.cursor = (m.cursor + len(config.Personas) - 1) % len(config.Personas)
		case "down", "j":
			m.cursor = (m.cursor + 1) % len(config.Personas)
		case "enter":
			m.busy = true
			m.err = nil
			return m, m.execute(tracker.StartSession{Persona: config.Personas[m.cursor]})
		}

	case session.Active:
		switch key {
		case "a":
			return m, m.execute(tracker.ToggleAudio{Enabled: !m.snap.AudioEnabled})
		case "v":
			return m, m.execute(tracker.ToggleVideo{Enabled: !m.snap.VideoEnabled})
		case "e":
			m.busy = true
			m.err = nil
			return m, m.execute(tracker.EndSession{})
		}

	case session.Ended:
		return m, tea.Quit
	}
	return m, nil
}

func (m SessionModel) View() string {
	var b strings.Builder

	switch m.snap.State {
	case session.Idle, session.PersonaSelected:
		b.WriteString(headerStyle.Render("Choose Your AI Counselor") + "\n")
		b.WriteString(mutedStyle.Render("Select the persona that best fits your needs for this session") + "\n\n")
		for i, id := range config.Personas {
			name := config.PersonaNames[id]
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("> "+name) + "\n")
			} else {
				b.WriteString("  " + name + "\n")
			}
		}
		b.WriteString("\n" + mutedStyle.Render("up/down choose  enter start session  q quit") + "\n")

	case session.Active:
		b.WriteString(headerStyle.Render(config.PersonaNames[m.snap.Persona]+" session") + "\n\n")
		b.WriteString(timerStyle.Render(metrics.FormatElapsed(m.snap.ElapsedSeconds)) + "\n\n")
		b.WriteString(fmt.Sprintf("audio %s   video %s\n\n", onOff(m.snap.AudioEnabled), onOff(m.snap.VideoEnabled)))
		b.WriteString(mutedStyle.Render("a toggle audio  v toggle video  e end session  q quit") + "\n")

	case session.Ended:
		b.WriteString(headerStyle.Render("Session complete") + "\n")
		b.WriteString(fmt.Sprintf("Duration %s\n", metrics.FormatElapsed(m.snap.ElapsedSeconds)))
	}

	if m.busy {
		b.WriteString(mutedStyle.Render("saving...") + "\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(errorText(m.err)) + "\n")
	}
	return b.String()
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

func errorText(err error) string {
	var writeErr *types.StoreWriteError
	if errors.As(err, &writeErr) {
		return "Could not save the session. Press the key again to retry."
	}
	return err.Error()
}
