package cli

import (
	"clementus360/growth-tracker/auth"
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/supabase"
	"clementus360/growth-tracker/tracker"
	"fmt"
	"io"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	token      string
	configPath string
	jsonOut    bool

	settings config.Settings
	provider *auth.Provider
	manager  *tracker.Manager
	out      io.Writer
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	config.LoadEnv()
	config.InitLogger()
	a.out = cmd.OutOrStdout()

	if a.token == "" {
		a.token = os.Getenv("GROWTH_ACCESS_TOKEN")
	}
	if a.configPath == "" {
		a.configPath = os.Getenv("GROWTH_CONFIG")
	}

	settings, err := config.LoadSettings(a.configPath)
	if err != nil {
		return err
	}
	a.settings = settings

	a.provider = auth.NewProvider()
	a.manager = tracker.NewManager(a.provider, a.newTracker)
	return nil
}

func (a *app) newTracker(identity auth.Identity) (*tracker.Tracker, error) {
	client, err := supabase.NewClient(identity.AccessToken)
	if err != nil {
		return nil, err
	}
	store := supabase.NewStore(client, identity.UserID)
	return tracker.New(identity, store, a.settings, clockwork.NewRealClock())
}

// current signs in with the configured token and returns the user's tracker.
func (a *app) current() (*tracker.Tracker, error) {
	if _, ok := a.provider.Current(); !ok {
		if a.token == "" {
			return nil, fmt.Errorf("no access token: pass --token or set GROWTH_ACCESS_TOKEN")
		}
		if _, err := a.provider.SignIn(a.token); err != nil {
			return nil, fmt.Errorf("invalid access token: %w", err)
		}
	}
	return a.manager.Current()
}

func (a *app) teardown(_ *cobra.Command, _ []string) {
	if a.manager != nil {
		a.manager.Close()
	}
}

func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:               "growth",
		Short:             "Track counseling sessions, mood, goals and life balance",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}
	root.PersistentFlags().StringVar(&a.token, "token", "", "Supabase access token (default $GROWTH_ACCESS_TOKEN)")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "settings YAML file (default $GROWTH_CONFIG)")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print JSON instead of text")

	root.AddCommand(
		newDashboardCommand(a),
		newProgressCommand(a),
		newHistoryCommand(a),
		newMoodCommand(a),
		newGoalCommand(a),
		newWheelCommand(a),
		newProfileCommand(a),
		newSessionCommand(a),
		newTokenCommand(a),
	)
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}
