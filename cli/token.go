package cli

import (
	"clementus360/growth-tracker/supabase"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newTokenCommand(a *app) *cobra.Command {
	token := &cobra.Command{
		Use:    "token",
		Short:  "Development helpers for access tokens",
		Hidden: true,
	}

	var (
		userID, email string
		ttl           time.Duration
	)
	mint := &cobra.Command{
		Use:   "mint",
		Short: "Mint a token signed with SUPABASE_JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := uuid.Parse(userID); err != nil {
				return fmt.Errorf("invalid --user-id %q: %w", userID, err)
			}
			signed, err := supabase.GenerateTestJWT(userID, email, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, signed)
			return nil
		},
	}
	mint.Flags().StringVar(&userID, "user-id", "", "user id (uuid)")
	mint.Flags().StringVar(&email, "email", "", "email claim")
	mint.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	token.AddCommand(mint)
	return token
}
