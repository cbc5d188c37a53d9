package supabase

import (
	"clementus360/growth-tracker/config"
	"fmt"
	"os"
	"strings"

	"github.com/supabase-community/supabase-go"
)

// NewClient creates a Supabase client that sends accessToken on every request,
// so row-level security scopes reads and writes to the token's user.
func NewClient(accessToken string) (*supabase.Client, error) {
	apiURL := os.Getenv("SUPABASE_URL")
	apiKey := os.Getenv("SUPABASE_KEY")

	if apiURL == "" || apiKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL or SUPABASE_KEY is missing")
	}

	jwtString := strings.TrimPrefix(accessToken, "Bearer ")
	if jwtString == "" {
		return nil, fmt.Errorf("missing access token")
	}

	client, err := supabase.NewClient(apiURL, apiKey, &supabase.ClientOptions{
		Headers: map[string]string{
			"Authorization": "Bearer " + jwtString,
		},
	})
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}
	return client, nil
}
