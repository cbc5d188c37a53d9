package supabase

import (
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/types"
	"time"
)

// GetProfile returns the user's profile, or types.ErrNotFound when none exists yet.
func (s *Store) GetProfile() (types.Profile, error) {
	var profiles []types.Profile
	if err := s.query(config.CollectionProfiles, Query{}, &profiles); err != nil {
		return types.Profile{}, err
	}
	if len(profiles) == 0 {
		return types.Profile{}, types.ErrNotFound
	}
	return profiles[0], nil
}

func (s *Store) UpsertProfile(profile types.Profile) error {
	profile.ID = s.userID

	_, _, err := s.client.From(config.CollectionProfiles).
		Upsert(profile, "id", "", "").
		Execute()
	if err != nil {
		return &types.StoreWriteError{Collection: config.CollectionProfiles, Op: "upsert", Err: err}
	}
	return nil
}

func (s *Store) UpdatePreferences(persona string, prefs types.CommunicationPreferences) error {
	return s.update(config.CollectionProfiles, s.userID, map[string]interface{}{
		"ai_persona_preference":     persona,
		"communication_preferences": prefs,
	})
}

// TouchProfile records activity on the profile.
func (s *Store) TouchProfile(at time.Time) error {
	return s.update(config.CollectionProfiles, s.userID, map[string]interface{}{
		"last_active": at,
	})
}
