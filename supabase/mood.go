package supabase

import (
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/types"
	"slices"
)

func (s *Store) InsertMoodEntry(entry types.MoodEntry) (types.MoodEntry, error) {
	entry.UserID = s.userID
	return insertOne(s, config.CollectionMood, entry)
}

// ListMoodEntries returns the most recent limit entries in chronological order.
func (s *Store) ListMoodEntries(limit int) ([]types.MoodEntry, error) {
	var entries []types.MoodEntry
	err := s.query(config.CollectionMood, Query{OrderBy: "tracked_at", Limit: limit}, &entries)
	if err != nil {
		return nil, err
	}

	// Reverse to chronological order
	slices.Reverse(entries)
	return entries, nil
}
