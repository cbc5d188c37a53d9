package supabase

import (
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/types"
)

func (s *Store) InsertGoal(goal types.Goal) (types.Goal, error) {
	goal.UserID = s.userID
	return insertOne(s, config.CollectionGoals, goal)
}

// ListGoals returns goals with the given status, newest first. An empty status lists all.
func (s *Store) ListGoals(status string) ([]types.Goal, error) {
	q := Query{OrderBy: "created_at"}
	if status != "" {
		q.Filters = map[string]string{"status": status}
	}

	var goals []types.Goal
	if err := s.query(config.CollectionGoals, q, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *Store) CountGoals(status string) (int, error) {
	var filters map[string]string
	if status != "" {
		filters = map[string]string{"status": status}
	}
	return s.count(config.CollectionGoals, filters)
}
