package supabase

import (
	"clementus360/growth-tracker/config"
	"clementus360/growth-tracker/types"
)

func (s *Store) InsertWheelAssessment(assessment types.WheelAssessment) (types.WheelAssessment, error) {
	assessment.UserID = s.userID
	return insertOne(s, config.CollectionWheel, assessment)
}

// ListWheelAssessments returns the snapshot history, oldest first.
func (s *Store) ListWheelAssessments() ([]types.WheelAssessment, error) {
	var assessments []types.WheelAssessment
	err := s.query(config.CollectionWheel, Query{OrderBy: "assessed_at", Ascending: true}, &assessments)
	if err != nil {
		return nil, err
	}
	return assessments, nil
}
