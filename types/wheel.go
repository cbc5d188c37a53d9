package types

import "time"

// WheelAssessment is a Wheel of Life snapshot row in wheel_of_life.
type WheelAssessment struct {
	ID                  string    `json:"id,omitempty"`
	UserID              string    `json:"user_id"`
	CareerScore         int       `json:"career_score"`
	HealthScore         int       `json:"health_score"`
	RelationshipsScore  int       `json:"relationships_score"`
	PersonalGrowthScore int       `json:"personal_growth_score"`
	FinancesScore       int       `json:"finances_score"`
	FunScore            int       `json:"fun_score"`
	EnvironmentScore    int       `json:"environment_score"`
	SpiritualityScore   int       `json:"spirituality_score"`
	Notes               *string   `json:"notes,omitempty"`
	AssessedAt          time.Time `json:"assessed_at"`
}

// WheelScores holds the eight domain scores in radar order.
type WheelScores struct {
	Career         int `json:"career" yaml:"career" validate:"min=1,max=10"`
	Health         int `json:"health" yaml:"health" validate:"min=1,max=10"`
	Relationships  int `json:"relationships" yaml:"relationships" validate:"min=1,max=10"`
	PersonalGrowth int `json:"personal_growth" yaml:"personal_growth" validate:"min=1,max=10"`
	Finances       int `json:"finances" yaml:"finances" validate:"min=1,max=10"`
	Fun            int `json:"fun" yaml:"fun" validate:"min=1,max=10"`
	Environment    int `json:"environment" yaml:"environment" validate:"min=1,max=10"`
	Spirituality   int `json:"spirituality" yaml:"spirituality" validate:"min=1,max=10"`
}

// WheelLabels are the radar axis names, in the same order as WheelScores.Values.
var WheelLabels = []string{
	"Career",
	"Health",
	"Relationships",
	"Growth",
	"Finances",
	"Fun",
	"Environment",
	"Spirituality",
}

// UniformWheel returns scores with every domain set to v.
func UniformWheel(v int) WheelScores {
	return WheelScores{v, v, v, v, v, v, v, v}
}

func (w WheelScores) Values() []int {
	return []int{
		w.Career,
		w.Health,
		w.Relationships,
		w.PersonalGrowth,
		w.Finances,
		w.Fun,
		w.Environment,
		w.Spirituality,
	}
}

func (a WheelAssessment) Scores() WheelScores {
	return WheelScores{
		Career:         a.CareerScore,
		Health:         a.HealthScore,
		Relationships:  a.RelationshipsScore,
		PersonalGrowth: a.PersonalGrowthScore,
		Finances:       a.FinancesScore,
		Fun:            a.FunScore,
		Environment:    a.EnvironmentScore,
		Spirituality:   a.SpiritualityScore,
	}
}

// NewWheelAssessment builds an unsaved row from scores.
func NewWheelAssessment(userID string, s WheelScores, notes *string, at time.Time) WheelAssessment {
	return WheelAssessment{
		UserID:              userID,
		CareerScore:         s.Career,
		HealthScore:         s.Health,
		RelationshipsScore:  s.Relationships,
		PersonalGrowthScore: s.PersonalGrowth,
		FinancesScore:       s.Finances,
		FunScore:            s.Fun,
		EnvironmentScore:    s.Environment,
		SpiritualityScore:   s.Spirituality,
		Notes:               notes,
		AssessedAt:          at,
	}
}
