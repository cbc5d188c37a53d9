package config

// Collections in the record store
const (
	CollectionSessions = "ai_sessions"
	CollectionMood     = "mood_tracking"
	CollectionWheel    = "wheel_of_life"
	CollectionGoals    = "user_goals"
	CollectionProfiles = "profiles"
)

// Session statuses
const (
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
)

// Goal statuses
const (
	GoalActive    = "active"
	GoalCompleted = "completed"
)

// Personas selectable for a session. PersonaAll only appears in history filters.
const (
	PersonaAll       = "all"
	PersonaCounselor = "counselor"
	PersonaTherapist = "therapist"
	PersonaCoach     = "coach"
	PersonaCareer    = "career"
	PersonaSpiritual = "spiritual"
)

var Personas = []string{
	PersonaCounselor,
	PersonaTherapist,
	PersonaCoach,
	PersonaCareer,
	PersonaSpiritual,
}

// PersonaNames maps a persona id to its display name.
var PersonaNames = map[string]string{
	PersonaCounselor: "Counselor",
	PersonaTherapist: "Therapist",
	PersonaCoach:     "Coach",
	PersonaCareer:    "Career Guide",
	PersonaSpiritual: "Spiritual Guide",
}

var GoalCategories = []string{
	"Health",
	"Career",
	"Relationships",
	"Personal Growth",
	"Finance",
	"Other",
}

const DefaultGoalCategory = "Health"

// Score bounds shared by mood entries and wheel assessments
const (
	MinScore = 1
	MaxScore = 10
)
