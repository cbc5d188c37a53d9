package types

import "time"

type Goal struct {
	ID                 string     `json:"id,omitempty"`
	UserID             string     `json:"user_id"`
	Title              string     `json:"title"`
	Description        *string    `json:"description,omitempty"`
	Category           *string    `json:"category,omitempty"`
	TargetDate         *string    `json:"target_date,omitempty"` // YYYY-MM-DD
	ProgressPercentage int        `json:"progress_percentage"`
	Status             string     `json:"status"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}
