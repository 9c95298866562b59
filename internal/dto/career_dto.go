package dto

import (
	"time"

	"github.com/google/uuid"
)

type JobMatchDTO struct {
	MatchId    uuid.UUID `json:"match_id"`
	JobTitle   string    `json:"job_title"`
	Company    string    `json:"company"`
	MatchScore *float64  `json:"match_score"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type ApplicationDTO struct {
	Id        uuid.UUID `json:"id"`
	Company   string    `json:"company"`
	JobTitle  string    `json:"job_title"`
	Status    string    `json:"status"`
	AppliedOn time.Time `json:"applied_on"`
}

type InterviewSessionDTO struct {
	SessionId   uuid.UUID `json:"session_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	RoundType   string    `json:"round_type"`
	Score       *float64  `json:"score"`
	Feedback    string    `json:"feedback"`
	Completed   bool      `json:"completed"`
}

type LearningProgressDTO struct {
	Id             uuid.UUID `json:"id"`
	Skill          string    `json:"skill"`
	CurrentLevel   string    `json:"current_level"`
	TargetLevel    string    `json:"target_level"`
	HoursCompleted *float64  `json:"hours_completed"`
	UpdatedAt      time.Time `json:"updated_at"`
}
