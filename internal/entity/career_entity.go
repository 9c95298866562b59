package entity

import (
	"time"

	"github.com/google/uuid"
)

type LearningProgress struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Skill          string
	CurrentLevel   string
	TargetLevel    string
	HoursCompleted *float64
	UpdatedAt      time.Time
}

type JobMatch struct {
	MatchId    uuid.UUID
	UserId     uuid.UUID
	JobTitle   string
	Company    string
	MatchScore *float64
	Status     string
	CreatedAt  time.Time
}

type Application struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Company   string
	JobTitle  string
	Status    string
	AppliedOn time.Time
}

type InterviewSession struct {
	SessionId   uuid.UUID
	UserId      uuid.UUID
	ScheduledAt time.Time
	RoundType   string
	Score       *float64
	Feedback    string
	Completed   bool
}
