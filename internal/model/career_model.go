package model

import (
	"time"

	"github.com/google/uuid"
)

type LearningProgress struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Skill          string    `gorm:"type:varchar(255);not null"`
	CurrentLevel   string    `gorm:"type:varchar(50)"`
	TargetLevel    string    `gorm:"type:varchar(50)"`
	HoursCompleted *float64  `gorm:"type:numeric(8,2);default:0"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (LearningProgress) TableName() string {
	return "learning_progress"
}

type JobMatch struct {
	MatchId    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	JobTitle   string    `gorm:"type:varchar(255);not null"`
	Company    string    `gorm:"type:varchar(255)"`
	MatchScore *float64  `gorm:"type:numeric(5,2)"`
	Status     string    `gorm:"type:varchar(50);default:'new'"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (JobMatch) TableName() string {
	return "job_matches"
}

type Application struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Company   string    `gorm:"type:varchar(255);not null"`
	JobTitle  string    `gorm:"type:varchar(255);not null"`
	Status    string    `gorm:"type:varchar(50);default:'applied'"`
	AppliedOn time.Time `gorm:"not null"`
}

func (Application) TableName() string {
	return "applications"
}

type InterviewSession struct {
	SessionId   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	ScheduledAt time.Time `gorm:"not null"`
	RoundType   string    `gorm:"type:varchar(50)"`
	Score       *float64  `gorm:"type:numeric(5,2)"`
	Feedback    string    `gorm:"type:text"`
	Completed   bool      `gorm:"default:false"`
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}
