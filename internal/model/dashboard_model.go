package model

import (
	"time"

	"github.com/google/uuid"
)

// UserCareerDashboard is read from a view, never written. See cmd/migrate
// for its definition.
type UserCareerDashboard struct {
	UserId              uuid.UUID `gorm:"type:uuid"`
	TotalJobMatches     *int
	AvgMatchScore       *float64
	SkillsLearning      *int
	TotalLearningHours  *float64
	ApplicationsSent    *int
	InterviewsCompleted *int
	LastUpdated         *time.Time
}

func (UserCareerDashboard) TableName() string {
	return "user_career_dashboard"
}
