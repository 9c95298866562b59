package entity

import (
	"time"

	"github.com/google/uuid"
)

// DashboardStats mirrors one row of the user_career_dashboard view. Every
// metric column is nullable.
type DashboardStats struct {
	UserId              uuid.UUID
	TotalJobMatches     *int
	AvgMatchScore       *float64
	SkillsLearning      *int
	TotalLearningHours  *float64
	ApplicationsSent    *int
	InterviewsCompleted *int
	LastUpdated         *time.Time
}

// EmptyDashboardStats is the "no data yet" row for a user.
func EmptyDashboardStats(userId uuid.UUID) *DashboardStats {
	zeroInt := func() *int { v := 0; return &v }
	zeroFloat := func() *float64 { v := 0.0; return &v }

	return &DashboardStats{
		UserId:              userId,
		TotalJobMatches:     zeroInt(),
		AvgMatchScore:       zeroFloat(),
		SkillsLearning:      zeroInt(),
		TotalLearningHours:  zeroFloat(),
		ApplicationsSent:    zeroInt(),
		InterviewsCompleted: zeroInt(),
		LastUpdated:         nil,
	}
}
