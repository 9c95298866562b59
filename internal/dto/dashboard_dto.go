package dto

import (
	"time"

	"github.com/google/uuid"
)

type DashboardResponse struct {
	Stats DashboardStatsDTO `json:"stats"`
	Cards []StatCard        `json:"cards"`
}

type DashboardStatsDTO struct {
	UserId              uuid.UUID  `json:"user_id"`
	TotalJobMatches     int        `json:"total_job_matches"`
	AvgMatchScore       float64    `json:"avg_match_score"`
	SkillsLearning      int        `json:"skills_learning"`
	LearningHours       float64    `json:"learning_hours"`
	ApplicationsSent    int        `json:"applications_sent"`
	InterviewsCompleted int        `json:"interviews_completed"`
	LastUpdated         *time.Time `json:"last_updated"`
}

type StatCard struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
