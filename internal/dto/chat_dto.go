package dto

import "time"

// ChatRequest.UserId is optional; when present it must match the session.
type ChatRequest struct {
	UserId  string          `json:"user_id"`
	Message string          `json:"message"`
	Context *ChatContextDTO `json:"context"`
}

type ChatContextDTO struct {
	Dashboard     *DashboardSnapshotDTO `json:"dashboard"`
	LearningHours float64               `json:"learning_hours"`
}

type DashboardSnapshotDTO struct {
	UserId              string     `json:"user_id"`
	TotalJobMatches     *int       `json:"total_job_matches"`
	AvgMatchScore       *float64   `json:"avg_match_score"`
	SkillsLearning      *int       `json:"skills_learning"`
	TotalLearningHours  *float64   `json:"total_learning_hours"`
	ApplicationsSent    *int       `json:"applications_sent"`
	InterviewsCompleted *int       `json:"interviews_completed"`
	LastUpdated         *time.Time `json:"last_updated"`
}

// ChatResponse is the only body the chat endpoint ever answers with.
type ChatResponse struct {
	Reply string `json:"reply"`
}
