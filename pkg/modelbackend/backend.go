// Package modelbackend is the client side of the model-serving backend: a
// single chat completion call per request.
package modelbackend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"career-ai-be/internal/entity"

	"github.com/google/uuid"
)

var ErrNotConfigured = errors.New("model backend endpoint is not configured")

// StatusError is a non-success answer from the backend. Body is kept raw.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("model backend returned status %d: %s", e.StatusCode, e.Body)
}

// TransportError covers everything between us and a readable answer:
// connection failures, timeouts, unreadable or unparsable bodies.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

type ModelBackend interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}

type Request struct {
	UserID  string  `json:"user_id"`
	Message string  `json:"message"`
	Context Context `json:"context"`
}

type Context struct {
	Dashboard     *DashboardSnapshot `json:"dashboard"`
	LearningHours float64            `json:"learning_hours"`
}

type DashboardSnapshot struct {
	UserID              string     `json:"user_id"`
	TotalJobMatches     *int       `json:"total_job_matches"`
	AvgMatchScore       *float64   `json:"avg_match_score"`
	SkillsLearning      *int       `json:"skills_learning"`
	TotalLearningHours  *float64   `json:"total_learning_hours"`
	ApplicationsSent    *int       `json:"applications_sent"`
	InterviewsCompleted *int       `json:"interviews_completed"`
	LastUpdated         *time.Time `json:"last_updated"`
}

// Response.Reply is nil when the backend answered without a reply field.
type Response struct {
	Reply *string `json:"reply"`
}

// NewRequest builds the wire request. A nil dashboard stays nil.
func NewRequest(userID uuid.UUID, message string, chatCtx entity.ChatContext) Request {
	req := Request{
		UserID:  userID.String(),
		Message: message,
		Context: Context{LearningHours: chatCtx.LearningHours},
	}

	if d := chatCtx.DashboardSnapshot; d != nil {
		req.Context.Dashboard = &DashboardSnapshot{
			UserID:              d.UserId.String(),
			TotalJobMatches:     d.TotalJobMatches,
			AvgMatchScore:       d.AvgMatchScore,
			SkillsLearning:      d.SkillsLearning,
			TotalLearningHours:  d.TotalLearningHours,
			ApplicationsSent:    d.ApplicationsSent,
			InterviewsCompleted: d.InterviewsCompleted,
			LastUpdated:         d.LastUpdated,
		}
	}
	return req
}
