package contract

import (
	"context"

	"career-ai-be/internal/entity"
	"career-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CareerRepository interface {
	// FindDashboard reads the summary view. (nil, nil) means the user has no row yet.
	FindDashboard(ctx context.Context, userId uuid.UUID) (*entity.DashboardStats, error)

	FindLearningProgress(ctx context.Context, specs ...specification.Specification) ([]*entity.LearningProgress, error)
	FindJobMatches(ctx context.Context, specs ...specification.Specification) ([]*entity.JobMatch, error)
	FindApplications(ctx context.Context, specs ...specification.Specification) ([]*entity.Application, error)
	FindInterviewSessions(ctx context.Context, specs ...specification.Specification) ([]*entity.InterviewSession, error)
}
