package service

import (
	"context"
	"time"

	"career-ai-be/internal/dto"
	"career-ai-be/internal/pkg/logger"
	"career-ai-be/internal/pkg/metrics"
	"career-ai-be/pkg/dashboard"
	"career-ai-be/pkg/datastore"
	"career-ai-be/pkg/deadline"

	"github.com/google/uuid"
)

type IDashboardService interface {
	GetStats(ctx context.Context, userId uuid.UUID) (*dto.DashboardResponse, error)
	ListJobMatches(ctx context.Context, userId uuid.UUID) []*dto.JobMatchDTO
	ListApplications(ctx context.Context, userId uuid.UUID) []*dto.ApplicationDTO
	ListInterviewSessions(ctx context.Context, userId uuid.UUID) []*dto.InterviewSessionDTO
	ListLearningProgress(ctx context.Context, userId uuid.UUID) []*dto.LearningProgressDTO
}

type dashboardService struct {
	aggregator   *dashboard.Aggregator
	store        datastore.DataStore
	logger       logger.ILogger
	storeTimeout time.Duration
}

func NewDashboardService(aggregator *dashboard.Aggregator, store datastore.DataStore, logger logger.ILogger, storeTimeout time.Duration) IDashboardService {
	return &dashboardService{
		aggregator:   aggregator,
		store:        store,
		logger:       logger,
		storeTimeout: storeTimeout,
	}
}

func (s *dashboardService) GetStats(ctx context.Context, userId uuid.UUID) (*dto.DashboardResponse, error) {
	view, err := s.aggregator.LoadStats(ctx, userId)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Stats: dto.DashboardStatsDTO{
			UserId:              view.UserId,
			TotalJobMatches:     view.TotalJobMatches,
			AvgMatchScore:       view.AvgMatchScore,
			SkillsLearning:      view.SkillsLearning,
			LearningHours:       view.LearningHours,
			ApplicationsSent:    view.ApplicationsSent,
			InterviewsCompleted: view.InterviewsCompleted,
			LastUpdated:         view.LastUpdated,
		},
		Cards: []dto.StatCard{
			{Key: "skills_tracked", Label: "Skills Tracked", Value: float64(view.SkillsLearning)},
			{Key: "jobs_matched", Label: "Jobs Matched", Value: float64(view.TotalJobMatches)},
			{Key: "learning_hours", Label: "Learning Hours", Value: view.LearningHours},
			{Key: "applications", Label: "Applications", Value: float64(view.ApplicationsSent)},
		},
	}, nil
}

func (s *dashboardService) ListJobMatches(ctx context.Context, userId uuid.UUID) []*dto.JobMatchDTO {
	ctx, cancel := deadline.Bound(ctx, s.storeTimeout)
	defer cancel()

	rows, err := s.store.ListJobMatches(ctx, userId)
	s.degraded("job_matches", userId, err)

	res := make([]*dto.JobMatchDTO, 0, len(rows))
	for _, r := range rows {
		res = append(res, &dto.JobMatchDTO{
			MatchId:    r.MatchId,
			JobTitle:   r.JobTitle,
			Company:    r.Company,
			MatchScore: r.MatchScore,
			Status:     r.Status,
			CreatedAt:  r.CreatedAt,
		})
	}
	return res
}

func (s *dashboardService) ListApplications(ctx context.Context, userId uuid.UUID) []*dto.ApplicationDTO {
	ctx, cancel := deadline.Bound(ctx, s.storeTimeout)
	defer cancel()

	rows, err := s.store.ListApplications(ctx, userId)
	s.degraded("applications", userId, err)

	res := make([]*dto.ApplicationDTO, 0, len(rows))
	for _, r := range rows {
		res = append(res, &dto.ApplicationDTO{
			Id:        r.Id,
			Company:   r.Company,
			JobTitle:  r.JobTitle,
			Status:    r.Status,
			AppliedOn: r.AppliedOn,
		})
	}
	return res
}

func (s *dashboardService) ListInterviewSessions(ctx context.Context, userId uuid.UUID) []*dto.InterviewSessionDTO {
	ctx, cancel := deadline.Bound(ctx, s.storeTimeout)
	defer cancel()

	rows, err := s.store.ListInterviewSessions(ctx, userId)
	s.degraded("interview_sessions", userId, err)

	res := make([]*dto.InterviewSessionDTO, 0, len(rows))
	for _, r := range rows {
		res = append(res, &dto.InterviewSessionDTO{
			SessionId:   r.SessionId,
			ScheduledAt: r.ScheduledAt,
			RoundType:   r.RoundType,
			Score:       r.Score,
			Feedback:    r.Feedback,
			Completed:   r.Completed,
		})
	}
	return res
}

func (s *dashboardService) ListLearningProgress(ctx context.Context, userId uuid.UUID) []*dto.LearningProgressDTO {
	ctx, cancel := deadline.Bound(ctx, s.storeTimeout)
	defer cancel()

	rows, err := s.store.ListLearningProgress(ctx, userId)
	s.degraded("learning_progress", userId, err)

	res := make([]*dto.LearningProgressDTO, 0, len(rows))
	for _, r := range rows {
		res = append(res, &dto.LearningProgressDTO{
			Id:             r.Id,
			Skill:          r.Skill,
			CurrentLevel:   r.CurrentLevel,
			TargetLevel:    r.TargetLevel,
			HoursCompleted: r.HoursCompleted,
			UpdatedAt:      r.UpdatedAt,
		})
	}
	return res
}

// degraded logs a failed list read. Callers still render an empty list.
func (s *dashboardService) degraded(source string, userId uuid.UUID, err error) {
	if err == nil {
		return
	}
	metrics.RecordDegradedRead(source, "error")
	s.logger.Warn("DASHBOARD", "List read failed, returning empty list", map[string]interface{}{
		"source":  source,
		"user_id": userId.String(),
		"error":   err.Error(),
	})
}
