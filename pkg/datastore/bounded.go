package datastore

import (
	"context"
	"time"

	"career-ai-be/internal/entity"
	"career-ai-be/pkg/deadline"

	"github.com/google/uuid"
)

// BoundedStore puts a deadline on every call to the wrapped store so a
// stalled database cannot hold a request open.
type BoundedStore struct {
	next    DataStore
	timeout time.Duration
}

var _ DataStore = (*BoundedStore)(nil)

func WithTimeout(next DataStore, timeout time.Duration) *BoundedStore {
	return &BoundedStore{next: next, timeout: timeout}
}

func (s *BoundedStore) CreateProfile(ctx context.Context, bearerToken string, profile entity.Profile) error {
	ctx, cancel := deadline.Bound(ctx, s.timeout)
	defer cancel()
	return s.next.CreateProfile(ctx, bearerToken, profile)
}

func (s *BoundedStore) GetProfile(ctx context.Context, userId uuid.UUID) (*entity.Profile, error) {
	ctx, cancel := deadline.Bound(ctx, s.timeout)
	defer cancel()
	return s.next.GetProfile(ctx, userId)
}

func (s *BoundedStore) ReadSummaryView(ctx context.Context, userId uuid.UUID) (*entity.DashboardStats, error) {
	ctx, cancel := deadline.Bound(ctx, s.timeout)
	defer cancel()
	return s.next.ReadSummaryView(ctx, userId)
}

func (s *BoundedStore) ReadLearningRows(ctx context.Context, userId uuid.UUID) ([]*entity.LearningProgress, error) {
	ctx, cancel := deadline.Bound(ctx, s.timeout)
	defer cancel()
	return s.next.ReadLearningRows(ctx, userId)
}

func (s *BoundedStore) ListJobMatches(ctx context.Context, userId uuid.UUID) ([]*entity.JobMatch, error) {
	ctx, cancel := deadline.Bound(ctx, s.timeout)
	defer cancel()
	return s.next.ListJobMatches(ctx, userId)
}

func (s *BoundedStore) ListApplications(ctx context.Context, userId uuid.UUID) ([]*entity.Application, error) {
	ctx, cancel := deadline.Bound(ctx, s.timeout)
	defer cancel()
	return s.next.ListApplications(ctx, userId)
}

func (s *BoundedStore) ListInterviewSessions(ctx context.Context, userId uuid.UUID) ([]*entity.InterviewSession, error) {
	ctx, cancel := deadline.Bound(ctx, s.timeout)
	defer cancel()
	return s.next.ListInterviewSessions(ctx, userId)
}

func (s *BoundedStore) ListLearningProgress(ctx context.Context, userId uuid.UUID) ([]*entity.LearningProgress, error) {
	ctx, cancel := deadline.Bound(ctx, s.timeout)
	defer cancel()
	return s.next.ListLearningProgress(ctx, userId)
}
