// Package datastore is the profile and analytics store capability used by
// the provisioning coordinator, the dashboard aggregator and the detail
// list endpoints.
package datastore

import (
	"context"
	"errors"

	"career-ai-be/internal/entity"

	"github.com/google/uuid"
)

var (
	ErrUnauthorized     = errors.New("bearer credential does not belong to this user")
	ErrIdentityNotFound = errors.New("identity not found")
)

type DataStore interface {
	// CreateProfile writes the profile on behalf of the bearer. Re-running it
	// for the same user overwrites the earlier row.
	CreateProfile(ctx context.Context, bearerToken string, profile entity.Profile) error
	// GetProfile returns (nil, nil) for a user that is not provisioned yet.
	GetProfile(ctx context.Context, userId uuid.UUID) (*entity.Profile, error)

	// ReadSummaryView returns (nil, nil) when the user has no summary row.
	ReadSummaryView(ctx context.Context, userId uuid.UUID) (*entity.DashboardStats, error)
	ReadLearningRows(ctx context.Context, userId uuid.UUID) ([]*entity.LearningProgress, error)

	ListJobMatches(ctx context.Context, userId uuid.UUID) ([]*entity.JobMatch, error)
	ListApplications(ctx context.Context, userId uuid.UUID) ([]*entity.Application, error)
	ListInterviewSessions(ctx context.Context, userId uuid.UUID) ([]*entity.InterviewSession, error)
	ListLearningProgress(ctx context.Context, userId uuid.UUID) ([]*entity.LearningProgress, error)
}

type SessionVerifier interface {
	GetSession(ctx context.Context, accessToken string) (*entity.Session, error)
}
