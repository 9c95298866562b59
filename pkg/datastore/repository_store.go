package datastore

import (
	"context"
	"fmt"

	"career-ai-be/internal/entity"
	"career-ai-be/internal/repository/specification"
	"career-ai-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// RepositoryStore implements DataStore over the unit-of-work repositories.
type RepositoryStore struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   SessionVerifier
}

// ListPageSize bounds the career-record lists to the newest rows.
const ListPageSize = 100

var _ DataStore = (*RepositoryStore)(nil)

func NewRepositoryStore(uowFactory unitofwork.RepositoryFactory, sessions SessionVerifier) *RepositoryStore {
	return &RepositoryStore{
		uowFactory: uowFactory,
		sessions:   sessions,
	}
}

func (s *RepositoryStore) CreateProfile(ctx context.Context, bearerToken string, profile entity.Profile) error {
	session, err := s.sessions.GetSession(ctx, bearerToken)
	if err != nil {
		return fmt.Errorf("verify bearer: %w", err)
	}
	if session == nil || session.UserId != profile.UserId {
		return ErrUnauthorized
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	identity, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: profile.UserId})
	if err != nil {
		return fmt.Errorf("lookup identity: %w", err)
	}
	if identity == nil {
		return ErrIdentityNotFound
	}

	if err := uow.ProfileRepository().Upsert(ctx, &profile); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	return uow.Commit()
}

func (s *RepositoryStore) GetProfile(ctx context.Context, userId uuid.UUID) (*entity.Profile, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
}

func (s *RepositoryStore) ReadSummaryView(ctx context.Context, userId uuid.UUID) (*entity.DashboardStats, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CareerRepository().FindDashboard(ctx, userId)
}

func (s *RepositoryStore) ReadLearningRows(ctx context.Context, userId uuid.UUID) ([]*entity.LearningProgress, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CareerRepository().FindLearningProgress(ctx, specification.UserOwnedBy{UserID: userId})
}

func (s *RepositoryStore) ListJobMatches(ctx context.Context, userId uuid.UUID) ([]*entity.JobMatch, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CareerRepository().FindJobMatches(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.FirstPage(ListPageSize),
	)
}

func (s *RepositoryStore) ListApplications(ctx context.Context, userId uuid.UUID) ([]*entity.Application, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CareerRepository().FindApplications(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "applied_on", Desc: true},
		specification.FirstPage(ListPageSize),
	)
}

func (s *RepositoryStore) ListInterviewSessions(ctx context.Context, userId uuid.UUID) ([]*entity.InterviewSession, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CareerRepository().FindInterviewSessions(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "scheduled_at", Desc: true},
		specification.FirstPage(ListPageSize),
	)
}

func (s *RepositoryStore) ListLearningProgress(ctx context.Context, userId uuid.UUID) ([]*entity.LearningProgress, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CareerRepository().FindLearningProgress(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "updated_at", Desc: true},
		specification.FirstPage(ListPageSize),
	)
}
