package implementation

import (
	"context"
	"errors"

	"career-ai-be/internal/entity"
	"career-ai-be/internal/mapper"
	"career-ai-be/internal/model"
	"career-ai-be/internal/repository/contract"
	"career-ai-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CareerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CareerMapper
}

func NewCareerRepository(db *gorm.DB) contract.CareerRepository {
	return &CareerRepositoryImpl{
		db:     db,
		mapper: mapper.NewCareerMapper(),
	}
}

func (r *CareerRepositoryImpl) FindDashboard(ctx context.Context, userId uuid.UUID) (*entity.DashboardStats, error) {
	var row model.UserCareerDashboard
	// The view has no primary key, so Take instead of First.
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DashboardToEntity(&row), nil
}

func (r *CareerRepositoryImpl) FindLearningProgress(ctx context.Context, specs ...specification.Specification) ([]*entity.LearningProgress, error) {
	var rows []*model.LearningProgress
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.LearningToEntities(rows), nil
}

func (r *CareerRepositoryImpl) FindJobMatches(ctx context.Context, specs ...specification.Specification) ([]*entity.JobMatch, error) {
	var rows []*model.JobMatch
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.JobMatchesToEntities(rows), nil
}

func (r *CareerRepositoryImpl) FindApplications(ctx context.Context, specs ...specification.Specification) ([]*entity.Application, error) {
	var rows []*model.Application
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.ApplicationsToEntities(rows), nil
}

func (r *CareerRepositoryImpl) FindInterviewSessions(ctx context.Context, specs ...specification.Specification) ([]*entity.InterviewSession, error) {
	var rows []*model.InterviewSession
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.mapper.InterviewsToEntities(rows), nil
}
