package service

import (
	"context"

	"career-ai-be/internal/dto"
	"career-ai-be/internal/entity"
	"career-ai-be/internal/pkg/logger"
	"career-ai-be/pkg/datastore"

	"github.com/google/uuid"
)

type IProfileService interface {
	// CreateProfile upserts, so it also repairs an identity left without a
	// profile by a failed signup.
	CreateProfile(ctx context.Context, bearerToken string, userId uuid.UUID, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
}

type profileService struct {
	store  datastore.DataStore
	logger logger.ILogger
}

func NewProfileService(store datastore.DataStore, logger logger.ILogger) IProfileService {
	return &profileService{
		store:  store,
		logger: logger,
	}
}

func (s *profileService) CreateProfile(ctx context.Context, bearerToken string, userId uuid.UUID, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	err := s.store.CreateProfile(ctx, bearerToken, entity.Profile{
		UserId:          userId,
		FullName:        req.FullName,
		CareerGoal:      req.CareerGoal,
		ExperienceLevel: req.ExperienceLevel,
	})
	if err != nil {
		s.logger.Error("DATASTORE", "Profile write failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return nil, err
	}

	return s.GetProfile(ctx, userId)
}

func (s *profileService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	profile, err := s.store.GetProfile(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &dto.ProfileResponse{Provisioned: false}, nil
	}

	return &dto.ProfileResponse{
		Provisioned: true,
		Profile: &dto.ProfileDTO{
			UserId:          profile.UserId,
			FullName:        profile.FullName,
			CareerGoal:      profile.CareerGoal,
			ExperienceLevel: profile.ExperienceLevel,
			CreatedAt:       profile.CreatedAt,
			UpdatedAt:       profile.UpdatedAt,
		},
	}, nil
}
