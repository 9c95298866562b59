package service

import (
	"context"

	"career-ai-be/internal/dto"
	"career-ai-be/internal/entity"
	"career-ai-be/pkg/authstore"
	"career-ai-be/pkg/provisioning"
)

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionDTO, error)
	// GetSession returns nil for a token that is missing, expired or revoked.
	GetSession(ctx context.Context, accessToken string) (*dto.SessionDTO, error)
	Logout(ctx context.Context, accessToken string) error
}

type authService struct {
	auth        authstore.AuthStore
	coordinator *provisioning.Coordinator
}

func NewAuthService(auth authstore.AuthStore, coordinator *provisioning.Coordinator) IAuthService {
	return &authService{
		auth:        auth,
		coordinator: coordinator,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	res, err := s.coordinator.Provision(ctx, provisioning.SignupRequest{
		Email:    req.Email,
		Password: req.Password,
		Metadata: entity.SignupMetadata{
			FullName:        req.FullName,
			CareerGoal:      req.CareerGoal,
			ExperienceLevel: req.ExperienceLevel,
		},
	})
	if err != nil {
		return nil, err
	}

	return &dto.SignupResponse{
		User: dto.UserDTO{
			Id:              res.Identity.Id,
			Email:           res.Identity.Email,
			FullName:        res.Identity.Metadata.FullName,
			CareerGoal:      res.Identity.Metadata.CareerGoal,
			ExperienceLevel: res.Identity.Metadata.ExperienceLevel,
		},
		Session: toSessionDTO(res.Session),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionDTO, error) {
	session, err := s.auth.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return toSessionDTO(session), nil
}

func (s *authService) GetSession(ctx context.Context, accessToken string) (*dto.SessionDTO, error) {
	session, err := s.auth.GetSession(ctx, accessToken)
	if err != nil || session == nil {
		return nil, err
	}
	return toSessionDTO(session), nil
}

func (s *authService) Logout(ctx context.Context, accessToken string) error {
	return s.auth.SignOut(ctx, accessToken)
}

func toSessionDTO(session *entity.Session) *dto.SessionDTO {
	if session == nil {
		return nil
	}
	return &dto.SessionDTO{
		AccessToken: session.AccessToken,
		TokenType:   "bearer",
		ExpiresAt:   session.ExpiresAt,
		UserId:      session.UserId,
		Email:       session.Email,
	}
}
