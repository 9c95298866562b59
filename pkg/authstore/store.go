// Package authstore is the identity provider capability: it owns credentials
// and sessions and nothing else in the module stores either.
package authstore

import (
	"context"
	"errors"

	"career-ai-be/internal/entity"
)

// Error texts are shown to end users as-is.
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidEmail           = errors.New("please enter a valid email address")
	ErrWeakPassword           = errors.New("password must be at least 8 characters")
	ErrInvalidCredentials     = errors.New("invalid login credentials")
)

const MinPasswordLength = 8

type AuthStore interface {
	CreateIdentity(ctx context.Context, email, password string, meta entity.SignupMetadata) (*entity.Identity, *entity.Session, error)
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)
	// GetSession returns (nil, nil) for a missing, expired, forged or revoked token.
	GetSession(ctx context.Context, accessToken string) (*entity.Session, error)
	SignOut(ctx context.Context, accessToken string) error
}
