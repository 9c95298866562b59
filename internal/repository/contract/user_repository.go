package contract

import (
	"context"
	"errors"

	"career-ai-be/internal/entity"
	"career-ai-be/internal/repository/specification"
)

// ErrDuplicateEmail is returned by Create when the email is already taken.
var ErrDuplicateEmail = errors.New("duplicate email")

type UserRepository interface {
	Create(ctx context.Context, identity *entity.Identity) error
	// FindOne returns (nil, nil) when nothing matches.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Identity, error)
}
