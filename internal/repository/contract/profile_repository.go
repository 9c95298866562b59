package contract

import (
	"context"

	"career-ai-be/internal/entity"
	"career-ai-be/internal/repository/specification"
)

type ProfileRepository interface {
	// Upsert inserts the profile or overwrites the existing row for the same user.
	Upsert(ctx context.Context, profile *entity.Profile) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error)
}
