package authstore

import (
	"context"
	"time"

	"career-ai-be/internal/entity"
	"career-ai-be/pkg/deadline"
)

// BoundedStore puts a deadline on every call to the wrapped AuthStore. It is
// also what the JWT middleware verifies sessions through.
type BoundedStore struct {
	next    AuthStore
	timeout time.Duration
}

var _ AuthStore = (*BoundedStore)(nil)

func WithTimeout(next AuthStore, timeout time.Duration) *BoundedStore {
	return &BoundedStore{next: next, timeout: timeout}
}

func (s *BoundedStore) CreateIdentity(ctx context.Context, email, password string, meta entity.SignupMetadata) (*entity.Identity, *entity.Session, error) {
	ctx, cancel := deadline.Bound(ctx, s.timeout)
	defer cancel()
	return s.next.CreateIdentity(ctx, email, password, meta)
}

func (s *BoundedStore) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	ctx, cancel := deadline.Bound(ctx, s.timeout)
	defer cancel()
	return s.next.SignIn(ctx, email, password)
}

func (s *BoundedStore) GetSession(ctx context.Context, accessToken string) (*entity.Session, error) {
	ctx, cancel := deadline.Bound(ctx, s.timeout)
	defer cancel()
	return s.next.GetSession(ctx, accessToken)
}

func (s *BoundedStore) SignOut(ctx context.Context, accessToken string) error {
	ctx, cancel := deadline.Bound(ctx, s.timeout)
	defer cancel()
	return s.next.SignOut(ctx, accessToken)
}
