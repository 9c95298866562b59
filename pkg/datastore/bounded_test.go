package datastore

import (
	"context"
	"testing"
	"time"

	"career-ai-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// stalledStore blocks every call until the caller's context ends.
type stalledStore struct {
	DataStore
}

func (stalledStore) CreateProfile(ctx context.Context, _ string, _ entity.Profile) error {
	<-ctx.Done()
	return ctx.Err()
}

func (stalledStore) GetProfile(ctx context.Context, _ uuid.UUID) (*entity.Profile, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stalledStore) ListApplications(ctx context.Context, _ uuid.UUID) ([]*entity.Application, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestBoundedStoreGivesUpOnStalledStore(t *testing.T) {
	store := WithTimeout(stalledStore{}, 30*time.Millisecond)
	ctx := context.Background()

	calls := map[string]func() error{
		"create profile": func() error {
			return store.CreateProfile(ctx, "token", entity.Profile{UserId: uuid.New()})
		},
		"get profile": func() error {
			_, err := store.GetProfile(ctx, uuid.New())
			return err
		},
		"list applications": func() error {
			_, err := store.ListApplications(ctx, uuid.New())
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			start := time.Now()
			err := call()
			assert.ErrorIs(t, err, context.DeadlineExceeded)
			assert.Less(t, time.Since(start), 2*time.Second)
		})
	}
}

func TestBoundedStoreKeepsCallerCancellation(t *testing.T) {
	store := WithTimeout(stalledStore{}, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.GetProfile(ctx, uuid.New())
	assert.ErrorIs(t, err, context.Canceled)
}
