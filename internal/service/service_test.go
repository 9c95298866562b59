package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"career-ai-be/internal/dto"
	"career-ai-be/internal/entity"
	"career-ai-be/internal/pkg/logger"
	"career-ai-be/internal/repository/memory"
	"career-ai-be/pkg/chat"
	"career-ai-be/pkg/dashboard"
	"career-ai-be/pkg/datastore"
	"career-ai-be/pkg/events"
	"career-ai-be/pkg/modelbackend"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func i(v int) *int { return &v }

func newDashboardStack(mem *memory.Store) (*dashboard.Aggregator, datastore.DataStore) {
	store := datastore.NewRepositoryStore(memory.NewRepositoryFactory(mem), nil)
	return dashboard.NewAggregator(store, logger.NewNopLogger(), time.Second), store
}

func TestDashboardServiceCards(t *testing.T) {
	mem := memory.NewStore()
	userId := uuid.New()
	mem.PutDashboard(entity.DashboardStats{
		UserId:           userId,
		TotalJobMatches:  i(12),
		SkillsLearning:   i(3),
		ApplicationsSent: i(5),
	})
	mem.AddLearningProgress(entity.LearningProgress{Id: uuid.New(), UserId: userId, HoursCompleted: f64(9)})

	agg, store := newDashboardStack(mem)
	svc := NewDashboardService(agg, store, logger.NewNopLogger(), time.Second)

	res, err := svc.GetStats(context.Background(), userId)
	require.NoError(t, err)
	assert.Equal(t, []dto.StatCard{
		{Key: "skills_tracked", Label: "Skills Tracked", Value: 3},
		{Key: "jobs_matched", Label: "Jobs Matched", Value: 12},
		{Key: "learning_hours", Label: "Learning Hours", Value: 9},
		{Key: "applications", Label: "Applications", Value: 5},
	}, res.Cards)
}

func TestDashboardServiceListsDegradeToEmpty(t *testing.T) {
	mem := memory.NewStore()
	userId := uuid.New()
	mem.AddApplications(entity.Application{Id: uuid.New(), UserId: userId, Company: "Acme", AppliedOn: time.Now()})

	agg, store := newDashboardStack(mem)
	svc := NewDashboardService(agg, store, logger.NewNopLogger(), time.Second)
	ctx := context.Background()

	assert.Len(t, svc.ListApplications(ctx, userId), 1)

	mem.FailReads(errors.New("db down"))
	apps := svc.ListApplications(ctx, userId)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)
	assert.Empty(t, svc.ListJobMatches(ctx, userId))
	assert.Empty(t, svc.ListInterviewSessions(ctx, userId))
	assert.Empty(t, svc.ListLearningProgress(ctx, userId))
}

func TestChatServiceBuildsContextServerSide(t *testing.T) {
	mem := memory.NewStore()
	userId := uuid.New()
	mem.PutDashboard(entity.DashboardStats{UserId: userId, TotalLearningHours: f64(5)})
	mem.AddLearningProgress(entity.LearningProgress{Id: uuid.New(), UserId: userId, HoursCompleted: f64(9)})

	var got modelbackend.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"reply":"keep going"}`))
	}))
	defer srv.Close()

	agg, _ := newDashboardStack(mem)
	gw := chat.NewGateway(modelbackend.NewHTTPClient(srv.URL, time.Second), logger.NewNopLogger())
	svc := NewChatService(gw, agg)

	res, status, err := svc.Chat(context.Background(), userId, &dto.ChatRequest{Message: "how am I doing?"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "keep going", res.Reply)

	require.NotNil(t, got.Context.Dashboard)
	assert.Equal(t, userId.String(), got.Context.Dashboard.UserID)
	assert.Equal(t, 9.0, got.Context.LearningHours)
}

func TestChatServiceRejects(t *testing.T) {
	agg, _ := newDashboardStack(memory.NewStore())
	gw := chat.NewGateway(modelbackend.NewHTTPClient("", time.Second), logger.NewNopLogger())
	svc := NewChatService(gw, agg)
	userId := uuid.New()

	tests := []struct {
		name string
		req  dto.ChatRequest
	}{
		{name: "other user", req: dto.ChatRequest{UserId: uuid.NewString(), Message: "hi"}},
		{name: "blank message", req: dto.ChatRequest{UserId: userId.String(), Message: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Chat(context.Background(), userId, &tt.req)
			assert.ErrorIs(t, err, chat.ErrInvalidRequest)
		})
	}

	res, status, err := svc.Chat(context.Background(), userId, &dto.ChatRequest{
		Message: "hi",
		Context: &dto.ChatContextDTO{LearningHours: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, chat.ReplyNotConfigured, res.Reply)
}

type recordingForwarder struct {
	mu   sync.Mutex
	seen []string
}

func (r *recordingForwarder) Publish(_ context.Context, evt events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, evt.EventType())
	return nil
}

func (r *recordingForwarder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}

func TestConsumerForwardsEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	forwarder := &recordingForwarder{}
	consumer := NewConsumerService(pubSub, events.Topic, forwarder, logger.NewNopLogger())
	require.NoError(t, consumer.Consume(ctx))

	bus := events.NewBusPublisher(pubSub, events.Topic)
	require.NoError(t, bus.Publish(ctx, events.BaseEvent{Type: events.UserSignedUp, Data: map[string]interface{}{"user_id": "u"}, OccurredAt: time.Now()}))
	require.NoError(t, bus.Publish(ctx, events.BaseEvent{Type: events.ProfileProvisionFailed, Data: map[string]interface{}{"reason": "x"}, OccurredAt: time.Now()}))

	assert.Eventually(t, func() bool { return forwarder.count() == 2 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{events.UserSignedUp, events.ProfileProvisionFailed}, forwarder.seen)
}

func TestDashboardServiceListsWithoutStoreTimeout(t *testing.T) {
	mem := memory.NewStore()
	userId := uuid.New()
	mem.AddApplications(entity.Application{Id: uuid.New(), UserId: userId, Company: "Acme", AppliedOn: time.Now()})

	agg, store := newDashboardStack(mem)
	for _, timeout := range []time.Duration{0, -time.Second} {
		svc := NewDashboardService(agg, store, logger.NewNopLogger(), timeout)
		assert.Len(t, svc.ListApplications(context.Background(), userId), 1, timeout)
	}
}

type stalledProfileStore struct {
	datastore.DataStore
}

func (stalledProfileStore) CreateProfile(ctx context.Context, _ string, _ entity.Profile) error {
	<-ctx.Done()
	return ctx.Err()
}

func (stalledProfileStore) GetProfile(ctx context.Context, _ uuid.UUID) (*entity.Profile, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestProfileServiceFailsFastOnStalledStore(t *testing.T) {
	svc := NewProfileService(datastore.WithTimeout(stalledProfileStore{}, 30*time.Millisecond), logger.NewNopLogger())
	ctx := context.Background()
	userId := uuid.New()

	start := time.Now()
	_, err := svc.GetProfile(ctx, userId)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = svc.CreateProfile(ctx, "token", userId, &dto.CreateProfileRequest{
		FullName:        "Ada Lovelace",
		CareerGoal:      "upskill",
		ExperienceLevel: "mid",
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}
