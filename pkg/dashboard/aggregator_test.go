package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"career-ai-be/internal/entity"
	"career-ai-be/internal/pkg/logger"
	"career-ai-be/internal/repository/memory"
	"career-ai-be/pkg/datastore"
	"career-ai-be/pkg/outcome"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubReader struct {
	summary    *entity.DashboardStats
	summaryErr error
	rows       []*entity.LearningProgress
	rowsErr    error
}

func (s stubReader) ReadSummaryView(context.Context, uuid.UUID) (*entity.DashboardStats, error) {
	return s.summary, s.summaryErr
}

func (s stubReader) ReadLearningRows(context.Context, uuid.UUID) ([]*entity.LearningProgress, error) {
	return s.rows, s.rowsErr
}

func f64(v float64) *float64 { return &v }

func i(v int) *int { return &v }

func hoursRows(hours ...*float64) []*entity.LearningProgress {
	rows := make([]*entity.LearningProgress, len(hours))
	for idx, h := range hours {
		rows[idx] = &entity.LearningProgress{Id: uuid.New(), HoursCompleted: h}
	}
	return rows
}

func TestLoadStatsMergeRules(t *testing.T) {
	userId := uuid.New()
	updated := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		reader      stubReader
		wantHours   float64
		wantMatches int
		wantSummary outcome.Kind
		wantLearn   outcome.Kind
	}{
		{
			name: "summary value wins when present",
			reader: stubReader{
				summary: &entity.DashboardStats{UserId: userId, TotalLearningHours: f64(5), TotalJobMatches: i(3)},
				rows:    hoursRows(f64(4), f64(5)),
			},
			wantHours:   5,
			wantMatches: 3,
			wantSummary: outcome.KindOk,
			wantLearn:   outcome.KindOk,
		},
		{
			name: "null summary value falls back to computed",
			reader: stubReader{
				summary: &entity.DashboardStats{UserId: userId, TotalLearningHours: nil},
				rows:    hoursRows(f64(4), f64(5)),
			},
			wantHours:   9,
			wantSummary: outcome.KindOk,
			wantLearn:   outcome.KindOk,
		},
		{
			name: "explicit zero in summary still wins",
			reader: stubReader{
				summary: &entity.DashboardStats{UserId: userId, TotalLearningHours: f64(0)},
				rows:    hoursRows(f64(9)),
			},
			wantHours:   0,
			wantSummary: outcome.KindOk,
			wantLearn:   outcome.KindOk,
		},
		{
			name:        "no summary row uses computed hours",
			reader:      stubReader{rows: hoursRows(f64(2.5), nil, f64(1))},
			wantHours:   3.5,
			wantSummary: outcome.KindDegraded,
			wantLearn:   outcome.KindOk,
		},
		{
			name: "summary error uses computed hours",
			reader: stubReader{
				summaryErr: errors.New("view missing"),
				rows:       hoursRows(f64(9)),
			},
			wantHours:   9,
			wantSummary: outcome.KindDegraded,
			wantLearn:   outcome.KindOk,
		},
		{
			name: "learning error becomes zero",
			reader: stubReader{
				summary: &entity.DashboardStats{UserId: userId, TotalJobMatches: i(7), LastUpdated: &updated},
				rowsErr: errors.New("timeout"),
			},
			wantHours:   0,
			wantMatches: 7,
			wantSummary: outcome.KindOk,
			wantLearn:   outcome.KindDegraded,
		},
		{
			name: "another user's row is ignored",
			reader: stubReader{
				summary: &entity.DashboardStats{UserId: uuid.New(), TotalJobMatches: i(99), TotalLearningHours: f64(40)},
				rows:    hoursRows(f64(1)),
			},
			wantHours:   1,
			wantMatches: 0,
			wantSummary: outcome.KindDegraded,
			wantLearn:   outcome.KindOk,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewAggregator(tt.reader, logger.NewNopLogger(), time.Second)

			view, err := agg.LoadStats(context.Background(), userId)
			require.NoError(t, err)
			assert.Equal(t, userId, view.UserId)
			assert.Equal(t, tt.wantHours, view.LearningHours)
			assert.Equal(t, tt.wantMatches, view.TotalJobMatches)
			assert.Equal(t, tt.wantSummary, view.SummaryKind)
			assert.Equal(t, tt.wantLearn, view.LearningKind)
			require.NotNil(t, view.Stats)
			assert.Equal(t, userId, view.Stats.UserId)
		})
	}
}

func TestLoadStatsNoDataIsAllZero(t *testing.T) {
	mem := memory.NewStore()
	agg := NewAggregator(datastore.NewRepositoryStore(memory.NewRepositoryFactory(mem), nil), logger.NewNopLogger(), time.Second)

	for _, failing := range []bool{false, true} {
		if failing {
			mem.FailReads(errors.New("store unavailable"))
		}
		userId := uuid.New()

		view, err := agg.LoadStats(context.Background(), userId)
		require.NoError(t, err)
		assert.Equal(t, &DashboardView{
			UserId:       userId,
			Stats:        entity.EmptyDashboardStats(userId),
			SummaryKind:  outcome.KindDegraded,
			LearningKind: view.LearningKind,
		}, view)
	}
}

func TestLoadStatsIsIdempotent(t *testing.T) {
	mem := memory.NewStore()
	userId := uuid.New()
	mem.PutDashboard(entity.DashboardStats{UserId: userId, TotalJobMatches: i(4), AvgMatchScore: f64(81.5), SkillsLearning: i(2)})
	mem.AddLearningProgress(
		entity.LearningProgress{Id: uuid.New(), UserId: userId, Skill: "Go", HoursCompleted: f64(6)},
		entity.LearningProgress{Id: uuid.New(), UserId: uuid.New(), Skill: "Rust", HoursCompleted: f64(100)},
	)
	agg := NewAggregator(datastore.NewRepositoryStore(memory.NewRepositoryFactory(mem), nil), logger.NewNopLogger(), time.Second)

	first, err := agg.LoadStats(context.Background(), userId)
	require.NoError(t, err)
	second, err := agg.LoadStats(context.Background(), userId)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 6.0, first.LearningHours)
	assert.Equal(t, 81.5, first.AvgMatchScore)
}

func TestLoadStatsRejectsNilUser(t *testing.T) {
	agg := NewAggregator(stubReader{}, logger.NewNopLogger(), time.Second)
	_, err := agg.LoadStats(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidUserID)
}

// barrierReader only answers once both reads are in flight.
type barrierReader struct {
	wg sync.WaitGroup
}

func (b *barrierReader) wait(ctx context.Context) error {
	b.wg.Done()
	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *barrierReader) ReadSummaryView(ctx context.Context, userId uuid.UUID) (*entity.DashboardStats, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return &entity.DashboardStats{UserId: userId, TotalJobMatches: i(1)}, nil
}

func (b *barrierReader) ReadLearningRows(ctx context.Context, _ uuid.UUID) ([]*entity.LearningProgress, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return hoursRows(f64(2)), nil
}

func TestLoadStatsReadsConcurrently(t *testing.T) {
	reader := &barrierReader{}
	reader.wg.Add(2)
	agg := NewAggregator(reader, logger.NewNopLogger(), 2*time.Second)

	view, err := agg.LoadStats(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, outcome.KindOk, view.SummaryKind)
	assert.Equal(t, outcome.KindOk, view.LearningKind)
	assert.Equal(t, 2.0, view.LearningHours)
}

type slowReader struct{}

func (slowReader) ReadSummaryView(ctx context.Context, _ uuid.UUID) (*entity.DashboardStats, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowReader) ReadLearningRows(ctx context.Context, _ uuid.UUID) ([]*entity.LearningProgress, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestLoadStatsTimesOutToDefaults(t *testing.T) {
	agg := NewAggregator(slowReader{}, logger.NewNopLogger(), 20*time.Millisecond)

	view, err := agg.LoadStats(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, outcome.KindDegraded, view.SummaryKind)
	assert.Equal(t, outcome.KindDegraded, view.LearningKind)
	assert.Zero(t, view.LearningHours)
}
