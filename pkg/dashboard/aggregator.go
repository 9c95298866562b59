// Package dashboard builds the per-user career dashboard from the summary
// view and the raw learning rows, filling defaults wherever data is missing.
package dashboard

import (
	"context"
	"errors"
	"time"

	"career-ai-be/internal/entity"
	"career-ai-be/internal/pkg/logger"
	"career-ai-be/internal/pkg/metrics"
	"career-ai-be/pkg/deadline"
	"career-ai-be/pkg/outcome"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("career-ai-be/pkg/dashboard")

var (
	ErrInvalidUserID = errors.New("user id is required")
	errForeignRow    = errors.New("summary row belongs to another user")
)

// Reader is the slice of the data store the aggregator reads from.
type Reader interface {
	ReadSummaryView(ctx context.Context, userId uuid.UUID) (*entity.DashboardStats, error)
	ReadLearningRows(ctx context.Context, userId uuid.UUID) ([]*entity.LearningProgress, error)
}

// DashboardView has no nullable metrics. Stats is the summary row actually
// used, which is the zero-valued row when the read degraded.
type DashboardView struct {
	UserId              uuid.UUID
	TotalJobMatches     int
	AvgMatchScore       float64
	SkillsLearning      int
	LearningHours       float64
	ApplicationsSent    int
	InterviewsCompleted int
	LastUpdated         *time.Time

	Stats              *entity.DashboardStats
	LearningHoursTotal float64
	SummaryKind        outcome.Kind
	LearningKind       outcome.Kind
}

type Aggregator struct {
	reader  Reader
	logger  logger.ILogger
	timeout time.Duration
}

func NewAggregator(reader Reader, logger logger.ILogger, timeout time.Duration) *Aggregator {
	return &Aggregator{
		reader:  reader,
		logger:  logger,
		timeout: timeout,
	}
}

// LoadStats only fails for a nil user id. Every read failure is absorbed.
func (a *Aggregator) LoadStats(ctx context.Context, userId uuid.UUID) (*DashboardView, error) {
	if userId == uuid.Nil {
		return nil, ErrInvalidUserID
	}

	ctx, span := tracer.Start(ctx, "dashboard.load_stats")
	defer span.End()

	var (
		summary  outcome.Outcome[*entity.DashboardStats]
		learning outcome.Outcome[float64]
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		summary = a.readSummary(egCtx, userId)
		return nil
	})
	eg.Go(func() error {
		learning = a.readLearningHours(egCtx, userId)
		return nil
	})
	_ = eg.Wait()

	span.SetAttributes(
		attribute.String("dashboard.summary", summary.Kind().String()),
		attribute.String("dashboard.learning", learning.Kind().String()),
	)
	return merge(userId, summary, learning), nil
}

func (a *Aggregator) readSummary(ctx context.Context, userId uuid.UUID) outcome.Outcome[*entity.DashboardStats] {
	ctx, cancel := a.bounded(ctx)
	defer cancel()

	row, err := a.reader.ReadSummaryView(ctx, userId)
	switch {
	case err != nil:
		metrics.RecordDegradedRead("summary_view", "error")
		a.logger.Warn("DASHBOARD", "Summary view read failed, using defaults", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return outcome.Degraded(entity.EmptyDashboardStats(userId), err)
	case row == nil:
		metrics.RecordDegradedRead("summary_view", "no_row")
		a.logger.Debug("DASHBOARD", "No summary row yet, using defaults", map[string]interface{}{
			"user_id": userId.String(),
		})
		return outcome.Degraded(entity.EmptyDashboardStats(userId), nil)
	case row.UserId != userId:
		metrics.RecordDegradedRead("summary_view", "foreign_row")
		a.logger.Error("DASHBOARD", "Summary view returned another user's row", map[string]interface{}{
			"user_id": userId.String(),
			"row_for": row.UserId.String(),
		})
		return outcome.Degraded(entity.EmptyDashboardStats(userId), errForeignRow)
	}
	return outcome.Ok(row)
}

func (a *Aggregator) readLearningHours(ctx context.Context, userId uuid.UUID) outcome.Outcome[float64] {
	ctx, cancel := a.bounded(ctx)
	defer cancel()

	rows, err := a.reader.ReadLearningRows(ctx, userId)
	if err != nil {
		metrics.RecordDegradedRead("learning_rows", "error")
		a.logger.Warn("DASHBOARD", "Learning rows read failed, using 0 hours", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}
	return outcome.Absorb(SumHours(rows), err, 0)
}

func (a *Aggregator) bounded(ctx context.Context) (context.Context, context.CancelFunc) {
	return deadline.Bound(ctx, a.timeout)
}

// SumHours adds up hours_completed, skipping null cells.
func SumHours(rows []*entity.LearningProgress) float64 {
	var total float64
	for _, row := range rows {
		if row != nil && row.HoursCompleted != nil {
			total += *row.HoursCompleted
		}
	}
	return total
}

// merge prefers the summary's learning hours when the summary row was
// actually read and the column is non-null.
func merge(userId uuid.UUID, summary outcome.Outcome[*entity.DashboardStats], learning outcome.Outcome[float64]) *DashboardView {
	stats := summary.Value()
	computed := learning.Value()

	hours := computed
	if summary.IsOk() && stats.TotalLearningHours != nil {
		hours = *stats.TotalLearningHours
	}

	return &DashboardView{
		UserId:              userId,
		TotalJobMatches:     intOrZero(stats.TotalJobMatches),
		AvgMatchScore:       floatOrZero(stats.AvgMatchScore),
		SkillsLearning:      intOrZero(stats.SkillsLearning),
		LearningHours:       hours,
		ApplicationsSent:    intOrZero(stats.ApplicationsSent),
		InterviewsCompleted: intOrZero(stats.InterviewsCompleted),
		LastUpdated:         stats.LastUpdated,
		Stats:               stats,
		LearningHoursTotal:  computed,
		SummaryKind:         summary.Kind(),
		LearningKind:        learning.Kind(),
	}
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
