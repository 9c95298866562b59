package provisioning

import (
	"context"
	"time"

	"career-ai-be/internal/entity"
	"career-ai-be/internal/pkg/logger"
	"career-ai-be/pkg/events"

	"github.com/google/uuid"
)

// EventPublisher reports provisioning outcomes to operators. Publishing is
// fire-and-forget: failures are logged, never returned.
type EventPublisher interface {
	PublishUserSignedUp(ctx context.Context, identity *entity.Identity, profileProvisioned bool)
	PublishProfileProvisionFailed(ctx context.Context, userId uuid.UUID, cause error)
}

type BusEventPublisher struct {
	publisher events.Publisher
	logger    logger.ILogger
}

// NewEventPublisher accepts a nil publisher, which turns every call into a no-op.
func NewEventPublisher(publisher events.Publisher, logger logger.ILogger) *BusEventPublisher {
	return &BusEventPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func (p *BusEventPublisher) PublishUserSignedUp(ctx context.Context, identity *entity.Identity, profileProvisioned bool) {
	if p.publisher == nil {
		return
	}

	evt := events.BaseEvent{
		Type: events.UserSignedUp,
		Data: map[string]interface{}{
			"user_id":             identity.Id.String(),
			"email":               identity.Email,
			"career_goal":         identity.Metadata.CareerGoal,
			"experience_level":    identity.Metadata.ExperienceLevel,
			"profile_provisioned": profileProvisioned,
		},
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("PROVISIONING", "Failed to publish USER_SIGNED_UP event", map[string]interface{}{"error": err.Error()})
	}
}

func (p *BusEventPublisher) PublishProfileProvisionFailed(ctx context.Context, userId uuid.UUID, cause error) {
	if p.publisher == nil {
		return
	}

	evt := events.BaseEvent{
		Type: events.ProfileProvisionFailed,
		Data: map[string]interface{}{
			"user_id": userId.String(),
			"reason":  cause.Error(),
		},
		OccurredAt: time.Now(),
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("PROVISIONING", "Failed to publish PROFILE_PROVISION_FAILED event", map[string]interface{}{"error": err.Error()})
	}
}
