package service

import (
	"context"

	"career-ai-be/internal/pkg/logger"
	"career-ai-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process event topic: every event is logged
// and, when a forwarder is configured, sent on to NATS.
type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	forwarder  events.Publisher
	logger     logger.ILogger
}

// NewConsumerService accepts a nil forwarder.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	forwarder events.Publisher,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		forwarder:  forwarder,
		logger:     logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// Diagnostics are best effort, so every message is acked.
	defer msg.Ack()

	evt, err := events.Decode(msg.Payload)
	if err != nil {
		cs.logger.Error("EVENTS", "Dropping undecodable event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	level := cs.logger.Info
	if evt.EventType() == events.ProfileProvisionFailed {
		level = cs.logger.Warn
	}
	level("EVENTS", evt.EventType(), map[string]interface{}{
		"message_id":  msg.UUID,
		"occurred_at": evt.Timestamp(),
		"payload":     evt.Payload(),
	})

	if cs.forwarder == nil {
		return
	}
	if err := cs.forwarder.Publish(ctx, evt); err != nil {
		cs.logger.Error("EVENTS", "Failed to forward event", map[string]interface{}{
			"event_type": evt.EventType(),
			"error":      err.Error(),
		})
	}
}
