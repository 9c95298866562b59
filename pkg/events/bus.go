package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Topic is the in-process topic every domain event goes through.
const Topic = "career.events"

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// BusPublisher puts events on a watermill publisher (the gochannel pub/sub
// in this service).
type BusPublisher struct {
	publisher message.Publisher
	topic     string
}

var _ Publisher = (*BusPublisher)(nil)

func NewBusPublisher(publisher message.Publisher, topic string) *BusPublisher {
	return &BusPublisher{publisher: publisher, topic: topic}
}

func (p *BusPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := Encode(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set("event_type", event.EventType())

	if err := p.publisher.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("failed to publish %s to %s: %w", event.EventType(), p.topic, err)
	}
	return nil
}
