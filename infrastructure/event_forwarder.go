package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"wagerbot/events"
)

// MessagePublisher sends an encoded message to a subject
type MessagePublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// SubjectFor maps a committed event to its NATS subject
func SubjectFor(eventType events.EventType) string {
	switch eventType {
	case events.EventTypeBalanceChange:
		return "users.balance_changed"
	case events.EventTypeUserCreated:
		return "users.created"
	case events.EventTypeWagerResolved:
		return "wagers.resolved"
	default:
		return fmt.Sprintf("unknown.%s", eventType)
	}
}

// EventForwarder relays committed bus events to an external message bus as JSON
type EventForwarder struct {
	publisher MessagePublisher
}

// NewEventForwarder creates a forwarder writing to publisher
func NewEventForwarder(publisher MessagePublisher) *EventForwarder {
	return &EventForwarder{publisher: publisher}
}

// Register subscribes the forwarder to every event type the bot emits
func (f *EventForwarder) Register(bus *events.Bus) {
	for _, eventType := range []events.EventType{
		events.EventTypeBalanceChange,
		events.EventTypeUserCreated,
		events.EventTypeWagerResolved,
	} {
		bus.Subscribe(eventType, f.Handle)
	}
}

// Handle encodes and publishes a single event. Failures are logged, never retried.
func (f *EventForwarder) Handle(ctx context.Context, event events.Event) {
	subject := SubjectFor(event.Type())

	data, err := json.Marshal(event)
	if err != nil {
		log.WithFields(log.Fields{
			"eventType": event.Type(),
			"error":     err,
		}).Error("Failed to encode event for forwarding")
		return
	}

	if err := f.publisher.Publish(ctx, subject, data); err != nil {
		log.WithFields(log.Fields{
			"eventType": event.Type(),
			"subject":   subject,
			"error":     err,
		}).Error("Failed to forward event")
	}
}
