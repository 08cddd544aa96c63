package ports

import (
	"tracker/internal/core/domain/events"
)

// EventHub is the fan-out channel between the application core and
// connected tracking clients. Subscriptions and publishes are keyed by
// topic; client identifiers are opaque to the core.
type EventHub interface {
	// Publish delivers an event to every client subscribed to its topic.
	// Publishing to a topic with no subscribers is a no-op.
	Publish(event events.Event)

	// Subscribe adds a client to a topic. Subscribing a client to a
	// topic it already follows is a no-op.
	Subscribe(clientID string, topic events.Topic)

	// Unsubscribe removes a client from a topic. Unsubscribing a client
	// that does not follow the topic is a no-op.
	Unsubscribe(clientID string, topic events.Topic)

	// Subscribers returns the identifiers of all clients currently
	// subscribed to a topic.
	Subscribers(topic events.Topic) []string
}
