// Package pubsub provides the in-process event hub that fans domain events
// out to connected tracking clients. The hub decouples command handlers from
// the push transport: handlers publish by topic, the websocket adapter
// registers clients and drains their delivery channels.
package pubsub

import (
	"sync"

	"tracker/internal/core/domain/events"
)

// DefaultBufferSize is the per-client delivery buffer used when the hub is
// created with a non-positive size.
const DefaultBufferSize = 64

// Hub is a topic-based fan-out of domain events. Every registered client
// owns a bounded delivery channel; when a client stops draining it, the
// oldest pending event is dropped to make room for the newest one, so slow
// consumers never block publishers or other clients.
type Hub struct {
	mu         sync.RWMutex
	clients    map[string]*client
	topics     map[events.Topic]map[string]struct{}
	bufferSize int
	closed     bool
}

type client struct {
	id     string
	events chan events.Event
	topics map[events.Topic]struct{}

	// sendMu serializes deliveries so the drop-oldest swap stays atomic.
	sendMu sync.Mutex
}

// NewHub creates a hub whose clients buffer up to bufferSize undelivered
// events each.
func NewHub(bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Hub{
		clients:    make(map[string]*client),
		topics:     make(map[events.Topic]map[string]struct{}),
		bufferSize: bufferSize,
	}
}

// Register adds a client and returns the channel its events are delivered
// on. Registering an already known client returns the existing channel.
// The channel is closed when the client disconnects or the hub shuts down.
func (h *Hub) Register(clientID string) <-chan events.Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, ok := h.clients[clientID]; ok {
		return c.events
	}

	c := &client{
		id:     clientID,
		events: make(chan events.Event, h.bufferSize),
		topics: make(map[events.Topic]struct{}),
	}
	h.clients[clientID] = c
	return c.events
}

// Disconnect removes a client, drops all its subscriptions and closes its
// delivery channel. Disconnecting an unknown client is a no-op.
func (h *Hub) Disconnect(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.clients[clientID]
	if !ok {
		return
	}

	for topic := range c.topics {
		h.dropSubscription(clientID, topic)
	}
	delete(h.clients, clientID)

	c.sendMu.Lock()
	close(c.events)
	c.sendMu.Unlock()
}

// Subscribe adds a client to a topic. Subscribing twice to the same topic,
// or subscribing an unregistered client, is a no-op.
func (h *Hub) Subscribe(clientID string, topic events.Topic) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.clients[clientID]
	if !ok {
		return
	}

	if _, ok = c.topics[topic]; ok {
		return
	}
	c.topics[topic] = struct{}{}

	subscribers, ok := h.topics[topic]
	if !ok {
		subscribers = make(map[string]struct{})
		h.topics[topic] = subscribers
	}
	subscribers[clientID] = struct{}{}
}

// Unsubscribe removes a client from a topic. Unsubscribing a client that
// does not follow the topic is a no-op.
func (h *Hub) Unsubscribe(clientID string, topic events.Topic) {
	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.clients[clientID]
	if !ok {
		return
	}

	delete(c.topics, topic)
	h.dropSubscription(clientID, topic)
}

// Subscribers returns the identifiers of all clients currently subscribed
// to a topic.
func (h *Hub) Subscribers(topic events.Topic) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	subscribers := h.topics[topic]
	ids := make([]string, 0, len(subscribers))
	for id := range subscribers {
		ids = append(ids, id)
	}
	return ids
}

// Publish delivers an event to every client subscribed to its topic.
// Publishing to a topic with no subscribers is a no-op. Deliveries to one
// client never block on another client's backlog.
func (h *Hub) Publish(event events.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	for id := range h.topics[event.Topic()] {
		if c, ok := h.clients[id]; ok {
			c.send(event)
		}
	}
}

// Close disconnects every client and rejects further publishes.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for id, c := range h.clients {
		delete(h.clients, id)
		c.sendMu.Lock()
		close(c.events)
		c.sendMu.Unlock()
	}
	h.topics = make(map[events.Topic]map[string]struct{})
}

// dropSubscription removes a client from a topic's subscriber set.
// Caller must hold h.mu.
func (h *Hub) dropSubscription(clientID string, topic events.Topic) {
	subscribers, ok := h.topics[topic]
	if !ok {
		return
	}
	delete(subscribers, clientID)
	if len(subscribers) == 0 {
		delete(h.topics, topic)
	}
}

// send enqueues an event for the client, evicting the oldest pending event
// when the buffer is full.
func (c *client) send(event events.Event) {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	select {
	case c.events <- event:
		return
	default:
	}

	select {
	case <-c.events:
	default:
	}

	select {
	case c.events <- event:
	default:
	}
}
