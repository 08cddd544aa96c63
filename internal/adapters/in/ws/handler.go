// Package ws exposes live tracking over websockets. Clients connect, send
// subscribe frames naming the shipments and delivery associates they follow,
// and receive every matching domain event as a JSON envelope.
package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"tracker/internal/adapters/out/pubsub"
	"tracker/internal/core/domain/events"
	"tracker/internal/core/domain/model/kernel"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Handler upgrades HTTP connections and bridges them to the event hub.
// Each connection gets its own hub client; closing the connection tears the
// client and all its subscriptions down.
type Handler struct {
	hub      *pubsub.Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler creates a websocket handler on top of the given hub.
func NewHandler(hub *pubsub.Hub, logger *slog.Logger) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			// Browser clients connect from the tracking frontend host.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger.With("component", "ws_handler"),
	}
}

// Handle serves GET /ws. It upgrades the connection, registers the client
// with the hub and pumps events out until either side goes away.
func (h *Handler) Handle(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	clientID := kernel.NewUUID().String()
	delivery := h.hub.Register(clientID)

	done := make(chan struct{})
	go h.writePump(conn, delivery, done)

	h.readLoop(conn, clientID)

	// Disconnect closes the delivery channel, which stops the write pump.
	h.hub.Disconnect(clientID)
	<-done
	_ = conn.Close()
	return nil
}

// readLoop consumes subscribe and unsubscribe frames until the connection
// drops. Malformed frames are logged and skipped.
func (h *Handler) readLoop(conn *websocket.Conn, clientID string) {
	for {
		var frame Envelope
		if err := conn.ReadJSON(&frame); err != nil {
			return
		}

		var rawID string
		if err := json.Unmarshal(frame.Data, &rawID); err != nil {
			h.logger.Warn("unreadable frame payload", "event", frame.Event, "error", err)
			continue
		}

		id, err := kernel.UUIDFromString(rawID)
		if err != nil {
			h.logger.Warn("frame carries invalid id", "event", frame.Event, "id", rawID)
			continue
		}

		switch frame.Event {
		case EventSubscribeToShipment:
			h.hub.Subscribe(clientID, events.NewShipmentTopic(id))
		case EventUnsubscribeFromShipment:
			h.hub.Unsubscribe(clientID, events.NewShipmentTopic(id))
		case EventSubscribeToAssociate:
			h.hub.Subscribe(clientID, events.NewAssociateTopic(id))
		case EventUnsubscribeFromAssociate:
			h.hub.Unsubscribe(clientID, events.NewAssociateTopic(id))
		default:
			h.logger.Warn("unknown frame event", "event", frame.Event)
		}
	}
}

// writePump drains the client's delivery channel onto the connection.
// Runs until the hub closes the channel or a write fails.
func (h *Handler) writePump(conn *websocket.Conn, delivery <-chan events.Event, done chan<- struct{}) {
	defer close(done)

	for event := range delivery {
		frame, err := newOutbound(event)
		if err != nil {
			h.logger.Error("cannot render event", "event", event.Name(), "error", err)
			continue
		}

		if err = conn.WriteJSON(frame); err != nil {
			return
		}
	}

	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
