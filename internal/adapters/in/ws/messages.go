package ws

import (
	"encoding/json"
	"fmt"

	"tracker/internal/core/domain/events"
	"tracker/internal/core/domain/model/kernel"
)

// Client-initiated subscription events.
const (
	EventSubscribeToShipment      = "SUBSCRIBE_TO_SHIPMENT"
	EventUnsubscribeFromShipment  = "UNSUBSCRIBE_FROM_SHIPMENT"
	EventSubscribeToAssociate     = "SUBSCRIBE_TO_DA"
	EventUnsubscribeFromAssociate = "UNSUBSCRIBE_FROM_DA"
)

// Envelope is the wire frame for both directions: a tag naming the event
// and an event-specific payload.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// PointPayload renders coordinates in longitude, latitude order.
type PointPayload struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// ShipmentPayload is the outbound rendering of a shipment.
type ShipmentPayload struct {
	ID             string       `json:"id"`
	UserID         string       `json:"userId"`
	AssociateID    *string      `json:"deliveryAssociateId,omitempty"`
	PickupLocation PointPayload `json:"pickupLocation"`
	DropLocation   PointPayload `json:"dropLocation"`
	Price          float64      `json:"price"`
	Status         string       `json:"status"`
}

// LocationPayload is the outbound rendering of an associate position report.
type LocationPayload struct {
	AssociateID string       `json:"deliveryAssociateId"`
	Location    PointPayload `json:"location"`
}

func pointPayload(p kernel.GeoPoint) PointPayload {
	return PointPayload{Lng: p.Lon(), Lat: p.Lat()}
}

// newOutbound renders a domain event into its wire envelope.
func newOutbound(event events.Event) (Envelope, error) {
	var payload any

	switch e := event.(type) {
	case events.ShipmentUpdated:
		var associateID *string
		if e.Shipment.Associate() != nil {
			s := e.Shipment.Associate().String()
			associateID = &s
		}
		payload = ShipmentPayload{
			ID:             e.Shipment.ID().String(),
			UserID:         e.Shipment.UserID().String(),
			AssociateID:    associateID,
			PickupLocation: pointPayload(e.Shipment.Pickup()),
			DropLocation:   pointPayload(e.Shipment.Drop()),
			Price:          e.Shipment.Price(),
			Status:         e.Shipment.Status().String(),
		}
	case events.AssociateLocationChanged:
		payload = LocationPayload{
			AssociateID: e.AssociateID.String(),
			Location:    pointPayload(e.Location),
		}
	default:
		return Envelope{}, fmt.Errorf("unknown event type %T", event)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{Event: event.Name(), Data: data}, nil
}
