// Package events defines the domain events produced by shipment and
// associate mutations, and the topics they are published on.
package events

import (
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
)

// TopicKind discriminates the two event stream families.
type TopicKind int

const (
	// ShipmentTopic carries updates for a single shipment.
	ShipmentTopic TopicKind = iota + 1
	// AssociateTopic carries location updates for a single delivery associate.
	AssociateTopic
)

// Topic identifies a single event stream. It is comparable and may be
// used as a map key.
type Topic struct {
	Kind TopicKind
	ID   string
}

// NewShipmentTopic returns the topic of a shipment's update stream.
func NewShipmentTopic(id kernel.UUID) Topic {
	return Topic{Kind: ShipmentTopic, ID: id.String()}
}

// NewAssociateTopic returns the topic of an associate's location stream.
func NewAssociateTopic(id kernel.UUID) Topic {
	return Topic{Kind: AssociateTopic, ID: id.String()}
}

// Event is a domain event addressed to a single topic.
type Event interface {
	// Topic returns the stream this event belongs to.
	Topic() Topic

	// Name returns the wire-level event name.
	Name() string
}

// ShipmentUpdated is published after any shipment mutation: creation,
// associate assignment, status advance or cancellation.
type ShipmentUpdated struct {
	Shipment *shipment.Shipment
}

func (e ShipmentUpdated) Topic() Topic {
	return NewShipmentTopic(e.Shipment.ID())
}

func (e ShipmentUpdated) Name() string {
	return "SHIPMENT_UPDATED"
}

// AssociateLocationChanged is published after a delivery associate
// reports a new position.
type AssociateLocationChanged struct {
	AssociateID kernel.UUID
	Location    kernel.GeoPoint
}

func (e AssociateLocationChanged) Topic() Topic {
	return NewAssociateTopic(e.AssociateID)
}

func (e AssociateLocationChanged) Name() string {
	return "DA_LOCATION_CHANGED"
}
