package commands

import (
	"context"

	"tracker/internal/core/domain/events"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/core/ports"
	"tracker/internal/pkg/idlock"
)

// AssignAssociateCommandHandler orchestrates putting an associate in charge
// of a shipment. Both aggregates change state in a single transaction: the
// shipment moves to "deliveryAssociateAssigned" and the associate becomes
// busy. Concurrent assignments are serialized on both aggregates: a second
// request for the same shipment observes the first one's transition and is
// rejected, and two shipments racing for the same associate leave it bound
// to exactly one of them.
//
// Example:
//
//	handler := NewAssignAssociateCommandHandler(uowFactory, hub, locks)
//	cmd, _ := NewAssignAssociateCommand(shipmentID, associateID)
//	_, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, shipment.ErrInvalidTransition):
//	    log.Println("Shipment already assigned or finished")
//	case errors.Is(err, associate.ErrNotAvailable):
//	    log.Println("Associate is busy or offline")
//	}
type AssignAssociateCommandHandler struct {
	uowFactory UoWFactory
	hub        ports.EventHub
	locks      *idlock.KeyedMutex
}

// NewAssignAssociateCommandHandler creates a handler for assignment operations.
// Requires a UoWFactory for coordinating transactional updates across both
// repositories, the event hub and the shared per-aggregate lock set.
func NewAssignAssociateCommandHandler(
	uowFactory UoWFactory,
	hub ports.EventHub,
	locks *idlock.KeyedMutex,
) AssignAssociateCommandHandler {
	return AssignAssociateCommandHandler{
		uowFactory: uowFactory,
		hub:        hub,
		locks:      locks,
	}
}

// Handle processes the assignment command.
// Loads both aggregates, applies the assignment to each, and persists them
// atomically. After commit the shipment's subscribers are also subscribed to
// the associate's location topic, then ShipmentUpdated is published. Returns
// the updated shipment.
func (h AssignAssociateCommandHandler) Handle(
	ctx context.Context,
	cmd AssignAssociateCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	// Lock order is shipment first, associate second, in every handler
	// that holds both.
	unlock := h.locks.Lock(cmd.ShipmentID().String())
	defer unlock()

	unlockAssociate := h.locks.Lock(cmd.AssociateID().String())
	defer unlockAssociate()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	associateRepo := uow.AssociateRepository()

	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	courier, err := associateRepo.Get(ctx, cmd.AssociateID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Assign(courier.ID()); err != nil {
		return nil, err
	}

	if err = courier.Assign(); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = associateRepo.Update(ctx, courier); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Everyone tracking the shipment starts receiving the courier's
	// location updates from this point on.
	shipmentTopic := events.NewShipmentTopic(aggregate.ID())
	associateTopic := events.NewAssociateTopic(courier.ID())
	for _, clientID := range h.hub.Subscribers(shipmentTopic) {
		h.hub.Subscribe(clientID, associateTopic)
	}

	h.hub.Publish(events.ShipmentUpdated{Shipment: aggregate})

	return aggregate, nil
}
