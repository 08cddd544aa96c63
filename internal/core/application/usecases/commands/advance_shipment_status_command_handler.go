package commands

import (
	"context"

	"tracker/internal/core/domain/events"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/core/ports"
	"tracker/internal/pkg/idlock"
)

// AdvanceShipmentStatusCommandHandler moves a shipment along the delivery
// chain or cancels it. When the shipment reaches a terminal status its
// associate, if any, is returned to the available pool in the same
// transaction. Concurrent advances of the same shipment are serialized, so
// exactly one of two identical requests succeeds and the other fails with
// shipment.ErrInvalidTransition.
type AdvanceShipmentStatusCommandHandler struct {
	uowFactory UoWFactory
	hub        ports.EventHub
	locks      *idlock.KeyedMutex
}

// NewAdvanceShipmentStatusCommandHandler creates a handler for status change
// operations. Requires a UoWFactory for coordinating updates across both
// repositories, the event hub and the shared per-aggregate lock set.
func NewAdvanceShipmentStatusCommandHandler(
	uowFactory UoWFactory,
	hub ports.EventHub,
	locks *idlock.KeyedMutex,
) AdvanceShipmentStatusCommandHandler {
	return AdvanceShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		hub:        hub,
		locks:      locks,
	}
}

// Handle processes the status change command.
// Applies the transition to the shipment, releases the associate on terminal
// transitions, persists everything atomically and publishes ShipmentUpdated
// once the transaction commits. Returns the updated shipment.
func (h AdvanceShipmentStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceShipmentStatusCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	unlock := h.locks.Lock(cmd.ShipmentID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.AdvanceTo(cmd.Target()); err != nil {
		return nil, err
	}

	if aggregate.IsTerminal() && aggregate.Associate() != nil {
		// Same shipment-then-associate lock order as assignment, so a
		// terminal release never races a location report or another
		// assignment of the freed associate.
		unlockAssociate := h.locks.Lock(aggregate.Associate().String())
		defer unlockAssociate()

		associateRepo := uow.AssociateRepository()

		courier, courierErr := associateRepo.Get(ctx, *aggregate.Associate())
		if courierErr != nil {
			return nil, courierErr
		}

		courier.Release()

		if err = associateRepo.Update(ctx, courier); err != nil {
			return nil, err
		}
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.hub.Publish(events.ShipmentUpdated{Shipment: aggregate})

	return aggregate, nil
}
