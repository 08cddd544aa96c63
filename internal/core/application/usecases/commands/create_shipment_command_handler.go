package commands

import (
	"context"

	"tracker/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler handles the business logic for shipment creation.
// Prices the route with the configured tariff and persists the shipment in
// "requested" status. Nothing is published: a shipment has no subscribers
// before it exists, watchers attach over the websocket once they know the id.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	tariff     shipment.Tariff
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation operations.
// Requires a ShipmentUoWFactory for transactional persistence and the tariff
// used to price new shipments.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	tariff shipment.Tariff,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		tariff:     tariff,
	}
}

// Handle processes the shipment creation command.
// Computes the price from the great-circle distance between pickup and drop
// and persists the shipment. Returns the created aggregate so callers can
// render it.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(), cmd.UserID(), cmd.Pickup(), cmd.Drop(), h.tariff)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
