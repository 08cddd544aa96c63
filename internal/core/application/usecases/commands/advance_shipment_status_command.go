package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/pkg/guard"
)

var ErrAdvanceShipmentStatusCommandIsNotConstructed = errors.New(
	"AdvanceShipmentStatusCommand must be created via NewAdvanceShipmentStatusCommand constructor",
)

// AdvanceShipmentStatusCommand represents a request to move a shipment to a
// new status: either the next step of the delivery chain or a cancellation.
type AdvanceShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	target     shipment.Status

	guard guard.ConstructorGuard
}

// NewAdvanceShipmentStatusCommand creates a command to change a shipment's status.
// Validates that the identifier is constructed and the target is a known status.
// Whether the transition itself is legal is decided against the shipment's
// current state by the handler.
func NewAdvanceShipmentStatusCommand(
	shipmentID kernel.UUID,
	target shipment.Status,
) (AdvanceShipmentStatusCommand, error) {
	cmd := AdvanceShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceShipmentStatusCommandIsNotConstructed if validation fails.
func (c AdvanceShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment being advanced.
func (c AdvanceShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Target returns the requested status.
func (c AdvanceShipmentStatusCommand) Target() shipment.Status {
	return c.target
}

func (c *AdvanceShipmentStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AdvanceShipmentStatusCommand) setTarget(target shipment.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
