package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var ErrAssignAssociateCommandIsNotConstructed = errors.New(
	"AssignAssociateCommand must be created via NewAssignAssociateCommand constructor",
)

// AssignAssociateCommand represents a request to put a delivery associate
// in charge of a shipment. Only shipments still in "requested" status and
// associates currently available can take part in an assignment.
type AssignAssociateCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	associateID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignAssociateCommand creates a command to assign an associate to a shipment.
// Validates that both identifiers are constructed.
func NewAssignAssociateCommand(
	shipmentID kernel.UUID,
	associateID kernel.UUID,
) (AssignAssociateCommand, error) {
	cmd := AssignAssociateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setAssociateID(associateID),
	); err != nil {
		return AssignAssociateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignAssociateCommandIsNotConstructed if validation fails.
func (c AssignAssociateCommand) Validate() error {
	return c.guard.Validate(ErrAssignAssociateCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment being assigned.
func (c AssignAssociateCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// AssociateID returns the identifier of the delivery associate.
func (c AssignAssociateCommand) AssociateID() kernel.UUID {
	return c.associateID
}

func (c *AssignAssociateCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AssignAssociateCommand) setAssociateID(associateID kernel.UUID) error {
	if err := associateID.Validate(); err != nil {
		return err
	}

	c.associateID = associateID
	return nil
}
