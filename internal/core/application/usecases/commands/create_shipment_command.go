package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a new shipment.
// Encapsulates the requesting user and the pickup and drop locations; the
// price is derived from the route by the handler, never supplied by the caller.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(shipmentID, userID, pickup, drop)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, tariff)
//	created, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	userID     kernel.UUID
	pickup     kernel.GeoPoint
	drop       kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates that both identifiers are constructed and both locations are valid
// coordinates. Returns an error if any validation fails.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	userID kernel.UUID,
	pickup kernel.GeoPoint,
	drop kernel.GeoPoint,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setUserID(userID),
		cmd.setRoute(pickup, drop),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// UserID returns the identifier of the requesting user.
func (c CreateShipmentCommand) UserID() kernel.UUID {
	return c.userID
}

// Pickup returns the pickup location.
func (c CreateShipmentCommand) Pickup() kernel.GeoPoint {
	return c.pickup
}

// Drop returns the drop location.
func (c CreateShipmentCommand) Drop() kernel.GeoPoint {
	return c.drop
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateShipmentCommand) setRoute(pickup kernel.GeoPoint, drop kernel.GeoPoint) error {
	if err := errors.Join(pickup.Validate(), drop.Validate()); err != nil {
		return err
	}

	c.pickup = pickup
	c.drop = drop
	return nil
}
