package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var ErrUpdateAssociateLocationCommandIsNotConstructed = errors.New(
	"UpdateAssociateLocationCommand must be created via NewUpdateAssociateLocationCommand constructor",
)

// UpdateAssociateLocationCommand represents a position report from a
// delivery associate. Location reports are accepted in any associate status.
type UpdateAssociateLocationCommand struct { //nolint:recvcheck //using for validation
	associateID kernel.UUID
	location    kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateAssociateLocationCommand creates a command to record an
// associate's position. Validates that the identifier is constructed and the
// location holds valid coordinates.
func NewUpdateAssociateLocationCommand(
	associateID kernel.UUID,
	location kernel.GeoPoint,
) (UpdateAssociateLocationCommand, error) {
	cmd := UpdateAssociateLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssociateID(associateID),
		cmd.setLocation(location),
	); err != nil {
		return UpdateAssociateLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateAssociateLocationCommandIsNotConstructed if validation fails.
func (c UpdateAssociateLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAssociateLocationCommandIsNotConstructed)
}

// AssociateID returns the identifier of the reporting associate.
func (c UpdateAssociateLocationCommand) AssociateID() kernel.UUID {
	return c.associateID
}

// Location returns the reported position.
func (c UpdateAssociateLocationCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *UpdateAssociateLocationCommand) setAssociateID(associateID kernel.UUID) error {
	if err := associateID.Validate(); err != nil {
		return err
	}

	c.associateID = associateID
	return nil
}

func (c *UpdateAssociateLocationCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
