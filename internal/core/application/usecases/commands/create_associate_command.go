package commands

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"
	"tracker/internal/pkg/guard"
)

var ErrCreateAssociateCommandIsNotConstructed = errors.New(
	"CreateAssociateCommand must be created via NewCreateAssociateCommand constructor",
)

// CreateAssociateCommand represents a request to register a new delivery
// associate. The starting location is picked by the handler inside the
// service area, so the command carries only identity fields.
type CreateAssociateCommand struct { //nolint:recvcheck //using for validation
	associateID kernel.UUID
	name        string
	email       string

	guard guard.ConstructorGuard
}

// NewCreateAssociateCommand creates a command to register a delivery associate.
// Validates that the identifier is constructed and name and email are present.
func NewCreateAssociateCommand(
	associateID kernel.UUID,
	name string,
	email string,
) (CreateAssociateCommand, error) {
	cmd := CreateAssociateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssociateID(associateID),
		cmd.setName(name),
		cmd.setEmail(email),
	); err != nil {
		return CreateAssociateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAssociateCommandIsNotConstructed if validation fails.
func (c CreateAssociateCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssociateCommandIsNotConstructed)
}

// AssociateID returns the unique identifier for the associate.
func (c CreateAssociateCommand) AssociateID() kernel.UUID {
	return c.associateID
}

// Name returns the associate's display name.
func (c CreateAssociateCommand) Name() string {
	return c.name
}

// Email returns the associate's contact email.
func (c CreateAssociateCommand) Email() string {
	return c.email
}

func (c *CreateAssociateCommand) setAssociateID(associateID kernel.UUID) error {
	if err := associateID.Validate(); err != nil {
		return err
	}

	c.associateID = associateID
	return nil
}

func (c *CreateAssociateCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateAssociateCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}
