package commands

import (
	"errors"

	"tracker/internal/pkg/guard"
)

var ErrMoveAssociatesCommandIsNotConstructed = errors.New(
	"MoveAssociatesCommand must be created via NewMoveAssociatesCommand constructor",
)

// MoveAssociatesCommand triggers one simulation step that nudges every
// active associate to a nearby point inside the service area. Used by the
// movement simulator job to generate live tracking traffic in demo
// environments.
type MoveAssociatesCommand struct {
	guard guard.ConstructorGuard
}

// NewMoveAssociatesCommand creates a new command to trigger a movement step.
func NewMoveAssociatesCommand() MoveAssociatesCommand {
	return MoveAssociatesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrMoveAssociatesCommandIsNotConstructed if validation fails.
func (c *MoveAssociatesCommand) Validate() error {
	return c.guard.Validate(
		ErrMoveAssociatesCommandIsNotConstructed,
	)
}
