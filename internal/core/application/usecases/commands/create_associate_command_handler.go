package commands

import (
	"context"

	"tracker/internal/core/domain/model/associate"
	"tracker/internal/core/domain/model/kernel"
)

// CreateAssociateCommandHandler handles the business logic for associate
// registration. New associates start available, at a random point inside the
// service area.
type CreateAssociateCommandHandler struct {
	uowFactory  AssociateUoWFactory
	serviceArea kernel.BoundingBox
}

// NewCreateAssociateCommandHandler creates a handler for associate registration.
// Requires an AssociateUoWFactory for transactional persistence and the
// bounding box of the service area.
func NewCreateAssociateCommandHandler(
	uowFactory AssociateUoWFactory,
	serviceArea kernel.BoundingBox,
) CreateAssociateCommandHandler {
	return CreateAssociateCommandHandler{
		uowFactory:  uowFactory,
		serviceArea: serviceArea,
	}
}

// Handle processes the associate registration command.
// Picks a starting location inside the service area and persists the new
// associate in "available" status. Returns the created aggregate so callers
// can render it.
func (h *CreateAssociateCommandHandler) Handle(
	ctx context.Context,
	cmd CreateAssociateCommand,
) (*associate.DeliveryAssociate, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	location, err := h.serviceArea.RandomPoint()
	if err != nil {
		return nil, err
	}

	courier, err := associate.NewDeliveryAssociate(
		cmd.AssociateID(), cmd.Name(), cmd.Email(), location)
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

	if err = uow.AssociateRepository().Add(ctx, courier); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return courier, nil
}
