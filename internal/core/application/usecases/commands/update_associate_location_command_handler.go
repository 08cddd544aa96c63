package commands

import (
	"context"

	"tracker/internal/core/domain/events"
	"tracker/internal/core/ports"
	"tracker/internal/pkg/idlock"
)

// UpdateAssociateLocationCommandHandler records an associate's reported
// position and fans it out to everyone tracking the associate. Reports for
// the same associate are serialized so the stored location and the published
// stream agree on ordering.
type UpdateAssociateLocationCommandHandler struct {
	uowFactory AssociateUoWFactory
	hub        ports.EventHub
	locks      *idlock.KeyedMutex
}

// NewUpdateAssociateLocationCommandHandler creates a handler for location reports.
func NewUpdateAssociateLocationCommandHandler(
	uowFactory AssociateUoWFactory,
	hub ports.EventHub,
	locks *idlock.KeyedMutex,
) UpdateAssociateLocationCommandHandler {
	return UpdateAssociateLocationCommandHandler{
		uowFactory: uowFactory,
		hub:        hub,
		locks:      locks,
	}
}

// Handle processes the location report.
// Overwrites the associate's stored position and publishes
// AssociateLocationChanged once the transaction commits.
func (h UpdateAssociateLocationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateAssociateLocationCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locks.Lock(cmd.AssociateID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	associateRepo := uow.AssociateRepository()

	courier, err := associateRepo.Get(ctx, cmd.AssociateID())
	if err != nil {
		return err
	}

	if err = courier.MoveTo(cmd.Location()); err != nil {
		return err
	}

	if err = associateRepo.Update(ctx, courier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.hub.Publish(events.AssociateLocationChanged{
		AssociateID: courier.ID(),
		Location:    courier.Location(),
	})

	return nil
}
