package commands

import (
	"context"
	"math/rand/v2"

	"tracker/internal/core/domain/events"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/ports"
)

// maxStepDeg bounds a single simulation step, roughly 50 meters.
const maxStepDeg = 0.0005

// MoveAssociatesCommandHandler performs one step of the movement simulator.
// Every active associate drifts to a random nearby point, clamped to the
// service area, and a location event is published for each move. All position
// updates occur within a single transaction.
type MoveAssociatesCommandHandler struct {
	uowFactory  AssociateUoWFactory
	hub         ports.EventHub
	serviceArea kernel.BoundingBox
}

// NewMoveAssociatesCommandHandler creates a handler for simulated movement steps.
func NewMoveAssociatesCommandHandler(
	uowFactory AssociateUoWFactory,
	hub ports.EventHub,
	serviceArea kernel.BoundingBox,
) MoveAssociatesCommandHandler {
	return MoveAssociatesCommandHandler{
		uowFactory:  uowFactory,
		hub:         hub,
		serviceArea: serviceArea,
	}
}

// Handle processes the movement command.
// Retrieves all associates that are not offline, drifts each one, and
// publishes AssociateLocationChanged for every moved associate once the
// transaction commits.
func (h *MoveAssociatesCommandHandler) Handle(ctx context.Context, cmd MoveAssociatesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	associateRepo := uow.AssociateRepository()

	couriers, err := associateRepo.GetAllActive(ctx)
	if err != nil {
		return err
	}

	for _, courier := range couriers {
		next, stepErr := h.step(courier.Location())
		if stepErr != nil {
			return stepErr
		}

		if err = courier.MoveTo(next); err != nil {
			return err
		}

		if err = associateRepo.Update(ctx, courier); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, courier := range couriers {
		h.hub.Publish(events.AssociateLocationChanged{
			AssociateID: courier.ID(),
			Location:    courier.Location(),
		})
	}

	return nil
}

// step drifts a point by a random offset and keeps it inside the service area.
func (h *MoveAssociatesCommandHandler) step(from kernel.GeoPoint) (kernel.GeoPoint, error) {
	next, err := kernel.NewGeoPoint(
		from.Lon()+(rand.Float64()*2-1)*maxStepDeg,
		from.Lat()+(rand.Float64()*2-1)*maxStepDeg,
	)
	if err != nil {
		return kernel.GeoPoint{}, err
	}

	return h.serviceArea.Clamp(next)
}
