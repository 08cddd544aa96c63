package ports

import (
	"context"

	"tracker/internal/core/domain/model/associate"
	"tracker/internal/core/domain/model/kernel"
)

// AssociateRepository defines the persistence contract for delivery
// associate aggregates.
type AssociateRepository interface {
	// Add persists a new delivery associate aggregate to storage.
	Add(ctx context.Context, aggregate *associate.DeliveryAssociate) error

	// Update persists changes to an existing delivery associate aggregate.
	Update(ctx context.Context, aggregate *associate.DeliveryAssociate) error

	// Get retrieves a delivery associate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such associate exists.
	Get(ctx context.Context, id kernel.UUID) (*associate.DeliveryAssociate, error)

	// GetAllActive retrieves all associates that are not offline.
	// Used by the movement simulator to pick associates to move.
	GetAllActive(ctx context.Context) ([]*associate.DeliveryAssociate, error)
}
