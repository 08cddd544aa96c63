package associaterepo

import (
	"context"
	"errors"

	"tracker/internal/core/domain/model/associate"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssociateRepository implements AssociateRepository using GORM.
type GormAssociateRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssociateRepository creates a new GORM associate repository.
func NewGormAssociateRepository(db *gorm.DB, tracker aggregateTracker) *GormAssociateRepository {
	return &GormAssociateRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery associate to the database.
func (r *GormAssociateRepository) Add(
	ctx context.Context,
	aggregate *associate.DeliveryAssociate,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery associate to the database.
func (r *GormAssociateRepository) Update(
	ctx context.Context,
	aggregate *associate.DeliveryAssociate,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery associate by ID.
func (r *GormAssociateRepository) Get(
	ctx context.Context,
	id kernel.UUID,
) (*associate.DeliveryAssociate, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssociateDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryAssociate", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all delivery associates that are not offline.
func (r *GormAssociateRepository) GetAllActive(
	ctx context.Context,
) ([]*associate.DeliveryAssociate, error) {
	var dtos []AssociateDTO
	if err := r.db.WithContext(ctx).
		Where("status <> ?", associate.Offline.String()).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	associates := make([]*associate.DeliveryAssociate, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		associates = append(associates, a)
	}

	return associates, nil
}
