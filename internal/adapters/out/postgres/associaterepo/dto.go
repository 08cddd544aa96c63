// Package associaterepo provides data transfer objects and mapping functions
// for delivery associate persistence.
package associaterepo

import (
	"tracker/internal/core/domain/model/associate"
	"tracker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssociateDTO represents the database structure for persisting delivery
// associate aggregates.
type AssociateDTO struct {
	ID       uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name     string      `gorm:"type:varchar(255);not null"`
	Email    string      `gorm:"type:varchar(255);not null"`
	Status   string      `gorm:"type:varchar(64);not null;index"`
	Location GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`
}

// TableName specifies the database table name for associate entities.
// Overrides GORM's default naming convention to use "delivery_associates".
func (AssociateDTO) TableName() string {
	return "delivery_associates"
}

// GeoPointDTO represents embedded geographic coordinates.
type GeoPointDTO struct {
	Lon float64 `gorm:"type:double precision;not null"`
	Lat float64 `gorm:"type:double precision;not null"`
}

// fromDomain converts an associate aggregate to its database representation.
func fromDomain(aggregate *associate.DeliveryAssociate) AssociateDTO {
	return AssociateDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Email:  aggregate.Email(),
		Status: aggregate.Status().String(),
		Location: GeoPointDTO{
			Lon: aggregate.Location().Lon(),
			Lat: aggregate.Location().Lat(),
		},
	}
}

// toDomain converts a database DTO to an associate aggregate.
func toDomain(dto AssociateDTO) (*associate.DeliveryAssociate, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := associate.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lon, dto.Location.Lat)
	if err != nil {
		return nil, err
	}

	return associate.RestoreDeliveryAssociate(id, dto.Name, dto.Email, status, location)
}
