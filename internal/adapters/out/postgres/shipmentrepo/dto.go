// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. This package implements the repository pattern for
// the shipment aggregate, handling the conversion between domain entities and
// database representations.
package shipmentrepo

import (
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// Statuses are stored as their wire strings so queries and dashboards can read
// them without a mapping step.
type ShipmentDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID   `gorm:"type:uuid;not null;index"`
	AssociateID *uuid.UUID  `gorm:"type:uuid;index"`
	Pickup      GeoPointDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Drop        GeoPointDTO `gorm:"embedded;embeddedPrefix:drop_"`
	Price       float64     `gorm:"type:double precision;not null"`
	Status      string      `gorm:"type:varchar(64);not null;index"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// GeoPointDTO represents embedded geographic coordinates.
type GeoPointDTO struct {
	Lon float64 `gorm:"type:double precision;not null"`
	Lat float64 `gorm:"type:double precision;not null"`
}

// fromDomain converts a shipment aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var associateID *uuid.UUID
	if aggregate.Associate() != nil {
		raw := aggregate.Associate().Bytes()
		associateID = &raw
	}

	return ShipmentDTO{
		ID:          aggregate.ID().Bytes(),
		UserID:      aggregate.UserID().Bytes(),
		AssociateID: associateID,
		Pickup: GeoPointDTO{
			Lon: aggregate.Pickup().Lon(),
			Lat: aggregate.Pickup().Lat(),
		},
		Drop: GeoPointDTO{
			Lon: aggregate.Drop().Lon(),
			Lat: aggregate.Drop().Lat(),
		},
		Price:  aggregate.Price(),
		Status: aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to a shipment aggregate.
// Reconstructs the aggregate with its persisted price and status using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var associateID *kernel.UUID
	if dto.AssociateID != nil {
		courierID, idErr := kernel.UUIDFromBytes((*dto.AssociateID)[:])
		if idErr != nil {
			return nil, idErr
		}
		associateID = &courierID
	}

	pickup, err := kernel.NewGeoPoint(dto.Pickup.Lon, dto.Pickup.Lat)
	if err != nil {
		return nil, err
	}

	drop, err := kernel.NewGeoPoint(dto.Drop.Lon, dto.Drop.Lat)
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, userID, pickup, drop, dto.Price, status, associateID)
}
