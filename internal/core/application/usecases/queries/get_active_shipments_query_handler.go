package queries

import (
	"context"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveShipmentsQueryHandler retrieves in-flight shipments from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetActiveShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveShipmentsQueryHandler creates a handler for active shipment queries.
// Requires a GORM database connection for query execution.
func NewGetActiveShipmentsQueryHandler(db *gorm.DB) GetActiveShipmentsQueryHandler {
	return GetActiveShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal shipments.
// Results are sorted by shipment ID for consistent output.
func (h GetActiveShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveShipmentsQuery,
) ([]GetActiveShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetActiveShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			associate_id,
			pickup_lon,
			pickup_lat,
			drop_lon,
			drop_lat,
			price,
			status
		FROM shipments
		WHERE status NOT IN (?, ?)
		ORDER BY id
	`, shipment.Delivered.String(), shipment.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveShipmentsQueryResponse
		var id, userID uuid.UUID
		var associateID *uuid.UUID
		var pickupLon, pickupLat, dropLon, dropLat float64

		err = rows.Scan(
			&id,
			&userID,
			&associateID,
			&pickupLon,
			&pickupLat,
			&dropLon,
			&dropLat,
			&resp.Price,
			&resp.Status,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		if associateID != nil {
			courierID, idErr := kernel.UUIDFromBytes((*associateID)[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.AssociateID = &courierID
		}

		if resp.Pickup, err = kernel.NewGeoPoint(pickupLon, pickupLat); err != nil {
			return nil, err
		}
		if resp.Drop, err = kernel.NewGeoPoint(dropLon, dropLat); err != nil {
			return nil, err
		}

		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
