package queries

import (
	"context"

	"tracker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllAssociatesQueryHandler retrieves all delivery associates from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllAssociatesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllAssociatesQueryHandler creates a handler for associate retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllAssociatesQueryHandler(db *gorm.DB) GetAllAssociatesQueryHandler {
	return GetAllAssociatesQueryHandler{db: db}
}

// Handle executes the query to retrieve all delivery associates.
// Returns a slice of associate read models sorted by name.
func (h GetAllAssociatesQueryHandler) Handle(
	ctx context.Context,
	query GetAllAssociatesQuery,
) ([]GetAllAssociatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	associates := make([]GetAllAssociatesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			status,
			location_lon,
			location_lat
		FROM delivery_associates
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllAssociatesQueryResponse
		var id uuid.UUID
		var locationLon, locationLat float64

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Email,
			&resp.Status,
			&locationLon,
			&locationLat,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.Location, err = kernel.NewGeoPoint(locationLon, locationLat); err != nil {
			return nil, err
		}

		associates = append(associates, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return associates, nil
}
