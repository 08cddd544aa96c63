package queries

import (
	"context"

	"tracker/internal/core/domain/model/associate"
	"tracker/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetAdminStatsQueryHandler computes dashboard counters from the database.
// Uses direct SQL aggregation so the numbers stay consistent however large
// the shipment history grows.
type GetAdminStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetAdminStatsQueryHandler creates a handler for dashboard counter queries.
// Requires a GORM database connection for query execution.
func NewGetAdminStatsQueryHandler(db *gorm.DB) GetAdminStatsQueryHandler {
	return GetAdminStatsQueryHandler{db: db}
}

// Handle executes the aggregation queries behind the admin dashboard.
// Returns shipment counts per status, the summed price of delivered
// shipments and fleet totals.
func (h GetAdminStatsQueryHandler) Handle(
	ctx context.Context,
	query GetAdminStatsQuery,
) (GetAdminStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	resp := GetAdminStatsQueryResponse{
		ShipmentsByStatus: make(map[string]int),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*),
			COALESCE(SUM(price), 0)
		FROM shipments
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetAdminStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		var price float64

		if err = rows.Scan(&status, &count, &price); err != nil {
			return GetAdminStatsQueryResponse{}, err
		}

		resp.ShipmentsByStatus[status] = count
		resp.TotalShipments += count
		if status == shipment.Delivered.String() {
			resp.TotalDeliveredPrice = price
		}
	}

	if err = rows.Err(); err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?)
		FROM delivery_associates
	`, associate.Available.String()).Row().
		Scan(&resp.TotalAssociates, &resp.AvailableAssociates)
	if err != nil {
		return GetAdminStatsQueryResponse{}, err
	}

	return resp, nil
}
