package queries

import (
	"errors"

	"tracker/internal/pkg/guard"
)

var ErrGetAdminStatsQueryIsNotConstructed = errors.New(
	"GetAdminStatsQuery must be created via NewGetAdminStatsQuery constructor",
)

// GetAdminStatsQuery retrieves aggregate counters for the admin dashboard:
// shipment totals broken down by status and the size of the courier fleet.
type GetAdminStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAdminStatsQuery creates a query to retrieve dashboard counters.
func NewGetAdminStatsQuery() GetAdminStatsQuery {
	return GetAdminStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAdminStatsQueryIsNotConstructed if validation fails.
func (q GetAdminStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminStatsQueryIsNotConstructed)
}

// GetAdminStatsQueryResponse carries the dashboard counters.
// ShipmentsByStatus has an entry for every status that occurs at least once.
// TotalDeliveredPrice is the summed price of all delivered shipments.
type GetAdminStatsQueryResponse struct {
	TotalShipments      int
	ShipmentsByStatus   map[string]int
	TotalDeliveredPrice float64
	TotalAssociates     int
	AvailableAssociates int
}
