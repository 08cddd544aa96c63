package queries

import (
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/guard"
)

var ErrGetAllAssociatesQueryIsNotConstructed = errors.New(
	"GetAllAssociatesQuery must be created via NewGetAllAssociatesQuery constructor",
)

// GetAllAssociatesQuery retrieves information about all delivery associates.
// Returns associate identities, availability and last known locations for
// the dispatch view.
type GetAllAssociatesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllAssociatesQuery creates a query to retrieve all delivery associates.
func NewGetAllAssociatesQuery() GetAllAssociatesQuery {
	return GetAllAssociatesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllAssociatesQueryIsNotConstructed if validation fails.
func (q GetAllAssociatesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllAssociatesQueryIsNotConstructed)
}

// GetAllAssociatesQueryResponse represents one delivery associate in the
// read model.
type GetAllAssociatesQueryResponse struct {
	ID       kernel.UUID
	Name     string
	Email    string
	Status   string
	Location kernel.GeoPoint
}
