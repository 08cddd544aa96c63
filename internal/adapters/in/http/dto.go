package http

import (
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/associate"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Point carries coordinates in longitude, latitude order.
type Point struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// CreateShipmentRequest is the body of POST /api/v1/shipments.
type CreateShipmentRequest struct {
	UserID         string `json:"userId"`
	PickupLocation Point  `json:"pickupLocation"`
	DropLocation   Point  `json:"dropLocation"`
}

// AssignAssociateRequest is the body of PATCH /api/v1/shipments/:id/delivery-associate.
type AssignAssociateRequest struct {
	AssociateID string `json:"deliveryAssociateId"`
}

// AdvanceStatusRequest is the body of PATCH /api/v1/shipments/:id/status.
type AdvanceStatusRequest struct {
	Status string `json:"status"`
}

// CreateAssociateRequest is the body of POST /api/v1/delivery-associates.
type CreateAssociateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateLocationRequest is the body of POST /api/v1/delivery-associates/:id/location.
type UpdateLocationRequest struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// Shipment is the outbound rendering of a shipment aggregate.
type Shipment struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId"`
	AssociateID    *string `json:"deliveryAssociateId,omitempty"`
	PickupLocation Point   `json:"pickupLocation"`
	DropLocation   Point   `json:"dropLocation"`
	Price          float64 `json:"price"`
	Status         string  `json:"status"`
}

// Associate is the outbound rendering of a delivery associate.
type Associate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Status   string `json:"status"`
	Location Point  `json:"location"`
}

// AdminStats is the body of GET /api/v1/admin/stats.
type AdminStats struct {
	TotalShipments      int            `json:"totalShipments"`
	ShipmentsByStatus   map[string]int `json:"shipmentsByStatus"`
	TotalDeliveredPrice float64        `json:"totalPriceOfDeliveredShipments"`
	TotalAssociates     int            `json:"totalDeliveryAssociates"`
	AvailableAssociates int            `json:"availableDeliveryAssociates"`
}

func pointFrom(p kernel.GeoPoint) Point {
	return Point{Lng: p.Lon(), Lat: p.Lat()}
}

func shipmentFromDomain(aggregate *shipment.Shipment) Shipment {
	var associateID *string
	if aggregate.Associate() != nil {
		s := aggregate.Associate().String()
		associateID = &s
	}

	return Shipment{
		ID:             aggregate.ID().String(),
		UserID:         aggregate.UserID().String(),
		AssociateID:    associateID,
		PickupLocation: pointFrom(aggregate.Pickup()),
		DropLocation:   pointFrom(aggregate.Drop()),
		Price:          aggregate.Price(),
		Status:         aggregate.Status().String(),
	}
}

func shipmentFromReadModel(model queries.GetActiveShipmentsQueryResponse) Shipment {
	var associateID *string
	if model.AssociateID != nil {
		s := model.AssociateID.String()
		associateID = &s
	}

	return Shipment{
		ID:             model.ID.String(),
		UserID:         model.UserID.String(),
		AssociateID:    associateID,
		PickupLocation: pointFrom(model.Pickup),
		DropLocation:   pointFrom(model.Drop),
		Price:          model.Price,
		Status:         model.Status,
	}
}

func associateFromDomain(courier *associate.DeliveryAssociate) Associate {
	return Associate{
		ID:       courier.ID().String(),
		Name:     courier.Name(),
		Email:    courier.Email(),
		Status:   courier.Status().String(),
		Location: pointFrom(courier.Location()),
	}
}

func associateFromReadModel(model queries.GetAllAssociatesQueryResponse) Associate {
	return Associate{
		ID:       model.ID.String(),
		Name:     model.Name,
		Email:    model.Email,
		Status:   model.Status,
		Location: pointFrom(model.Location),
	}
}
