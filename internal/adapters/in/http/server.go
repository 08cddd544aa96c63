// Package http exposes the tracking engine's REST surface on echo.
// It coordinates between HTTP handlers and application use cases, and maps
// domain errors onto status codes: validation failures become 400, unknown
// ids 404, illegal transitions and busy associates 409.
package http

import (
	"errors"
	"net/http"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/associate"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the REST API for shipments and delivery associates.
type Server struct {
	// Command handlers
	createShipmentHandler  commands.CreateShipmentCommandHandler
	assignAssociateHandler commands.AssignAssociateCommandHandler
	advanceStatusHandler   commands.AdvanceShipmentStatusCommandHandler
	createAssociateHandler commands.CreateAssociateCommandHandler
	updateLocationHandler  commands.UpdateAssociateLocationCommandHandler

	// Query handlers
	activeShipmentsHandler queries.GetActiveShipmentsQueryHandler
	allAssociatesHandler   queries.GetAllAssociatesQueryHandler
	adminStatsHandler      queries.GetAdminStatsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	assignAssociateHandler commands.AssignAssociateCommandHandler,
	advanceStatusHandler commands.AdvanceShipmentStatusCommandHandler,
	createAssociateHandler commands.CreateAssociateCommandHandler,
	updateLocationHandler commands.UpdateAssociateLocationCommandHandler,
	activeShipmentsHandler queries.GetActiveShipmentsQueryHandler,
	allAssociatesHandler queries.GetAllAssociatesQueryHandler,
	adminStatsHandler queries.GetAdminStatsQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:  createShipmentHandler,
		assignAssociateHandler: assignAssociateHandler,
		advanceStatusHandler:   advanceStatusHandler,
		createAssociateHandler: createAssociateHandler,
		updateLocationHandler:  updateLocationHandler,
		activeShipmentsHandler: activeShipmentsHandler,
		allAssociatesHandler:   allAssociatesHandler,
		adminStatsHandler:      adminStatsHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/shipments", s.CreateShipment)
	v1.GET("/shipments/active", s.GetActiveShipments)
	v1.PATCH("/shipments/:id/status", s.AdvanceShipmentStatus)
	v1.PATCH("/shipments/:id/delivery-associate", s.AssignAssociate)
	v1.POST("/delivery-associates", s.CreateAssociate)
	v1.GET("/delivery-associates", s.GetAllAssociates)
	v1.POST("/delivery-associates/:id/location", s.UpdateAssociateLocation)
	v1.GET("/admin/stats", s.GetAdminStats)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateShipment handles POST /api/v1/shipments - registers a new shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user id: "+req.UserID)
	}

	pickup, err := kernel.NewGeoPoint(req.PickupLocation.Lng, req.PickupLocation.Lat)
	if err != nil {
		return errorResponse(ctx, err)
	}

	drop, err := kernel.NewGeoPoint(req.DropLocation.Lng, req.DropLocation.Lat)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(kernel.NewUUID(), userID, pickup, drop)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentFromDomain(created))
}

// AdvanceShipmentStatus handles PATCH /api/v1/shipments/:id/status - moves a
// shipment along the delivery chain or cancels it.
func (s *Server) AdvanceShipmentStatus(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id: "+ctx.Param("id"))
	}

	var req AdvanceStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+req.Status)
	}

	cmd, err := commands.NewAdvanceShipmentStatusCommand(shipmentID, target)
	if err != nil {
		return errorResponse(ctx, err)
	}

	updated, err := s.advanceStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentFromDomain(updated))
}

// AssignAssociate handles PATCH /api/v1/shipments/:id/delivery-associate -
// puts an available associate in charge of a shipment.
func (s *Server) AssignAssociate(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id: "+ctx.Param("id"))
	}

	var req AssignAssociateRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	associateID, err := kernel.UUIDFromString(req.AssociateID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery associate id: "+req.AssociateID)
	}

	cmd, err := commands.NewAssignAssociateCommand(shipmentID, associateID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	assigned, err := s.assignAssociateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentFromDomain(assigned))
}

// CreateAssociate handles POST /api/v1/delivery-associates - registers a new
// delivery associate.
func (s *Server) CreateAssociate(ctx echo.Context) error {
	var req CreateAssociateRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateAssociateCommand(kernel.NewUUID(), req.Name, req.Email)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createAssociateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, associateFromDomain(created))
}

// UpdateAssociateLocation handles POST /api/v1/delivery-associates/:id/location -
// records a position report.
func (s *Server) UpdateAssociateLocation(ctx echo.Context) error {
	associateID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid delivery associate id: "+ctx.Param("id"))
	}

	var req UpdateLocationRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewGeoPoint(req.Lng, req.Lat)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateAssociateLocationCommand(associateID, location)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveShipments handles GET /api/v1/shipments/active.
func (s *Server) GetActiveShipments(ctx echo.Context) error {
	query := queries.NewGetActiveShipmentsQuery()

	shipments, err := s.activeShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Shipment, len(shipments))
	for i, model := range shipments {
		response[i] = shipmentFromReadModel(model)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAllAssociates handles GET /api/v1/delivery-associates.
func (s *Server) GetAllAssociates(ctx echo.Context) error {
	query := queries.NewGetAllAssociatesQuery()

	associates, err := s.allAssociatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Associate, len(associates))
	for i, model := range associates {
		response[i] = associateFromReadModel(model)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAdminStats handles GET /api/v1/admin/stats.
func (s *Server) GetAdminStats(ctx echo.Context) error {
	query := queries.NewGetAdminStatsQuery()

	stats, err := s.adminStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AdminStats{
		TotalShipments:      stats.TotalShipments,
		ShipmentsByStatus:   stats.ShipmentsByStatus,
		TotalDeliveredPrice: stats.TotalDeliveredPrice,
		TotalAssociates:     stats.TotalAssociates,
		AvailableAssociates: stats.AvailableAssociates,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps domain errors onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, shipment.ErrInvalidTransition),
		errors.Is(err, associate.ErrNotAvailable):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
