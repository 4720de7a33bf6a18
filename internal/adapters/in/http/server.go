// Package http exposes the order lifecycle over a REST API.
// The acting party is identified by the X-Actor-Id and X-Actor-Role
// headers; authorization decisions themselves live in the domain layer.
package http

import (
	"errors"
	"net/http"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/application/usecases/queries"
	"distribution/internal/core/domain/model/actor"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	actorIDHeader   = "X-Actor-Id"
	actorRoleHeader = "X-Actor-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler     commands.PlaceOrderCommandHandler
	transitionHandler     commands.TransitionOrderCommandHandler
	registerActorHandler  commands.RegisterActorCommandHandler
	actorStatusHandler    commands.SetActorStatusCommandHandler
	uncompletedHandler    queries.GetUncompletedOrdersQueryHandler
	driverDeliveryHandler queries.GetDriverDeliveriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	transitionHandler commands.TransitionOrderCommandHandler,
	registerActorHandler commands.RegisterActorCommandHandler,
	actorStatusHandler commands.SetActorStatusCommandHandler,
	uncompletedHandler queries.GetUncompletedOrdersQueryHandler,
	driverDeliveryHandler queries.GetDriverDeliveriesQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:     placeOrderHandler,
		transitionHandler:     transitionHandler,
		registerActorHandler:  registerActorHandler,
		actorStatusHandler:    actorStatusHandler,
		uncompletedHandler:    uncompletedHandler,
		driverDeliveryHandler: driverDeliveryHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/actors", s.CreateActor)
	api.PUT("/actors/:id/status", s.SetActorStatus)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/transition", s.TransitionOrder)
	api.GET("/orders/uncompleted", s.GetUncompletedOrders)
	api.GET("/drivers/:id/deliveries", s.GetDriverDeliveries)

	e.GET("/health", s.Health)
}

// CreateActor handles POST /api/v1/actors - registers a directory account.
func (s *Server) CreateActor(ctx echo.Context) error {
	var newActor NewActor
	if err := ctx.Bind(&newActor); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	actorID, err := kernel.UUIDFromBytes(newActor.ID[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid actor id")
	}

	role, err := actor.RoleFromString(newActor.Role)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid role: "+newActor.Role)
	}

	cmd, err := commands.NewRegisterActorCommand(actorID, newActor.Name, role)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid actor data: "+err.Error())
	}

	if handleErr := s.registerActorHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// SetActorStatus handles PUT /api/v1/actors/:id/status - activates or
// deactivates a directory account.
func (s *Server) SetActorStatus(ctx echo.Context) error {
	actorID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid actor id")
	}

	var status ActorStatus
	if err = ctx.Bind(&status); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSetActorStatusCommand(actorID, status.IsActive)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid actor id")
	}

	if handleErr := s.actorStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
// The placing restaurant is taken from the actor headers.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actorID, role, err := actorFromHeaders(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}
	if role != actor.RoleRestaurant {
		return errorResponse(ctx, http.StatusForbidden, "Only restaurants can place orders")
	}

	var newOrder NewOrder
	if err = ctx.Bind(&newOrder); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	items := make([]commands.PlaceOrderItem, 0, len(newOrder.Items))
	for _, line := range newOrder.Items {
		productID, idErr := kernel.UUIDFromBytes(line.ProductID[:])
		if idErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid product id")
		}
		items = append(items, commands.PlaceOrderItem{ProductID: productID, Quantity: line.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, actorID, items, newOrder.Notes)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.Bytes()})
}

// TransitionOrder handles POST /api/v1/orders/:id/transition - moves an
// order to a new lifecycle status on behalf of the acting party.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	actorID, role, err := actorFromHeaders(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var request TransitionRequest
	if err = ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	target, err := order.StatusFromString(request.Target)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid target status: "+request.Target)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, actorID, role, target)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid transition data: "+err.Error())
	}

	if len(request.Pricing) > 0 {
		pricing, pricingErr := pricingFromRequest(request.Pricing)
		if pricingErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid pricing: "+pricingErr.Error())
		}
		cmd = cmd.WithPricing(pricing)
	}
	if request.DriverID != nil {
		driverID, driverErr := kernel.UUIDFromBytes(request.DriverID[:])
		if driverErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid driver id")
		}
		cmd = cmd.WithDriver(driverID)
	}
	if request.CancelReason != "" {
		cmd = cmd.WithCancelReason(request.CancelReason)
	}

	if handleErr := s.transitionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUncompletedOrders handles GET /api/v1/orders/uncompleted.
func (s *Server) GetUncompletedOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.uncompletedHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		entry := Order{
			ID:           o.ID.Bytes(),
			RestaurantID: o.RestaurantID.Bytes(),
			Status:       o.Status,
			TotalAmount:  o.TotalAmount.String(),
			CreatedAt:    o.CreatedAt,
		}
		if o.DriverID != nil {
			raw := o.DriverID.Bytes()
			entry.DriverID = &raw
		}
		response[i] = entry
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDriverDeliveries handles GET /api/v1/drivers/:id/deliveries.
func (s *Server) GetDriverDeliveries(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid driver id")
	}

	query, err := queries.NewGetDriverDeliveriesQuery(driverID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid driver id")
	}

	deliveries, err := s.driverDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve deliveries")
	}

	response := make([]Delivery, len(deliveries))
	for i, d := range deliveries {
		response[i] = Delivery{
			ID:           d.ID.Bytes(),
			RestaurantID: d.RestaurantID.Bytes(),
			Status:       d.Status,
			TotalAmount:  d.TotalAmount.String(),
			PickedUpAt:   d.PickedUpAt,
			DeliveredAt:  d.DeliveredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func actorFromHeaders(ctx echo.Context) (kernel.UUID, actor.Role, error) {
	rawID := ctx.Request().Header.Get(actorIDHeader)
	if rawID == "" {
		return kernel.UUID{}, actor.RoleUnknown, errors.New(actorIDHeader + " header is required")
	}

	actorID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return kernel.UUID{}, actor.RoleUnknown, errors.New(actorIDHeader + " header is not a valid UUID")
	}

	role, err := actor.RoleFromString(ctx.Request().Header.Get(actorRoleHeader))
	if err != nil {
		return kernel.UUID{}, actor.RoleUnknown, errors.New(actorRoleHeader + " header is missing or invalid")
	}

	return actorID, role, nil
}

func pricingFromRequest(entries []ItemPrice) ([]order.ItemPricing, error) {
	pricing := make([]order.ItemPricing, 0, len(entries))
	for _, entry := range entries {
		productID, err := kernel.UUIDFromBytes(entry.ProductID[:])
		if err != nil {
			return nil, err
		}

		costPrice, err := kernel.NewMoney(entry.CostPrice)
		if err != nil {
			return nil, err
		}

		sellingPrice, err := kernel.NewMoney(entry.SellingPrice)
		if err != nil {
			return nil, err
		}

		pricing = append(pricing, order.ItemPricing{
			ProductID:    productID,
			CostPrice:    costPrice,
			SellingPrice: sellingPrice,
		})
	}

	return pricing, nil
}

// domainErrorResponse maps domain error kinds to HTTP status codes.
func domainErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrUnauthorized):
		return errorResponse(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, order.ErrOrderIsTerminal),
		errors.Is(err, order.ErrPrecedingStateRequired),
		errors.Is(err, errs.ErrConcurrentModification):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, order.ErrInvalidPricing),
		errors.Is(err, order.ErrInvalidDriver),
		errors.Is(err, commands.ErrNotAnActiveRestaurant),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
