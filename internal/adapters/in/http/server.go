// Package http is the inbound HTTP adapter. It translates echo requests into
// application commands and queries, and domain errors into status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/account"
	"parcel/internal/core/domain/model/handler"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/parcel"
	"parcel/internal/core/domain/model/status"
	"parcel/internal/core/ports"
	"parcel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createParcelHandler  commands.CreateParcelCommandHandler
	assignHandlerHandler commands.AssignHandlerCommandHandler
	receiveParcelHandler commands.ReceiveParcelCommandHandler
	markDeliveredHandler commands.MarkDeliveredCommandHandler
	cancelParcelHandler  commands.CancelParcelCommandHandler
	updateParcelHandler  commands.UpdateParcelCommandHandler

	// Query handlers
	listParcelsHandler queries.ListParcelsQueryHandler
	getParcelHandler   queries.GetParcelQueryHandler
	getTimelineHandler queries.GetTimelineQueryHandler

	// handlerRepository resolves the caller's field handler record for the
	// worklist routes.
	handlerRepository ports.HandlerRepository
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	assignHandlerHandler commands.AssignHandlerCommandHandler,
	receiveParcelHandler commands.ReceiveParcelCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	cancelParcelHandler commands.CancelParcelCommandHandler,
	updateParcelHandler commands.UpdateParcelCommandHandler,
	listParcelsHandler queries.ListParcelsQueryHandler,
	getParcelHandler queries.GetParcelQueryHandler,
	getTimelineHandler queries.GetTimelineQueryHandler,
	handlerRepository ports.HandlerRepository,
) *Server {
	return &Server{
		createParcelHandler:  createParcelHandler,
		assignHandlerHandler: assignHandlerHandler,
		receiveParcelHandler: receiveParcelHandler,
		markDeliveredHandler: markDeliveredHandler,
		cancelParcelHandler:  cancelParcelHandler,
		updateParcelHandler:  updateParcelHandler,
		listParcelsHandler:   listParcelsHandler,
		getParcelHandler:     getParcelHandler,
		getTimelineHandler:   getTimelineHandler,
		handlerRepository:    handlerRepository,
	}
}

// RegisterRoutes wires the parcel routes onto the echo instance behind the
// JWT middleware. Static segments register before the :parcelNumber routes.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtService *JWTService) {
	e.GET("/health", s.Health)

	parcels := e.Group("/parcels", jwtService.Authenticate)
	parcels.POST("", s.CreateParcel, RequireRole(account.RoleMerchant))
	parcels.GET("", s.ListOwnParcels, RequireRole(account.RoleMerchant))
	parcels.PATCH("", s.AssignHandler, RequireRole(account.RoleAdmin))
	parcels.GET("/all", s.ListAllParcels, RequireRole(account.RoleAdmin))
	parcels.PATCH("/admin/receive/:parcelNumber", s.ReceiveParcel, RequireRole(account.RoleAdmin))
	parcels.GET("/packagehandler/to-pickup", s.ListToPickup, RequireRole(account.RolePackageHandler))
	parcels.GET("/packagehandler/to-deliver", s.ListToDeliver, RequireRole(account.RolePackageHandler))
	parcels.PATCH("/packagehandler/delivered/:parcelNumber", s.MarkDelivered, RequireRole(account.RolePackageHandler))
	parcels.GET("/:parcelNumber", s.GetParcel, RequireRole(account.RoleAdmin))
	parcels.GET("/:parcelNumber/timeline", s.GetTimeline, RequireRole(account.RoleAdmin))
	parcels.PATCH("/:parcelNumber", s.UpdateParcel, RequireRole(account.RoleAdmin))
	parcels.DELETE("/:parcelNumber", s.CancelParcel)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateParcelRequest is the body of POST /parcels.
type CreateParcelRequest struct {
	ShopID         string `json:"shopId"`
	CategoryID     string `json:"categoryId"`
	PickupID       string `json:"pickupId"`
	DeliveryAreaID string `json:"deliveryAreaId"`
}

// CreateParcel handles POST /parcels - registers a pickup request for the
// calling merchant and returns the assigned tracking number.
func (s *Server) CreateParcel(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)

	var request CreateParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	refs := make([]kernel.UUID, 0, 4)
	for _, ref := range []struct {
		name  string
		value string
	}{
		{"shopId", request.ShopID},
		{"categoryId", request.CategoryID},
		{"pickupId", request.PickupID},
		{"deliveryAreaId", request.DeliveryAreaID},
	} {
		id, err := kernel.UUIDFromString(ref.value)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid " + ref.name,
			})
		}
		refs = append(refs, id)
	}

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), principal, refs[0], refs[1], refs[2], refs[3])
	if err != nil {
		return s.respondError(ctx, err)
	}

	trackingNumber, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedParcelResponse{
		ParcelNumber: trackingNumber.String(),
	})
}

// ListOwnParcels handles GET /parcels - lists the calling merchant's parcels.
func (s *Server) ListOwnParcels(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)
	requesterID := principal.ID

	query, err := queries.NewListParcelsQuery(&requesterID, nil, nil, nil, hydrationFrom(ctx))
	if err != nil {
		return s.respondError(ctx, err)
	}

	parcels, err := s.listParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelResponses(parcels))
}

// ListAllParcels handles GET /parcels/all - the admin overview, optionally
// filtered by ?status=.
func (s *Server) ListAllParcels(ctx echo.Context) error {
	var statusFilter *status.Name
	if raw := ctx.QueryParam("status"); raw != "" {
		name := status.Name(raw)
		if err := name.Validate(); err != nil {
			return s.respondError(ctx, err)
		}
		statusFilter = &name
	}

	query, err := queries.NewListParcelsQuery(nil, nil, nil, statusFilter, hydrationFrom(ctx))
	if err != nil {
		return s.respondError(ctx, err)
	}

	parcels, err := s.listParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelResponses(parcels))
}

// ListToPickup handles GET /parcels/packagehandler/to-pickup - the calling
// pickupman's assigned worklist.
func (s *Server) ListToPickup(ctx echo.Context) error {
	return s.listAssigned(ctx, handler.RolePickupman)
}

// ListToDeliver handles GET /parcels/packagehandler/to-deliver - the calling
// deliveryman's assigned worklist.
func (s *Server) ListToDeliver(ctx echo.Context) error {
	return s.listAssigned(ctx, handler.RoleDeliveryman)
}

func (s *Server) listAssigned(ctx echo.Context, role handler.Role) error {
	principal, _ := principalFrom(ctx)

	fieldHandler, err := s.handlerRepository.GetByUserID(ctx.Request().Context(), principal.ID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if fieldHandler.Role() != role {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "Handler role mismatch",
		})
	}

	handlerID := fieldHandler.ID()
	listingStatus := role.ListingStatus()
	query, err := queries.NewListParcelsQuery(nil, nil, &handlerID, &listingStatus, hydrationFrom(ctx))
	if err != nil {
		return s.respondError(ctx, err)
	}

	parcels, err := s.listParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelResponses(parcels))
}

// GetParcel handles GET /parcels/:parcelNumber - a single parcel read model.
func (s *Server) GetParcel(ctx echo.Context) error {
	trackingNumber, err := parcel.TrackingNumberFromString(ctx.Param("parcelNumber"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetParcelQuery(trackingNumber, hydrationFrom(ctx))
	if err != nil {
		return s.respondError(ctx, err)
	}

	response, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toParcelResponse(response))
}

// GetTimeline handles GET /parcels/:parcelNumber/timeline - the parcel's
// tracking history, oldest entry first.
func (s *Server) GetTimeline(ctx echo.Context) error {
	trackingNumber, err := parcel.TrackingNumberFromString(ctx.Param("parcelNumber"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetTimelineQuery(trackingNumber)
	if err != nil {
		return s.respondError(ctx, err)
	}

	entries, err := s.getTimelineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTimelineResponses(entries))
}

// AssignHandler handles PATCH /parcels?parcelNumber=&handlerType=&handlerId= -
// assigns a field handler to a parcel.
func (s *Server) AssignHandler(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)

	trackingNumber, err := parcel.TrackingNumberFromString(ctx.QueryParam("parcelNumber"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	handlerID, err := kernel.UUIDFromString(ctx.QueryParam("handlerId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid handlerId",
		})
	}

	cmd, err := commands.NewAssignHandlerCommand(
		principal, trackingNumber, handlerID, handler.ParseRole(ctx.QueryParam("handlerType")))
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.assignHandlerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ReceiveParcel handles PATCH /parcels/admin/receive/:parcelNumber - takes a
// parcel back into the warehouse and resets it to pending.
func (s *Server) ReceiveParcel(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)

	trackingNumber, err := parcel.TrackingNumberFromString(ctx.Param("parcelNumber"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewReceiveParcelCommand(principal, trackingNumber)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.receiveParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// MarkDelivered handles PATCH /parcels/packagehandler/delivered/:parcelNumber -
// the assigned deliveryman reports the parcel delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)

	trackingNumber, err := parcel.TrackingNumberFromString(ctx.Param("parcelNumber"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(principal, trackingNumber)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelParcel handles DELETE /parcels/:parcelNumber - cancels a parcel. The
// access policy allows only the owning merchant.
func (s *Server) CancelParcel(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)

	trackingNumber, err := parcel.TrackingNumberFromString(ctx.Param("parcelNumber"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCancelParcelCommand(principal, trackingNumber)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.cancelParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateParcelRequest is the body of PATCH /parcels/:parcelNumber. All fields
// are optional; a status override requires a message.
type UpdateParcelRequest struct {
	ShopID         *string `json:"shopId"`
	CategoryID     *string `json:"categoryId"`
	PickupID       *string `json:"pickupId"`
	DeliveryAreaID *string `json:"deliveryAreaId"`
	Status         *string `json:"status"`
	Message        string  `json:"message"`
}

// UpdateParcel handles PATCH /parcels/:parcelNumber - the admin field merge
// and manual status override.
func (s *Server) UpdateParcel(ctx echo.Context) error {
	principal, _ := principalFrom(ctx)

	trackingNumber, err := parcel.TrackingNumberFromString(ctx.Param("parcelNumber"))
	if err != nil {
		return s.respondError(ctx, err)
	}

	var request UpdateParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	refs := make([]*kernel.UUID, 4)
	for i, ref := range []struct {
		name  string
		value *string
	}{
		{"shopId", request.ShopID},
		{"categoryId", request.CategoryID},
		{"pickupId", request.PickupID},
		{"deliveryAreaId", request.DeliveryAreaID},
	} {
		if ref.value == nil {
			continue
		}
		id, err := kernel.UUIDFromString(*ref.value)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "Invalid " + ref.name,
			})
		}
		refs[i] = &id
	}

	var statusName *status.Name
	if request.Status != nil {
		name := status.Name(*request.Status)
		statusName = &name
	}

	cmd, err := commands.NewUpdateParcelCommand(
		principal, trackingNumber, refs[0], refs[1], refs[2], refs[3], statusName, request.Message)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.updateParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// respondError maps a domain or application error to its HTTP status code.
// Internal failures get a generic message, everything else surfaces the
// error text.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrConflict), errors.Is(err, parcel.ErrIllegalTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

// hydrationFrom reads the hydration flags off the request query string.
// Absent or unparsable flags stay off.
func hydrationFrom(ctx echo.Context) queries.Hydration {
	flag := func(name string) bool {
		value, err := strconv.ParseBool(ctx.QueryParam(name))
		return err == nil && value
	}
	return queries.Hydration{
		Pickup:       flag("pickup"),
		Shop:         flag("shop"),
		DeliveryArea: flag("deliveryArea"),
		Requester:    flag("parcelUser"),
	}
}
