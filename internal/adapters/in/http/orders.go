package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"supplyline/internal/core/application/usecases/commands"
	"supplyline/internal/core/application/usecases/queries"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// parseDateParam parses an optional date query parameter, accepting either a
// bare date or a full RFC 3339 timestamp. Empty values yield nil.
func parseDateParam(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, errs.NewValueIsInvalidError(name)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	companyID, err := kernel.UUIDFromString(req.CompanyID)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		input, itemErr := commands.NewOrderItemInput(productID, item.Quantity, item.UnitPrice)
		if itemErr != nil {
			return writeError(ctx, itemErr)
		}
		items = append(items, input)
	}

	cmd, err := commands.NewCreateOrderCommand(
		companyID, items,
		req.Address, req.Area, req.City, req.Instructions,
		req.PreferredDate, order.PaymentMethod(req.PaymentMethod), req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), caller, cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	s.dispatchNotifications(ctx.Request().Context(), result.Notifications)

	return ctx.JSON(http.StatusCreated, map[string]any{
		"orderId":     result.OrderID.String(),
		"number":      result.Number,
		"status":      result.Status.String(),
		"finalAmount": result.FinalAmount,
	})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))

	var statuses []string
	for _, raw := range ctx.QueryParams()["status"] {
		for _, status := range strings.Split(raw, ",") {
			if status = strings.TrimSpace(status); status != "" {
				statuses = append(statuses, status)
			}
		}
	}

	startDate, err := parseDateParam("startDate", ctx.QueryParam("startDate"))
	if err != nil {
		return writeError(ctx, err)
	}
	endDate, err := parseDateParam("endDate", ctx.QueryParam("endDate"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(
		statuses,
		ctx.QueryParam("area"),
		ctx.QueryParam("search"),
		startDate, endDate,
		page, pageSize)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.listOrdersHandler.Handle(ctx.Request().Context(), caller, query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toListOrdersResponse(resp))
}

// GetOrder handles GET /api/v1/orders/:ref. The ref is an order ID when it
// parses as a UUID, otherwise an order number.
func (s *Server) GetOrder(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}

	ref := ctx.Param("ref")
	var query queries.GetOrderQuery
	if id, idErr := kernel.UUIDFromString(ref); idErr == nil {
		query, err = queries.NewGetOrderQueryByID(id)
	} else {
		query, err = queries.NewGetOrderQueryByNumber(ref)
	}
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), caller, query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toGetOrderResponse(resp))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	var workerID *kernel.UUID
	if req.WorkerID != "" {
		id, idErr := kernel.UUIDFromString(req.WorkerID)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		workerID = &id
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		orderID, order.Status(req.Status), req.Reason, workerID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), caller, cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	s.dispatchNotifications(ctx.Request().Context(), result.Notifications)

	return ctx.JSON(http.StatusOK, map[string]any{
		"orderId":   result.OrderID.String(),
		"status":    result.Status.String(),
		"updatedAt": result.UpdatedAt,
	})
}

// AssignWorker handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignWorker(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req assignWorkerRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	workerID, err := kernel.UUIDFromString(req.WorkerID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignWorkerCommand(orderID, workerID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.assignWorkerHandler.Handle(ctx.Request().Context(), caller, cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	s.dispatchNotifications(ctx.Request().Context(), result.Notifications)

	return ctx.JSON(http.StatusOK, map[string]any{
		"orderId":        result.OrderID.String(),
		"deliveryId":     result.DeliveryID.String(),
		"deliveryNumber": result.DeliveryNumber,
		"worker": map[string]string{
			"id":    result.WorkerID.String(),
			"name":  result.WorkerName,
			"phone": result.WorkerPhone,
		},
	})
}
