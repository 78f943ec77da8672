package http

import (
	"net/http"

	"supplyline/internal/core/application/usecases/commands"
	"supplyline/internal/core/application/usecases/queries"
	"supplyline/internal/core/domain/model/delivery"
	"supplyline/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListDeliveries handles GET /api/v1/deliveries. Workers get their own
// queue; admins may pass workerId to inspect any worker's.
func (s *Server) ListDeliveries(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}

	workerID := caller.ID()
	if param := ctx.QueryParam("workerId"); param != "" {
		id, idErr := kernel.UUIDFromString(param)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		workerID = id
	}

	query, err := queries.NewListWorkerDeliveriesQuery(workerID, ctx.QueryParam("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	rows, err := s.listWorkerDeliveriesHandler.Handle(ctx.Request().Context(), caller, query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryListResponse(rows))
}

// UpdateDeliveryStatus handles PATCH /api/v1/deliveries/:id/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateDeliveryStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		deliveryID, delivery.Status(req.Status), req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), caller, cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	s.dispatchNotifications(ctx.Request().Context(), result.Notifications)

	return ctx.JSON(http.StatusOK, map[string]any{
		"deliveryId": result.DeliveryID.String(),
		"status":     result.Status.String(),
		"updatedAt":  result.UpdatedAt,
	})
}

// CompleteDelivery handles POST /api/v1/deliveries/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req completeDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID, req.Signature, req.Photo, req.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), caller, cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	s.dispatchNotifications(ctx.Request().Context(), result.Notifications)

	return ctx.JSON(http.StatusOK, map[string]any{
		"deliveryId":  result.DeliveryID.String(),
		"status":      result.Status.String(),
		"deliveredAt": result.DeliveredAt,
	})
}

// ReportIssue handles POST /api/v1/deliveries/:id/issues.
func (s *Server) ReportIssue(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req reportIssueRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewReportIssueCommand(
		deliveryID, delivery.IssueType(req.IssueType),
		req.Description, req.CanComplete, req.Resolution)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.reportIssueHandler.Handle(ctx.Request().Context(), caller, cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	s.dispatchNotifications(ctx.Request().Context(), result.Notifications)

	return ctx.JSON(http.StatusOK, map[string]any{
		"deliveryId":  result.DeliveryID.String(),
		"status":      result.Status.String(),
		"issueCount":  result.IssueCount,
		"orderStatus": result.OrderStatus,
	})
}
