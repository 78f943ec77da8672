// Package http exposes the supply workflow over a JSON REST API. Handlers
// translate requests into commands and queries, map domain errors onto HTTP
// status codes, and dispatch the notifications a committed command produced.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"supplyline/internal/core/application/usecases/commands"
	"supplyline/internal/core/application/usecases/queries"
	"supplyline/internal/core/domain/model/notification"
	"supplyline/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler          commands.CreateOrderCommandHandler
	updateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	assignWorkerHandler         commands.AssignWorkerCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	completeDeliveryHandler     commands.CompleteDeliveryCommandHandler
	reportIssueHandler          commands.ReportIssueCommandHandler

	listOrdersHandler           queries.ListOrdersQueryHandler
	getOrderHandler             queries.GetOrderQueryHandler
	listWorkerDeliveriesHandler queries.ListWorkerDeliveriesQueryHandler

	publisher ports.NotificationPublisher
	logger    *slog.Logger
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignWorkerHandler commands.AssignWorkerCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	reportIssueHandler commands.ReportIssueCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listWorkerDeliveriesHandler queries.ListWorkerDeliveriesQueryHandler,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		updateOrderStatusHandler:    updateOrderStatusHandler,
		assignWorkerHandler:         assignWorkerHandler,
		updateDeliveryStatusHandler: updateDeliveryStatusHandler,
		completeDeliveryHandler:     completeDeliveryHandler,
		reportIssueHandler:          reportIssueHandler,
		listOrdersHandler:           listOrdersHandler,
		getOrderHandler:             getOrderHandler,
		listWorkerDeliveriesHandler: listWorkerDeliveriesHandler,
		publisher:                   publisher,
		logger:                      logger.With("component", "http_server"),
	}
}

// RegisterRoutes attaches all routes to the echo instance. Everything under
// /api/v1 requires a valid bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", auth)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:ref", s.GetOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/assign", s.AssignWorker)

	api.GET("/deliveries", s.ListDeliveries)
	api.PATCH("/deliveries/:id/status", s.UpdateDeliveryStatus)
	api.POST("/deliveries/:id/complete", s.CompleteDelivery)
	api.POST("/deliveries/:id/issues", s.ReportIssue)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// dispatchNotifications publishes the notifications a committed command
// produced. Publish failures are logged and swallowed: the state change is
// already durable and must not be reported as failed.
func (s *Server) dispatchNotifications(ctx context.Context, notifications []notification.Notification) {
	for _, n := range notifications {
		if err := s.publisher.Publish(ctx, n); err != nil {
			s.logger.ErrorContext(ctx, "notification publish failed",
				"type", string(n.Type()),
				"recipient_id", n.RecipientID().String(),
				"error", err)
		}
	}
}
