package http

import "time"

// createOrderRequest is the POST /orders body.
type createOrderRequest struct {
	CompanyID     string                   `json:"companyId" validate:"required,uuid"`
	Items         []createOrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Address       string                   `json:"address" validate:"required"`
	Area          string                   `json:"area" validate:"required"`
	City          string                   `json:"city" validate:"required"`
	Instructions  string                   `json:"instructions"`
	PreferredDate *time.Time               `json:"preferredDate"`
	PaymentMethod string                   `json:"paymentMethod" validate:"required,oneof=cash_on_delivery prepaid"`
	Notes         string                   `json:"notes"`
}

// createOrderItemRequest is one requested line.
type createOrderItemRequest struct {
	ProductID string   `json:"productId" validate:"required,uuid"`
	Quantity  int      `json:"quantity" validate:"required,gt=0"`
	UnitPrice *float64 `json:"unitPrice" validate:"omitempty,gt=0"`
}

// updateOrderStatusRequest is the PATCH /orders/:id/status body.
type updateOrderStatusRequest struct {
	Status   string `json:"status" validate:"required"`
	Reason   string `json:"reason"`
	WorkerID string `json:"workerId" validate:"omitempty,uuid"`
}

// assignWorkerRequest is the POST /orders/:id/assign body.
type assignWorkerRequest struct {
	WorkerID string `json:"workerId" validate:"required,uuid"`
}

// updateDeliveryStatusRequest is the PATCH /deliveries/:id/status body.
type updateDeliveryStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason"`
}

// completeDeliveryRequest is the POST /deliveries/:id/complete body.
type completeDeliveryRequest struct {
	Signature string `json:"signature" validate:"required"`
	Photo     string `json:"photo"`
	Notes     string `json:"notes"`
}

// reportIssueRequest is the POST /deliveries/:id/issues body.
type reportIssueRequest struct {
	IssueType   string `json:"issueType" validate:"required"`
	Description string `json:"description" validate:"required"`
	CanComplete *bool  `json:"canComplete"`
	Resolution  string `json:"resolution"`
}
