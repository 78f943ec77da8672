package http

import (
	"time"

	"supplyline/internal/core/application/usecases/queries"
)

type orderListItem struct {
	ID            string     `json:"id"`
	Number        string     `json:"number"`
	Status        string     `json:"status"`
	Area          string     `json:"area"`
	City          string     `json:"city"`
	ItemCount     int        `json:"itemCount"`
	FinalAmount   float64    `json:"finalAmount"`
	PaymentMethod string     `json:"paymentMethod"`
	CreatedAt     time.Time  `json:"createdAt"`
	DeliveredAt   *time.Time `json:"deliveredAt,omitempty"`
}

type orderListSummary struct {
	TotalCount       int64            `json:"totalCount"`
	CountByStatus    map[string]int64 `json:"countByStatus"`
	TotalFinalAmount float64          `json:"totalFinalAmount"`
	OverdueCount     int64            `json:"overdueCount"`
}

type orderListResponse struct {
	Orders   []orderListItem  `json:"orders"`
	Summary  orderListSummary `json:"summary"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

func toListOrdersResponse(resp queries.ListOrdersResponse) orderListResponse {
	items := make([]orderListItem, 0, len(resp.Orders))
	for _, row := range resp.Orders {
		items = append(items, orderListItem{
			ID:            row.ID.String(),
			Number:        row.Number,
			Status:        row.Status.String(),
			Area:          row.Area,
			City:          row.City,
			ItemCount:     row.ItemCount,
			FinalAmount:   row.FinalAmount,
			PaymentMethod: string(row.PaymentMethod),
			CreatedAt:     row.CreatedAt,
			DeliveredAt:   row.DeliveredAt,
		})
	}

	countByStatus := make(map[string]int64, len(resp.Summary.CountByStatus))
	for status, count := range resp.Summary.CountByStatus {
		countByStatus[status.String()] = count
	}

	return orderListResponse{
		Orders: items,
		Summary: orderListSummary{
			TotalCount:       resp.Summary.TotalCount,
			CountByStatus:    countByStatus,
			TotalFinalAmount: resp.Summary.TotalFinalAmount,
			OverdueCount:     resp.Summary.OverdueCount,
		},
		Page:     resp.Page,
		PageSize: resp.PageSize,
	}
}

type orderItemDetail struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	LineTotal   float64 `json:"lineTotal"`
	Unit        string  `json:"unit"`
}

type timelineEntryDetail struct {
	Status    string    `json:"status"`
	At        time.Time `json:"at"`
	Note      string    `json:"note,omitempty"`
	ActorName string    `json:"actorName"`
	ActorRole string    `json:"actorRole"`
}

type deliveryBrief struct {
	ID          string     `json:"id"`
	Number      string     `json:"number"`
	Status      string     `json:"status"`
	WorkerID    string     `json:"workerId"`
	WorkerName  string     `json:"workerName"`
	WorkerPhone string     `json:"workerPhone"`
	AssignedAt  time.Time  `json:"assignedAt"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}

type orderDetailResponse struct {
	ID              string                `json:"id"`
	Number          string                `json:"number"`
	Status          string                `json:"status"`
	ShopkeeperID    string                `json:"shopkeeperId"`
	CompanyID       string                `json:"companyId"`
	WorkerID        *string               `json:"workerId,omitempty"`
	Items           []orderItemDetail     `json:"items"`
	TotalAmount     float64               `json:"totalAmount"`
	TaxAmount       float64               `json:"taxAmount"`
	DeliveryCharge  float64               `json:"deliveryCharge"`
	FinalAmount     float64               `json:"finalAmount"`
	Address         string                `json:"address"`
	Area            string                `json:"area"`
	City            string                `json:"city"`
	Instructions    string                `json:"instructions,omitempty"`
	PreferredDate   *time.Time            `json:"preferredDate,omitempty"`
	PaymentMethod   string                `json:"paymentMethod"`
	Notes           string                `json:"notes,omitempty"`
	RejectionReason string                `json:"rejectionReason,omitempty"`
	Timeline        []timelineEntryDetail `json:"timeline"`
	Delivery        *deliveryBrief        `json:"delivery,omitempty"`
	DeliveredAt     *time.Time            `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
}

func toGetOrderResponse(resp queries.GetOrderResponse) orderDetailResponse {
	items := make([]orderItemDetail, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, orderItemDetail{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
			Unit:        item.Unit,
		})
	}

	timeline := make([]timelineEntryDetail, 0, len(resp.Timeline))
	for _, entry := range resp.Timeline {
		timeline = append(timeline, timelineEntryDetail{
			Status:    entry.Status.String(),
			At:        entry.At,
			Note:      entry.Note,
			ActorName: entry.ActorName,
			ActorRole: entry.ActorRole.String(),
		})
	}

	var workerID *string
	if resp.WorkerID != nil {
		id := resp.WorkerID.String()
		workerID = &id
	}

	var brief *deliveryBrief
	if resp.Delivery != nil {
		brief = &deliveryBrief{
			ID:          resp.Delivery.ID.String(),
			Number:      resp.Delivery.Number,
			Status:      resp.Delivery.Status,
			WorkerID:    resp.Delivery.WorkerID.String(),
			WorkerName:  resp.Delivery.WorkerName,
			WorkerPhone: resp.Delivery.WorkerPhone,
			AssignedAt:  resp.Delivery.AssignedAt,
			DeliveredAt: resp.Delivery.DeliveredAt,
		}
	}

	return orderDetailResponse{
		ID:              resp.ID.String(),
		Number:          resp.Number,
		Status:          resp.Status.String(),
		ShopkeeperID:    resp.ShopkeeperID.String(),
		CompanyID:       resp.CompanyID.String(),
		WorkerID:        workerID,
		Items:           items,
		TotalAmount:     resp.TotalAmount,
		TaxAmount:       resp.TaxAmount,
		DeliveryCharge:  resp.DeliveryCharge,
		FinalAmount:     resp.FinalAmount,
		Address:         resp.Address,
		Area:            resp.Area,
		City:            resp.City,
		Instructions:    resp.Instructions,
		PreferredDate:   resp.PreferredDate,
		PaymentMethod:   string(resp.PaymentMethod),
		Notes:           resp.Notes,
		RejectionReason: resp.RejectionReason,
		Timeline:        timeline,
		Delivery:        brief,
		DeliveredAt:     resp.DeliveredAt,
		CreatedAt:       resp.CreatedAt,
	}
}

type deliveryListItem struct {
	ID               string     `json:"id"`
	Number           string     `json:"number"`
	OrderID          string     `json:"orderId"`
	OrderNumber      string     `json:"orderNumber"`
	Status           string     `json:"status"`
	ShopkeeperName   string     `json:"shopkeeperName"`
	ShopkeeperPhone  string     `json:"shopkeeperPhone"`
	PickupLocation   string     `json:"pickupLocation"`
	DeliveryLocation string     `json:"deliveryLocation"`
	Area             string     `json:"area"`
	AmountToCollect  float64    `json:"amountToCollect"`
	IssueCount       int        `json:"issueCount"`
	AssignedAt       time.Time  `json:"assignedAt"`
	DeliveredAt      *time.Time `json:"deliveredAt,omitempty"`
}

func toDeliveryListResponse(rows []queries.DeliveryListRow) []deliveryListItem {
	items := make([]deliveryListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, deliveryListItem{
			ID:               row.ID.String(),
			Number:           row.Number,
			OrderID:          row.OrderID.String(),
			OrderNumber:      row.OrderNumber,
			Status:           row.Status.String(),
			ShopkeeperName:   row.ShopkeeperName,
			ShopkeeperPhone:  row.ShopkeeperPhone,
			PickupLocation:   row.PickupLocation,
			DeliveryLocation: row.DeliveryLocation,
			Area:             row.Area,
			AmountToCollect:  row.AmountToCollect,
			IssueCount:       row.IssueCount,
			AssignedAt:       row.AssignedAt,
			DeliveredAt:      row.DeliveredAt,
		})
	}
	return items
}
