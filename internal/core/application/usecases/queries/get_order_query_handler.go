package queries

import (
	"context"
	"encoding/json"
	"errors"

	"supplyline/internal/adapters/out/postgres/deliveryrepo"
	"supplyline/internal/adapters/out/postgres/orderrepo"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/core/domain/model/user"
	"supplyline/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its full timeline and
// the latest delivery attached to it. Only the order's parties and admins
// may read it.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	caller user.Caller,
	query GetOrderQuery,
) (GetOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderResponse{}, err
	}
	if !caller.IsActive() {
		return GetOrderResponse{}, errs.NewAccessDeniedError(caller.Role().String(), "view order")
	}

	db := h.db.WithContext(ctx)
	var dto orderrepo.OrderDTO
	var err error
	var ref string
	if id := query.ID(); id != nil {
		ref = id.String()
		err = db.First(&dto, "id = ?", id.Bytes()).Error
	} else {
		ref = query.Number()
		err = db.First(&dto, "number = ?", query.Number()).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderResponse{}, errs.NewObjectNotFoundError("order", ref)
		}
		return GetOrderResponse{}, err
	}

	resp, err := toGetOrderResponse(dto)
	if err != nil {
		return GetOrderResponse{}, err
	}

	if !caller.IsAdmin() && !isOrderParty(resp, caller.ID()) {
		return GetOrderResponse{}, errs.NewAccessDeniedError(caller.Role().String(), "view order "+resp.Number)
	}

	brief, err := h.latestDelivery(ctx, dto.ID)
	if err != nil {
		return GetOrderResponse{}, err
	}
	resp.Delivery = brief

	return resp, nil
}

func isOrderParty(resp GetOrderResponse, id kernel.UUID) bool {
	if resp.ShopkeeperID.IsEqual(id) || resp.CompanyID.IsEqual(id) {
		return true
	}
	return resp.WorkerID != nil && resp.WorkerID.IsEqual(id)
}

func (h GetOrderQueryHandler) latestDelivery(ctx context.Context, orderID uuid.UUID) (*DeliveryBrief, error) {
	var dto deliveryrepo.DeliveryDTO
	err := h.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}

	return &DeliveryBrief{
		ID:          id,
		Number:      dto.Number,
		Status:      dto.Status,
		WorkerID:    workerID,
		WorkerName:  dto.WorkerName,
		WorkerPhone: dto.WorkerPhone,
		AssignedAt:  dto.AssignedAt,
		DeliveredAt: dto.DeliveredAt,
	}, nil
}

func toGetOrderResponse(dto orderrepo.OrderDTO) (GetOrderResponse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return GetOrderResponse{}, err
	}
	shopkeeperID, err := kernel.UUIDFromBytes(dto.ShopkeeperID[:])
	if err != nil {
		return GetOrderResponse{}, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return GetOrderResponse{}, err
	}

	var workerID *kernel.UUID
	if dto.DeliveryWorkerID != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.DeliveryWorkerID)[:])
		if workerErr != nil {
			return GetOrderResponse{}, workerErr
		}
		workerID = &wID
	}

	var itemRows []orderrepo.ItemRow
	if err := json.Unmarshal(dto.Items, &itemRows); err != nil {
		return GetOrderResponse{}, err
	}
	items := make([]OrderItemDetail, 0, len(itemRows))
	for _, row := range itemRows {
		productID, productErr := kernel.UUIDFromBytes(row.ProductID[:])
		if productErr != nil {
			return GetOrderResponse{}, productErr
		}
		items = append(items, OrderItemDetail{
			ProductID:   productID,
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
			LineTotal:   row.LineTotal,
			Unit:        row.Unit,
		})
	}

	var timelineRows []orderrepo.TimelineRow
	if len(dto.Timeline) > 0 {
		if err := json.Unmarshal(dto.Timeline, &timelineRows); err != nil {
			return GetOrderResponse{}, err
		}
	}
	timeline := make([]TimelineDetail, 0, len(timelineRows))
	for _, row := range timelineRows {
		timeline = append(timeline, TimelineDetail{
			Status:    order.Status(row.Status),
			At:        row.At,
			Note:      row.Note,
			ActorName: row.ActorName,
			ActorRole: user.Role(row.ActorRole),
		})
	}
	// Rows written before timeline tracking existed carry no entries; callers
	// still get at least the creation event.
	if len(timeline) == 0 {
		timeline = append(timeline, TimelineDetail{
			Status: order.StatusPending,
			At:     dto.CreatedAt,
			Note:   order.StatusPending.TimelineNote(),
		})
	}

	return GetOrderResponse{
		ID:              id,
		Number:          dto.Number,
		Status:          order.Status(dto.Status),
		ShopkeeperID:    shopkeeperID,
		CompanyID:       companyID,
		WorkerID:        workerID,
		Items:           items,
		TotalAmount:     dto.TotalAmount,
		TaxAmount:       dto.TaxAmount,
		DeliveryCharge:  dto.DeliveryCharge,
		FinalAmount:     dto.FinalAmount,
		Address:         dto.Address,
		Area:            dto.Area,
		City:            dto.City,
		Instructions:    dto.Instructions,
		PreferredDate:   dto.PreferredDate,
		PaymentMethod:   order.PaymentMethod(dto.PaymentMethod),
		Notes:           dto.Notes,
		RejectionReason: dto.RejectionReason,
		Timeline:        timeline,
		DeliveredAt:     dto.DeliveredAt,
		CreatedAt:       dto.CreatedAt,
	}, nil
}
