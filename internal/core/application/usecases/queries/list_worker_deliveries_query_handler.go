package queries

import (
	"context"
	"encoding/json"

	"supplyline/internal/adapters/out/postgres/deliveryrepo"
	"supplyline/internal/core/domain/model/delivery"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/user"
	"supplyline/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListWorkerDeliveriesQueryHandler lists a delivery worker's queue, most
// recently assigned first.
type ListWorkerDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewListWorkerDeliveriesQueryHandler creates a handler for worker queue
// listings.
func NewListWorkerDeliveriesQueryHandler(db *gorm.DB) ListWorkerDeliveriesQueryHandler {
	return ListWorkerDeliveriesQueryHandler{db: db}
}

// Handle executes the listing. Workers may only list their own queue.
func (h ListWorkerDeliveriesQueryHandler) Handle(
	ctx context.Context,
	caller user.Caller,
	query ListWorkerDeliveriesQuery,
) ([]DeliveryListRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if !caller.IsActive() {
		return nil, errs.NewAccessDeniedError(caller.Role().String(), "list deliveries")
	}
	if !caller.IsAdmin() && !caller.ID().IsEqual(query.WorkerID()) {
		return nil, errs.NewAccessDeniedError(caller.Role().String(), "list another worker's deliveries")
	}

	db := h.db.WithContext(ctx).
		Where("worker_id = ?", query.WorkerID().Bytes())
	if s := query.Status(); s != nil {
		db = db.Where("status = ?", s.String())
	}

	var dtos []deliveryrepo.DeliveryDTO
	if err := db.Order("assigned_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	rows := make([]DeliveryListRow, 0, len(dtos))
	for _, dto := range dtos {
		row, err := toDeliveryListRow(dto)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func toDeliveryListRow(dto deliveryrepo.DeliveryDTO) (DeliveryListRow, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return DeliveryListRow{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return DeliveryListRow{}, err
	}

	var issueRows []deliveryrepo.IssueRow
	if len(dto.Issues) > 0 {
		if err := json.Unmarshal(dto.Issues, &issueRows); err != nil {
			return DeliveryListRow{}, err
		}
	}

	return DeliveryListRow{
		ID:               id,
		Number:           dto.Number,
		OrderID:          orderID,
		OrderNumber:      dto.OrderNumber,
		Status:           delivery.Status(dto.Status),
		ShopkeeperName:   dto.ShopkeeperName,
		ShopkeeperPhone:  dto.ShopkeeperPhone,
		PickupLocation:   dto.PickupLocation,
		DeliveryLocation: dto.DeliveryLocation,
		Area:             dto.Area,
		AmountToCollect:  dto.AmountToCollect,
		IssueCount:       len(issueRows),
		AssignedAt:       dto.AssignedAt,
		DeliveredAt:      dto.DeliveredAt,
	}, nil
}
