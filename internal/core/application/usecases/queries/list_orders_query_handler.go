package queries

import (
	"context"
	"encoding/json"
	"time"

	"supplyline/internal/adapters/out/postgres/orderrepo"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/core/domain/model/user"
	"supplyline/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler executes order listings against the read side of
// the orders table. Visibility scoping happens here, so a shopkeeper can
// never page through another shop's orders regardless of filters.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// scopeOrders narrows an orders query to the rows the caller may see.
func scopeOrders(db *gorm.DB, caller user.Caller) (*gorm.DB, error) {
	switch caller.Role() {
	case user.RoleAdmin:
		return db, nil
	case user.RoleShopkeeper:
		return db.Where("shopkeeper_id = ?", caller.ID().Bytes()), nil
	case user.RoleCompanyRep:
		return db.Where("company_id = ?", caller.ID().Bytes()), nil
	case user.RoleDeliveryWorker:
		return db.Where("delivery_worker_id = ?", caller.ID().Bytes()), nil
	}
	return nil, errs.NewAccessDeniedError(caller.Role().String(), "list orders")
}

// Handle executes the listing. The summary aggregates cover the whole
// filtered set while Orders holds just the requested page, newest first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	caller user.Caller,
	query ListOrdersQuery,
) (ListOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersResponse{}, err
	}
	if !caller.IsActive() {
		return ListOrdersResponse{}, errs.NewAccessDeniedError(caller.Role().String(), "list orders")
	}

	base, err := scopeOrders(h.db.WithContext(ctx).Model(&orderrepo.OrderDTO{}), caller)
	if err != nil {
		return ListOrdersResponse{}, err
	}
	if statuses := query.Statuses(); len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, s.String())
		}
		base = base.Where("status IN ?", values)
	}
	if query.Area() != "" {
		base = base.Where("area = ?", query.Area())
	}
	if query.StartDate() != nil {
		base = base.Where("created_at >= ?", *query.StartDate())
	}
	if query.EndDate() != nil {
		base = base.Where("created_at <= ?", *query.EndDate())
	}
	if query.Search() != "" {
		term := "%" + query.Search() + "%"
		base = base.Where(
			"number ILIKE ? OR EXISTS (SELECT 1 FROM jsonb_array_elements(items) AS item WHERE item->>'productName' ILIKE ?)",
			term, term)
	}

	summary, err := h.summarize(base)
	if err != nil {
		return ListOrdersResponse{}, err
	}

	var dtos []orderrepo.OrderDTO
	err = base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Offset((query.Page() - 1) * query.PageSize()).
		Limit(query.PageSize()).
		Find(&dtos).Error
	if err != nil {
		return ListOrdersResponse{}, err
	}

	rows := make([]OrderListRow, 0, len(dtos))
	for _, dto := range dtos {
		row, rowErr := toOrderListRow(dto)
		if rowErr != nil {
			return ListOrdersResponse{}, rowErr
		}
		rows = append(rows, row)
	}

	return ListOrdersResponse{
		Orders:   rows,
		Summary:  summary,
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}, nil
}

func (h ListOrdersQueryHandler) summarize(base *gorm.DB) (OrderListSummary, error) {
	summary := OrderListSummary{CountByStatus: make(map[order.Status]int64)}

	type statusCount struct {
		Status string
		Count  int64
		Amount float64
	}
	var counts []statusCount
	err := base.Session(&gorm.Session{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(final_amount), 0) AS amount").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return OrderListSummary{}, err
	}

	for _, c := range counts {
		summary.CountByStatus[order.Status(c.Status)] = c.Count
		summary.TotalCount += c.Count
		summary.TotalFinalAmount += c.Amount
	}

	cutoff := time.Now().UTC().Add(-order.OverdueAfter)
	err = base.Session(&gorm.Session{}).
		Where("status NOT IN ?", []string{
			string(order.StatusDelivered),
			string(order.StatusRejected),
			string(order.StatusCancelled),
		}).
		Where("created_at < ?", cutoff).
		Count(&summary.OverdueCount).Error
	if err != nil {
		return OrderListSummary{}, err
	}

	return summary, nil
}

func toOrderListRow(dto orderrepo.OrderDTO) (OrderListRow, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return OrderListRow{}, err
	}
	shopkeeperID, err := kernel.UUIDFromBytes(dto.ShopkeeperID[:])
	if err != nil {
		return OrderListRow{}, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return OrderListRow{}, err
	}

	var workerID *kernel.UUID
	if dto.DeliveryWorkerID != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.DeliveryWorkerID)[:])
		if workerErr != nil {
			return OrderListRow{}, workerErr
		}
		workerID = &wID
	}

	var itemRows []orderrepo.ItemRow
	if err := json.Unmarshal(dto.Items, &itemRows); err != nil {
		return OrderListRow{}, err
	}

	return OrderListRow{
		ID:            id,
		Number:        dto.Number,
		Status:        order.Status(dto.Status),
		ShopkeeperID:  shopkeeperID,
		CompanyID:     companyID,
		WorkerID:      workerID,
		Area:          dto.Area,
		City:          dto.City,
		ItemCount:     len(itemRows),
		FinalAmount:   dto.FinalAmount,
		PaymentMethod: order.PaymentMethod(dto.PaymentMethod),
		CreatedAt:     dto.CreatedAt,
		DeliveredAt:   dto.DeliveredAt,
	}, nil
}
