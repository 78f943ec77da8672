package queries

import (
	"context"

	"supplyline/internal/adapters/out/postgres/orderrepo"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOverdueOrdersQueryHandler finds orders stuck in a non-terminal status
// past the overdue threshold. No caller scoping: the consumers are the
// scheduled sweep and admin tooling.
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueOrdersQueryHandler creates a handler for overdue-order
// queries.
func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are ordered oldest first, so the
// longest-stuck orders surface at the top.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]OverdueOrderRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := query.AsOf().Add(-order.OverdueAfter)

	var dtos []orderrepo.OrderDTO
	err := h.db.WithContext(ctx).
		Where("status NOT IN ?", []string{
			string(order.StatusDelivered),
			string(order.StatusRejected),
			string(order.StatusCancelled),
		}).
		Where("created_at < ?", cutoff).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	rows := make([]OverdueOrderRow, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		shopkeeperID, skErr := kernel.UUIDFromBytes(dto.ShopkeeperID[:])
		if skErr != nil {
			return nil, skErr
		}
		companyID, coErr := kernel.UUIDFromBytes(dto.CompanyID[:])
		if coErr != nil {
			return nil, coErr
		}

		rows = append(rows, OverdueOrderRow{
			ID:           id,
			Number:       dto.Number,
			Status:       order.Status(dto.Status),
			ShopkeeperID: shopkeeperID,
			CompanyID:    companyID,
			Area:         dto.Area,
			CreatedAt:    dto.CreatedAt,
			Age:          query.AsOf().Sub(dto.CreatedAt),
		})
	}

	return rows, nil
}
