// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Line items and the timeline are stored as JSON columns;
// everything queried on (status, parties, number, creation time) is a plain
// column.
package orderrepo

import (
	"encoding/json"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/order"
	"supplyline/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number           string     `gorm:"uniqueIndex"`
	ShopkeeperID     uuid.UUID  `gorm:"type:uuid;index"`
	CompanyID        uuid.UUID  `gorm:"type:uuid;index"`
	DeliveryWorkerID *uuid.UUID `gorm:"type:uuid;index"`

	Items datatypes.JSON

	TotalAmount    float64
	TaxAmount      float64
	DeliveryCharge float64
	FinalAmount    float64

	Status   string `gorm:"index"`
	Timeline datatypes.JSON

	Address       string
	Area          string `gorm:"index"`
	City          string
	Instructions  string
	PreferredDate *time.Time
	PaymentMethod string

	Notes           string
	RejectionReason string
	DeliveredAt     *time.Time
	CreatedAt       time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemRow is the JSON shape of one order line.
type ItemRow struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	LineTotal   float64   `json:"lineTotal"`
	Unit        string    `json:"unit"`
}

// TimelineRow is the JSON shape of one timeline entry.
type TimelineRow struct {
	Status    string    `json:"status"`
	At        time.Time `json:"at"`
	Note      string    `json:"note"`
	ActorName string    `json:"actorName"`
	ActorRole string    `json:"actorRole"`
}

func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var workerID *uuid.UUID
	if id := aggregate.DeliveryWorker(); id != nil {
		raw := id.Bytes()
		workerID = &raw
	}

	itemRows := make([]ItemRow, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		itemRows = append(itemRows, ItemRow{
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			LineTotal:   item.LineTotal(),
			Unit:        item.Unit(),
		})
	}
	items, err := json.Marshal(itemRows)
	if err != nil {
		return OrderDTO{}, err
	}

	timelineRows := make([]TimelineRow, 0, len(aggregate.Timeline()))
	for _, entry := range aggregate.Timeline() {
		timelineRows = append(timelineRows, TimelineRow{
			Status:    entry.Status().String(),
			At:        entry.At(),
			Note:      entry.Note(),
			ActorName: entry.Actor().Name(),
			ActorRole: entry.Actor().Role().String(),
		})
	}
	timeline, err := json.Marshal(timelineRows)
	if err != nil {
		return OrderDTO{}, err
	}

	prefs := aggregate.Preferences()
	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		Number:           aggregate.Number(),
		ShopkeeperID:     aggregate.ShopkeeperID().Bytes(),
		CompanyID:        aggregate.CompanyID().Bytes(),
		DeliveryWorkerID: workerID,
		Items:            items,
		TotalAmount:      aggregate.TotalAmount(),
		TaxAmount:        aggregate.TaxAmount(),
		DeliveryCharge:   aggregate.DeliveryCharge(),
		FinalAmount:      aggregate.FinalAmount(),
		Status:           aggregate.Status().String(),
		Timeline:         timeline,
		Address:          prefs.Address(),
		Area:             prefs.Area(),
		City:             prefs.City(),
		Instructions:     prefs.Instructions(),
		PreferredDate:    prefs.PreferredDate(),
		PaymentMethod:    string(prefs.PaymentMethod()),
		Notes:            aggregate.Notes(),
		RejectionReason:  aggregate.RejectionReason(),
		DeliveredAt:      aggregate.DeliveredAt(),
		CreatedAt:        aggregate.CreatedAt(),
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	shopkeeperID, err := kernel.UUIDFromBytes(dto.ShopkeeperID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if dto.DeliveryWorkerID != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.DeliveryWorkerID)[:])
		if workerErr != nil {
			return nil, workerErr
		}
		workerID = &wID
	}

	var itemRows []ItemRow
	if err := json.Unmarshal(dto.Items, &itemRows); err != nil {
		return nil, err
	}
	items := make([]order.Item, 0, len(itemRows))
	for _, row := range itemRows {
		productID, productErr := kernel.UUIDFromBytes(row.ProductID[:])
		if productErr != nil {
			return nil, productErr
		}
		item, itemErr := order.NewItem(productID, row.ProductName, row.Quantity, row.UnitPrice, row.Unit)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var timelineRows []TimelineRow
	if err := json.Unmarshal(dto.Timeline, &timelineRows); err != nil {
		return nil, err
	}
	timeline := make([]order.TimelineEntry, 0, len(timelineRows))
	for _, row := range timelineRows {
		actor, actorErr := order.NewActor(row.ActorName, user.Role(row.ActorRole))
		if actorErr != nil {
			return nil, actorErr
		}
		timeline = append(timeline,
			order.NewTimelineEntry(order.Status(row.Status), row.At, row.Note, actor))
	}

	prefs, err := order.NewDeliveryPreferences(
		dto.Address, dto.Area, dto.City, dto.Instructions,
		dto.PreferredDate, order.PaymentMethod(dto.PaymentMethod))
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, dto.Number, shopkeeperID, companyID, workerID,
		items,
		dto.TotalAmount, dto.TaxAmount, dto.DeliveryCharge, dto.FinalAmount,
		order.Status(dto.Status), timeline, prefs,
		dto.Notes, dto.RejectionReason, dto.DeliveredAt, dto.CreatedAt)
}
