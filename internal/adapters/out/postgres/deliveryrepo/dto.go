// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. The item manifest and the issue list are JSON
// columns; proof of delivery is inlined as columns with an empty signature
// meaning no proof captured yet.
package deliveryrepo

import (
	"encoding/json"
	"time"

	"supplyline/internal/core/domain/model/delivery"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates.
type DeliveryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number      string    `gorm:"uniqueIndex"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	OrderNumber string

	WorkerID    uuid.UUID `gorm:"type:uuid;index"`
	WorkerName  string
	WorkerPhone string

	ShopkeeperID    uuid.UUID `gorm:"type:uuid"`
	ShopkeeperName  string
	ShopkeeperPhone string

	CompanyID    uuid.UUID `gorm:"type:uuid"`
	CompanyName  string
	CompanyPhone string

	Items datatypes.JSON

	PickupLocation   string
	DeliveryLocation string
	Area             string

	Status string `gorm:"index"`

	PaymentMethod   string
	AmountToCollect float64

	ProofSignature string
	ProofPhoto     string
	ProofNotes     string

	Issues datatypes.JSON

	AssignedAt  time.Time
	PickedUpAt  *time.Time
	InTransitAt *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// ItemRow is the JSON shape of one manifest line.
type ItemRow struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit"`
}

// IssueRow is the JSON shape of one issue record.
type IssueRow struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Resolution  string    `json:"resolution,omitempty"`
	ReportedAt  time.Time `json:"reportedAt"`
}

func fromDomain(aggregate *delivery.Delivery) (DeliveryDTO, error) {
	itemRows := make([]ItemRow, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		itemRows = append(itemRows, ItemRow{
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			Unit:        item.Unit(),
		})
	}
	items, err := json.Marshal(itemRows)
	if err != nil {
		return DeliveryDTO{}, err
	}

	issueRows := make([]IssueRow, 0, len(aggregate.Issues()))
	for _, issue := range aggregate.Issues() {
		issueRows = append(issueRows, IssueRow{
			Type:        issue.Type().String(),
			Description: issue.Description(),
			Resolution:  issue.Resolution(),
			ReportedAt:  issue.ReportedAt(),
		})
	}
	issues, err := json.Marshal(issueRows)
	if err != nil {
		return DeliveryDTO{}, err
	}

	dto := DeliveryDTO{
		ID:               aggregate.ID().Bytes(),
		Number:           aggregate.Number(),
		OrderID:          aggregate.OrderID().Bytes(),
		OrderNumber:      aggregate.OrderNumber(),
		WorkerID:         aggregate.Worker().ID().Bytes(),
		WorkerName:       aggregate.Worker().Name(),
		WorkerPhone:      aggregate.Worker().Phone(),
		ShopkeeperID:     aggregate.Shopkeeper().ID().Bytes(),
		ShopkeeperName:   aggregate.Shopkeeper().Name(),
		ShopkeeperPhone:  aggregate.Shopkeeper().Phone(),
		CompanyID:        aggregate.Company().ID().Bytes(),
		CompanyName:      aggregate.Company().Name(),
		CompanyPhone:     aggregate.Company().Phone(),
		Items:            items,
		PickupLocation:   aggregate.PickupLocation(),
		DeliveryLocation: aggregate.DeliveryLocation(),
		Area:             aggregate.Area(),
		Status:           aggregate.Status().String(),
		PaymentMethod:    string(aggregate.Payment().Method()),
		AmountToCollect:  aggregate.Payment().AmountToCollect(),
		Issues:           issues,
		AssignedAt:       aggregate.AssignedAt(),
		PickedUpAt:       aggregate.PickedUpAt(),
		InTransitAt:      aggregate.InTransitAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		CreatedAt:        aggregate.CreatedAt(),
	}

	if proof := aggregate.Proof(); proof != nil {
		dto.ProofSignature = proof.Signature()
		dto.ProofPhoto = proof.Photo()
		dto.ProofNotes = proof.Notes()
	}

	return dto, nil
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	worker, err := restoreParty(dto.WorkerID, dto.WorkerName, dto.WorkerPhone)
	if err != nil {
		return nil, err
	}
	shopkeeper, err := restoreParty(dto.ShopkeeperID, dto.ShopkeeperName, dto.ShopkeeperPhone)
	if err != nil {
		return nil, err
	}
	company, err := restoreParty(dto.CompanyID, dto.CompanyName, dto.CompanyPhone)
	if err != nil {
		return nil, err
	}

	var itemRows []ItemRow
	if err := json.Unmarshal(dto.Items, &itemRows); err != nil {
		return nil, err
	}
	items := make([]delivery.Item, 0, len(itemRows))
	for _, row := range itemRows {
		productID, productErr := kernel.UUIDFromBytes(row.ProductID[:])
		if productErr != nil {
			return nil, productErr
		}
		item, itemErr := delivery.NewItem(productID, row.ProductName, row.Quantity, row.Unit)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var issueRows []IssueRow
	if err := json.Unmarshal(dto.Issues, &issueRows); err != nil {
		return nil, err
	}
	issues := make([]delivery.Issue, 0, len(issueRows))
	for _, row := range issueRows {
		issue, issueErr := delivery.NewIssue(
			delivery.IssueType(row.Type), row.Description, row.Resolution, row.ReportedAt)
		if issueErr != nil {
			return nil, issueErr
		}
		issues = append(issues, issue)
	}

	payment, err := delivery.NewPayment(order.PaymentMethod(dto.PaymentMethod), dto.AmountToCollect)
	if err != nil {
		return nil, err
	}

	var proof *delivery.Proof
	if dto.ProofSignature != "" {
		p, proofErr := delivery.NewProof(dto.ProofSignature, dto.ProofPhoto, dto.ProofNotes)
		if proofErr != nil {
			return nil, proofErr
		}
		proof = &p
	}

	return delivery.RestoreDelivery(
		id, dto.Number, orderID, dto.OrderNumber,
		worker, shopkeeper, company,
		items,
		dto.PickupLocation, dto.DeliveryLocation, dto.Area,
		delivery.Status(dto.Status), payment, proof, issues,
		dto.AssignedAt, dto.PickedUpAt, dto.InTransitAt, dto.DeliveredAt,
		dto.CreatedAt)
}

func restoreParty(id uuid.UUID, name, phone string) (delivery.Party, error) {
	partyID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return delivery.Party{}, err
	}
	return delivery.NewParty(partyID, name, phone)
}
