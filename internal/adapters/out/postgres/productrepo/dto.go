// Package productrepo provides the product catalog persistence adapter.
package productrepo

import (
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string
	Barcode          string `gorm:"uniqueIndex"`
	Unit             string
	UnitPrice        float64
	StockQuantity    int
	MinOrderQuantity int
	MaxOrderQuantity int
	Active           bool
}

// TableName overrides the table name.
func (ProductDTO) TableName() string {
	return "products"
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return product.NewProduct(
		id,
		dto.Name,
		dto.Unit,
		dto.UnitPrice,
		dto.StockQuantity,
		dto.MinOrderQuantity,
		dto.MaxOrderQuantity,
		dto.Active,
	)
}
