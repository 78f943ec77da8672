package postgres

import (
	"context"

	"gorm.io/gorm"
)

// CounterDTO represents a named monotonic counter row.
type CounterDTO struct {
	Name  string `gorm:"primaryKey"`
	Value int64
}

// TableName overrides the table name.
func (CounterDTO) TableName() string {
	return "counters"
}

const orderNumberCounter = "order_number"

// GormOrderNumberSequence allocates order numbers from a counter row using
// an atomic upsert. Calling Next inside the order-persisting transaction
// keeps the counter aligned with committed orders.
type GormOrderNumberSequence struct {
	db *gorm.DB
}

// NewGormOrderNumberSequence creates a sequence backed by the counters table.
func NewGormOrderNumberSequence(db *gorm.DB) *GormOrderNumberSequence {
	return &GormOrderNumberSequence{db: db}
}

// Next returns the next order number value.
func (s *GormOrderNumberSequence) Next(ctx context.Context) (int64, error) {
	var value int64
	err := s.db.WithContext(ctx).Raw(
		`INSERT INTO counters (name, value) VALUES (?, 1)
		 ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		 RETURNING value`,
		orderNumberCounter,
	).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}
