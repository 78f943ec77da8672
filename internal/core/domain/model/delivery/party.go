package delivery

import (
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/errs"
)

// Party is a denormalized snapshot of a participant (worker, shopkeeper, or
// company) taken when the delivery is created, so later profile edits never
// rewrite a fulfillment record.
type Party struct {
	id    kernel.UUID
	name  string
	phone string
}

// NewParty creates a validated participant snapshot. The phone may be empty
// when the source profile has none.
func NewParty(id kernel.UUID, name, phone string) (Party, error) {
	if err := id.Validate(); err != nil {
		return Party{}, err
	}
	if name == "" {
		return Party{}, errs.NewValueIsRequiredError("party name")
	}
	return Party{id: id, name: name, phone: phone}, nil
}

func (p Party) ID() kernel.UUID {
	return p.id
}

func (p Party) Name() string {
	return p.name
}

func (p Party) Phone() string {
	return p.phone
}
