// Package userrepo provides the user directory persistence adapter.
package userrepo

import (
	"encoding/json"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserDTO represents the database structure for the user directory.
type UserDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Phone         string
	Address       string
	Role          string `gorm:"index"`
	Status        string
	AssignedAreas datatypes.JSON
}

// TableName overrides the table name.
func (UserDTO) TableName() string {
	return "users"
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var areas []string
	if len(dto.AssignedAreas) > 0 {
		if err := json.Unmarshal(dto.AssignedAreas, &areas); err != nil {
			return nil, err
		}
	}

	return user.NewUser(id, dto.Name, dto.Phone, dto.Address,
		user.Role(dto.Role), user.Status(dto.Status), areas)
}
