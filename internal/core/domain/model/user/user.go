package user

import (
	"fmt"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/errs"
)

// Role identifies what a user is allowed to do in the supply chain.
type Role string

const (
	RoleShopkeeper     Role = "shopkeeper"
	RoleCompanyRep     Role = "company_rep"
	RoleDeliveryWorker Role = "delivery_worker"
	RoleAdmin          Role = "admin"
)

// Validate checks that the role belongs to the known vocabulary.
func (r Role) Validate() error {
	switch r {
	case RoleShopkeeper, RoleCompanyRep, RoleDeliveryWorker, RoleAdmin:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
}

func (r Role) String() string {
	return string(r)
}

// Status is the account status in the user directory.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusInactive  Status = "inactive"
)

// Validate checks that the status belongs to the known vocabulary.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusActive, StatusSuspended, StatusInactive:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid account status", string(s)))
}

// IsActive reports whether the account may act in the system.
func (s Status) IsActive() bool {
	return s == StatusActive
}

// User is a read model of the external user directory. The workflow never
// mutates users; it only looks them up to validate roles, resolve party
// snapshots, and match delivery workers to areas.
type User struct {
	id            kernel.UUID
	name          string
	phone         string
	address       string
	role          Role
	status        Status
	assignedAreas []string
}

// NewUser restores a directory entry into the read model.
// assignedAreas is only meaningful for delivery workers; an empty list means
// the worker has no area restriction.
func NewUser(id kernel.UUID, name, phone, address string, role Role, status Status, assignedAreas []string) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &User{
		id:            id,
		name:          name,
		phone:         phone,
		address:       address,
		role:          role,
		status:        status,
		assignedAreas: append([]string(nil), assignedAreas...),
	}, nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Phone() string {
	return u.phone
}

func (u *User) Address() string {
	return u.address
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) Status() Status {
	return u.status
}

// AssignedAreas returns a copy of the worker's area restriction list.
func (u *User) AssignedAreas() []string {
	return append([]string(nil), u.assignedAreas...)
}

// IsActive reports whether the account may act in the system.
func (u *User) IsActive() bool {
	return u.status.IsActive()
}

// ServesArea reports whether a delivery worker may serve the given area.
// A worker with no assigned areas serves everywhere.
func (u *User) ServesArea(area string) bool {
	if len(u.assignedAreas) == 0 {
		return true
	}
	for _, a := range u.assignedAreas {
		if a == area {
			return true
		}
	}
	return false
}
