package user

import (
	"supplyline/internal/core/domain/model/kernel"
)

// Caller is the authenticated identity of the request. It is established by
// the authentication collaborator at the boundary and threaded explicitly into
// every workflow operation; the core never reads ambient request state.
type Caller struct {
	id     kernel.UUID
	role   Role
	status Status
}

// NewCaller creates a validated caller identity.
func NewCaller(id kernel.UUID, role Role, status Status) (Caller, error) {
	if err := id.Validate(); err != nil {
		return Caller{}, err
	}
	if err := role.Validate(); err != nil {
		return Caller{}, err
	}
	if err := status.Validate(); err != nil {
		return Caller{}, err
	}

	return Caller{id: id, role: role, status: status}, nil
}

func (c Caller) ID() kernel.UUID {
	return c.id
}

func (c Caller) Role() Role {
	return c.role
}

func (c Caller) Status() Status {
	return c.status
}

func (c Caller) IsAdmin() bool {
	return c.role == RoleAdmin
}

// IsActive reports whether the caller's account may act in the system.
func (c Caller) IsActive() bool {
	return c.status.IsActive()
}
