package ports

import (
	"context"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/user"
)

// UserRepository defines read access to the user directory. The workflow
// looks users up to validate roles and resolve party snapshots; it never
// mutates them.
type UserRepository interface {
	// Get retrieves a directory entry by id. Returns an ObjectNotFoundError
	// when the id does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
