package repositories

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/core/domain"
)

// UserReader defines tenant-scoped read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user visible to the current tenant.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves the current tenant's users.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserAuthReader defines the deliberately unscoped lookups used by
// authentication and tenant resolution, which run before a tenant context
// exists. These are the only read paths that bypass the row-level filter.
type UserAuthReader interface {
	// FindUserForAuth retrieves a user by ID regardless of tenant.
	FindUserForAuth(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmailForAuth retrieves a user by email regardless of tenant.
	FindUserByEmailForAuth(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUserDetails updates mutable user fields for the current tenant.
	UpdateUserDetails(ctx context.Context, user domain.User) error

	// MarkUserDeleted soft-deletes a user.
	MarkUserDeleted(ctx context.Context, userID string, deletedByUserID string) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserAuthReader
	UserWriter
	ScopedOwnershipProber
}

// UserRepositoryWithTx extends UserRepositoryFacade with transaction capabilities.
type UserRepositoryWithTx interface {
	UserRepositoryFacade
	TransactionManager
}
