package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// ScopedOwnershipProber is implemented by repositories of tenant-scoped
// entities. OwnerTenantID reads the stored tenant reference of a record
// WITHOUT the row-level filter applied. It exists solely so that write paths
// can verify ownership independently of the read-side filter (defense in
// depth); it must never feed data back to callers.
type ScopedOwnershipProber interface {
	OwnerTenantID(ctx context.Context, id string) (string, error)
}
