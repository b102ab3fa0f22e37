package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/bizledger/bizledger_app/internal/apperrors"
	"github.com/bizledger/bizledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/bizledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryWithTx {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryWithTx
var _ portsrepo.UserRepositoryWithTx = (*PgxUserRepository)(nil)

var FULL_USER_SELECT_QUERY = `
SELECT
	u.user_id, u.tenant_id, u.email, u.name, u.password_hash, u.role, u.is_active,
	u.created_at, u.created_by, u.last_updated_at, u.last_updated_by, u.deleted_at
FROM users u
`

// getUsers runs the select with the given filter and collects domain rows.
func (r *PgxUserRepository) getUsers(ctx context.Context, filterQuery string, args ...any) ([]domain.User, error) {
	query := FULL_USER_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users", err)
	}
	defer rows.Close()
	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.User{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect user rows", err)
	}
	return users, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (
			user_id, tenant_id, email, name, password_hash, role, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.TenantID,
		user.Email,
		user.Name,
		user.PasswordHash,
		user.Role,
		user.IsActive,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("user email " + user.Email + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("tenant does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save user "+user.UserID, err)
	}
	return nil
}

// FindUserByID retrieves a user visible to the tenant in context.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	users, err := r.getUsers(ctx, `WHERE u.user_id = $1 AND u.tenant_id = $2 AND u.deleted_at IS NULL`, userID, tenantID)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &users[0], nil
}

// ListUsers retrieves the current tenant's users.
func (r *PgxUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return r.getUsers(ctx,
		`WHERE u.tenant_id = $1 AND u.deleted_at IS NULL ORDER BY u.created_at DESC LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
}

// FindUserForAuth retrieves a user by ID regardless of tenant. Used only by
// authentication and tenant resolution, which run before a tenant context
// exists.
func (r *PgxUserRepository) FindUserForAuth(ctx context.Context, userID string) (*domain.User, error) {
	users, err := r.getUsers(ctx, `WHERE u.user_id = $1 AND u.deleted_at IS NULL`, userID)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &users[0], nil
}

// FindUserByEmailForAuth retrieves a user by email regardless of tenant.
func (r *PgxUserRepository) FindUserByEmailForAuth(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.getUsers(ctx, `WHERE u.email = $1 AND u.deleted_at IS NULL`, email)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &users[0], nil
}

// UpdateUserDetails updates mutable user fields. The statement is doubly
// keyed on (user_id, tenant_id): even if the service-level ownership check
// were bypassed, the row of another tenant cannot be written.
func (r *PgxUserRepository) UpdateUserDetails(ctx context.Context, user domain.User) error {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return err
	}
	query := `
		UPDATE users
		SET name = $1, role = $2, last_updated_at = $3, last_updated_by = $4
		WHERE user_id = $5 AND tenant_id = $6 AND deleted_at IS NULL;
	`
	result, err := r.Pool.Exec(ctx, query,
		user.Name,
		user.Role,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
		user.UserID,
		tenantID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update user "+user.UserID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkUserDeleted soft-deletes a user of the current tenant.
func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedByUserID string) error {
	tenantID, err := r.tenantFromCtx(ctx)
	if err != nil {
		return err
	}
	query := `
		UPDATE users
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE user_id = $3 AND tenant_id = $4 AND deleted_at IS NULL;
	`
	result, err := r.Pool.Exec(ctx, query, time.Now(), deletedByUserID, userID, tenantID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark user deleted "+userID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// OwnerTenantID reads the stored tenant reference of a user without the row
// filter. Write paths use it to verify ownership independently of the
// read-side filter; the value never leaves the service layer.
func (r *PgxUserRepository) OwnerTenantID(ctx context.Context, userID string) (string, error) {
	var tenantID string
	err := r.Pool.QueryRow(ctx, `SELECT tenant_id FROM users WHERE user_id = $1`, userID).Scan(&tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", apperrors.NewAppError(500, "failed to read owner tenant for user "+userID, err)
	}
	return tenantID, nil
}
