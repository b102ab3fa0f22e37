package pgsql

import (
	"context"
	"errors"

	"github.com/bizledger/bizledger_app/internal/apperrors"
	"github.com/bizledger/bizledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/bizledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTenantRepository persists tenant registry rows. The tenants table is the
// registry the isolation key lives in, so its queries are keyed by explicit
// identifier rather than by the tenant context.
type PgxTenantRepository struct {
	BaseRepository
}

// newPgxTenantRepository creates a new repository for tenant data.
func newPgxTenantRepository(pool *pgxpool.Pool) portsrepo.TenantRepositoryWithTx {
	return &PgxTenantRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTenantRepository implements portsrepo.TenantRepositoryWithTx
var _ portsrepo.TenantRepositoryWithTx = (*PgxTenantRepository)(nil)

var FULL_TENANT_SELECT_QUERY = `
SELECT
	t.tenant_id, t.name, t.contact_email, t.contact_phone, t.is_active, t.expires_at, t.plan,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by, t.version
FROM tenants t
`

func (r *PgxTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	query := `
		INSERT INTO tenants (
			tenant_id, name, contact_email, contact_phone, is_active, expires_at, plan,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		tenant.TenantID,
		tenant.Name,
		tenant.ContactEmail,
		tenant.ContactPhone,
		tenant.IsActive,
		tenant.ExpiresAt,
		tenant.Plan,
		tenant.CreatedAt,
		tenant.CreatedBy,
		tenant.LastUpdatedAt,
		tenant.LastUpdatedBy,
		1,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("tenant ID " + tenant.TenantID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save tenant "+tenant.TenantID, err)
	}
	return nil
}

func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	query := FULL_TENANT_SELECT_QUERY + `WHERE t.tenant_id = $1`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tenant", err)
	}
	defer rows.Close()

	tenant, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domain.Tenant])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to collect tenant row", err)
	}
	return &tenant, nil
}

// UpdateTenantDetails updates display and contact fields. The tenant_id column
// is never written after creation.
func (r *PgxTenantRepository) UpdateTenantDetails(ctx context.Context, tenant *domain.Tenant, updatedByUserID string) error {
	query := `
		UPDATE tenants
		SET name = $1, contact_email = $2, contact_phone = $3,
			last_updated_at = NOW(), last_updated_by = $4, version = version + 1
		WHERE tenant_id = $5 AND version = $6;
	`
	result, err := r.Pool.Exec(ctx, query,
		tenant.Name,
		tenant.ContactEmail,
		tenant.ContactPhone,
		updatedByUserID,
		tenant.TenantID,
		tenant.Version,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update tenant "+tenant.TenantID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("optimistic locking failed: tenant " + tenant.TenantID)
	}
	return nil
}

// UpdateTenantStatus flips the is_active soft-disable flag.
func (r *PgxTenantRepository) UpdateTenantStatus(ctx context.Context, tenant *domain.Tenant, isActive bool, updatedByUserID string) error {
	query := `
		UPDATE tenants
		SET is_active = $1, last_updated_at = NOW(), last_updated_by = $2, version = version + 1
		WHERE tenant_id = $3 AND version = $4;
	`
	result, err := r.Pool.Exec(ctx, query, isActive, updatedByUserID, tenant.TenantID, tenant.Version)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update tenant status "+tenant.TenantID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("optimistic locking failed: tenant " + tenant.TenantID)
	}
	return nil
}
