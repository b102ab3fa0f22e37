package repositories

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/core/domain"
)

// TenantReader defines read operations for tenant records. The tenants table
// itself is not tenant-scoped; it is the registry the isolation key lives in.
type TenantReader interface {
	// FindTenantByID retrieves a tenant by its opaque identifier.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
}

// TenantWriter defines write operations for tenant records.
type TenantWriter interface {
	// SaveTenant persists a new tenant.
	SaveTenant(ctx context.Context, tenant domain.Tenant) error

	// UpdateTenantDetails updates display and contact fields. The tenant
	// identifier is immutable and never part of the update.
	UpdateTenantDetails(ctx context.Context, tenant *domain.Tenant, updatedByUserID string) error

	// UpdateTenantStatus flips the is_active soft-disable flag.
	UpdateTenantStatus(ctx context.Context, tenant *domain.Tenant, isActive bool, updatedByUserID string) error
}

// TenantRepositoryFacade combines all tenant repository interfaces.
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
}

// TenantRepositoryWithTx extends TenantRepositoryFacade with transaction capabilities.
type TenantRepositoryWithTx interface {
	TenantRepositoryFacade
	TransactionManager
}
