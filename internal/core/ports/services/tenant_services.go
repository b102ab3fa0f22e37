package services

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/core/domain"
	"github.com/bizledger/bizledger_app/internal/dto"
)

// TenantResolver resolves the tenant for an authenticated principal. It is the
// contract the tenant resolution middleware depends on: it must return an
// error (never an empty result) when no valid, active, unexpired tenant can
// be established for the user.
type TenantResolver interface {
	// ResolveTenantForUser follows the user's stored tenant reference and
	// validates the tenant is usable. Possible errors: ErrTenantNotFound,
	// ErrTenantInactive, ErrTenantExpired.
	ResolveTenantForUser(ctx context.Context, userID string) (*domain.Tenant, error)
}

// TenantBootstrapper creates tenants and their default reference data.
type TenantBootstrapper interface {
	// CreateTenant generates a fresh unguessable identifier, persists the
	// tenant and seeds its defaults.
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error)

	// SeedDefaults populates tenant-scoped default reference data. Idempotent:
	// re-running for an already-seeded tenant is a no-op.
	SeedDefaults(ctx context.Context, tenantID string, creatorUserID string) error
}

// TenantManager exposes self-service operations on the caller's own tenant.
type TenantManager interface {
	// GetTenant returns the tenant identified by the current tenant context.
	GetTenant(ctx context.Context) (*domain.Tenant, error)

	// UpdateTenantDetails updates display/contact fields of the current tenant.
	UpdateTenantDetails(ctx context.Context, req dto.UpdateTenantRequest, updatedByUserID string) (*domain.Tenant, error)

	// DeactivateTenant soft-disables the current tenant. Owner-only.
	DeactivateTenant(ctx context.Context, requestingUserID string) error
}

// TenantSvcFacade combines all tenant service interfaces.
type TenantSvcFacade interface {
	TenantResolver
	TenantBootstrapper
	TenantManager
}
