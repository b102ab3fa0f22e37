package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bizledger/bizledger_app/internal/apperrors"
	"github.com/bizledger/bizledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/bizledger_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/bizledger_app/internal/core/ports/services"
	"github.com/bizledger/bizledger_app/internal/dto"
	"github.com/bizledger/bizledger_app/internal/tenantctx"
	"github.com/bizledger/bizledger_app/internal/utils"
)

// tenantIDByteLength is the entropy, in bytes, of a generated tenant
// identifier. 16 bytes hex-encode to a 32-character opaque string, enough
// that identifiers cannot be guessed or enumerated.
const tenantIDByteLength = 16

// tenantServiceImpl implements the TenantSvcFacade interface
type tenantServiceImpl struct {
	BaseService
	tenantRepo   portsrepo.TenantRepositoryWithTx
	userRepo     portsrepo.UserAuthReader
	userReader   portsrepo.UserReader
	currencyRepo portsrepo.CurrencyWriter
}

// NewTenantService creates a new tenant service.
func NewTenantService(
	tenantRepo portsrepo.TenantRepositoryWithTx,
	userRepo portsrepo.UserRepositoryWithTx,
	currencyRepo portsrepo.CurrencyRepositoryWithTx,
) portssvc.TenantSvcFacade {
	return &tenantServiceImpl{
		tenantRepo:   tenantRepo,
		userRepo:     userRepo,
		userReader:   userRepo,
		currencyRepo: currencyRepo,
	}
}

// Ensure tenantServiceImpl implements the TenantSvcFacade interface
var _ portssvc.TenantSvcFacade = (*tenantServiceImpl)(nil)

// ResolveTenantForUser follows the authenticated user's stored tenant
// reference and validates the tenant is usable. It never trusts any
// client-supplied tenant identifier.
func (s *tenantServiceImpl) ResolveTenantForUser(ctx context.Context, userID string) (*domain.Tenant, error) {
	user, err := s.userRepo.FindUserForAuth(ctx, userID)
	if err != nil {
		return nil, err
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, user.TenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// A user pointing at a missing tenant is a data integrity problem,
			// not a client error.
			s.LogError(ctx, apperrors.ErrTenantNotFound, "User references missing tenant",
				slog.String("user_id", userID),
				slog.String("tenant_id", user.TenantID))
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, err
	}

	if !tenant.IsActive {
		return nil, apperrors.ErrTenantInactive
	}
	if tenant.IsExpired(time.Now()) {
		return nil, apperrors.ErrTenantExpired
	}

	return tenant, nil
}

// CreateTenant generates a fresh unguessable identifier, persists the tenant
// and seeds its default reference data.
func (s *tenantServiceImpl) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error) {
	tenantID, err := utils.GenerateSecureRandomString(tenantIDByteLength)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate tenant identifier")
		return nil, err
	}

	plan := domain.PlanFree
	if req.Plan != "" {
		plan = domain.SubscriptionPlan(req.Plan)
	}

	now := time.Now()
	tenant := domain.Tenant{
		TenantID:     tenantID,
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		IsActive:     true,
		Plan:         plan,
		Version:      1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		s.LogError(ctx, err, "Failed to save tenant", slog.String("tenant_id", tenantID))
		return nil, err
	}

	if err := s.SeedDefaults(ctx, tenantID, creatorUserID); err != nil {
		s.LogError(ctx, err, "Failed to seed tenant defaults", slog.String("tenant_id", tenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Tenant created", slog.String("tenant_id", tenantID))
	return &tenant, nil
}

// SeedDefaults populates tenant-scoped default reference data. It runs as a
// system task: the tenant context is installed here from the given identifier
// rather than taken from the caller, since at bootstrap no request-scoped
// tenant exists yet. Idempotent: re-running for an already-seeded tenant is a
// no-op.
func (s *tenantServiceImpl) SeedDefaults(ctx context.Context, tenantID string, creatorUserID string) error {
	seedCtx := tenantctx.WithTenant(ctx, tenantID)

	now := time.Now()
	defaultCurrency := domain.Currency{
		TenantID:     tenantID,
		CurrencyCode: domain.DefaultCurrencyCode,
		Symbol:       domain.DefaultCurrencySymbol,
		Name:         domain.DefaultCurrencyName,
		IsDefault:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.EnsureCurrency(seedCtx, defaultCurrency); err != nil {
		return err
	}

	return nil
}

// GetTenant returns the tenant identified by the current tenant context.
func (s *tenantServiceImpl) GetTenant(ctx context.Context) (*domain.Tenant, error) {
	tenantID, err := tenantctx.MustTenantID(ctx)
	if err != nil {
		return nil, err
	}
	return s.tenantRepo.FindTenantByID(ctx, tenantID)
}

// UpdateTenantDetails updates display/contact fields of the current tenant.
func (s *tenantServiceImpl) UpdateTenantDetails(ctx context.Context, req dto.UpdateTenantRequest, updatedByUserID string) (*domain.Tenant, error) {
	tenant, err := s.GetTenant(ctx)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.ContactEmail != nil {
		tenant.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		tenant.ContactPhone = *req.ContactPhone
	}

	if err := s.tenantRepo.UpdateTenantDetails(ctx, tenant, updatedByUserID); err != nil {
		s.LogError(ctx, err, "Failed to update tenant details", slog.String("tenant_id", tenant.TenantID))
		return nil, err
	}
	tenant.Version++

	return tenant, nil
}

// DeactivateTenant soft-disables the current tenant. Only an owner of the
// tenant may do this; the tenant row itself is never deleted so the
// identifier can never be reassigned.
func (s *tenantServiceImpl) DeactivateTenant(ctx context.Context, requestingUserID string) error {
	requester, err := s.userReader.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return err
	}
	if requester.Role != domain.RoleOwner {
		return apperrors.NewForbiddenError("only the owner can deactivate the business account")
	}

	tenant, err := s.GetTenant(ctx)
	if err != nil {
		return err
	}

	if err := s.tenantRepo.UpdateTenantStatus(ctx, tenant, false, requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to deactivate tenant", slog.String("tenant_id", tenant.TenantID))
		return err
	}

	s.LogInfo(ctx, "Tenant deactivated", slog.String("tenant_id", tenant.TenantID))
	return nil
}
