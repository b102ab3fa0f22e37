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
	"github.com/bizledger/bizledger_app/internal/utils"
	"github.com/google/uuid"
)

// authServiceImpl implements the AuthSvcFacade interface
type authServiceImpl struct {
	BaseService
	userRepo  portsrepo.UserRepositoryWithTx
	tenantSvc portssvc.TenantSvcFacade
	jwtSecret string
	jwtExpiry time.Duration
	jwtIssuer string
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo portsrepo.UserRepositoryWithTx,
	tenantSvc portssvc.TenantSvcFacade,
	jwtSecret string,
	jwtExpiry time.Duration,
	jwtIssuer string,
) portssvc.AuthSvcFacade {
	return &authServiceImpl{
		userRepo:  userRepo,
		tenantSvc: tenantSvc,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		jwtIssuer: jwtIssuer,
	}
}

// Ensure authServiceImpl implements the AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*authServiceImpl)(nil)

// Signup bootstraps a new tenant together with its owner user and seeded
// defaults. It is the one write path that runs without a caller-derived
// tenant context: the tenant does not exist until this operation creates it.
func (s *authServiceImpl) Signup(ctx context.Context, req dto.SignupRequest) (*dto.SignupResponse, error) {
	// Reject duplicate owner emails before creating any tenant state.
	if _, err := s.userRepo.FindUserByEmailForAuth(ctx, req.OwnerEmail); err == nil {
		return nil, apperrors.NewConflictError("email " + req.OwnerEmail + " is already registered")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.OwnerPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash owner password")
		return nil, err
	}

	ownerUserID := uuid.NewString()

	tenant, err := s.tenantSvc.CreateTenant(ctx, dto.CreateTenantRequest{
		Name:         req.BusinessName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Plan:         req.Plan,
	}, ownerUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	owner := domain.User{
		UserID:       ownerUserID,
		TenantID:     tenant.TenantID,
		Email:        req.OwnerEmail,
		Name:         req.OwnerName,
		PasswordHash: passwordHash,
		Role:         domain.RoleOwner,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, owner); err != nil {
		s.LogError(ctx, err, "Failed to save owner user",
			slog.String("tenant_id", tenant.TenantID))
		return nil, err
	}

	s.LogInfo(ctx, "Tenant signup completed",
		slog.String("tenant_id", tenant.TenantID),
		slog.String("owner_user_id", ownerUserID))

	return &dto.SignupResponse{
		Tenant: dto.ToTenantResponse(tenant),
		Owner:  dto.ToUserResponse(&owner),
	}, nil
}

// Login verifies credentials, checks that the user's tenant is still usable
// and issues an access token. Credential and tenant failures both surface as
// ErrUnauthorized so the response does not reveal which check failed.
func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByEmailForAuth(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrUnauthorized
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	// A user whose tenant is deactivated or expired cannot obtain a token.
	if _, err := s.tenantSvc.ResolveTenantForUser(ctx, user.UserID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTenantInactive), errors.Is(err, apperrors.ErrTenantExpired):
			s.LogWarn(ctx, "Login rejected for unusable tenant",
				slog.String("user_id", user.UserID))
			return nil, apperrors.ErrUnauthorized
		default:
			return nil, err
		}
	}

	token, err := utils.GenerateJWT(user.UserID, s.jwtSecret, s.jwtExpiry, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("user_id", user.UserID))
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwtExpiry.Seconds()),
		User:        dto.ToUserResponse(user),
	}, nil
}
