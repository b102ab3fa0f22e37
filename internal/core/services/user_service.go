package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/bizledger/bizledger_app/internal/apperrors"
	"github.com/bizledger/bizledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/bizledger_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/bizledger_app/internal/core/ports/services"
	"github.com/bizledger/bizledger_app/internal/dto"
	"github.com/bizledger/bizledger_app/internal/tenantctx"
	"github.com/bizledger/bizledger_app/internal/utils"
	"github.com/google/uuid"
)

// userServiceImpl implements the UserSvcFacade interface
type userServiceImpl struct {
	BaseService
	userRepo portsrepo.UserRepositoryWithTx
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryWithTx) portssvc.UserSvcFacade {
	return &userServiceImpl{userRepo: userRepo}
}

// Ensure userServiceImpl implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userServiceImpl)(nil)

func (s *userServiceImpl) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userServiceImpl) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// CreateUser adds a staff member to the caller's tenant. The tenant reference
// is stamped here from the verified context; it is not a client input.
func (s *userServiceImpl) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	tenantID, err := tenantctx.MustTenantID(ctx)
	if err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	role := domain.RoleStaff
	if req.Role != "" {
		role = domain.UserRole(req.Role)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		TenantID:     tenantID,
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", req.Email))
		return nil, err
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error) {
	if err := s.VerifyTenantOwnership(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = domain.UserRole(*req.Role)
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = updaterUserID

	if err := s.userRepo.UpdateUserDetails(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}

	return user, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, userID string, deleterUserID string) error {
	if userID == deleterUserID {
		return apperrors.NewValidationFailedError("users cannot delete themselves")
	}

	if err := s.VerifyTenantOwnership(ctx, s.userRepo, userID); err != nil {
		return err
	}

	if err := s.userRepo.MarkUserDeleted(ctx, userID, deleterUserID); err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return err
	}

	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}
