package services

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/core/domain"
	"github.com/bizledger/bizledger_app/internal/dto"
)

// UserReaderSvc defines read operations for users of the caller's tenant.
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for users of the caller's tenant.
type UserWriterSvc interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error
}

// UserSvcFacade combines all user service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
