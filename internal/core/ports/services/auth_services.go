package services

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/dto"
)

// AuthSvcFacade defines authentication and tenant bootstrap operations.
type AuthSvcFacade interface {
	// Signup creates a new tenant with its owner user and seeded defaults.
	// This is a system task: it runs without a caller-derived tenant context.
	Signup(ctx context.Context, req dto.SignupRequest) (*dto.SignupResponse, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
