package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bizledger/bizledger_app/internal/apperrors"
	"github.com/bizledger/bizledger_app/internal/core/domain"
	portssvc "github.com/bizledger/bizledger_app/internal/core/ports/services"
	"github.com/bizledger/bizledger_app/internal/core/services"
	"github.com/bizledger/bizledger_app/internal/dto"
	"github.com/bizledger/bizledger_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testJWTSecret = "test-secret-key-for-auth-service"
	testJWTIssuer = "bizledger-test"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo  *MockUserRepository
	mockTenantSvc *MockTenantService
	service       portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockTenantSvc = new(MockTenantService)
	suite.service = services.NewAuthService(suite.mockUserRepo, suite.mockTenantSvc, testJWTSecret, time.Hour, testJWTIssuer)
}

func (suite *AuthServiceTestSuite) TestSignup_CreatesTenantAndOwner() {
	ctx := context.Background()
	req := dto.SignupRequest{
		BusinessName:  "Corner Shop",
		ContactEmail:  "shop@example.com",
		OwnerName:     "Pat Owner",
		OwnerEmail:    "pat@example.com",
		OwnerPassword: "correct-horse-battery",
	}
	tenant := &domain.Tenant{TenantID: "a1b2c3d4e5f60718293a4b5c6d7e8f90", Name: req.BusinessName, IsActive: true}

	suite.mockUserRepo.On("FindUserByEmailForAuth", ctx, req.OwnerEmail).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTenantSvc.On("CreateTenant", ctx, mock.MatchedBy(func(r dto.CreateTenantRequest) bool {
		return r.Name == req.BusinessName && r.ContactEmail == req.ContactEmail
	}), mock.AnythingOfType("string")).Return(tenant, nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.TenantID == tenant.TenantID &&
			u.Role == domain.RoleOwner &&
			u.Email == req.OwnerEmail &&
			utils.CheckPasswordHash(req.OwnerPassword, u.PasswordHash)
	})).Return(nil).Once()

	resp, err := suite.service.Signup(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(tenant.TenantID, resp.Tenant.TenantID)
	suite.Equal("OWNER", resp.Owner.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockTenantSvc.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestSignup_DuplicateEmailRejected() {
	ctx := context.Background()
	req := dto.SignupRequest{
		BusinessName:  "Corner Shop",
		ContactEmail:  "shop@example.com",
		OwnerName:     "Pat Owner",
		OwnerEmail:    "taken@example.com",
		OwnerPassword: "correct-horse-battery",
	}

	suite.mockUserRepo.On("FindUserByEmailForAuth", ctx, req.OwnerEmail).
		Return(&domain.User{Email: req.OwnerEmail}, nil).Once()

	resp, err := suite.service.Signup(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockTenantSvc.AssertNotCalled(suite.T(), "CreateTenant", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	password := "correct-horse-battery"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	user := &domain.User{
		UserID:       uuid.NewString(),
		TenantID:     "a1b2c3d4e5f60718293a4b5c6d7e8f90",
		Email:        "pat@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}

	suite.mockUserRepo.On("FindUserByEmailForAuth", ctx, user.Email).Return(user, nil).Once()
	suite.mockTenantSvc.On("ResolveTenantForUser", ctx, user.UserID).
		Return(&domain.Tenant{TenantID: user.TenantID, IsActive: true}, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Email: user.Email, Password: password})

	suite.Require().NoError(err)
	suite.NotEmpty(resp.AccessToken)
	suite.Equal("Bearer", resp.TokenType)
	suite.Equal(int64(3600), resp.ExpiresIn)

	claims, err := utils.ParseAndValidateJWT(resp.AccessToken, testJWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
	suite.Equal(testJWTIssuer, claims.Issuer)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("the-real-password")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "pat@example.com", PasswordHash: hash, IsActive: true}

	suite.mockUserRepo.On("FindUserByEmailForAuth", ctx, user.Email).Return(user, nil).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Email: user.Email, Password: "wrong"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmailForAuth", ctx, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_InactiveTenantRejected() {
	ctx := context.Background()
	password := "correct-horse-battery"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "pat@example.com", PasswordHash: hash, IsActive: true}

	suite.mockUserRepo.On("FindUserByEmailForAuth", ctx, user.Email).Return(user, nil).Once()
	suite.mockTenantSvc.On("ResolveTenantForUser", ctx, user.UserID).
		Return(nil, apperrors.ErrTenantInactive).Once()

	resp, err := suite.service.Login(ctx, dto.LoginRequest{Email: user.Email, Password: password})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
