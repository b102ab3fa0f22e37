package services_test

import (
	"context"
	"testing"

	"github.com/bizledger/bizledger_app/internal/apperrors"
	"github.com/bizledger/bizledger_app/internal/core/domain"
	portssvc "github.com/bizledger/bizledger_app/internal/core/ports/services"
	"github.com/bizledger/bizledger_app/internal/core/services"
	"github.com/bizledger/bizledger_app/internal/dto"
	"github.com/bizledger/bizledger_app/internal/tenantctx"
	"github.com/bizledger/bizledger_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	tenantID string
	ctx      context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
	suite.tenantID = "a1b2c3d4e5f60718293a4b5c6d7e8f90"
	suite.ctx = tenantctx.WithTenant(context.Background(), suite.tenantID)
}

func (suite *UserServiceTestSuite) TestCreateUser_StampsTenantAndHashesPassword() {
	creatorUserID := uuid.NewString()
	req := dto.CreateUserRequest{
		Email:    "staff@example.com",
		Name:     "Staff Member",
		Password: "correct-horse-battery",
	}

	suite.mockRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.TenantID == suite.tenantID &&
			u.Role == domain.RoleStaff &&
			u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(suite.ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal(suite.tenantID, user.TenantID)
	suite.Equal(domain.RoleStaff, user.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_NoTenantContextFailsClosed() {
	req := dto.CreateUserRequest{Email: "staff@example.com", Name: "Staff", Password: "password123"}

	user, err := suite.service.CreateUser(context.Background(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNoTenantContext)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_CrossTenantDenied() {
	userID := uuid.NewString()
	newName := "Renamed"

	suite.mockRepo.On("OwnerTenantID", suite.ctx, userID).
		Return("some-other-tenant-id-0000000000ff", nil).Once()

	updated, err := suite.service.UpdateUser(suite.ctx, userID, dto.UpdateUserRequest{Name: &newName}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrCrossTenantAccess)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUserDetails", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_Success() {
	userID := uuid.NewString()
	updaterID := uuid.NewString()
	newName := "Renamed"
	existing := &domain.User{UserID: userID, TenantID: suite.tenantID, Name: "Original", Role: domain.RoleStaff}

	suite.mockRepo.On("OwnerTenantID", suite.ctx, userID).Return(suite.tenantID, nil).Once()
	suite.mockRepo.On("FindUserByID", suite.ctx, userID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateUserDetails", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Name == newName && u.LastUpdatedBy == updaterID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateUser(suite.ctx, userID, dto.UpdateUserRequest{Name: &newName}, updaterID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_SelfDeleteRejected() {
	userID := uuid.NewString()

	err := suite.service.DeleteUser(suite.ctx, userID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_CrossTenantDenied() {
	userID := uuid.NewString()

	suite.mockRepo.On("OwnerTenantID", suite.ctx, userID).
		Return("some-other-tenant-id-0000000000ff", nil).Once()

	err := suite.service.DeleteUser(suite.ctx, userID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCrossTenantAccess)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkUserDeleted", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	userID := uuid.NewString()
	deleterID := uuid.NewString()

	suite.mockRepo.On("OwnerTenantID", suite.ctx, userID).Return(suite.tenantID, nil).Once()
	suite.mockRepo.On("MarkUserDeleted", suite.ctx, userID, deleterID).Return(nil).Once()

	err := suite.service.DeleteUser(suite.ctx, userID, deleterID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
