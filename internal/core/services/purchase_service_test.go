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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PurchaseServiceTestSuite struct {
	suite.Suite
	mockRepo         *MockPurchaseRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.PurchaseSvcFacade
	tenantID         string
	ctx              context.Context
}

func (suite *PurchaseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPurchaseRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewPurchaseService(suite.mockRepo, suite.mockCurrencyRepo)
	suite.tenantID = "a1b2c3d4e5f60718293a4b5c6d7e8f90"
	suite.ctx = tenantctx.WithTenant(context.Background(), suite.tenantID)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_StampsTenantAndComputesTotal() {
	creatorUserID := uuid.NewString()
	req := dto.CreatePurchaseRequest{
		SupplierName: "Acme Wholesale",
		ItemSKU:      "SKU-100",
		ItemName:     "Widget",
		Quantity:     4,
		UnitCost:     decimal.NewFromFloat(2.50),
		CurrencyCode: "USD",
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", suite.ctx, "USD").
		Return(&domain.Currency{CurrencyCode: "USD"}, nil).Once()
	suite.mockRepo.On("SavePurchase", suite.ctx, mock.MatchedBy(func(p domain.Purchase) bool {
		return p.TenantID == suite.tenantID &&
			p.Total.Equal(decimal.NewFromInt(10)) &&
			p.CreatedBy == creatorUserID
	})).Return(nil).Once()

	purchase, err := suite.service.CreatePurchase(suite.ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal(suite.tenantID, purchase.TenantID)
	suite.True(purchase.Total.Equal(decimal.NewFromInt(10)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_NoTenantContextFailsClosed() {
	req := dto.CreatePurchaseRequest{
		SupplierName: "Acme Wholesale",
		ItemSKU:      "SKU-100",
		ItemName:     "Widget",
		Quantity:     1,
		UnitCost:     decimal.NewFromInt(5),
		CurrencyCode: "USD",
	}

	purchase, err := suite.service.CreatePurchase(context.Background(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrNoTenantContext)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestCreatePurchase_UnknownCurrencyRejected() {
	req := dto.CreatePurchaseRequest{
		SupplierName: "Acme Wholesale",
		ItemSKU:      "SKU-100",
		ItemName:     "Widget",
		Quantity:     1,
		UnitCost:     decimal.NewFromInt(5),
		CurrencyCode: "XXX",
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", suite.ctx, "XXX").
		Return(nil, apperrors.ErrNotFound).Once()

	purchase, err := suite.service.CreatePurchase(suite.ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(purchase)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestUpdatePurchase_CrossTenantDenied() {
	purchaseID := uuid.NewString()
	newName := "Widget v2"

	suite.mockRepo.On("OwnerTenantID", suite.ctx, purchaseID).
		Return("some-other-tenant-id-0000000000ff", nil).Once()

	updated, err := suite.service.UpdatePurchase(suite.ctx, purchaseID, dto.UpdatePurchaseRequest{ItemName: &newName}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrCrossTenantAccess)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdatePurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestUpdatePurchase_RecomputesTotal() {
	purchaseID := uuid.NewString()
	updaterID := uuid.NewString()
	newQuantity := int64(10)
	existing := &domain.Purchase{
		PurchaseID:   purchaseID,
		TenantID:     suite.tenantID,
		Quantity:     4,
		UnitCost:     decimal.NewFromInt(3),
		Total:        decimal.NewFromInt(12),
		CurrencyCode: "USD",
	}

	suite.mockRepo.On("OwnerTenantID", suite.ctx, purchaseID).Return(suite.tenantID, nil).Once()
	suite.mockRepo.On("FindPurchaseByID", suite.ctx, purchaseID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdatePurchase", suite.ctx, mock.MatchedBy(func(p domain.Purchase) bool {
		return p.Quantity == 10 && p.Total.Equal(decimal.NewFromInt(30)) && p.LastUpdatedBy == updaterID
	})).Return(nil).Once()

	updated, err := suite.service.UpdatePurchase(suite.ctx, purchaseID, dto.UpdatePurchaseRequest{Quantity: &newQuantity}, updaterID)

	suite.Require().NoError(err)
	suite.True(updated.Total.Equal(decimal.NewFromInt(30)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestUpdatePurchase_NotFound() {
	purchaseID := uuid.NewString()

	suite.mockRepo.On("OwnerTenantID", suite.ctx, purchaseID).Return("", apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdatePurchase(suite.ctx, purchaseID, dto.UpdatePurchaseRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PurchaseServiceTestSuite) TestDeletePurchase_CrossTenantDenied() {
	purchaseID := uuid.NewString()

	suite.mockRepo.On("OwnerTenantID", suite.ctx, purchaseID).
		Return("some-other-tenant-id-0000000000ff", nil).Once()

	err := suite.service.DeletePurchase(suite.ctx, purchaseID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCrossTenantAccess)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeletePurchase", mock.Anything, mock.Anything)
}

func (suite *PurchaseServiceTestSuite) TestDeletePurchase_Success() {
	purchaseID := uuid.NewString()

	suite.mockRepo.On("OwnerTenantID", suite.ctx, purchaseID).Return(suite.tenantID, nil).Once()
	suite.mockRepo.On("DeletePurchase", suite.ctx, purchaseID).Return(nil).Once()

	err := suite.service.DeletePurchase(suite.ctx, purchaseID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PurchaseServiceTestSuite) TestListPurchases_Empty() {
	var empty []domain.Purchase

	suite.mockRepo.On("ListPurchases", suite.ctx, 20, 0).Return(empty, nil).Once()

	purchases, err := suite.service.ListPurchases(suite.ctx, 20, 0)

	suite.Require().NoError(err)
	suite.NotNil(purchases)
	suite.Empty(purchases)
}

func TestPurchaseService(t *testing.T) {
	suite.Run(t, new(PurchaseServiceTestSuite))
}
