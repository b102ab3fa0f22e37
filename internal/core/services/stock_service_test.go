package services_test

import (
	"context"
	"testing"

	"github.com/bizledger/bizledger_app/internal/apperrors"
	"github.com/bizledger/bizledger_app/internal/core/domain"
	portssvc "github.com/bizledger/bizledger_app/internal/core/ports/services"
	"github.com/bizledger/bizledger_app/internal/core/services"
	"github.com/bizledger/bizledger_app/internal/tenantctx"
	"github.com/stretchr/testify/suite"
)

type StockServiceTestSuite struct {
	suite.Suite
	mockReader *MockStockReader
	service    portssvc.StockSvcFacade
	ctx        context.Context
}

func (suite *StockServiceTestSuite) SetupTest() {
	suite.mockReader = new(MockStockReader)
	suite.service = services.NewStockService(suite.mockReader)
	suite.ctx = tenantctx.WithTenant(context.Background(), "a1b2c3d4e5f60718293a4b5c6d7e8f90")
}

func (suite *StockServiceTestSuite) TestListStockLevels_Success() {
	expected := []domain.StockLevel{
		{ItemSKU: "SKU-100", QuantityPurchased: 10, QuantitySold: 4, QuantityOnHand: 6},
		{ItemSKU: "SKU-200", QuantityPurchased: 3, QuantitySold: 0, QuantityOnHand: 3},
	}

	suite.mockReader.On("ListStockLevels", suite.ctx).Return(expected, nil).Once()

	levels, err := suite.service.ListStockLevels(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, levels)
	suite.mockReader.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestListStockLevels_Empty() {
	var empty []domain.StockLevel

	suite.mockReader.On("ListStockLevels", suite.ctx).Return(empty, nil).Once()

	levels, err := suite.service.ListStockLevels(suite.ctx)

	suite.Require().NoError(err)
	suite.NotNil(levels)
	suite.Empty(levels)
}

func (suite *StockServiceTestSuite) TestGetStockBySKU_NotFound() {
	suite.mockReader.On("FindStockBySKU", suite.ctx, "SKU-404").Return(nil, apperrors.ErrNotFound).Once()

	level, err := suite.service.GetStockBySKU(suite.ctx, "SKU-404")

	suite.Require().Error(err)
	suite.Nil(level)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestStockService(t *testing.T) {
	suite.Run(t, new(StockServiceTestSuite))
}
