package services_test

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/core/domain"
	"github.com/bizledger/bizledger_app/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock transaction manager shared by all repository mocks ---

type mockTxManager struct {
	mock.Mock
}

func (m *mockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *mockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *mockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock TenantRepository ---

type MockTenantRepository struct {
	mockTxManager
}

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) UpdateTenantDetails(ctx context.Context, tenant *domain.Tenant, updatedByUserID string) error {
	args := m.Called(ctx, tenant, updatedByUserID)
	return args.Error(0)
}

func (m *MockTenantRepository) UpdateTenantStatus(ctx context.Context, tenant *domain.Tenant, isActive bool, updatedByUserID string) error {
	args := m.Called(ctx, tenant, isActive, updatedByUserID)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mockTxManager
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserForAuth(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmailForAuth(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUserDetails(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedByUserID string) error {
	args := m.Called(ctx, userID, deletedByUserID)
	return args.Error(0)
}

func (m *MockUserRepository) OwnerTenantID(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

// --- Mock CurrencyRepository ---

type MockCurrencyRepository struct {
	mockTxManager
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) EnsureCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock PurchaseRepository ---

type MockPurchaseRepository struct {
	mockTxManager
}

func (m *MockPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListPurchases(ctx context.Context, limit, offset int) ([]domain.Purchase, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) UpdatePurchase(ctx context.Context, purchase domain.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string) error {
	args := m.Called(ctx, purchaseID)
	return args.Error(0)
}

func (m *MockPurchaseRepository) OwnerTenantID(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

// --- Mock StockReader ---

type MockStockReader struct {
	mock.Mock
}

func (m *MockStockReader) ListStockLevels(ctx context.Context) ([]domain.StockLevel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockLevel), args.Error(1)
}

func (m *MockStockReader) FindStockBySKU(ctx context.Context, itemSKU string) (*domain.StockLevel, error) {
	args := m.Called(ctx, itemSKU)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockLevel), args.Error(1)
}

// --- Mock TenantSvcFacade (for the auth service tests) ---

type MockTenantService struct {
	mock.Mock
}

func (m *MockTenantService) ResolveTenantForUser(ctx context.Context, userID string) (*domain.Tenant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) SeedDefaults(ctx context.Context, tenantID string, creatorUserID string) error {
	args := m.Called(ctx, tenantID, creatorUserID)
	return args.Error(0)
}

func (m *MockTenantService) GetTenant(ctx context.Context) (*domain.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) UpdateTenantDetails(ctx context.Context, req dto.UpdateTenantRequest, updatedByUserID string) (*domain.Tenant, error) {
	args := m.Called(ctx, req, updatedByUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) DeactivateTenant(ctx context.Context, requestingUserID string) error {
	args := m.Called(ctx, requestingUserID)
	return args.Error(0)
}
