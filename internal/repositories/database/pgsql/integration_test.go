package pgsql_test

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/bizledger/bizledger_app/internal/apperrors"
	"github.com/bizledger/bizledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/bizledger_app/internal/core/ports/repositories"
	"github.com/bizledger/bizledger_app/internal/repositories/database/pgsql"
	"github.com/bizledger/bizledger_app/internal/tenantctx"
	"github.com/bizledger/bizledger_app/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// migrationsURL returns the file:// source URL of the migrations directory.
func migrationsURL() string {
	_, filename, _, _ := runtime.Caller(0)
	return "file://" + filepath.Join(filepath.Dir(filename), "..", "..", "..", "..", "migrations")
}

// setupTestRepos spins up a Postgres container, runs migrations, and returns
// the wired repository provider.
func setupTestRepos(t *testing.T) *portsrepo.RepositoryProvider {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("bizledger_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(migrationsURL(), connStr))

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	return pgsql.NewRepositoryProvider(pool)
}

// seedTenant persists a tenant plus its default currency and returns a
// context scoped to it.
func seedTenant(t *testing.T, repos *portsrepo.RepositoryProvider, tenantID string) context.Context {
	t.Helper()
	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     "seed-user",
		LastUpdatedAt: now,
		LastUpdatedBy: "seed-user",
	}

	err := repos.TenantRepo.SaveTenant(context.Background(), domain.Tenant{
		TenantID:     tenantID,
		Name:         "Shop " + tenantID[:8],
		ContactEmail: tenantID[:8] + "@example.com",
		IsActive:     true,
		Plan:         domain.PlanFree,
		Version:      1,
		AuditFields:  audit,
	})
	require.NoError(t, err)

	ctx := tenantctx.WithTenant(context.Background(), tenantID)
	err = repos.CurrencyRepo.EnsureCurrency(ctx, domain.Currency{
		TenantID:     tenantID,
		CurrencyCode: "USD",
		Symbol:       "$",
		Name:         "US Dollar",
		IsDefault:    true,
		AuditFields:  audit,
	})
	require.NoError(t, err)

	return ctx
}

// newPurchase builds a valid purchase for the given tenant.
func newPurchase(tenantID, sku string, qty int64) domain.Purchase {
	now := time.Now().UTC()
	unitCost := decimal.NewFromInt(5)
	return domain.Purchase{
		PurchaseID:   uuid.NewString(),
		TenantID:     tenantID,
		SupplierName: "Acme Supplies",
		ItemSKU:      sku,
		ItemName:     "Item " + sku,
		Quantity:     qty,
		UnitCost:     unitCost,
		Total:        unitCost.Mul(decimal.NewFromInt(qty)),
		CurrencyCode: "USD",
		PurchasedAt:  now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "seed-user",
			LastUpdatedAt: now,
			LastUpdatedBy: "seed-user",
		},
	}
}

// newSale builds a valid sale for the given tenant.
func newSale(tenantID, sku string, qty int64) domain.Sale {
	now := time.Now().UTC()
	unitPrice := decimal.NewFromInt(9)
	return domain.Sale{
		SaleID:       uuid.NewString(),
		TenantID:     tenantID,
		CustomerName: "Walk-in",
		ItemSKU:      sku,
		ItemName:     "Item " + sku,
		Quantity:     qty,
		UnitPrice:    unitPrice,
		Total:        unitPrice.Mul(decimal.NewFromInt(qty)),
		CurrencyCode: "USD",
		SoldAt:       now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "seed-user",
			LastUpdatedAt: now,
			LastUpdatedBy: "seed-user",
		},
	}
}

func freshTenantID() string {
	return uuid.NewString()[:8] + uuid.NewString()[:8] + uuid.NewString()[:8] + uuid.NewString()[:8]
}

func TestTenantReadIsolation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	repos := setupTestRepos(t)

	tenantA := freshTenantID()
	tenantB := freshTenantID()
	ctxA := seedTenant(t, repos, tenantA)
	ctxB := seedTenant(t, repos, tenantB)

	purchaseA := newPurchase(tenantA, "SKU-A", 3)
	purchaseB := newPurchase(tenantB, "SKU-B", 7)
	require.NoError(t, repos.PurchaseRepo.SavePurchase(ctxA, purchaseA))
	require.NoError(t, repos.PurchaseRepo.SavePurchase(ctxB, purchaseB))

	// Each tenant lists only its own rows.
	listA, err := repos.PurchaseRepo.ListPurchases(ctxA, 50, 0)
	require.NoError(t, err)
	require.Len(t, listA, 1)
	assert.Equal(t, purchaseA.PurchaseID, listA[0].PurchaseID)

	listB, err := repos.PurchaseRepo.ListPurchases(ctxB, 50, 0)
	require.NoError(t, err)
	require.Len(t, listB, 1)
	assert.Equal(t, purchaseB.PurchaseID, listB[0].PurchaseID)

	// A lookup of another tenant's record by its real ID behaves exactly like
	// a lookup of a record that does not exist.
	_, err = repos.PurchaseRepo.FindPurchaseByID(ctxA, purchaseB.PurchaseID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repos.PurchaseRepo.FindPurchaseByID(ctxA, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCrossTenantWriteIsDenied(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	repos := setupTestRepos(t)

	tenantA := freshTenantID()
	tenantB := freshTenantID()
	ctxA := seedTenant(t, repos, tenantA)
	ctxB := seedTenant(t, repos, tenantB)

	purchaseB := newPurchase(tenantB, "SKU-B", 2)
	require.NoError(t, repos.PurchaseRepo.SavePurchase(ctxB, purchaseB))

	// The ownership probe sees the true owner regardless of the caller's tenant.
	owner, err := repos.PurchaseRepo.OwnerTenantID(ctxA, purchaseB.PurchaseID)
	require.NoError(t, err)
	assert.Equal(t, tenantB, owner)

	// An update keyed on the caller's tenant touches zero rows.
	mutated := purchaseB
	mutated.SupplierName = "Hijacked"
	mutated.TenantID = tenantA
	err = repos.PurchaseRepo.UpdatePurchase(ctxA, mutated)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// So does a delete.
	err = repos.PurchaseRepo.DeletePurchase(ctxA, purchaseB.PurchaseID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// The record is unchanged for its owner.
	got, err := repos.PurchaseRepo.FindPurchaseByID(ctxB, purchaseB.PurchaseID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Supplies", got.SupplierName)
}

func TestQueriesFailClosedWithoutTenantContext(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	repos := setupTestRepos(t)

	tenantA := freshTenantID()
	ctxA := seedTenant(t, repos, tenantA)
	require.NoError(t, repos.PurchaseRepo.SavePurchase(ctxA, newPurchase(tenantA, "SKU-A", 1)))

	bare := context.Background()

	_, err := repos.PurchaseRepo.ListPurchases(bare, 50, 0)
	assert.ErrorIs(t, err, apperrors.ErrNoTenantContext)

	_, err = repos.PurchaseRepo.FindPurchaseByID(bare, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNoTenantContext)

	_, err = repos.CurrencyRepo.ListCurrencies(bare)
	assert.ErrorIs(t, err, apperrors.ErrNoTenantContext)

	_, err = repos.StockRepo.ListStockLevels(bare)
	assert.ErrorIs(t, err, apperrors.ErrNoTenantContext)
}

func TestCurrencySeedingIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	repos := setupTestRepos(t)

	tenantA := freshTenantID()
	ctxA := seedTenant(t, repos, tenantA)

	// seedTenant already ensured USD once; ensure it again.
	now := time.Now().UTC()
	err := repos.CurrencyRepo.EnsureCurrency(ctxA, domain.Currency{
		TenantID:     tenantA,
		CurrencyCode: "USD",
		Symbol:       "$",
		Name:         "US Dollar",
		IsDefault:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "seed-user",
			LastUpdatedAt: now,
			LastUpdatedBy: "seed-user",
		},
	})
	require.NoError(t, err)

	currencies, err := repos.CurrencyRepo.ListCurrencies(ctxA)
	require.NoError(t, err)
	assert.Len(t, currencies, 1)
}

func TestStockViewIsTenantScoped(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	repos := setupTestRepos(t)

	tenantA := freshTenantID()
	tenantB := freshTenantID()
	ctxA := seedTenant(t, repos, tenantA)
	ctxB := seedTenant(t, repos, tenantB)

	// Tenant A: bought 10, sold 4 of the same SKU. Tenant B trades the same
	// SKU name with different quantities, which must not bleed into A's view.
	require.NoError(t, repos.PurchaseRepo.SavePurchase(ctxA, newPurchase(tenantA, "SKU-X", 10)))
	require.NoError(t, repos.SaleRepo.SaveSale(ctxA, newSale(tenantA, "SKU-X", 4)))
	require.NoError(t, repos.PurchaseRepo.SavePurchase(ctxB, newPurchase(tenantB, "SKU-X", 100)))

	levels, err := repos.StockRepo.ListStockLevels(ctxA)
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, "SKU-X", levels[0].ItemSKU)
	assert.Equal(t, int64(10), levels[0].QuantityPurchased)
	assert.Equal(t, int64(4), levels[0].QuantitySold)
	assert.Equal(t, int64(6), levels[0].QuantityOnHand)

	level, err := repos.StockRepo.FindStockBySKU(ctxB, "SKU-X")
	require.NoError(t, err)
	assert.Equal(t, int64(100), level.QuantityOnHand)

	_, err = repos.StockRepo.FindStockBySKU(ctxA, "SKU-MISSING")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
