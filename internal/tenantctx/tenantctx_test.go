package tenantctx_test

import (
	"context"
	"sync"
	"testing"

	"github.com/bizledger/bizledger_app/internal/apperrors"
	"github.com/bizledger/bizledger_app/internal/tenantctx"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantID_Unset(t *testing.T) {
	ctx := context.Background()

	tenantID, ok := tenantctx.TenantID(ctx)
	assert.False(t, ok)
	assert.Empty(t, tenantID)
}

func TestMustTenantID_FailsClosedWhenUnset(t *testing.T) {
	ctx := context.Background()

	tenantID, err := tenantctx.MustTenantID(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNoTenantContext)
	assert.Empty(t, tenantID)
}

func TestWithTenant_SetAndGet(t *testing.T) {
	expected := uuid.NewString()
	ctx := tenantctx.WithTenant(context.Background(), expected)

	tenantID, ok := tenantctx.TenantID(ctx)
	require.True(t, ok)
	assert.Equal(t, expected, tenantID)

	tenantID, err := tenantctx.MustTenantID(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, tenantID)
}

func TestWithTenant_EmptyValueStillFailsClosed(t *testing.T) {
	ctx := tenantctx.WithTenant(context.Background(), "")

	_, ok := tenantctx.TenantID(ctx)
	assert.False(t, ok)

	_, err := tenantctx.MustTenantID(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNoTenantContext)
}

func TestWithTenant_Overwrite(t *testing.T) {
	first := uuid.NewString()
	second := uuid.NewString()

	ctx := tenantctx.WithTenant(context.Background(), first)
	ctx = tenantctx.WithTenant(ctx, second)

	tenantID, ok := tenantctx.TenantID(ctx)
	require.True(t, ok)
	assert.Equal(t, second, tenantID)
}

func TestWithTenant_ParentUnaffected(t *testing.T) {
	parent := context.Background()
	child := tenantctx.WithTenant(parent, uuid.NewString())

	_, ok := tenantctx.TenantID(parent)
	assert.False(t, ok, "parent context must not observe the child's tenant")

	_, ok = tenantctx.TenantID(child)
	assert.True(t, ok)
}

// TestWithTenant_ConcurrentRequestsIsolated interleaves many simulated
// requests for different tenants and asserts each call chain only ever sees
// its own identifier. Run with -race.
func TestWithTenant_ConcurrentRequestsIsolated(t *testing.T) {
	const requests = 64
	const readsPerRequest = 100

	var wg sync.WaitGroup
	wg.Add(requests)

	for i := 0; i < requests; i++ {
		go func() {
			defer wg.Done()
			want := uuid.NewString()
			ctx := tenantctx.WithTenant(context.Background(), want)

			for j := 0; j < readsPerRequest; j++ {
				got, err := tenantctx.MustTenantID(ctx)
				assert.NoError(t, err)
				assert.Equal(t, want, got)
			}
		}()
	}

	wg.Wait()
}
