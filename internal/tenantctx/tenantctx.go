// Package tenantctx carries the current tenant identifier through the call
// chain of one request. The identifier lives on the request's context.Context,
// so it is affinitized to the logical request by construction: concurrent
// requests each see only their own value, and the value vanishes when the
// request context is released. There is deliberately no package-level state.
package tenantctx

import (
	"context"

	"github.com/bizledger/bizledger_app/internal/apperrors"
)

// tenantIDKey is the context key for the current tenant identifier.
// Using an unexported custom type prevents collisions.
type contextKey string

const tenantIDKey = contextKey("tenantID")

// WithTenant returns a child context carrying the given tenant identifier.
// It overwrites any identifier already present; in correct usage there is at
// most one set per request (the tenant resolution middleware, or an internal
// system task such as bootstrap seeding).
func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

// TenantID returns the tenant identifier stored in ctx, if any.
func TenantID(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(tenantIDKey).(string)
	if !ok || tenantID == "" {
		return "", false
	}
	return tenantID, true
}

// MustTenantID returns the tenant identifier stored in ctx or fails closed
// with apperrors.ErrNoTenantContext. Every tenant-scoped data access derives
// its row filter from this call, so an empty context can never widen a query
// to all tenants.
func MustTenantID(ctx context.Context) (string, error) {
	tenantID, ok := TenantID(ctx)
	if !ok {
		return "", apperrors.ErrNoTenantContext
	}
	return tenantID, nil
}
