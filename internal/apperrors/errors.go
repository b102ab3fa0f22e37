package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates that no authenticated principal is present on the request.
var ErrUnauthorized = errors.New("unauthorized")

// ErrTenantNotFound indicates that no tenant could be resolved for the authenticated principal.
var ErrTenantNotFound = errors.New("tenant not found")

// ErrTenantInactive indicates that the resolved tenant has been deactivated.
var ErrTenantInactive = errors.New("tenant is inactive")

// ErrTenantExpired indicates that the resolved tenant's subscription has expired.
var ErrTenantExpired = errors.New("tenant has expired")

// ErrNoTenantContext indicates that tenant-scoped data access was attempted
// without a tenant identifier in the request context. This is always an
// internal defect, never a normal user-facing condition: callers must fail
// closed instead of touching data.
var ErrNoTenantContext = errors.New("no tenant in context")

// ErrCrossTenantAccess indicates that a write-path ownership check failed: the
// record targeted by a mutation belongs to a different tenant than the one in
// the request context.
var ErrCrossTenantAccess = errors.New("cross-tenant access denied")
