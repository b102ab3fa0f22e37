package domain

import "time"

// SubscriptionPlan enumerates the subscription tiers a tenant can be on.
type SubscriptionPlan string

const (
	PlanFree     SubscriptionPlan = "FREE"
	PlanStandard SubscriptionPlan = "STANDARD"
	PlanPremium  SubscriptionPlan = "PREMIUM"
)

// Tenant represents one isolated business account, the unit of data
// partitioning. TenantID is the sole isolation key: it is generated once at
// sign-up with enough entropy to be unguessable and never changes afterwards.
type Tenant struct {
	TenantID     string           `json:"tenantID" db:"tenant_id"` // Primary key, opaque, immutable
	Name         string           `json:"name" db:"name"`
	ContactEmail string           `json:"contactEmail" db:"contact_email"`
	ContactPhone string           `json:"contactPhone" db:"contact_phone"`
	IsActive     bool             `json:"isActive" db:"is_active"` // Soft-disable flag; tenants are never hard-deleted
	ExpiresAt    *time.Time       `json:"expiresAt,omitempty" db:"expires_at"`
	Plan         SubscriptionPlan `json:"plan" db:"plan"`
	Version      int64            `json:"version" db:"version"`
	AuditFields
}

// IsExpired reports whether the tenant's subscription has lapsed at the given
// instant. A nil ExpiresAt means the tenant never expires.
func (t Tenant) IsExpired(now time.Time) bool {
	return t.ExpiresAt != nil && now.After(*t.ExpiresAt)
}
