package domain

import "time"

// UserRole defines the possible roles a user can have within their tenant.
type UserRole string

const (
	RoleOwner UserRole = "OWNER"
	RoleStaff UserRole = "STAFF"
)

// User represents a member of a tenant's staff. Users are tenant-scoped: the
// TenantID reference is stamped at creation and never reassigned.
type User struct {
	UserID       string   `json:"userID" db:"user_id"` // Primary key (UUID)
	TenantID     string   `json:"tenantID" db:"tenant_id"`
	Email        string   `json:"email" db:"email"`
	Name         string   `json:"name" db:"name"`
	PasswordHash string   `json:"-" db:"password_hash"`
	Role         UserRole `json:"role" db:"role"`
	IsActive     bool     `json:"isActive" db:"is_active"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Used for soft delete
}
