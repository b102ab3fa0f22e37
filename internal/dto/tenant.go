package dto

import (
	"time"

	"github.com/bizledger/bizledger_app/internal/core/domain"
)

// CreateTenantRequest defines the data needed to create a new tenant.
type CreateTenantRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	ContactPhone string `json:"contactPhone" binding:"omitempty,max=30"`
	Plan         string `json:"plan" binding:"omitempty,subscriptionplan"`
}

// UpdateTenantRequest defines the mutable tenant fields. The tenant identifier
// is immutable and deliberately absent.
type UpdateTenantRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	ContactEmail *string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone *string `json:"contactPhone" binding:"omitempty,max=30"`
}

// TenantResponse defines the data returned for a tenant.
type TenantResponse struct {
	TenantID     string     `json:"tenantID"`
	Name         string     `json:"name"`
	ContactEmail string     `json:"contactEmail"`
	ContactPhone string     `json:"contactPhone"`
	IsActive     bool       `json:"isActive"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	Plan         string     `json:"plan"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// ToTenantResponse converts a domain.Tenant to TenantResponse DTO
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:     t.TenantID,
		Name:         t.Name,
		ContactEmail: t.ContactEmail,
		ContactPhone: t.ContactPhone,
		IsActive:     t.IsActive,
		ExpiresAt:    t.ExpiresAt,
		Plan:         string(t.Plan),
		CreatedAt:    t.CreatedAt,
	}
}
