package dto

import (
	"time"

	"github.com/bizledger/bizledger_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to add a user to the caller's tenant.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,max=100"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=OWNER STAFF"`
}

// UpdateUserRequest defines the mutable user fields.
type UpdateUserRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
	Role *string `json:"role" binding:"omitempty,oneof=OWNER STAFF"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to UserResponse DTOs
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = ToUserResponse(&u)
	}
	return res
}
