package dto

// SignupRequest carries the business and owner details needed to bootstrap a
// new tenant.
type SignupRequest struct {
	BusinessName  string `json:"businessName" binding:"required,max=100"`
	ContactEmail  string `json:"contactEmail" binding:"required,email"`
	ContactPhone  string `json:"contactPhone" binding:"omitempty,max=30"`
	Plan          string `json:"plan" binding:"omitempty,subscriptionplan"`
	OwnerName     string `json:"ownerName" binding:"required,max=100"`
	OwnerEmail    string `json:"ownerEmail" binding:"required,email"`
	OwnerPassword string `json:"ownerPassword" binding:"required,min=8"`
}

// SignupResponse is returned after a successful tenant bootstrap.
type SignupResponse struct {
	Tenant TenantResponse `json:"tenant"`
	Owner  UserResponse   `json:"owner"`
}

// LoginRequest carries user credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresIn   int64        `json:"expiresIn"` // Seconds until expiry
	User        UserResponse `json:"user"`
}
