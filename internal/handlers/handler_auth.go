package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizledger/bizledger_app/internal/core/ports/services"
	"github.com/bizledger/bizledger_app/internal/dto"
	"github.com/bizledger/bizledger_app/internal/middleware"
	"github.com/bizledger/bizledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// authHandler handles signup and login requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes. Both endpoints
// are rate limited per client IP since they sit in front of authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) error {
	h := newAuthHandler(authService)

	ipLimiter, err := middleware.NewRateLimiter(cfg.RateLimit, cfg.RedisURL)
	if err != nil {
		return err
	}
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/signup", limitMiddleware, h.signup)
		auth.POST("/login", limitMiddleware, h.login)
	}
	return nil
}

// signup godoc
// @Summary Register a new business account
// @Description Creates a new business account together with its owner user and seeded defaults.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Business and owner details"
// @Success 201 {object} dto.SignupResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Failed to register"
// @Router /auth/signup [post]
func (h *authHandler) signup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Signup", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Signup failed")
		return
	}

	logger.Info("Signup completed", slog.String("tenant_id", resp.Tenant.TenantID))
	c.JSON(http.StatusCreated, resp)
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Failed to login"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		// Always the same message: do not reveal which credential check failed.
		logger.Warn("Login attempt failed", slog.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
