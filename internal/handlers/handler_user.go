package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bizledger/bizledger_app/internal/core/ports/services"
	"github.com/bizledger/bizledger_app/internal/dto"
	"github.com/bizledger/bizledger_app/internal/middleware"
	"github.com/bizledger/bizledger_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// userHandler handles user management within the caller's tenant.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes sets up the user management routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/:userID", h.getUser)
		users.PATCH("/:userID", h.updateUser)
		users.DELETE("/:userID", h.deleteUser)
	}
}

// createUser godoc
// @Summary Add a user to the business account
// @Description Creates a new user belonging to the caller's business account.
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Failed to create user"
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req, creatorID)
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}

	logger.Info("User created", slog.String("user_id", user.UserID), slog.String("created_by", creatorID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List users of the business account
// @Description Returns the users belonging to the caller's business account.
// @Tags users
// @Produce json
// @Param limit query int false "Max results (default 20, max 100)"
// @Param offset query int false "Results to skip"
// @Success 200 {array} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid pagination"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list users"
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	limit, offset, err := pagination.ParseLimitOffset(c.Query("limit"), c.Query("offset"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		respondServiceError(c, err, "Users not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

// getUser godoc
// @Summary Get a user by ID
// @Description Returns a single user of the caller's business account.
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to fetch user"
// @Security BearerAuth
// @Router /users/{userID} [get]
func (h *userHandler) getUser(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateUser godoc
// @Summary Update a user
// @Description Updates name or role of a user in the caller's business account.
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to update user"
// @Security BearerAuth
// @Router /users/{userID} [patch]
func (h *userHandler) updateUser(c *gin.Context) {
	updaterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("userID"), req, updaterID)
	if err != nil {
		respondServiceError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deleteUser godoc
// @Summary Delete a user
// @Description Soft-deletes a user of the caller's business account. Self-deletion is rejected.
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Cannot delete yourself"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Failed to delete user"
// @Security BearerAuth
// @Router /users/{userID} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	deleterID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	targetID := c.Param("userID")
	if err := h.userService.DeleteUser(c.Request.Context(), targetID, deleterID); err != nil {
		respondServiceError(c, err, "User not found")
		return
	}

	logger.Info("User deleted", slog.String("user_id", targetID), slog.String("deleted_by", deleterID))
	c.Status(http.StatusNoContent)
}
