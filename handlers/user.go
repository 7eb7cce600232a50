package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type UserHandler struct {
	UserService user.UserService
}

// IssueTokenHandler handles GET /jwt?email=E. Unknown emails get 403 with
// an empty token.
func (h *UserHandler) IssueTokenHandler(c *gin.Context) {
	logger := getLogger(c)
	email := c.Query("email")

	token, err := h.UserService.IssueToken(c.Request.Context(), email)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			logger.Error("Token issuance failed", zap.String("email", email), zap.Error(err))
		}
		c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// CreateUserHandler handles POST /users.
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.User
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.UserService.CreateUser(c.Request.Context(), req)
	switch {
	case errors.Is(err, user.ErrUserExists):
		c.JSON(http.StatusOK, models.Conflict("A user with this email already exists"))
		return
	case errors.Is(err, user.ErrEmailRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		logger.Error("Failed to create user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetAllUsersHandler handles GET /users (admin only).
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// IsAdminHandler handles GET /users/admin/:email.
func (h *UserHandler) IsAdminHandler(c *gin.Context) {
	email := c.Param("email")
	isAdmin, err := h.UserService.IsAdmin(c.Request.Context(), email)
	if err != nil {
		getLogger(c).Error("Admin lookup failed", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check role"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// MakeAdminHandler handles PUT /users/admin/:id (admin only).
func (h *UserHandler) MakeAdminHandler(c *gin.Context) {
	logger := getLogger(c)
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid user id", err.Error())
		return
	}

	result, err := h.UserService.MakeAdmin(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to grant admin", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update role"})
		return
	}
	logger.Info("Admin role granted", zap.String("id", id.Hex()))
	c.JSON(http.StatusOK, result)
}
