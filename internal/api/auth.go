package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jortega-dev/correo/internal/repository"
	"go.uber.org/zap"
)

type AuthHandler struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func NewAuthHandler(users repository.UserRepository, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/login.
//
// The credential check is a plain equality lookup: one row matches both the
// login email and the stored credential, or nobody gets in. Zero rows is a
// 401, never a 500; only real database failures surface as errors.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("login query failed", zap.Error(err))
		internalError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}
