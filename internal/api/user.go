package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jortega-dev/correo/internal/repository"
	"go.uber.org/zap"
)

type UserHandler struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func NewUserHandler(users repository.UserRepository, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// GetUser handles GET /api/getUser?correoalterno=
func (h *UserHandler) GetUser(c *gin.Context) {
	correoAlterno := c.Query("correoalterno")
	if correoAlterno == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Correo alterno is required"})
		return
	}

	users, err := h.users.GetByEmail(c.Request.Context(), correoAlterno)
	if err != nil {
		h.logger.Error("get user failed", zap.Error(err))
		internalError(c, err)
		return
	}
	if len(users) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"mensaje": "Usuario no encontrado"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"usuario": users})
}
