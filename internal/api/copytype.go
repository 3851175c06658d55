package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jortega-dev/correo/internal/repository"
	"go.uber.org/zap"
)

// CopyTypeHandler serves the tipocopia lookup table so clients can label
// recipients without hardcoding the codes.
type CopyTypeHandler struct {
	copyTypes repository.CopyTypeRepository
	logger    *zap.Logger
}

func NewCopyTypeHandler(copyTypes repository.CopyTypeRepository, logger *zap.Logger) *CopyTypeHandler {
	return &CopyTypeHandler{copyTypes: copyTypes, logger: logger}
}

// List handles GET /api/tiposCopia
func (h *CopyTypeHandler) List(c *gin.Context) {
	types, err := h.copyTypes.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list copy types failed", zap.Error(err))
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tiposCopia": types})
}
