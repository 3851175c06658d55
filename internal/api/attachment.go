package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jortega-dev/correo/internal/models"
	"github.com/jortega-dev/correo/internal/repository"
	"go.uber.org/zap"
)

type AttachmentHandler struct {
	attachments repository.AttachmentRepository
	logger      *zap.Logger

	// txBatch makes a multi-file upload all-or-nothing. Off by default:
	// the baseline contract is row-atomic, batch-non-atomic, and rows inserted
	// before a mid-batch failure stay committed.
	txBatch bool
}

func NewAttachmentHandler(attachments repository.AttachmentRepository, txBatch bool, logger *zap.Logger) *AttachmentHandler {
	return &AttachmentHandler{attachments: attachments, txBatch: txBatch, logger: logger}
}

// Adjuntos handles POST /api/adjuntos (multipart form).
//
// One metadata row per uploaded file; the type code is the file extension
// uppercased with the dot stripped. The bytes themselves are the upload
// middleware's problem, not this table's.
func (h *AttachmentHandler) Adjuntos(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se han proporcionado archivos"})
		return
	}
	files := form.File["attachments"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se han proporcionado archivos"})
		return
	}

	idUsuario := c.PostForm("idUsuario")
	idMensaje := c.PostForm("idMensaje")

	atts := make([]models.NewAttachment, 0, len(files))
	for _, file := range files {
		atts = append(atts, models.NewAttachment{
			IDTipoArchivo: models.FileTypeCode(file.Filename),
			IDUsuario:     idUsuario,
			IDMensaje:     idMensaje,
			NomArchivo:    file.Filename,
		})
	}

	var ids []int64
	if h.txBatch {
		ids, err = h.attachments.CreateBatch(c.Request.Context(), atts)
		if err != nil {
			h.logger.Error("attachment batch failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar la información de los archivos"})
			return
		}
	} else {
		ids = make([]int64, 0, len(atts))
		for _, att := range atts {
			id, err := h.attachments.Create(c.Request.Context(), att)
			if err != nil {
				h.logger.Error("attachment insert failed",
					zap.String("nomarchivo", att.NomArchivo),
					zap.Error(err),
				)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar la información de los archivos"})
				return
			}
			ids = append(ids, id)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "results": ids})
}
