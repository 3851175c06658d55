package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jortega-dev/correo/internal/models"
	"github.com/jortega-dev/correo/internal/repository"
	"go.uber.org/zap"
)

// Wire formats for the message action date and time.
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

type MessageHandler struct {
	messages repository.MessageRepository
	logger   *zap.Logger
}

func NewMessageHandler(messages repository.MessageRepository, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{messages: messages, logger: logger}
}

type sendMessageRequest struct {
	IDUsuario     string `json:"idUsuario"`
	IDMensaje     string `json:"idMensaje"`
	IDPais        string `json:"idPais"`
	IDTipoCarpeta string `json:"idTipoCarpeta"`
	IDCategoria   string `json:"idCategoria"`
	Asunto        string `json:"asunto"`
	CuerpoMensaje string `json:"cuerpoMensaje"`
	FechaAccion   string `json:"fechaAccion"`
	HoraAccion    string `json:"horaAccion"`

	// Optional reply back-reference.
	MenIDUsuario string `json:"menIdUsuario"`
	MenIDMensaje string `json:"menIdMensaje"`
}

// SendMessage handles POST /api/sendMessage
//
// All nine base fields are required and the whole request is rejected
// before any row is written when one is missing. menIdUsuario/menIdMensaje
// default to NULL.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	required := []string{
		req.IDUsuario, req.IDMensaje, req.IDPais, req.IDTipoCarpeta,
		req.IDCategoria, req.Asunto, req.CuerpoMensaje,
		req.FechaAccion, req.HoraAccion,
	}
	for _, v := range required {
		if v == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
	}

	if _, err := time.Parse(dateLayout, req.FechaAccion); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fechaAccion must be YYYY-MM-DD"})
		return
	}
	if _, err := time.Parse(timeLayout, req.HoraAccion); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "horaAccion must be HH24:MI:SS"})
		return
	}

	msg := models.NewMessage{
		IDUsuario:     req.IDUsuario,
		IDMensaje:     req.IDMensaje,
		IDPais:        req.IDPais,
		IDTipoCarpeta: req.IDTipoCarpeta,
		IDCategoria:   req.IDCategoria,
		Asunto:        req.Asunto,
		CuerpoMensaje: req.CuerpoMensaje,
		FechaAccion:   req.FechaAccion,
		HoraAccion:    req.HoraAccion,
	}
	if req.MenIDUsuario != "" {
		msg.MenIDUsuario = &req.MenIDUsuario
	}
	if req.MenIDMensaje != "" {
		msg.MenIDMensaje = &req.MenIDMensaje
	}

	if err := h.messages.Create(c.Request.Context(), msg); err != nil {
		h.logger.Error("send message failed", zap.Error(err))
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully",
		"result":  gin.H{"rowsAffected": 1},
	})
}

type recipientRequest struct {
	IDPais      string `json:"idPais"`
	IDUsuario   string `json:"idUsuario"`
	IDMensaje   string `json:"idMensaje"`
	IDTipoCopia string `json:"idTipoCopia"`

	// Accepted as a JSON number or a numeric string; anything else is a 400.
	ConsecContacto any `json:"consecContacto"`
}

// Destinatario handles POST /api/destinatario
func (h *MessageHandler) Destinatario(c *gin.Context) {
	var req recipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.IDPais == "" || req.IDUsuario == "" || req.IDMensaje == "" ||
		req.IDTipoCopia == "" || req.ConsecContacto == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Todos los campos son obligatorios."})
		return
	}

	consecContacto, err := numericField(req.ConsecContacto)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El campo consecContacto debe ser un número válido."})
		return
	}

	_, err = h.messages.AddRecipient(c.Request.Context(), models.NewRecipient{
		IDPais:         req.IDPais,
		IDUsuario:      req.IDUsuario,
		IDMensaje:      req.IDMensaje,
		IDTipoCopia:    req.IDTipoCopia,
		ConsecContacto: consecContacto,
	})
	if err != nil {
		h.logger.Error("register recipient failed", zap.Error(err))
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Mensaje guardado exitosamente"})
}

// numericField coerces a decoded JSON value to an int64 id.
func numericField(v any) (int64, error) {
	switch n := v.(type) {
	case float64:
		return int64(n), nil
	case string:
		return strconv.ParseInt(n, 10, 64)
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}

// Recibidos handles GET /api/recibidos?correoContacto=
//
// Older clients send the parameter all-lowercase; both spellings are
// accepted. An empty inbox is a 200 with the legacy Spanish notice, not a
// 404.
func (h *MessageHandler) Recibidos(c *gin.Context) {
	correoContacto := c.Query("correoContacto")
	if correoContacto == "" {
		correoContacto = c.Query("correocontacto")
	}
	if correoContacto == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de usuario es requerido."})
		return
	}

	inbox, err := h.messages.ListReceived(c.Request.Context(), correoContacto)
	if err != nil {
		h.logger.Error("list received failed", zap.Error(err))
		internalError(c, err)
		return
	}
	if len(inbox) == 0 {
		c.JSON(http.StatusOK, gin.H{"mensaje": "Correo Recibido Vacio"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"inbox": inbox})
}

// Enviados handles GET /api/enviados?idUsuario=
//
// Returns one record per message, each carrying its whole recipient list,
// newest action date first.
func (h *MessageHandler) Enviados(c *gin.Context) {
	idUsuario := c.Query("idUsuario")
	if idUsuario == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de usuario es requerido."})
		return
	}

	enviados, err := h.messages.ListSent(c.Request.Context(), idUsuario)
	if err != nil {
		h.logger.Error("list sent failed", zap.Error(err))
		internalError(c, err)
		return
	}
	if len(enviados) == 0 {
		c.JSON(http.StatusOK, gin.H{"mensaje": "Correo Recibido Vacio"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"enviados": enviados})
}
