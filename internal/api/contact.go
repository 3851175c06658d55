package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jortega-dev/correo/internal/repository"
	"go.uber.org/zap"
)

type ContactHandler struct {
	contacts repository.ContactRepository
	logger   *zap.Logger
}

func NewContactHandler(contacts repository.ContactRepository, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, logger: logger}
}

// GetContacts handles GET /api/getContacts?email=
//
// An empty address book is a 404 on this route; /api/recibidos and
// /api/enviados answer an empty set with a 200 instead. The asymmetry is
// part of the existing contract and clients depend on it.
func (h *ContactHandler) GetContacts(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	contacts, err := h.contacts.ListByOwnerEmail(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("list contacts failed", zap.Error(err))
		internalError(c, err)
		return
	}
	if len(contacts) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No contacts found for this user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

// GetContact handles GET /api/getContact?correoalterno=&idUsuario=
//
// Both filters are mandatory: the same external address may sit in several
// users' address books, so the contact email alone does not identify a row.
func (h *ContactHandler) GetContact(c *gin.Context) {
	correoAlterno := c.Query("correoalterno")
	if correoAlterno == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Correo alterno is required"})
		return
	}
	idUsuario := c.Query("idUsuario")
	if idUsuario == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de usuario is required"})
		return
	}

	contacts, err := h.contacts.Get(c.Request.Context(), correoAlterno, idUsuario)
	if err != nil {
		h.logger.Error("get contact failed", zap.Error(err))
		internalError(c, err)
		return
	}
	if len(contacts) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"mensaje": "Usuario no encontrado"})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

type createContactRequest struct {
	Correo    string `json:"correo"`
	IDUsuario string `json:"idUsuario"`
}

// CreateContact handles POST /api/createContact
//
// The response keeps the legacy tuple encoding, a single positional row
// [id, idUsuario, nombreContacto, correo], because existing clients index
// into it.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req createContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Correo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El correo es requerido"})
		return
	}
	if req.IDUsuario == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El idUsuario es requerido"})
		return
	}

	contact, err := h.contacts.Create(c.Request.Context(), req.Correo, req.IDUsuario)
	if err != nil {
		h.logger.Error("create contact failed", zap.Error(err))
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, [][]any{{
		contact.ConsecContacto,
		contact.IDUsuario,
		nil,
		contact.CorreoContacto,
	}})
}
