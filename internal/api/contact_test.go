package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jortega-dev/correo/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func contactRouter(repo *fakeContactRepo) func(*gin.Engine) {
	return func(r *gin.Engine) {
		h := NewContactHandler(repo, zap.NewNop())
		r.GET("/api/getContacts", h.GetContacts)
		r.GET("/api/getContact", h.GetContact)
		r.POST("/api/createContact", h.CreateContact)
	}
}

func TestGetContactsMissingEmail(t *testing.T) {
	w := doJSON(t, http.MethodGet, "/api/getContacts", "", contactRouter(&fakeContactRepo{}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email is required")
}

func TestGetContactsEmptyIsNotFound(t *testing.T) {
	w := doJSON(t, http.MethodGet, "/api/getContacts?email=maria@example.com", "",
		contactRouter(&fakeContactRepo{}))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No contacts found for this user")
}

func TestGetContacts(t *testing.T) {
	repo := &fakeContactRepo{contacts: []models.Contact{
		{ConsecContacto: 1, IDUsuario: "U1", NombreContacto: "Juan", CorreoContacto: "juan@example.com"},
		{ConsecContacto: 2, IDUsuario: "U1", CorreoContacto: "ana@example.com"},
	}}

	w := doJSON(t, http.MethodGet, "/api/getContacts?email=maria@example.com", "", contactRouter(repo))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Contacts []models.Contact `json:"contacts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Contacts, 2)
	assert.Equal(t, "juan@example.com", resp.Contacts[0].CorreoContacto)
}

func TestGetContactRequiresBothParams(t *testing.T) {
	w := doJSON(t, http.MethodGet, "/api/getContact?correoalterno=juan@example.com", "",
		contactRouter(&fakeContactRepo{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ID de usuario is required")

	w = doJSON(t, http.MethodGet, "/api/getContact?idUsuario=U1", "",
		contactRouter(&fakeContactRepo{}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Correo alterno is required")
}

func TestGetContactDisambiguatesByOwner(t *testing.T) {
	// Two users hold a contact row for the same external address; only the
	// requested owner's row comes back.
	repo := &fakeContactRepo{contacts: []models.Contact{
		{ConsecContacto: 1, IDUsuario: "U1", CorreoContacto: "juan@example.com"},
		{ConsecContacto: 2, IDUsuario: "U2", CorreoContacto: "juan@example.com"},
	}}

	w := doJSON(t, http.MethodGet, "/api/getContact?correoalterno=juan@example.com&idUsuario=U2", "",
		contactRouter(repo))

	require.Equal(t, http.StatusOK, w.Code)

	var resp []models.Contact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, int64(2), resp[0].ConsecContacto)
}

func TestGetContactNotFound(t *testing.T) {
	w := doJSON(t, http.MethodGet, "/api/getContact?correoalterno=x@example.com&idUsuario=U1", "",
		contactRouter(&fakeContactRepo{}))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Usuario no encontrado")
}

func TestCreateContactMissingFields(t *testing.T) {
	repo := &fakeContactRepo{}

	w := doJSON(t, http.MethodPost, "/api/createContact", `{"idUsuario":"U1"}`, contactRouter(repo))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "El correo es requerido")

	w = doJSON(t, http.MethodPost, "/api/createContact", `{"correo":"juan@example.com"}`, contactRouter(repo))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "El idUsuario es requerido")

	assert.Empty(t, repo.created)
}

func TestCreateContactTupleResponse(t *testing.T) {
	repo := &fakeContactRepo{nextID: 41}

	w := doJSON(t, http.MethodPost, "/api/createContact",
		`{"correo":"juan@example.com","idUsuario":"U1"}`, contactRouter(repo))

	require.Equal(t, http.StatusCreated, w.Code)

	// Positional row shape: [[id, idUsuario, null, correo]].
	var resp [][]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.Len(t, resp[0], 4)
	assert.Equal(t, float64(42), resp[0][0])
	assert.Equal(t, "U1", resp[0][1])
	assert.Nil(t, resp[0][2])
	assert.Equal(t, "juan@example.com", resp[0][3])
}
