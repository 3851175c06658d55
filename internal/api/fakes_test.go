package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jortega-dev/correo/internal/models"
	"github.com/jortega-dev/correo/internal/repository"
)

// Hand-rolled fakes for the repository interfaces: each records what it was
// asked and answers with canned data or a canned error.

type fakeUserRepo struct {
	authUser *models.User
	users    []models.User
	err      error

	authCalls int
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	f.authCalls++
	if f.err != nil {
		return nil, f.err
	}
	if f.authUser != nil && f.authUser.CorreoAlterno == email && f.authUser.Contrasena == password {
		return f.authUser, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, correoAlterno string) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	matched := make([]models.User, 0)
	for _, u := range f.users {
		if u.CorreoAlterno == correoAlterno {
			matched = append(matched, u)
		}
	}
	return matched, nil
}

type fakeContactRepo struct {
	contacts []models.Contact
	nextID   int64
	err      error

	created []models.Contact
}

var _ repository.ContactRepository = (*fakeContactRepo)(nil)

func (f *fakeContactRepo) ListByOwnerEmail(ctx context.Context, email string) ([]models.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append(make([]models.Contact, 0), f.contacts...), nil
}

func (f *fakeContactRepo) Get(ctx context.Context, correoContacto, idUsuario string) ([]models.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	matched := make([]models.Contact, 0)
	for _, c := range f.contacts {
		if c.CorreoContacto == correoContacto && c.IDUsuario == idUsuario {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (f *fakeContactRepo) Create(ctx context.Context, correo, idUsuario string) (*models.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	c := models.Contact{
		ConsecContacto: f.nextID,
		IDUsuario:      idUsuario,
		CorreoContacto: correo,
	}
	f.created = append(f.created, c)
	return &c, nil
}

type fakeMessageRepo struct {
	inbox []models.InboxEntry
	sent  []models.SentMessage
	err   error

	messages      []models.NewMessage
	recipients    []models.NewRecipient
	inboxQueries  []string
	nextRecipient int64
}

var _ repository.MessageRepository = (*fakeMessageRepo)(nil)

func (f *fakeMessageRepo) Create(ctx context.Context, msg models.NewMessage) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeMessageRepo) AddRecipient(ctx context.Context, rec models.NewRecipient) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.recipients = append(f.recipients, rec)
	f.nextRecipient++
	return f.nextRecipient, nil
}

func (f *fakeMessageRepo) ListReceived(ctx context.Context, correoContacto string) ([]models.InboxEntry, error) {
	f.inboxQueries = append(f.inboxQueries, correoContacto)
	if f.err != nil {
		return nil, f.err
	}
	return f.inbox, nil
}

func (f *fakeMessageRepo) ListSent(ctx context.Context, idUsuario string) ([]models.SentMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sent, nil
}

type fakeAttachmentRepo struct {
	err error

	created []models.NewAttachment
	batches [][]models.NewAttachment
	nextID  int64
}

var _ repository.AttachmentRepository = (*fakeAttachmentRepo)(nil)

func (f *fakeAttachmentRepo) Create(ctx context.Context, att models.NewAttachment) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, att)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeAttachmentRepo) CreateBatch(ctx context.Context, atts []models.NewAttachment) ([]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.batches = append(f.batches, atts)
	ids := make([]int64, 0, len(atts))
	for range atts {
		f.nextID++
		ids = append(ids, f.nextID)
	}
	return ids, nil
}

type fakeCopyTypeRepo struct {
	types []models.CopyType
	err   error
}

var _ repository.CopyTypeRepository = (*fakeCopyTypeRepo)(nil)

func (f *fakeCopyTypeRepo) List(ctx context.Context) ([]models.CopyType, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.types, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

// doJSON drives one route through a throwaway gin engine.
func doJSON(t *testing.T, method, path string, body string, register func(*gin.Engine)) *httptest.ResponseRecorder {
	t.Helper()

	r := gin.New()
	register(r)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
