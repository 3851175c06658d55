package repository

import (
	"context"

	"github.com/jortega-dev/correo/internal/models"
)

// Every method takes a context so a cancelled request cancels its query.
// Single-row lookups return nil, nil when nothing matches; not-found is
// data, not an error. List methods return empty slices (never nil) so JSON
// serializes to [] instead of null.

// UserRepository handles the usuario table.
type UserRepository interface {
	// Authenticate returns the user whose login email and credential both
	// match exactly, or nil, nil when no row does.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)

	// GetByEmail returns the profile rows for a login email.
	GetByEmail(ctx context.Context, correoAlterno string) ([]models.User, error)
}

// ContactRepository handles the contacto table.
type ContactRepository interface {
	// ListByOwnerEmail returns the contacts of the user whose login email
	// matches.
	ListByOwnerEmail(ctx context.Context, email string) ([]models.Contact, error)

	// Get returns the contact rows matching both the contact email and the
	// owning user. Contact emails are not globally unique, so both filters
	// are required.
	Get(ctx context.Context, correoContacto, idUsuario string) ([]models.Contact, error)

	// Create inserts a contact with a sequence-assigned surrogate id and an
	// empty display name, and returns the created row.
	Create(ctx context.Context, correo, idUsuario string) (*models.Contact, error)
}

// MessageRepository handles mensaje and its destinatario fan-out.
type MessageRepository interface {
	// Create inserts one message row. The composite key comes from the
	// caller; the reply back-reference may be nil.
	Create(ctx context.Context, msg models.NewMessage) error

	// AddRecipient inserts one fan-out row with a sequence-assigned id and
	// returns that id.
	AddRecipient(ctx context.Context, rec models.NewRecipient) (int64, error)

	// ListReceived returns the messages addressed directly (copy type 'CO')
	// to the given contact email.
	ListReceived(ctx context.Context, correoContacto string) ([]models.InboxEntry, error)

	// ListSent returns the messages authored by a user, one record per
	// message with the full recipient list, newest action date first.
	ListSent(ctx context.Context, idUsuario string) ([]models.SentMessage, error)
}

// AttachmentRepository handles archivoadjunto metadata rows.
type AttachmentRepository interface {
	// Create inserts one attachment row and returns its sequence-assigned id.
	Create(ctx context.Context, att models.NewAttachment) (int64, error)

	// CreateBatch inserts the whole set inside one transaction: either every
	// row lands or none do.
	CreateBatch(ctx context.Context, atts []models.NewAttachment) ([]int64, error)
}

// CopyTypeRepository reads the tipocopia lookup table.
type CopyTypeRepository interface {
	List(ctx context.Context) ([]models.CopyType, error)
}
