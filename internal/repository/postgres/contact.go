package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jortega-dev/correo/internal/models"
)

type ContactStore struct {
	pool *pgxpool.Pool
}

func NewContactStore(pool *pgxpool.Pool) *ContactStore {
	return &ContactStore{pool: pool}
}

func (s *ContactStore) ListByOwnerEmail(ctx context.Context, email string) ([]models.Contact, error) {
	query := `
		SELECT c.conseccontacto, c.idusuario, COALESCE(c.nombrecontacto, ''), c.correocontacto
		FROM contacto c
		JOIN usuario u ON c.idusuario = u.idusuario
		WHERE u.correoalterno = $1
		ORDER BY c.conseccontacto`

	rows, err := s.pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(
			&c.ConsecContacto,
			&c.IDUsuario,
			&c.NombreContacto,
			&c.CorreoContacto,
		); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}

	return contacts, nil
}

// Get filters by both the contact email and the owning user id: the same
// external address may appear in many users' address books.
func (s *ContactStore) Get(ctx context.Context, correoContacto, idUsuario string) ([]models.Contact, error) {
	query := `
		SELECT conseccontacto, idusuario, COALESCE(nombrecontacto, ''), correocontacto
		FROM contacto
		WHERE correocontacto = $1 AND idusuario = $2`

	rows, err := s.pool.Query(ctx, query, correoContacto, idUsuario)
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0)
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(
			&c.ConsecContacto,
			&c.IDUsuario,
			&c.NombreContacto,
			&c.CorreoContacto,
		); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}

	return contacts, nil
}

// Create allocates the surrogate id from seq_conseccontacto inside the
// INSERT itself. Two concurrent creations get two distinct ids: the
// sequence is the only allocator, never a MAX+1 computed in application
// code.
func (s *ContactStore) Create(ctx context.Context, correo, idUsuario string) (*models.Contact, error) {
	query := `
		INSERT INTO contacto (conseccontacto, idusuario, nombrecontacto, correocontacto)
		VALUES (nextval('seq_conseccontacto'), $1, '', $2)
		RETURNING conseccontacto, idusuario, nombrecontacto, correocontacto`

	var c models.Contact
	err := s.pool.QueryRow(ctx, query, idUsuario, correo).Scan(
		&c.ConsecContacto,
		&c.IDUsuario,
		&c.NombreContacto,
		&c.CorreoContacto,
	)
	if err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	return &c, nil
}
