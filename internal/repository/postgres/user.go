package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jortega-dev/correo/internal/models"
)

type UserStore struct {
	pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

// Authenticate matches the stored credential by plain equality; hashing
// would change the observable contract.
func (s *UserStore) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	query := `
		SELECT idusuario, nombre, apellido, correoalterno, COALESCE(celular, ''), contrasena
		FROM usuario
		WHERE correoalterno = $1 AND contrasena = $2`

	var u models.User
	err := s.pool.QueryRow(ctx, query, email, password).Scan(
		&u.IDUsuario,
		&u.Nombre,
		&u.Apellido,
		&u.CorreoAlterno,
		&u.Celular,
		&u.Contrasena,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("authenticate user: %w", err)
	}
	return &u, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, correoAlterno string) ([]models.User, error) {
	query := `
		SELECT idusuario, nombre, apellido, correoalterno, COALESCE(celular, '')
		FROM usuario
		WHERE correoalterno = $1`

	rows, err := s.pool.Query(ctx, query, correoAlterno)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(
			&u.IDUsuario,
			&u.Nombre,
			&u.Apellido,
			&u.CorreoAlterno,
			&u.Celular,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}
