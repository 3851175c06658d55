package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jortega-dev/correo/internal/models"
)

type CopyTypeStore struct {
	pool *pgxpool.Pool
}

func NewCopyTypeStore(pool *pgxpool.Pool) *CopyTypeStore {
	return &CopyTypeStore{pool: pool}
}

func (s *CopyTypeStore) List(ctx context.Context) ([]models.CopyType, error) {
	rows, err := s.pool.Query(ctx, `SELECT idtipocopia, descripcion FROM tipocopia ORDER BY idtipocopia`)
	if err != nil {
		return nil, fmt.Errorf("list copy types: %w", err)
	}
	defer rows.Close()

	types := make([]models.CopyType, 0)
	for rows.Next() {
		var t models.CopyType
		if err := rows.Scan(&t.IDTipoCopia, &t.Descripcion); err != nil {
			return nil, fmt.Errorf("scan copy type: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate copy types: %w", err)
	}

	return types, nil
}
