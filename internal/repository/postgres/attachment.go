package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jortega-dev/correo/internal/models"
)

type AttachmentStore struct {
	pool *pgxpool.Pool
}

func NewAttachmentStore(pool *pgxpool.Pool) *AttachmentStore {
	return &AttachmentStore{pool: pool}
}

const insertAttachment = `
	INSERT INTO archivoadjunto (
		consecarchivo, idtipoarchivo, idusuario, idmensaje, nomarchivo
	) VALUES (nextval('seq_consecarchivo'), $1, $2, $3, $4)
	RETURNING consecarchivo`

// Create inserts a single attachment row. Callers inserting several files
// row by row get the baseline behavior: rows already inserted stay
// committed when a later one fails.
func (s *AttachmentStore) Create(ctx context.Context, att models.NewAttachment) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx, insertAttachment,
		att.IDTipoArchivo,
		att.IDUsuario,
		att.IDMensaje,
		att.NomArchivo,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert attachment: %w", err)
	}
	return id, nil
}

// CreateBatch inserts the whole set inside one transaction, so a failure on
// any file rolls back every row of the batch.
func (s *AttachmentStore) CreateBatch(ctx context.Context, atts []models.NewAttachment) ([]int64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin attachment batch: %w", err)
	}
	defer tx.Rollback(ctx)

	ids := make([]int64, 0, len(atts))
	for _, att := range atts {
		var id int64
		err := tx.QueryRow(ctx, insertAttachment,
			att.IDTipoArchivo,
			att.IDUsuario,
			att.IDMensaje,
			att.NomArchivo,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("insert attachment %q: %w", att.NomArchivo, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit attachment batch: %w", err)
	}
	return ids, nil
}
