package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jortega-dev/correo/internal/models"
)

type MessageStore struct {
	pool *pgxpool.Pool
}

func NewMessageStore(pool *pgxpool.Pool) *MessageStore {
	return &MessageStore{pool: pool}
}

// Create inserts one message row. The date and time arrive as validated
// text ("2006-01-02" / "15:04:05") and are cast by Postgres on the way in;
// the reply back-reference columns take NULL when the pointers are nil.
func (s *MessageStore) Create(ctx context.Context, msg models.NewMessage) error {
	query := `
		INSERT INTO mensaje (
			idusuario, idmensaje, idpais, idtipocarpeta, idcategoria,
			asunto, cuerpomensaje, fechaaccion, horaaccion,
			men_idusuario, men_idmensaje
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8::date, $9::time, $10, $11)`

	_, err := s.pool.Exec(ctx, query,
		msg.IDUsuario,
		msg.IDMensaje,
		msg.IDPais,
		msg.IDTipoCarpeta,
		msg.IDCategoria,
		msg.Asunto,
		msg.CuerpoMensaje,
		msg.FechaAccion,
		msg.HoraAccion,
		msg.MenIDUsuario,
		msg.MenIDMensaje,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (s *MessageStore) AddRecipient(ctx context.Context, rec models.NewRecipient) (int64, error) {
	query := `
		INSERT INTO destinatario (
			consecdestinatario, idpais, idusuario, idmensaje, idtipocopia, conseccontacto
		) VALUES (nextval('seq_consecdestinatario'), $1, $2, $3, $4, $5)
		RETURNING consecdestinatario`

	var id int64
	err := s.pool.QueryRow(ctx, query,
		rec.IDPais,
		rec.IDUsuario,
		rec.IDMensaje,
		rec.IDTipoCopia,
		rec.ConsecContacto,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert recipient: %w", err)
	}
	return id, nil
}

// ListReceived shows the directly-addressed view: only fan-out rows tagged
// 'CO' count, courtesy copies stay out of it.
func (s *MessageStore) ListReceived(ctx context.Context, correoContacto string) ([]models.InboxEntry, error) {
	query := `
		SELECT u.nombre, m.asunto, m.cuerpomensaje,
		       to_char(m.fechaaccion, 'YYYY-MM-DD'),
		       to_char(m.horaaccion, 'HH24:MI:SS'),
		       u.correoalterno AS remitente
		FROM mensaje m
		JOIN destinatario d ON d.idusuario = m.idusuario AND d.idmensaje = m.idmensaje
		JOIN tipocopia t    ON t.idtipocopia = d.idtipocopia
		JOIN contacto c     ON c.conseccontacto = d.conseccontacto
		JOIN usuario u      ON u.idusuario = m.idusuario
		WHERE c.correocontacto = $1 AND t.idtipocopia = 'CO'`

	rows, err := s.pool.Query(ctx, query, correoContacto)
	if err != nil {
		return nil, fmt.Errorf("list received: %w", err)
	}
	defer rows.Close()

	inbox := make([]models.InboxEntry, 0)
	for rows.Next() {
		var e models.InboxEntry
		if err := rows.Scan(
			&e.Nombre,
			&e.Asunto,
			&e.CuerpoMensaje,
			&e.FechaAccion,
			&e.HoraAccion,
			&e.Remitente,
		); err != nil {
			return nil, fmt.Errorf("scan inbox entry: %w", err)
		}
		inbox = append(inbox, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inbox: %w", err)
	}

	return inbox, nil
}

// ListSent queries one row per (message, recipient) pair, newest action
// date first, and folds the rows into one record per message before
// returning.
func (s *MessageStore) ListSent(ctx context.Context, idUsuario string) ([]models.SentMessage, error) {
	query := `
		SELECT m.idmensaje,
		       COALESCE(c.nombrecontacto, 'No proporcionado'),
		       c.correocontacto, m.asunto, m.cuerpomensaje,
		       to_char(m.fechaaccion, 'YYYY-MM-DD'),
		       to_char(m.horaaccion, 'HH24:MI:SS'),
		       d.idtipocopia
		FROM mensaje m
		JOIN destinatario d ON d.idusuario = m.idusuario AND d.idmensaje = m.idmensaje
		JOIN contacto c     ON c.conseccontacto = d.conseccontacto
		JOIN tipocopia t    ON t.idtipocopia = d.idtipocopia
		WHERE m.idusuario = $1
		ORDER BY m.fechaaccion DESC, m.idmensaje, d.consecdestinatario`

	rows, err := s.pool.Query(ctx, query, idUsuario)
	if err != nil {
		return nil, fmt.Errorf("list sent: %w", err)
	}
	defer rows.Close()

	flat := make([]models.SentRow, 0)
	for rows.Next() {
		var r models.SentRow
		if err := rows.Scan(
			&r.IDMensaje,
			&r.Nombre,
			&r.CorreoContacto,
			&r.Asunto,
			&r.CuerpoMensaje,
			&r.FechaAccion,
			&r.HoraAccion,
			&r.IDTipoCopia,
		); err != nil {
			return nil, fmt.Errorf("scan sent row: %w", err)
		}
		flat = append(flat, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sent: %w", err)
	}

	return models.GroupSent(flat), nil
}
