package models

import (
	"path"
	"strings"
)

// User is a row of the usuario table. Accounts are provisioned out-of-band;
// there is no signup path, so the struct is read-only from the API's point
// of view. Contrasena never leaves the process.
type User struct {
	IDUsuario     string `json:"idUsuario"`
	Nombre        string `json:"nombre"`
	Apellido      string `json:"apellido"`
	CorreoAlterno string `json:"correoAlterno"`
	Celular       string `json:"celular"`
	Contrasena    string `json:"-"`
}

// Contact is an address-book entry owned by one user. ConsecContacto is
// allocated from seq_conseccontacto; several users may each hold a contact
// row for the same external address, so (correocontacto, idusuario) is the
// only way to disambiguate a lookup.
type Contact struct {
	ConsecContacto int64  `json:"consecContacto"`
	IDUsuario      string `json:"idUsuario"`
	NombreContacto string `json:"nombreContacto"`
	CorreoContacto string `json:"correoContacto"`
}

// CopyType is reference data: 'CO' direct recipient, 'COO' courtesy copy.
type CopyType struct {
	IDTipoCopia string `json:"idTipoCopia"`
	Descripcion string `json:"descripcion"`
}

// NewMessage carries the fields of one mensaje insert. The caller supplies
// both halves of the composite key (idUsuario, idMensaje); the server never
// generates message ids. FechaAccion and HoraAccion stay textual
// ("2006-01-02" / "15:04:05"); the store casts them on insert.
type NewMessage struct {
	IDUsuario     string
	IDMensaje     string
	IDPais        string
	IDTipoCarpeta string
	IDCategoria   string
	Asunto        string
	CuerpoMensaje string
	FechaAccion   string
	HoraAccion    string

	// Optional back-reference to the message being replied to.
	MenIDUsuario *string
	MenIDMensaje *string
}

// NewRecipient fans a message out to one contact with a copy-type tag.
type NewRecipient struct {
	IDPais         string
	IDUsuario      string
	IDMensaje      string
	IDTipoCopia    string
	ConsecContacto int64
}

// InboxEntry is one received message as seen by a contact: sender identity
// plus the message content.
type InboxEntry struct {
	Nombre        string `json:"nombre"`
	Asunto        string `json:"asunto"`
	CuerpoMensaje string `json:"cuerpoMensaje"`
	FechaAccion   string `json:"fechaAccion"`
	HoraAccion    string `json:"horaAccion"`
	Remitente     string `json:"remitente"`
}

// SentRow is one flat row of the sent-mail join: one row per
// (message, recipient) pair. The store returns these ordered by action date
// descending; GroupSent folds them into one record per message.
type SentRow struct {
	IDMensaje      string
	Nombre         string
	CorreoContacto string
	Asunto         string
	CuerpoMensaje  string
	FechaAccion    string
	HoraAccion     string
	IDTipoCopia    string
}

// SentRecipient is one addressee inside a grouped sent message.
type SentRecipient struct {
	Nombre         string `json:"nombre"`
	CorreoContacto string `json:"correoContacto"`
	IDTipoCopia    string `json:"idTipoCopia"`
}

// SentMessage is one authored message with its full recipient list.
type SentMessage struct {
	IDMensaje     string          `json:"idMensaje"`
	Asunto        string          `json:"asunto"`
	CuerpoMensaje string          `json:"cuerpoMensaje"`
	FechaAccion   string          `json:"fechaAccion"`
	HoraAccion    string          `json:"horaAccion"`
	Destinatarios []SentRecipient `json:"destinatarios"`
}

// GroupSent folds the one-row-per-recipient join back into one record per
// message, keeping the order in which message ids first appear (the store
// already sorts by action date descending). A message sent to N addressees
// yields exactly one SentMessage with N entries in Destinatarios.
func GroupSent(rows []SentRow) []SentMessage {
	grouped := make([]SentMessage, 0)
	index := make(map[string]int)

	for _, row := range rows {
		i, seen := index[row.IDMensaje]
		if !seen {
			grouped = append(grouped, SentMessage{
				IDMensaje:     row.IDMensaje,
				Asunto:        row.Asunto,
				CuerpoMensaje: row.CuerpoMensaje,
				FechaAccion:   row.FechaAccion,
				HoraAccion:    row.HoraAccion,
				Destinatarios: make([]SentRecipient, 0, 1),
			})
			i = len(grouped) - 1
			index[row.IDMensaje] = i
		}
		grouped[i].Destinatarios = append(grouped[i].Destinatarios, SentRecipient{
			Nombre:         row.Nombre,
			CorreoContacto: row.CorreoContacto,
			IDTipoCopia:    row.IDTipoCopia,
		})
	}

	return grouped
}

// NewAttachment is the metadata row for one uploaded file. The bytes
// themselves are delegated to external storage; only the name and the
// derived type code are persisted here.
type NewAttachment struct {
	IDTipoArchivo string
	IDUsuario     string
	IDMensaje     string
	NomArchivo    string
}

// FileTypeCode derives the attachment type code from a file name:
// the extension, uppercased, with the leading dot stripped.
// "report.PDF" → "PDF"; a name without an extension yields "".
func FileTypeCode(name string) string {
	return strings.ToUpper(strings.TrimPrefix(path.Ext(name), "."))
}
