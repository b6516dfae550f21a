package domain

import "time"

// NoteAttachment is a file attached to a ticket note. Attachments are the
// only deletable part of a note.
type NoteAttachment struct {
	ID       int    `json:"id"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
}

// TicketNote belongs to exactly one ticket. Notes are created once (via
// multipart upload when files are present) and never edited.
type TicketNote struct {
	ID             int              `json:"id"`
	TicketID       int              `json:"ticketId"`
	Note           string           `json:"note"`
	NoteType       string           `json:"noteType"`
	CreatedByEmail string           `json:"createdByEmail"`
	CreatedAt      time.Time        `json:"createdAt"`
	Attachments    []NoteAttachment `json:"attachments"`
}
