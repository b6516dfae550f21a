package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/spec-kit/helpdesk-admin/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-admin/pkg/util"
)

// NoteFile is one upload accompanying a note.
type NoteFile struct {
	Name    string
	Content io.Reader
}

// Download is an open binary attachment stream. Close it after copying.
type Download struct {
	Body        io.ReadCloser
	ContentType string
	FileName    string
	Size        int64
}

// ListNotes fetches the note thread of a ticket.
func (c *Client) ListNotes(ctx context.Context, token string, ticketID int) ([]domain.TicketNote, error) {
	return getList[domain.TicketNote](ctx, c, token, fmt.Sprintf("/api/tickets/%d/notes", ticketID))
}

// CreateNote posts a note as multipart form data: a note field, a noteType
// field, and each file under the shared files field name.
func (c *Client) CreateNote(ctx context.Context, token string, ticketID int, note, noteType string, files []NoteFile) (*domain.TicketNote, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("note", note); err != nil {
		return nil, err
	}
	if err := writer.WriteField("noteType", noteType); err != nil {
		return nil, err
	}
	for _, f := range files {
		part, err := writer.CreateFormFile("files", f.Name)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/api/tickets/%d/notes", ticketID)
	return sendMultipart[domain.TicketNote](ctx, c, token, path, &buf, writer.FormDataContentType())
}

// DownloadAttachment opens the binary stream of a note attachment. The web
// layer copies it to the browser with a Content-Disposition header so the
// file saves under its original name.
func (c *Client) DownloadAttachment(ctx context.Context, token string, ticketID, attachmentID int, fileName string) (*Download, error) {
	path := fmt.Sprintf("/api/tickets/%d/notes/attachments/%d", ticketID, attachmentID)
	resp, err := c.stream(ctx, token, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &Download{
		Body:        resp.Body,
		ContentType: contentType,
		FileName:    fileName,
		Size:        resp.ContentLength,
	}, nil
}

// DeleteAttachment removes a single attachment from a note.
func (c *Client) DeleteAttachment(ctx context.Context, token string, ticketID, attachmentID int) error {
	path := fmt.Sprintf("/api/tickets/%d/notes/attachments/%d", ticketID, attachmentID)
	return c.doVoid(ctx, token, http.MethodDelete, path, nil)
}

// sendMultipart posts an already encoded multipart body.
func sendMultipart[T any](ctx context.Context, c *Client, token, path string, body io.Reader, contentType string) (*T, error) {
	data, err := c.do(ctx, token, http.MethodPost, path, body, contentType)
	if err != nil {
		return nil, err
	}
	var out T
	if len(bytes.TrimSpace(data)) == 0 {
		return &out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("decoding %s: %w", path, err))
	}
	return &out, nil
}
