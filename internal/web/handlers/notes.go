package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-admin/internal/backend"
	apperrors "github.com/spec-kit/helpdesk-admin/pkg/util"
)

// NotesHandler manages the note thread and its attachments.
type NotesHandler struct {
	client *backend.Client
}

// NewNotesHandler constructs the handler.
func NewNotesHandler(client *backend.Client) *NotesHandler {
	return &NotesHandler{client: client}
}

// Create POST /tickets/:id/notes. The browser's multipart form is
// re-encoded towards the backend with the note, noteType and files fields.
func (h *NotesHandler) Create(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	note := strings.TrimSpace(c.FormValue("note"))
	noteType := c.FormValue("noteType")
	if note == "" {
		return apperrors.NewValidationError("note text is required", nil)
	}

	var files []backend.NoteFile
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["files"] {
			f, err := fh.Open()
			if err != nil {
				return apperrors.NewInternalError(err)
			}
			defer f.Close()
			files = append(files, backend.NoteFile{Name: fh.Filename, Content: f})
		}
	}

	if _, err := h.client.CreateNote(c.UserContext(), sessionToken(c), id, note, noteType, files); err != nil {
		return err
	}
	return c.Redirect("/tickets/"+strconv.Itoa(id), fiber.StatusSeeOther)
}

// Download GET /tickets/:id/notes/attachments/:attachmentId/download
// streams the binary straight to the browser with a Content-Disposition
// header so it saves under its original name.
func (h *NotesHandler) Download(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	attachmentID, err := intParam(c, "attachmentId")
	if err != nil {
		return err
	}
	fileName := c.Query("name", "attachment")

	dl, err := h.client.DownloadAttachment(c.UserContext(), sessionToken(c), id, attachmentID, fileName)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, dl.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+dl.FileName+`"`)
	if dl.Size > 0 {
		return c.SendStream(dl.Body, int(dl.Size))
	}
	return c.SendStream(dl.Body)
}

// DeleteAttachment POST /tickets/:id/notes/attachments/:attachmentId/delete.
func (h *NotesHandler) DeleteAttachment(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	attachmentID, err := intParam(c, "attachmentId")
	if err != nil {
		return err
	}
	if err := h.client.DeleteAttachment(c.UserContext(), sessionToken(c), id, attachmentID); err != nil {
		return err
	}
	return c.Redirect("/tickets/"+strconv.Itoa(id), fiber.StatusSeeOther)
}
