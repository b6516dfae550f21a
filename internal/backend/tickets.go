package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/spec-kit/helpdesk-admin/internal/domain"
)

// ListTickets fetches every ticket visible to the caller.
func (c *Client) ListTickets(ctx context.Context, token string) ([]domain.Ticket, error) {
	return getList[domain.Ticket](ctx, c, token, "/api/Ticket")
}

// MyTickets fetches tickets created by or assigned to the caller.
func (c *Client) MyTickets(ctx context.Context, token string) ([]domain.Ticket, error) {
	return getList[domain.Ticket](ctx, c, token, "/api/Ticket/my-tickets")
}

// DepartmentTickets fetches the caller's department queue.
func (c *Client) DepartmentTickets(ctx context.Context, token string) ([]domain.Ticket, error) {
	return getList[domain.Ticket](ctx, c, token, "/api/Ticket/department-tickets")
}

// HighPriorityTickets fetches the escalation queue.
func (c *Client) HighPriorityTickets(ctx context.Context, token string) ([]domain.Ticket, error) {
	return getList[domain.Ticket](ctx, c, token, "/api/Ticket/high-priority-tickets")
}

// GetTicket fetches one ticket by id.
func (c *Client) GetTicket(ctx context.Context, token string, id int) (*domain.Ticket, error) {
	return getJSON[domain.Ticket](ctx, c, token, fmt.Sprintf("/api/Ticket/%d", id))
}

// CreateTicket registers a new ticket.
func (c *Client) CreateTicket(ctx context.Context, token string, ticket domain.Ticket) (*domain.Ticket, error) {
	return sendJSON[domain.Ticket](ctx, c, token, http.MethodPost, "/api/Ticket", ticket)
}

// UpdateTicket replaces ticket fields.
func (c *Client) UpdateTicket(ctx context.Context, token string, ticket domain.Ticket) (*domain.Ticket, error) {
	return sendJSON[domain.Ticket](ctx, c, token, http.MethodPut, fmt.Sprintf("/api/Ticket/%d", ticket.ID), ticket)
}

// DeleteTicket removes a ticket.
func (c *Client) DeleteTicket(ctx context.Context, token string, id int) error {
	return c.doVoid(ctx, token, http.MethodDelete, fmt.Sprintf("/api/Ticket/%d", id), nil)
}

// AssignTicket assigns the ticket to the calling user.
func (c *Client) AssignTicket(ctx context.Context, token string, id int) error {
	return c.doVoid(ctx, token, http.MethodPost, fmt.Sprintf("/api/Ticket/%d/assign", id), nil)
}

// SetTicketPriority pushes a priority change immediately.
func (c *Client) SetTicketPriority(ctx context.Context, token string, id, priority int) error {
	payload := map[string]int{"priority": priority}
	return c.doVoid(ctx, token, http.MethodPut, fmt.Sprintf("/api/Ticket/%d/priority", id), payload)
}

// TransferTicket moves the ticket to another group.
func (c *Client) TransferTicket(ctx context.Context, token string, id int, req domain.TransferRequest) error {
	return c.doVoid(ctx, token, http.MethodPost, fmt.Sprintf("/api/Ticket/%d/transfer", id), req)
}

// CancelTicket cancels the ticket with a reason.
func (c *Client) CancelTicket(ctx context.Context, token string, id int, req domain.CancelRequest) error {
	return c.doVoid(ctx, token, http.MethodPost, fmt.Sprintf("/api/Ticket/%d/cancel", id), req)
}

// UploadTicketAttachment sends a file to /api/Ticket/upload and returns the
// stored path.
func (c *Client) UploadTicketAttachment(ctx context.Context, token, fileName string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	out, err := sendMultipart[struct {
		Path string `json:"path"`
	}](ctx, c, token, "/api/Ticket/upload", &buf, writer.FormDataContentType())
	if err != nil {
		return "", err
	}
	return out.Path, nil
}

// MostOpenedByGroup returns the ranking of groups by tickets opened.
func (c *Client) MostOpenedByGroup(ctx context.Context, token string) ([]domain.TicketStat, error) {
	return getList[domain.TicketStat](ctx, c, token, "/api/Ticket/most-opened-by-group")
}

// MostOpenedToGroup returns the ranking of groups by tickets received.
func (c *Client) MostOpenedToGroup(ctx context.Context, token string) ([]domain.TicketStat, error) {
	return getList[domain.TicketStat](ctx, c, token, "/api/Ticket/most-opened-to-group")
}

// MostAssignedToUser returns the ranking of users by assignments.
func (c *Client) MostAssignedToUser(ctx context.Context, token string) ([]domain.TicketStat, error) {
	return getList[domain.TicketStat](ctx, c, token, "/api/Ticket/most-assigned-to-user")
}
