package service

import (
	"context"
	"strings"

	"github.com/spec-kit/helpdesk-admin/internal/backend"
	"github.com/spec-kit/helpdesk-admin/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-admin/pkg/util"
)

// TicketService coordinates ticket workflow actions against the backend.
// Every mutation is followed by a refetch: the server computes SLA fields
// and the displayed state must come from it, never from an optimistic local
// merge.
type TicketService struct {
	client *backend.Client
}

// NewTicketService constructs the service.
func NewTicketService(client *backend.Client) *TicketService {
	return &TicketService{client: client}
}

// Assign takes the ticket for the calling user and returns the refetched
// ticket.
func (s *TicketService) Assign(ctx context.Context, token string, ticketID int) (*domain.Ticket, error) {
	if err := s.client.AssignTicket(ctx, token, ticketID); err != nil {
		return nil, err
	}
	return s.client.GetTicket(ctx, token, ticketID)
}

// Transfer validates the mandatory fields locally and only then calls the
// backend. A blank field never produces a network call.
func (s *TicketService) Transfer(ctx context.Context, token string, ticketID int, req domain.TransferRequest) (*domain.Ticket, error) {
	details := map[string]any{}
	if req.GroupID <= 0 {
		details["groupId"] = "required"
	}
	if strings.TrimSpace(req.Subject) == "" {
		details["subject"] = "required"
	}
	if strings.TrimSpace(req.Description) == "" {
		details["description"] = "required"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("target group, subject and description are required", details)
	}

	if err := s.client.TransferTicket(ctx, token, ticketID, req); err != nil {
		return nil, err
	}
	return s.client.GetTicket(ctx, token, ticketID)
}

// Cancel requires a reason selected from the active cancel-reason list; the
// note stays optional.
func (s *TicketService) Cancel(ctx context.Context, token string, ticketID int, req domain.CancelRequest) (*domain.Ticket, error) {
	if req.CancelReasonID <= 0 {
		return nil, apperrors.NewValidationError("a cancel reason is required", map[string]any{"cancelReasonId": "required"})
	}

	if err := s.client.CancelTicket(ctx, token, ticketID, req); err != nil {
		return nil, err
	}
	return s.client.GetTicket(ctx, token, ticketID)
}

// SetPriority pushes one of the four fixed codes and refetches.
func (s *TicketService) SetPriority(ctx context.Context, token string, ticketID, priority int) (*domain.Ticket, error) {
	if !domain.ValidPriority(priority) {
		return nil, apperrors.NewValidationError("priority must be one of the defined codes", map[string]any{"priority": priority})
	}

	if err := s.client.SetTicketPriority(ctx, token, ticketID, priority); err != nil {
		return nil, err
	}
	return s.client.GetTicket(ctx, token, ticketID)
}
