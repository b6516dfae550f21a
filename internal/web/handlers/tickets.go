package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-admin/internal/backend"
	"github.com/spec-kit/helpdesk-admin/internal/domain"
	"github.com/spec-kit/helpdesk-admin/internal/service"
	"github.com/spec-kit/helpdesk-admin/internal/workflow"
	apperrors "github.com/spec-kit/helpdesk-admin/pkg/util"
)

// TicketsHandler drives the ticket screens and workflow actions.
type TicketsHandler struct {
	client  *backend.Client
	tickets *service.TicketService
}

// NewTicketsHandler constructs the handler.
func NewTicketsHandler(client *backend.Client, tickets *service.TicketService) *TicketsHandler {
	return &TicketsHandler{client: client, tickets: tickets}
}

// ticketRow pairs a ticket with the actions offered to the viewer.
type ticketRow struct {
	Ticket  domain.Ticket
	Actions workflow.ActionSet
}

// List GET /tickets?view=my|department|high-priority|all.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	view := c.Query("view", "department")
	token := sessionToken(c)

	var (
		tickets []domain.Ticket
		err     error
	)
	switch view {
	case "my":
		tickets, err = h.client.MyTickets(c.UserContext(), token)
	case "high-priority":
		tickets, err = h.client.HighPriorityTickets(c.UserContext(), token)
	case "all":
		tickets, err = h.client.ListTickets(c.UserContext(), token)
	default:
		view = "department"
		tickets, err = h.client.DepartmentTickets(c.UserContext(), token)
	}
	if err != nil {
		return err
	}

	userID := currentUserID(c)
	rows := make([]ticketRow, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, ticketRow{Ticket: t, Actions: workflow.ActionsFor(&t, userID)})
	}
	return c.Render("tickets", fiber.Map{
		"Title": "Tickets",
		"View":  view,
		"Rows":  rows,
	}, "layouts/main")
}

// Detail GET /tickets/:id.
func (h *TicketsHandler) Detail(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	return h.renderDetail(c, id, "")
}

// renderDetail fetches the full detail state and renders it with an
// optional error banner. Mutations that fail re-enter here so the screen
// keeps its context.
func (h *TicketsHandler) renderDetail(c *fiber.Ctx, id int, errorBanner string) error {
	token := sessionToken(c)

	ticket, err := h.client.GetTicket(c.UserContext(), token, id)
	if err != nil {
		return err
	}
	notes, err := h.client.ListNotes(c.UserContext(), token, id)
	if err != nil {
		return err
	}
	cancelReasons, err := h.client.CancelReasons().ListActive(c.UserContext(), token)
	if err != nil {
		return err
	}

	if errorBanner != "" {
		c.Status(fiber.StatusBadRequest)
	}
	return c.Render("ticket_detail", fiber.Map{
		"Title":         ticket.Subject,
		"Ticket":        ticket,
		"Notes":         notes,
		"CancelReasons": cancelReasons,
		"Priorities":    domain.Priorities(),
		"Actions":       workflow.ActionsFor(ticket, currentUserID(c)),
		"Error":         errorBanner,
	}, "layouts/main")
}

// NewForm GET /tickets/new.
func (h *TicketsHandler) NewForm(c *fiber.Ctx) error {
	return c.Render("ticket_new", fiber.Map{
		"Title":      "New Ticket",
		"Priorities": domain.Priorities(),
		"Ticket":     domain.Ticket{Priority: domain.PriorityNormal},
	}, "layouts/main")
}

// Create POST /tickets. An attachment, when present, is uploaded first and
// its stored path rides on the ticket payload.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	token := sessionToken(c)
	ticket := domain.Ticket{
		Subject:     strings.TrimSpace(c.FormValue("subject")),
		Description: strings.TrimSpace(c.FormValue("description")),
		ProblemType: c.FormValue("problemType"),
		Location:    c.FormValue("location"),
		Room:        c.FormValue("room"),
		Department:  c.FormValue("department"),
	}
	ticket.Priority, _ = strconv.Atoi(c.FormValue("priority"))

	problem := ""
	if ticket.Subject == "" || ticket.Description == "" {
		problem = "subject and description are required"
	} else if !domain.ValidPriority(ticket.Priority) {
		problem = "priority must be one of the defined codes"
	}

	if problem == "" {
		if fh, err := c.FormFile("attachment"); err == nil && fh != nil {
			f, err := fh.Open()
			if err != nil {
				return apperrors.NewInternalError(err)
			}
			path, upErr := h.client.UploadTicketAttachment(c.UserContext(), token, fh.Filename, f)
			f.Close()
			if upErr != nil {
				message, fatal := banner(upErr)
				if fatal != nil {
					return fatal
				}
				problem = message
			} else {
				ticket.AttachmentPath = path
			}
		}
	}

	if problem == "" {
		created, err := h.client.CreateTicket(c.UserContext(), token, ticket)
		if err != nil {
			message, fatal := banner(err)
			if fatal != nil {
				return fatal
			}
			problem = message
		} else if created != nil && created.ID > 0 {
			return c.Redirect("/tickets/"+strconv.Itoa(created.ID), fiber.StatusSeeOther)
		} else {
			return c.Redirect("/tickets?view=my", fiber.StatusSeeOther)
		}
	}

	c.Status(fiber.StatusBadRequest)
	return c.Render("ticket_new", fiber.Map{
		"Title":      "New Ticket",
		"Priorities": domain.Priorities(),
		"Ticket":     ticket,
		"Error":      problem,
	}, "layouts/main")
}

// Assign POST /tickets/:id/assign.
func (h *TicketsHandler) Assign(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.tickets.Assign(c.UserContext(), sessionToken(c), id); err != nil {
		message, fatal := banner(err)
		if fatal != nil {
			return fatal
		}
		return h.renderDetail(c, id, message)
	}
	return c.Redirect("/tickets/"+strconv.Itoa(id), fiber.StatusSeeOther)
}

// SetPriority POST /tickets/:id/priority.
func (h *TicketsHandler) SetPriority(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	priority, _ := strconv.Atoi(c.FormValue("priority"))
	if _, err := h.tickets.SetPriority(c.UserContext(), sessionToken(c), id, priority); err != nil {
		message, fatal := banner(err)
		if fatal != nil {
			return fatal
		}
		return h.renderDetail(c, id, message)
	}
	return c.Redirect("/tickets/"+strconv.Itoa(id), fiber.StatusSeeOther)
}

// Transfer POST /tickets/:id/transfer.
func (h *TicketsHandler) Transfer(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	req := domain.TransferRequest{
		Subject:     c.FormValue("subject"),
		Description: c.FormValue("description"),
	}
	req.GroupID, _ = strconv.Atoi(c.FormValue("groupId"))

	if _, err := h.tickets.Transfer(c.UserContext(), sessionToken(c), id, req); err != nil {
		message, fatal := banner(err)
		if fatal != nil {
			return fatal
		}
		return h.renderDetail(c, id, message)
	}
	return c.Redirect("/tickets/"+strconv.Itoa(id), fiber.StatusSeeOther)
}

// Cancel POST /tickets/:id/cancel.
func (h *TicketsHandler) Cancel(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	req := domain.CancelRequest{Note: c.FormValue("note")}
	req.CancelReasonID, _ = strconv.Atoi(c.FormValue("cancelReasonId"))

	if _, err := h.tickets.Cancel(c.UserContext(), sessionToken(c), id, req); err != nil {
		message, fatal := banner(err)
		if fatal != nil {
			return fatal
		}
		return h.renderDetail(c, id, message)
	}
	return c.Redirect("/tickets/"+strconv.Itoa(id), fiber.StatusSeeOther)
}

// Solution GET /tickets/:id/solution. The solution-capture flow lives in a
// separate application; this screen only points there.
func (h *TicketsHandler) Solution(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	c.Status(fiber.StatusNotImplemented)
	return c.Render("solution", fiber.Map{
		"Title":    "Solution",
		"TicketID": id,
	}, "layouts/main")
}
