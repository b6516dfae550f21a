package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-admin/internal/backend"
)

// DashboardHandler serves the landing screen with the ranking reports.
type DashboardHandler struct {
	client *backend.Client
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(client *backend.Client) *DashboardHandler {
	return &DashboardHandler{client: client}
}

// Show GET /.
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	token := sessionToken(c)

	openedBy, err := h.client.MostOpenedByGroup(c.UserContext(), token)
	if err != nil {
		return err
	}
	openedTo, err := h.client.MostOpenedToGroup(c.UserContext(), token)
	if err != nil {
		return err
	}
	assigned, err := h.client.MostAssignedToUser(c.UserContext(), token)
	if err != nil {
		return err
	}

	return c.Render("dashboard", fiber.Map{
		"Title":        "Dashboard",
		"OpenedBy":     openedBy,
		"OpenedTo":     openedTo,
		"AssignedUser": assigned,
	}, "layouts/main")
}
