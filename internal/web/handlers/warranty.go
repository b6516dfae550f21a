package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-admin/internal/backend"
	"github.com/spec-kit/helpdesk-admin/internal/domain"
)

// WarrantyHandler renders the inventory warranty reports.
type WarrantyHandler struct {
	client *backend.Client
}

func NewWarrantyHandler(client *backend.Client) *WarrantyHandler {
	return &WarrantyHandler{client: client}
}

// Report GET /warranty?view=expiring|expired.
func (h *WarrantyHandler) Report(c *fiber.Ctx) error {
	view := c.Query("view", "expiring")

	var (
		records []domain.WarrantyRecord
		err     error
	)
	switch view {
	case "expired":
		records, err = h.client.WarrantyExpired(c.UserContext(), sessionToken(c))
	default:
		view = "expiring"
		records, err = h.client.WarrantyExpiring(c.UserContext(), sessionToken(c))
	}
	if err != nil {
		return err
	}

	return c.Render("warranty", fiber.Map{
		"Title":   "Warranty report",
		"View":    view,
		"Records": records,
	}, "layouts/main")
}
