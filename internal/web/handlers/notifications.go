package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-admin/internal/backend"
)

// NotificationsHandler lists and manages the signed-in user's notifications.
type NotificationsHandler struct {
	client *backend.Client
}

func NewNotificationsHandler(client *backend.Client) *NotificationsHandler {
	return &NotificationsHandler{client: client}
}

// List GET /notifications.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	items, err := h.client.ListNotifications(c.UserContext(), sessionToken(c))
	if err != nil {
		return err
	}

	unread := 0
	for _, n := range items {
		if !n.IsRead {
			unread++
		}
	}

	return c.Render("notifications", fiber.Map{
		"Title":         "Notifications",
		"Notifications": items,
		"Unread":        unread,
	}, "layouts/main")
}

// MarkRead POST /notifications/:id/read.
func (h *NotificationsHandler) MarkRead(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.client.MarkNotificationRead(c.UserContext(), sessionToken(c), id); err != nil {
		return err
	}
	return c.Redirect("/notifications", fiber.StatusSeeOther)
}

// Delete POST /notifications/:id/delete.
func (h *NotificationsHandler) Delete(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.client.DeleteNotification(c.UserContext(), sessionToken(c), id); err != nil {
		return err
	}
	return c.Redirect("/notifications", fiber.StatusSeeOther)
}
