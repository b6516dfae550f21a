package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-admin/internal/session"
)

// HealthHandler exposes liveness and readiness probes.
type HealthHandler struct {
	store      session.Store
	backendURL string
}

func NewHealthHandler(store session.Store, backendURL string) *HealthHandler {
	return &HealthHandler{store: store, backendURL: backendURL}
}

// Live GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready GET /health/ready.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if err := h.store.Ping(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "unavailable",
			"session": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"status":  "ok",
		"backend": h.backendURL,
	})
}
