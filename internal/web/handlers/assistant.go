package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-admin/internal/backend"
)

// AssistantHandler fronts the AppInfo question endpoints.
type AssistantHandler struct {
	client *backend.Client
}

func NewAssistantHandler(client *backend.Client) *AssistantHandler {
	return &AssistantHandler{client: client}
}

// Show GET /assistant.
func (h *AssistantHandler) Show(c *fiber.Ctx) error {
	return c.Render("assistant", fiber.Map{
		"Title": "Assistant",
		"Model": "default",
	}, "layouts/main")
}

// Ask POST /assistant.
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	question := strings.TrimSpace(c.FormValue("q"))
	model := c.FormValue("model", "default")

	if question == "" {
		return c.Status(fiber.StatusBadRequest).Render("assistant", fiber.Map{
			"Title": "Assistant",
			"Error": "question is required",
			"Model": model,
		}, "layouts/main")
	}

	var (
		resp *backend.AskResponse
		err  error
	)
	if model == "deepseek" {
		resp, err = h.client.AskDeepseek(c.UserContext(), sessionToken(c), question)
	} else {
		model = "default"
		resp, err = h.client.Ask(c.UserContext(), sessionToken(c), question)
	}
	if err != nil {
		message, fatal := banner(err)
		if fatal != nil {
			return fatal
		}
		return c.Render("assistant", fiber.Map{
			"Title":    "Assistant",
			"Error":    message,
			"Question": question,
			"Model":    model,
		}, "layouts/main")
	}

	return c.Render("assistant", fiber.Map{
		"Title":    "Assistant",
		"Question": question,
		"Answer":   resp.Answer,
		"Model":    model,
	}, "layouts/main")
}
