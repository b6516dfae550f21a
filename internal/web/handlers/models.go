package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-admin/internal/backend"
	"github.com/spec-kit/helpdesk-admin/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-admin/pkg/util"
)

// ModelsHandler serves the device model screens. Unlike the other settings
// entities, a model references a brand and the backend expects the brand
// name denormalized onto the payload.
type ModelsHandler struct {
	client *backend.Client
}

// NewModelsHandler constructs the handler.
func NewModelsHandler(client *backend.Client) *ModelsHandler {
	return &ModelsHandler{client: client}
}

// List GET /settings/models.
func (h *ModelsHandler) List(c *fiber.Ctx) error {
	items, err := h.client.Models().List(c.UserContext(), sessionToken(c))
	if err != nil {
		return err
	}
	return c.Render("models_list", fiber.Map{
		"Title": "Models",
		"Items": items,
	}, "layouts/main")
}

// NewForm GET /settings/models/new.
func (h *ModelsHandler) NewForm(c *fiber.Ctx) error {
	brands, err := h.client.Brands().ListActive(c.UserContext(), sessionToken(c))
	if err != nil {
		return err
	}
	return c.Render("models_form", fiber.Map{
		"Title":  "New Model",
		"Brands": brands,
		"Model":  domain.Model{IsActive: true},
	}, "layouts/main")
}

// parseModelForm builds the payload, resolving brandName from the fetched
// brand list. The form never captures the name directly.
func parseModelForm(c *fiber.Ctx, brands []domain.SettingsEntity, id int) (domain.Model, string) {
	model := domain.Model{
		ID:       id,
		Name:     strings.TrimSpace(c.FormValue("name")),
		IsActive: checked(c, "isActive"),
	}
	model.BrandID, _ = strconv.Atoi(c.FormValue("brandId"))

	if model.Name == "" {
		return model, "name is required"
	}
	if model.BrandID <= 0 {
		return model, "a brand must be selected"
	}
	for _, b := range brands {
		if b.ID == model.BrandID {
			model.BrandName = b.Name
			return model, ""
		}
	}
	return model, "selected brand is unknown"
}

// Create POST /settings/models.
func (h *ModelsHandler) Create(c *fiber.Ctx) error {
	brands, err := h.client.Brands().ListActive(c.UserContext(), sessionToken(c))
	if err != nil {
		return err
	}
	model, problem := parseModelForm(c, brands, 0)
	if problem == "" {
		if _, err := h.client.Models().Create(c.UserContext(), sessionToken(c), model); err != nil {
			message, fatal := banner(err)
			if fatal != nil {
				return fatal
			}
			problem = message
		}
	}
	if problem != "" {
		c.Status(fiber.StatusBadRequest)
		return c.Render("models_form", fiber.Map{
			"Title":  "New Model",
			"Brands": brands,
			"Model":  model,
			"Error":  problem,
		}, "layouts/main")
	}
	return c.Redirect("/settings/models?saved=1", fiber.StatusSeeOther)
}

// EditForm GET /settings/models/:id/edit.
func (h *ModelsHandler) EditForm(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	token := sessionToken(c)
	items, err := h.client.Models().List(c.UserContext(), token)
	if err != nil {
		return err
	}
	var model *domain.Model
	for i := range items {
		if items[i].ID == id {
			model = &items[i]
			break
		}
	}
	if model == nil {
		return apperrors.NewNotFound("Model", nil)
	}
	brands, err := h.client.Brands().ListActive(c.UserContext(), token)
	if err != nil {
		return err
	}
	return c.Render("models_form", fiber.Map{
		"Title":   "Edit Model",
		"Brands":  brands,
		"Model":   *model,
		"Editing": true,
	}, "layouts/main")
}

// Update POST /settings/models/:id.
func (h *ModelsHandler) Update(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	brands, err := h.client.Brands().ListActive(c.UserContext(), sessionToken(c))
	if err != nil {
		return err
	}
	model, problem := parseModelForm(c, brands, id)
	if problem == "" {
		if _, err := h.client.Models().Update(c.UserContext(), sessionToken(c), model); err != nil {
			message, fatal := banner(err)
			if fatal != nil {
				return fatal
			}
			problem = message
		}
	}
	if problem != "" {
		c.Status(fiber.StatusBadRequest)
		return c.Render("models_form", fiber.Map{
			"Title":   "Edit Model",
			"Brands":  brands,
			"Model":   model,
			"Editing": true,
			"Error":   problem,
		}, "layouts/main")
	}
	return c.Redirect("/settings/models?saved=1", fiber.StatusSeeOther)
}

// ConfirmDelete GET /settings/models/:id/delete.
func (h *ModelsHandler) ConfirmDelete(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	items, err := h.client.Models().List(c.UserContext(), sessionToken(c))
	if err != nil {
		return err
	}
	for _, m := range items {
		if m.ID == id {
			return c.Render("models_confirm_delete", fiber.Map{
				"Title": "Delete Model",
				"Model": m,
			}, "layouts/main")
		}
	}
	return apperrors.NewNotFound("Model", nil)
}

// Delete POST /settings/models/:id/delete.
func (h *ModelsHandler) Delete(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.client.Models().Delete(c.UserContext(), sessionToken(c), id); err != nil {
		message, fatal := banner(err)
		if fatal != nil {
			return fatal
		}
		c.Status(fiber.StatusBadRequest)
		return c.Render("models_confirm_delete", fiber.Map{
			"Title": "Delete Model",
			"Model": domain.Model{ID: id},
			"Error": message,
		}, "layouts/main")
	}
	return c.Redirect("/settings/models?deleted=1", fiber.StatusSeeOther)
}
