package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-admin/internal/backend"
	"github.com/spec-kit/helpdesk-admin/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-admin/pkg/util"
)

// settingsResource describes one settings entity screen.
type settingsResource struct {
	Slug     string
	Title    string
	Singular string
	API      backend.SettingsAPI
}

// SettingsHandler serves the uniform CRUD screens for the simple reference
// entities. Models have their own handler because of the brand reference.
type SettingsHandler struct {
	resources map[string]settingsResource
}

// NewSettingsHandler constructs the handler with every settings endpoint.
func NewSettingsHandler(client *backend.Client) *SettingsHandler {
	list := []settingsResource{
		{Slug: "brands", Title: "Brands", Singular: "Brand", API: client.Brands()},
		{Slug: "families", Title: "Families", Singular: "Family", API: client.Families()},
		{Slug: "inventory-types", Title: "Inventory Types", Singular: "Inventory Type", API: client.InventoryTypes()},
		{Slug: "cancel-reasons", Title: "Cancel Reasons", Singular: "Cancel Reason", API: client.CancelReasons()},
		{Slug: "delay-reasons", Title: "Delay Reasons", Singular: "Delay Reason", API: client.DelayReasons()},
	}
	resources := make(map[string]settingsResource, len(list))
	for _, r := range list {
		resources[r.Slug] = r
	}
	return &SettingsHandler{resources: resources}
}

func (h *SettingsHandler) resolve(c *fiber.Ctx) (settingsResource, error) {
	res, ok := h.resources[c.Params("resource")]
	if !ok {
		return settingsResource{}, apperrors.NewNotFound("settings screen", nil)
	}
	return res, nil
}

// findEntity locates one record in the freshly fetched list; there is no
// per-id endpoint on the settings surface.
func findEntity(items []domain.SettingsEntity, id int) (domain.SettingsEntity, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.SettingsEntity{}, false
}

// List GET /settings/:resource.
func (h *SettingsHandler) List(c *fiber.Ctx) error {
	res, err := h.resolve(c)
	if err != nil {
		return err
	}
	items, err := res.API.List(c.UserContext(), sessionToken(c))
	if err != nil {
		return err
	}
	return c.Render("settings_list", fiber.Map{
		"Title":    res.Title,
		"Resource": res,
		"Items":    items,
	}, "layouts/main")
}

// NewForm GET /settings/:resource/new.
func (h *SettingsHandler) NewForm(c *fiber.Ctx) error {
	res, err := h.resolve(c)
	if err != nil {
		return err
	}
	return c.Render("settings_form", fiber.Map{
		"Title":    "New " + res.Singular,
		"Resource": res,
		"Entity":   domain.SettingsEntity{IsActive: true},
	}, "layouts/main")
}

// Create POST /settings/:resource. A blank name never issues a backend
// call.
func (h *SettingsHandler) Create(c *fiber.Ctx) error {
	res, err := h.resolve(c)
	if err != nil {
		return err
	}
	entity := domain.SettingsEntity{
		Name:     strings.TrimSpace(c.FormValue("name")),
		IsActive: checked(c, "isActive"),
	}
	if entity.Name == "" {
		c.Status(fiber.StatusBadRequest)
		return c.Render("settings_form", fiber.Map{
			"Title":    "New " + res.Singular,
			"Resource": res,
			"Entity":   entity,
			"Error":    "name is required",
		}, "layouts/main")
	}

	if _, err := res.API.Create(c.UserContext(), sessionToken(c), entity); err != nil {
		message, fatal := banner(err)
		if fatal != nil {
			return fatal
		}
		c.Status(fiber.StatusBadRequest)
		return c.Render("settings_form", fiber.Map{
			"Title":    "New " + res.Singular,
			"Resource": res,
			"Entity":   entity,
			"Error":    message,
		}, "layouts/main")
	}
	return c.Redirect("/settings/"+res.Slug+"?saved=1", fiber.StatusSeeOther)
}

// EditForm GET /settings/:resource/:id/edit.
func (h *SettingsHandler) EditForm(c *fiber.Ctx) error {
	res, err := h.resolve(c)
	if err != nil {
		return err
	}
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	items, err := res.API.List(c.UserContext(), sessionToken(c))
	if err != nil {
		return err
	}
	entity, ok := findEntity(items, id)
	if !ok {
		return apperrors.NewNotFound(res.Singular, nil)
	}
	return c.Render("settings_form", fiber.Map{
		"Title":    "Edit " + res.Singular,
		"Resource": res,
		"Entity":   entity,
		"Editing":  true,
	}, "layouts/main")
}

// Update POST /settings/:resource/:id.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	res, err := h.resolve(c)
	if err != nil {
		return err
	}
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	entity := domain.SettingsEntity{
		ID:       id,
		Name:     strings.TrimSpace(c.FormValue("name")),
		IsActive: checked(c, "isActive"),
	}
	if entity.Name == "" {
		c.Status(fiber.StatusBadRequest)
		return c.Render("settings_form", fiber.Map{
			"Title":    "Edit " + res.Singular,
			"Resource": res,
			"Entity":   entity,
			"Editing":  true,
			"Error":    "name is required",
		}, "layouts/main")
	}

	if _, err := res.API.Update(c.UserContext(), sessionToken(c), entity); err != nil {
		message, fatal := banner(err)
		if fatal != nil {
			return fatal
		}
		c.Status(fiber.StatusBadRequest)
		return c.Render("settings_form", fiber.Map{
			"Title":    "Edit " + res.Singular,
			"Resource": res,
			"Entity":   entity,
			"Editing":  true,
			"Error":    message,
		}, "layouts/main")
	}
	return c.Redirect("/settings/"+res.Slug+"?saved=1", fiber.StatusSeeOther)
}

// ConfirmDelete GET /settings/:resource/:id/delete renders the blocking
// confirmation step.
func (h *SettingsHandler) ConfirmDelete(c *fiber.Ctx) error {
	res, err := h.resolve(c)
	if err != nil {
		return err
	}
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	items, err := res.API.List(c.UserContext(), sessionToken(c))
	if err != nil {
		return err
	}
	entity, ok := findEntity(items, id)
	if !ok {
		return apperrors.NewNotFound(res.Singular, nil)
	}
	return c.Render("settings_confirm_delete", fiber.Map{
		"Title":    "Delete " + res.Singular,
		"Resource": res,
		"Entity":   entity,
	}, "layouts/main")
}

// Delete POST /settings/:resource/:id/delete. The list only changes via
// refetch after the redirect; a failure leaves the row in place.
func (h *SettingsHandler) Delete(c *fiber.Ctx) error {
	res, err := h.resolve(c)
	if err != nil {
		return err
	}
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err := res.API.Delete(c.UserContext(), sessionToken(c), id); err != nil {
		message, fatal := banner(err)
		if fatal != nil {
			return fatal
		}
		c.Status(fiber.StatusBadRequest)
		return c.Render("settings_confirm_delete", fiber.Map{
			"Title":    "Delete " + res.Singular,
			"Resource": res,
			"Entity":   domain.SettingsEntity{ID: id},
			"Error":    message,
		}, "layouts/main")
	}
	return c.Redirect("/settings/"+res.Slug+"?deleted=1", fiber.StatusSeeOther)
}
