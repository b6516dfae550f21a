package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-admin/internal/backend"
	"github.com/spec-kit/helpdesk-admin/internal/domain"
)

// RolesHandler serves the role list and the permission editor.
type RolesHandler struct {
	client *backend.Client
}

// NewRolesHandler constructs the handler.
func NewRolesHandler(client *backend.Client) *RolesHandler {
	return &RolesHandler{client: client}
}

// catalogRow is one row of the editor: an action with its granted state per
// the role being edited.
type catalogRow struct {
	Action     string
	Permission string
	Granted    bool
}

// catalogGroup is one resource category of checkboxes.
type catalogGroup struct {
	Resource string
	Rows     []catalogRow
}

// buildCatalog maps the fixed permission catalog against a role's granted
// set. The role's permissions were already normalized at the decoding
// boundary, so string and object shapes both land here as names.
func buildCatalog(role *domain.Role) []catalogGroup {
	groups := domain.PermissionCatalog()
	out := make([]catalogGroup, 0, len(groups))
	for _, g := range groups {
		rows := make([]catalogRow, 0, len(g.Actions))
		for _, action := range g.Actions {
			name := domain.PermissionName(g.Resource, action)
			granted := role != nil && role.HasPermission(name)
			rows = append(rows, catalogRow{Action: action, Permission: name, Granted: granted})
		}
		out = append(out, catalogGroup{Resource: g.Resource, Rows: rows})
	}
	return out
}

// permissionsFromForm flattens the checkbox selection back into granted
// permission strings; unchecked entries are simply absent.
func permissionsFromForm(c *fiber.Ctx) []domain.Permission {
	var out []domain.Permission
	args := c.Request().PostArgs()
	for _, raw := range args.PeekMulti("perm") {
		name := string(raw)
		if name != "" {
			out = append(out, domain.Permission{Name: name})
		}
	}
	return out
}

// List GET /roles.
func (h *RolesHandler) List(c *fiber.Ctx) error {
	roles, err := h.client.ListRoles(c.UserContext(), sessionToken(c))
	if err != nil {
		return err
	}
	return c.Render("roles", fiber.Map{
		"Title": "Roles",
		"Roles": roles,
	}, "layouts/main")
}

// NewForm GET /roles/new.
func (h *RolesHandler) NewForm(c *fiber.Ctx) error {
	return c.Render("role_form", fiber.Map{
		"Title":   "New Role",
		"Role":    domain.Role{},
		"Catalog": buildCatalog(nil),
	}, "layouts/main")
}

// Create POST /roles.
func (h *RolesHandler) Create(c *fiber.Ctx) error {
	role := domain.Role{
		Name:        strings.TrimSpace(c.FormValue("name")),
		Description: c.FormValue("description"),
		Permissions: permissionsFromForm(c),
	}
	problem := ""
	if role.Name == "" {
		problem = "name is required"
	} else if _, err := h.client.CreateRole(c.UserContext(), sessionToken(c), role); err != nil {
		message, fatal := banner(err)
		if fatal != nil {
			return fatal
		}
		problem = message
	}
	if problem != "" {
		c.Status(fiber.StatusBadRequest)
		return c.Render("role_form", fiber.Map{
			"Title":   "New Role",
			"Role":    role,
			"Catalog": buildCatalog(&role),
			"Error":   problem,
		}, "layouts/main")
	}
	return c.Redirect("/roles?saved=1", fiber.StatusSeeOther)
}

// EditForm GET /roles/:id/edit.
func (h *RolesHandler) EditForm(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	role, err := h.client.GetRole(c.UserContext(), sessionToken(c), id)
	if err != nil {
		return err
	}
	return c.Render("role_form", fiber.Map{
		"Title":   "Edit Role",
		"Role":    *role,
		"Catalog": buildCatalog(role),
		"Editing": true,
	}, "layouts/main")
}

// Update POST /roles/:id.
func (h *RolesHandler) Update(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	role := domain.Role{
		ID:          id,
		Name:        strings.TrimSpace(c.FormValue("name")),
		Description: c.FormValue("description"),
		Permissions: permissionsFromForm(c),
	}
	problem := ""
	if role.Name == "" {
		problem = "name is required"
	} else if _, err := h.client.UpdateRole(c.UserContext(), sessionToken(c), role); err != nil {
		message, fatal := banner(err)
		if fatal != nil {
			return fatal
		}
		problem = message
	}
	if problem != "" {
		c.Status(fiber.StatusBadRequest)
		return c.Render("role_form", fiber.Map{
			"Title":   "Edit Role",
			"Role":    role,
			"Catalog": buildCatalog(&role),
			"Editing": true,
			"Error":   problem,
		}, "layouts/main")
	}
	return c.Redirect("/roles?saved=1", fiber.StatusSeeOther)
}

// Delete POST /roles/:id/delete.
func (h *RolesHandler) Delete(c *fiber.Ctx) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.client.DeleteRole(c.UserContext(), sessionToken(c), id); err != nil {
		return err
	}
	return c.Redirect("/roles?deleted=1", fiber.StatusSeeOther)
}
