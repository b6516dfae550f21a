package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spec-kit/helpdesk-admin/internal/domain"
)

// ListRoles fetches all roles with their granted permissions.
func (c *Client) ListRoles(ctx context.Context, token string) ([]domain.Role, error) {
	return getList[domain.Role](ctx, c, token, "/api/Roles")
}

// GetRole fetches one role.
func (c *Client) GetRole(ctx context.Context, token string, id int) (*domain.Role, error) {
	return getJSON[domain.Role](ctx, c, token, fmt.Sprintf("/api/Roles/%d", id))
}

// CreateRole adds a role. Permissions are submitted as bare strings; absent
// entries mean not granted, there is no explicit denied form.
func (c *Client) CreateRole(ctx context.Context, token string, role domain.Role) (*domain.Role, error) {
	return sendJSON[domain.Role](ctx, c, token, http.MethodPost, "/api/Roles", role)
}

// UpdateRole replaces a role.
func (c *Client) UpdateRole(ctx context.Context, token string, role domain.Role) (*domain.Role, error) {
	return sendJSON[domain.Role](ctx, c, token, http.MethodPut, fmt.Sprintf("/api/Roles/%d", role.ID), role)
}

// DeleteRole removes a role.
func (c *Client) DeleteRole(ctx context.Context, token string, id int) error {
	return c.doVoid(ctx, token, http.MethodDelete, fmt.Sprintf("/api/Roles/%d", id), nil)
}
