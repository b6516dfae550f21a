package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spec-kit/helpdesk-admin/internal/domain"
)

// SettingsAPI exposes the uniform CRUD surface of one settings entity
// endpoint (list, active-only list, create, update, hard delete).
type SettingsAPI struct {
	c    *Client
	base string
}

// List fetches all records including deactivated ones.
func (a SettingsAPI) List(ctx context.Context, token string) ([]domain.SettingsEntity, error) {
	return getList[domain.SettingsEntity](ctx, a.c, token, a.base)
}

// ListActive fetches only records with isActive set.
func (a SettingsAPI) ListActive(ctx context.Context, token string) ([]domain.SettingsEntity, error) {
	return getList[domain.SettingsEntity](ctx, a.c, token, a.base+"/active")
}

// Create adds a record.
func (a SettingsAPI) Create(ctx context.Context, token string, entity domain.SettingsEntity) (*domain.SettingsEntity, error) {
	return sendJSON[domain.SettingsEntity](ctx, a.c, token, http.MethodPost, a.base, entity)
}

// Update replaces a record.
func (a SettingsAPI) Update(ctx context.Context, token string, entity domain.SettingsEntity) (*domain.SettingsEntity, error) {
	return sendJSON[domain.SettingsEntity](ctx, a.c, token, http.MethodPut, fmt.Sprintf("%s/%d", a.base, entity.ID), entity)
}

// Delete removes a record permanently. Soft deactivation goes through Update
// with isActive=false instead.
func (a SettingsAPI) Delete(ctx context.Context, token string, id int) error {
	return a.c.doVoid(ctx, token, http.MethodDelete, fmt.Sprintf("%s/%d", a.base, id), nil)
}

// Brands accesses /api/Brand.
func (c *Client) Brands() SettingsAPI { return SettingsAPI{c: c, base: "/api/Brand"} }

// Families accesses /api/Family.
func (c *Client) Families() SettingsAPI { return SettingsAPI{c: c, base: "/api/Family"} }

// InventoryTypes accesses /api/InventoryType.
func (c *Client) InventoryTypes() SettingsAPI { return SettingsAPI{c: c, base: "/api/InventoryType"} }

// CancelReasons accesses /api/CancelReason.
func (c *Client) CancelReasons() SettingsAPI { return SettingsAPI{c: c, base: "/api/CancelReason"} }

// DelayReasons accesses /api/DelayReason.
func (c *Client) DelayReasons() SettingsAPI { return SettingsAPI{c: c, base: "/api/DelayReason"} }
