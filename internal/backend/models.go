package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spec-kit/helpdesk-admin/internal/domain"
)

// ModelsAPI covers /api/Model, which deviates from the shared settings shape
// by carrying the brand reference.
type ModelsAPI struct {
	c *Client
}

// Models accesses /api/Model.
func (c *Client) Models() ModelsAPI { return ModelsAPI{c: c} }

// List fetches all models.
func (a ModelsAPI) List(ctx context.Context, token string) ([]domain.Model, error) {
	return getList[domain.Model](ctx, a.c, token, "/api/Model")
}

// ListActive fetches active models.
func (a ModelsAPI) ListActive(ctx context.Context, token string) ([]domain.Model, error) {
	return getList[domain.Model](ctx, a.c, token, "/api/Model/active")
}

// Create adds a model. The payload must already carry brandName alongside
// brandId; the backend expects both.
func (a ModelsAPI) Create(ctx context.Context, token string, model domain.Model) (*domain.Model, error) {
	return sendJSON[domain.Model](ctx, a.c, token, http.MethodPost, "/api/Model", model)
}

// Update replaces a model.
func (a ModelsAPI) Update(ctx context.Context, token string, model domain.Model) (*domain.Model, error) {
	return sendJSON[domain.Model](ctx, a.c, token, http.MethodPut, fmt.Sprintf("/api/Model/%d", model.ID), model)
}

// Delete removes a model permanently.
func (a ModelsAPI) Delete(ctx context.Context, token string, id int) error {
	return a.c.doVoid(ctx, token, http.MethodDelete, fmt.Sprintf("/api/Model/%d", id), nil)
}
