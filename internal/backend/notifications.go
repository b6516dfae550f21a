package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spec-kit/helpdesk-admin/internal/domain"
)

// ListNotifications fetches the caller's notifications.
func (c *Client) ListNotifications(ctx context.Context, token string) ([]domain.Notification, error) {
	return getList[domain.Notification](ctx, c, token, "/api/notification")
}

// MarkNotificationRead flips a notification to read.
func (c *Client) MarkNotificationRead(ctx context.Context, token string, id int) error {
	return c.doVoid(ctx, token, http.MethodPut, fmt.Sprintf("/api/notification/%d", id), nil)
}

// DeleteNotification removes a notification.
func (c *Client) DeleteNotification(ctx context.Context, token string, id int) error {
	return c.doVoid(ctx, token, http.MethodDelete, fmt.Sprintf("/api/notification/%d", id), nil)
}

// WarrantyExpiring fetches inventory whose warranty runs out soon.
func (c *Client) WarrantyExpiring(ctx context.Context, token string) ([]domain.WarrantyRecord, error) {
	return getList[domain.WarrantyRecord](ctx, c, token, "/api/Inventory/warranty-expiring")
}

// WarrantyExpired fetches inventory whose warranty already lapsed.
func (c *Client) WarrantyExpired(ctx context.Context, token string) ([]domain.WarrantyRecord, error) {
	return getList[domain.WarrantyRecord](ctx, c, token, "/api/Inventory/warranty-expired")
}

// AskResponse is the assistant's answer payload.
type AskResponse struct {
	Answer string `json:"answer"`
}

// Ask proxies a question to the backend assistant.
func (c *Client) Ask(ctx context.Context, token, question string) (*AskResponse, error) {
	path := "/api/AppInfo/ask?q=" + url.QueryEscape(question)
	return getJSON[AskResponse](ctx, c, token, path)
}

// AskDeepseek proxies a question to the alternate assistant model.
func (c *Client) AskDeepseek(ctx context.Context, token, question string) (*AskResponse, error) {
	path := "/api/AppInfo/ask-deepseek?q=" + url.QueryEscape(question)
	return getJSON[AskResponse](ctx, c, token, path)
}

// LoginResponse carries the bearer token issued by the backend.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. The only unauthenticated
// call in the client.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	payload := map[string]string{"email": email, "password": password}
	return sendJSON[LoginResponse](ctx, c, "", http.MethodPost, "/api/Auth/login", payload)
}
