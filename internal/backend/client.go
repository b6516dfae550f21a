package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-admin/internal/observability"
	apperrors "github.com/spec-kit/helpdesk-admin/pkg/util"
)

type ctxKey int

const requestIDKey ctxKey = iota

// WithRequestID tags the context so outbound calls carry X-Request-Id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// Client issues requests against the helpdesk REST backend. The bearer token
// is passed per call; the client never stores credentials. Every call is
// fire-once: no retries, no deduplication.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	metrics *observability.Metrics
}

// New builds a client for the given base URL.
func New(baseURL string, timeout time.Duration, logger *zap.Logger, metrics *observability.Metrics) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
		metrics: metrics,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// errorBody is the error payload shape the backend uses inconsistently:
// either a message field or an error field may carry the text.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do issues one request and normalizes failures. Callers never see raw
// transport errors: 401 becomes the session-expired error, other statuses
// pick the message by priority (body message, body error, transport text,
// generic fallback).
func (c *Client) do(ctx context.Context, token, method, path string, body io.Reader, contentType string) ([]byte, error) {
	resp, err := c.send(ctx, token, method, path, body, contentType)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewTransportError(fmt.Errorf("reading %s %s: %w", method, path, err))
	}
	return data, nil
}

// stream issues one request and hands the open response to the caller, used
// for binary attachment downloads. The caller owns closing the body.
func (c *Client) stream(ctx context.Context, token, method, path string) (*http.Response, error) {
	return c.send(ctx, token, method, path, nil, "")
}

func (c *Client) send(ctx context.Context, token, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
		req.Header.Set("X-Request-Id", id)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.RecordBackendCall(path, method, 0, time.Since(start))
		c.logger.Warn("backend call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, apperrors.NewTransportError(err)
	}
	c.metrics.RecordBackendCall(path, method, resp.StatusCode, time.Since(start))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, apperrors.NewSessionExpired()
	}

	message := ""
	var eb errorBody
	if err := json.Unmarshal(data, &eb); err == nil {
		if eb.Message != "" {
			message = eb.Message
		} else if eb.Error != "" {
			message = eb.Error
		}
	}
	c.logger.Warn("backend returned error",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("message", message))
	return nil, apperrors.NewBackendError(message, resp.StatusCode)
}

// getJSON fetches a single object.
func getJSON[T any](ctx context.Context, c *Client, token, path string) (*T, error) {
	data, err := c.do(ctx, token, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("decoding %s: %w", path, err))
	}
	return &out, nil
}

// getList fetches a collection with the coercion rule applied: list
// endpoints always yield a slice regardless of how the backend spells an
// empty or single-element result.
func getList[T any](ctx context.Context, c *Client, token, path string) ([]T, error) {
	data, err := c.do(ctx, token, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	out, err := decodeList[T](data)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("decoding %s: %w", path, err))
	}
	return out, nil
}

// sendJSON posts or puts a JSON payload, decoding the response into T when
// the backend returns one.
func sendJSON[T any](ctx context.Context, c *Client, token, method, path string, payload any) (*T, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		body = bytes.NewReader(raw)
	}
	data, err := c.do(ctx, token, method, path, body, "application/json")
	if err != nil {
		return nil, err
	}
	var out T
	if len(bytes.TrimSpace(data)) == 0 {
		return &out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("decoding %s: %w", path, err))
	}
	return &out, nil
}

// doVoid issues a call whose response body is ignored.
func (c *Client) doVoid(ctx context.Context, token, method, path string, payload any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return apperrors.NewInternalError(err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}
	_, err := c.do(ctx, token, method, path, body, contentType)
	return err
}
