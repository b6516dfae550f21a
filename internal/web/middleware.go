package web

import (
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-admin/internal/backend"
	"github.com/spec-kit/helpdesk-admin/internal/observability"
	"github.com/spec-kit/helpdesk-admin/internal/session"
	apperrors "github.com/spec-kit/helpdesk-admin/pkg/util"
)

const requestIDKey = "request_id"

// MiddlewareConfig bundles dependencies for the global middleware chain.
type MiddlewareConfig struct {
	Logger     *zap.Logger
	Metrics    *observability.Metrics
	Store      session.Store
	CookieName string
}

// RegisterMiddlewares attaches request tagging, request logging, error
// rendering and session loading, in that order.
func RegisterMiddlewares(app *fiber.App, cfg MiddlewareConfig) {
	app.Use(requestContextMiddleware())
	app.Use(requestLoggerMiddleware(cfg.Logger, cfg.Metrics))
	app.Use(errorHandlingMiddleware(cfg))
	app.Use(session.Middleware(cfg.Store, cfg.CookieName, cfg.Logger))
}

// requestContextMiddleware assigns a request id and propagates it to
// outbound backend calls.
func requestContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals(requestIDKey, id)
		c.SetUserContext(backend.WithRequestID(c.UserContext(), id))
		return c.Next()
	}
}

// RequestID returns the id assigned to this request.
func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}

func requestLoggerMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start)
		status := c.Response().StatusCode()
		metrics.RecordRequest(c.Path(), c.Method(), status, duration)
		logger.Info("request",
			zap.String("request_id", RequestID(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", duration))
		return err
	}
}

// errorHandlingMiddleware is the last-resort error boundary. A session
// expiry destroys the session and redirects to the login screen; anything
// else renders the error page with the normalized message. Screen handlers
// that can preserve form state catch earlier and re-render their own view.
func errorHandlingMiddleware(cfg MiddlewareConfig) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				cfg.Logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err == nil {
				return
			}
			domainErr := apperrors.ToDomainError(err)
			cfg.Metrics.RecordError(c.Path(), c.Method(), domainErr.Code)

			if domainErr.Code == apperrors.CodeSessionExpired {
				err = expireSession(c, cfg)
				return
			}
			if domainErr.HTTPStatus >= 500 {
				cfg.Logger.Error("request failed",
					zap.String("request_id", RequestID(c)),
					zap.Error(domainErr))
			}
			c.Status(domainErr.HTTPStatus)
			err = c.Render("error", fiber.Map{
				"Title":   "Error",
				"Message": domainErr.Message,
				"Status":  domainErr.HTTPStatus,
			}, "layouts/main")
		}()
		return c.Next()
	}
}

// expireSession clears everything tied to the browser session and sends the
// user back to login with the fixed message.
func expireSession(c *fiber.Ctx, cfg MiddlewareConfig) error {
	if id := c.Cookies(cfg.CookieName); id != "" {
		_ = cfg.Store.Destroy(c.UserContext(), id)
	}
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return c.Redirect("/login?expired=1", fiber.StatusSeeOther)
}
