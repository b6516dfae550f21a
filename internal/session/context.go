package session

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const localsKey = "session_principal"

// Middleware loads the session referenced by the browser cookie. A missing
// or expired session just means the request proceeds unauthenticated; the
// backend answers 401 and the error boundary handles it from there.
func Middleware(store Store, cookieName string, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(cookieName)
		if id == "" {
			return c.Next()
		}
		sess, err := store.Get(c.UserContext(), id)
		if err != nil {
			if err != ErrNotFound {
				logger.Warn("session lookup failed", zap.Error(err))
			}
			return c.Next()
		}
		c.Locals(localsKey, sess)
		return c.Next()
	}
}

// FromContext retrieves the signed-in session, if any.
func FromContext(c *fiber.Ctx) (*Session, bool) {
	val := c.Locals(localsKey)
	if val == nil {
		return nil, false
	}
	sess, ok := val.(*Session)
	return sess, ok
}

// Token returns the bearer token for outbound calls; empty means the call
// goes out unauthenticated and the backend decides.
func Token(c *fiber.Ctx) string {
	if sess, ok := FromContext(c); ok {
		return sess.Token
	}
	return ""
}

// UserID returns the signed-in user's id, or empty when anonymous.
func UserID(c *fiber.Ctx) string {
	if sess, ok := FromContext(c); ok {
		return sess.Claims.UserID
	}
	return ""
}
