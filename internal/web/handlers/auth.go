package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-admin/internal/service"
	"github.com/spec-kit/helpdesk-admin/internal/session"
	apperrors "github.com/spec-kit/helpdesk-admin/pkg/util"
)

// AuthHandler manages the login and logout screens.
type AuthHandler struct {
	auth       *service.AuthService
	cookieName string
	sessionTTL time.Duration
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(auth *service.AuthService, cookieName string, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, cookieName: cookieName, sessionTTL: sessionTTL}
}

// LoginForm GET /login.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	if _, ok := session.FromContext(c); ok {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	data := fiber.Map{"Title": "Sign in", "Email": ""}
	if c.Query("expired") != "" {
		data["Error"] = apperrors.SessionExpiredMessage
	}
	return c.Render("login", data, "layouts/main")
}

// Login POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	sess, err := h.auth.Login(c.UserContext(), email, password)
	if err != nil {
		message, fatal := banner(err)
		if fatal != nil {
			return fatal
		}
		c.Status(fiber.StatusUnauthorized)
		return c.Render("login", fiber.Map{
			"Title": "Sign in",
			"Error": message,
			"Email": email,
		}, "layouts/main")
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    sess.ID,
		Expires:  time.Now().Add(h.sessionTTL),
		HTTPOnly: true,
		Path:     "/",
	})
	return c.Redirect("/", fiber.StatusSeeOther)
}

// Logout POST /logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if id := c.Cookies(h.cookieName); id != "" {
		if err := h.auth.Logout(c.UserContext(), id); err != nil {
			return err
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return c.Redirect("/login", fiber.StatusSeeOther)
}
