package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-admin/internal/session"
	apperrors "github.com/spec-kit/helpdesk-admin/pkg/util"
)

// sessionToken reads the bearer token of the current session, empty when
// anonymous.
func sessionToken(c *fiber.Ctx) string {
	return session.Token(c)
}

// currentUserID reads the signed-in user's id, empty when anonymous.
func currentUserID(c *fiber.Ctx) string {
	return session.UserID(c)
}

// banner splits failures into the two classes a screen handler cares
// about: session expiry bubbles to the error boundary (which redirects to
// login), everything else becomes a dismissible banner message with the
// form state preserved.
func banner(err error) (string, error) {
	if err == nil {
		return "", nil
	}
	if apperrors.IsSessionExpired(err) {
		return "", err
	}
	return apperrors.ToDomainError(err).Message, nil
}

// intParam parses a positive integer route parameter.
func intParam(c *fiber.Ctx, name string) (int, error) {
	value, err := strconv.Atoi(c.Params(name))
	if err != nil || value <= 0 {
		return 0, apperrors.NewValidationError("invalid "+name, nil)
	}
	return value, nil
}

// checked reports whether an HTML checkbox was submitted.
func checked(c *fiber.Ctx, field string) bool {
	v := c.FormValue(field)
	return v == "on" || v == "true" || v == "1"
}
