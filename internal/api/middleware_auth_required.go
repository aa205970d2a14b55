package api

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired guards both page and API routes. Pages redirect to the
// login form carrying the original path in ?next=; API calls get a
// plain 401.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		target := "/login"
		if next := sanitizeRedirectPath(c.OriginalURL(), ""); next != "" && next != "/login" {
			target = "/login?next=" + url.QueryEscape(next)
		}
		return c.Redirect(target, fiber.StatusSeeOther)
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}
