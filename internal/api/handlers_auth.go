package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type loginPayload struct {
	Username   string `json:"username" form:"username"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
	Next       string `json:"next" form:"next"`
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if _, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return handler.render(c, "login", fiber.Map{
		"Next":     sanitizeRedirectPath(c.Query("next"), ""),
		"Username": "",
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	payload := loginPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.auth.Authenticate(payload.Username, payload.Password)
	if err != nil {
		if acceptsJSON(c) {
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return handler.render(c, "login", fiber.Map{
			"Error":    "auth.error.invalid_credentials",
			"Username": strings.TrimSpace(payload.Username),
			"Next":     sanitizeRedirectPath(payload.Next, ""),
		})
	}

	if err := handler.setAuthCookie(c, &user, payload.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	target := sanitizeRedirectPath(payload.Next, "/")
	return redirectOrJSON(c, target, fiber.Map{"status": "ok"})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"status": "ok"})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}
