package api

import (
	"github.com/gofiber/fiber/v2"
)

type settingsPayload struct {
	ClaudeAPIKey    string `json:"claude_api_key" form:"claude_api_key"`
	OpenAIAPIKey    string `json:"openai_api_key" form:"openai_api_key"`
	EnableAIParsing bool   `json:"enable_ai_parsing" form:"enable_ai_parsing"`
}

func (handler *Handler) ShowSettingsPage(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	settings, err := handler.repos.Settings.Get()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}

	return handler.render(c, "settings", fiber.Map{
		"Settings":     settings,
		"HasClaudeKey": settings.ClaudeAPIKey != "",
		"HasOpenAIKey": settings.OpenAIAPIKey != "",
	})
}

func (handler *Handler) SaveSettings(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := settingsPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	settings, err := handler.repos.Settings.Get()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}

	// Blank keys leave the stored values untouched so the form never has
	// to echo secrets back.
	if payload.ClaudeAPIKey != "" {
		settings.ClaudeAPIKey = payload.ClaudeAPIKey
	}
	if payload.OpenAIAPIKey != "" {
		settings.OpenAIAPIKey = payload.OpenAIAPIKey
	}
	settings.EnableAIParsing = payload.EnableAIParsing

	if err := handler.repos.Settings.Save(&settings); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save settings")
	}

	return redirectOrJSON(c, "/settings", fiber.Map{"status": "ok"})
}
