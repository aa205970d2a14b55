package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"brunotrack/internal/models"
)

func postSettingsForm(t *testing.T, app *fiber.App, authCookie string, form url.Values) {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, "/settings/save", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Cookie", authCookie)
	request.Header.Set("Accept", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("settings save request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
}

func TestSaveSettingsKeepsStoredKeysWhenFieldsAreBlank(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ana", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, "ana", "StrongPass1")

	postSettingsForm(t, app, authCookie, url.Values{
		"claude_api_key":    {"sk-ant-first"},
		"openai_api_key":    {"sk-openai-first"},
		"enable_ai_parsing": {"true"},
	})

	// A later save with empty key fields must not wipe the stored secrets.
	postSettingsForm(t, app, authCookie, url.Values{
		"claude_api_key":    {""},
		"openai_api_key":    {""},
		"enable_ai_parsing": {"false"},
	})

	var settings models.SiteSettings
	if err := database.First(&settings).Error; err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if settings.ClaudeAPIKey != "sk-ant-first" {
		t.Fatalf("expected stored Claude key to survive blank save, got %q", settings.ClaudeAPIKey)
	}
	if settings.OpenAIAPIKey != "sk-openai-first" {
		t.Fatalf("expected stored OpenAI key to survive blank save, got %q", settings.OpenAIAPIKey)
	}
	if settings.EnableAIParsing {
		t.Fatal("expected AI parsing toggle to follow the latest save")
	}
}
