package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"brunotrack/internal/models"
)

func postTrackerForm(t *testing.T, app *fiber.App, authCookie string, form url.Values) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, "/tracker/save", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Cookie", authCookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("tracker save request failed: %v", err)
	}
	return response
}

func TestSaveDailyEntryReturnsComputedScores(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ana", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, "ana", "StrongPass1")

	form := url.Values{
		"date":               {"2026-03-01"},
		"good_day":           {"yes"},
		"tail_body_language": {"4"},
		"interest_people":    {"5"},
		"overall_spark":      {"4"},
		"appetite":           {"3"},
		"energy_level":       {"4"},
		"breakfast":          {"true"},
		"good_notes":         {"long walk in the park"},
	}
	response := postTrackerForm(t, app, authCookie, form)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var payload struct {
		Status         string   `json:"status"`
		HappinessScore *float64 `json:"happiness_score"`
		OverallScore   *float64 `json:"overall_score"`
	}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode save payload: %v", err)
	}
	if payload.Status != "ok" {
		t.Fatalf("unexpected status %q", payload.Status)
	}
	if payload.HappinessScore == nil || *payload.HappinessScore <= 0 {
		t.Fatalf("expected positive happiness score, got %v", payload.HappinessScore)
	}
	if payload.OverallScore == nil || *payload.OverallScore <= 0 {
		t.Fatalf("expected positive overall score, got %v", payload.OverallScore)
	}
}

func TestSaveDailyEntryUpsertsSingleRowPerDay(t *testing.T) {
	app, database := newTestApp(t)
	user := createTestUser(t, database, "ana", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, "ana", "StrongPass1")

	first := url.Values{
		"date":     {"2026-03-02"},
		"good_day": {"mixed"},
		"appetite": {"2"},
	}
	response := postTrackerForm(t, app, authCookie, first)
	response.Body.Close()

	second := url.Values{
		"date":       {"2026-03-02"},
		"good_day":   {"yes"},
		"appetite":   {"4"},
		"good_notes": {"ate the whole bowl"},
	}
	response = postTrackerForm(t, app, authCookie, second)
	response.Body.Close()

	var count int64
	if err := database.Model(&models.DailyEntry{}).
		Where("user_id = ?", user.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count entries: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single entry row for the day, got %d", count)
	}

	var entry models.DailyEntry
	if err := database.Where("user_id = ?", user.ID).First(&entry).Error; err != nil {
		t.Fatalf("load entry: %v", err)
	}
	if entry.GoodDay != "yes" {
		t.Fatalf("expected second save to win, got good_day=%q", entry.GoodDay)
	}
	if entry.Appetite == nil || *entry.Appetite != 4 {
		t.Fatalf("expected appetite 4 after resave, got %v", entry.Appetite)
	}
}

func TestSaveDailyEntryRejectsInvalidRating(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ana", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, "ana", "StrongPass1")

	form := url.Values{
		"date":     {"2026-03-03"},
		"appetite": {"9"},
	}
	response := postTrackerForm(t, app, authCookie, form)
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 for out-of-range rating, got %d", response.StatusCode)
	}
}
