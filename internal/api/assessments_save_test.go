package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func postAssessmentForm(t *testing.T, app *fiber.App, authCookie string, path string, form url.Values) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Cookie", authCookie)
	request.Header.Set("Accept", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("assessment request failed: %v", err)
	}
	return response
}

func TestSaveCBPIReturnsSubScaleScores(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ana", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, "ana", "StrongPass1")

	form := url.Values{
		"date":                    {"2026-03-01"},
		"worst_pain":              {"6"},
		"least_pain":              {"2"},
		"average_pain":            {"4"},
		"current_pain":            {"4"},
		"general_activity":        {"5"},
		"enjoyment_of_life":       {"3"},
		"ability_to_rise":         {"4"},
		"ability_to_walk":         {"4"},
		"ability_to_run":          {"6"},
		"ability_to_climb":        {"5"},
		"overall_quality_of_life": {"3"},
	}
	response := postAssessmentForm(t, app, authCookie, "/cbpi/save", form)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status 200, got %d: %s", response.StatusCode, body)
	}

	var payload struct {
		Status                string  `json:"status"`
		PainSeverityScore     float64 `json:"pain_severity_score"`
		PainInterferenceScore float64 `json:"pain_interference_score"`
	}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode cbpi payload: %v", err)
	}
	if payload.PainSeverityScore != 4.0 {
		t.Fatalf("expected severity mean 4.0, got %v", payload.PainSeverityScore)
	}
	if payload.PainInterferenceScore != 4.5 {
		t.Fatalf("expected interference mean 4.5, got %v", payload.PainInterferenceScore)
	}
}

func TestSaveCBPIRejectsItemOutOfRange(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ana", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, "ana", "StrongPass1")

	form := url.Values{
		"date":       {"2026-03-01"},
		"worst_pain": {"11"},
	}
	response := postAssessmentForm(t, app, authCookie, "/cbpi/save", form)
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestSaveCORQReturnsFactorScoresAndTotal(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ana", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, "ana", "StrongPass1")

	form := url.Values{
		"date":                     {"2026-03-01"},
		"energy_level":             {"4"},
		"playfulness":              {"4"},
		"interest_in_surroundings": {"4"},
		"appetite":                 {"4"},
		"seeks_attention":          {"5"},
		"enjoys_interaction":       {"5"},
		"greets_family":            {"5"},
		"tail_wagging":             {"5"},
		"shows_pain":               {"2"},
		"vocalizes_pain":           {"2"},
		"avoids_touch":             {"2"},
		"pants_restless":           {"2"},
		"walks_normally":           {"3"},
		"rises_easily":             {"3"},
		"climbs_stairs":            {"3"},
		"jumps":                    {"3"},
		"global_qol":               {"4"},
	}
	response := postAssessmentForm(t, app, authCookie, "/corq/save", form)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status 200, got %d: %s", response.StatusCode, body)
	}

	var payload struct {
		Vitality      int `json:"vitality_score"`
		Companionship int `json:"companionship_score"`
		Pain          int `json:"pain_score"`
		Mobility      int `json:"mobility_score"`
		Total         int `json:"total_score"`
	}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode corq payload: %v", err)
	}
	if payload.Vitality != 16 || payload.Companionship != 20 || payload.Mobility != 12 {
		t.Fatalf("unexpected factor sums: %+v", payload)
	}
	if payload.Pain != 16 {
		t.Fatalf("expected reverse-scored pain sum 16, got %d", payload.Pain)
	}
	if payload.Total != 64 {
		t.Fatalf("expected total 64, got %d", payload.Total)
	}
}
