package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestChartDataRejectsUnknownType(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ana", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, "ana", "StrongPass1")

	request := httptest.NewRequest(http.MethodGet, "/api/chart-data?type=bogus", nil)
	request.Header.Set("Cookie", authCookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("chart data request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}

	var payload map[string]string
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	if payload["error"] != "unknown chart type" {
		t.Fatalf("unexpected error payload: %v", payload)
	}
}

func TestChartDataReturnsDailySeriesForSavedEntries(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ana", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, "ana", "StrongPass1")

	form := url.Values{
		"good_day":      {"yes"},
		"overall_spark": {"4"},
		"appetite":      {"4"},
		"energy_level":  {"5"},
	}
	saveRequest := httptest.NewRequest(http.MethodPost, "/tracker/save", strings.NewReader(form.Encode()))
	saveRequest.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	saveRequest.Header.Set("Cookie", authCookie)
	saveResponse, err := app.Test(saveRequest, -1)
	if err != nil {
		t.Fatalf("tracker save request failed: %v", err)
	}
	saveResponse.Body.Close()

	request := httptest.NewRequest(http.MethodGet, "/api/chart-data?type=daily&days=7", nil)
	request.Header.Set("Cookie", authCookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("chart data request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	if contentType := response.Header.Get("Content-Type"); !strings.Contains(contentType, "application/json") {
		t.Fatalf("expected JSON content type, got %q", contentType)
	}
}
