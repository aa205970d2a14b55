package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestPageRoutesRedirectAnonymousVisitorsToLogin(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/", "/tracker", "/medications", "/nutrition", "/records", "/donors"} {
		request := httptest.NewRequest(http.MethodGet, path, nil)
		response, err := app.Test(request, -1)
		if err != nil {
			t.Fatalf("request %s failed: %v", path, err)
		}
		response.Body.Close()

		if response.StatusCode != http.StatusSeeOther {
			t.Fatalf("expected status 303 for %s, got %d", path, response.StatusCode)
		}

		location, err := url.Parse(response.Header.Get("Location"))
		if err != nil {
			t.Fatalf("parse redirect location for %s: %v", path, err)
		}
		if location.Path != "/login" {
			t.Fatalf("expected redirect to /login for %s, got %q", path, location.Path)
		}
		if path != "/" && location.Query().Get("next") != path {
			t.Fatalf("expected next=%s in redirect, got %q", path, location.Query().Get("next"))
		}
	}
}

func TestAPIRoutesReturnUnauthorizedJSONForAnonymousVisitors(t *testing.T) {
	app, _ := newTestApp(t)

	request := httptest.NewRequest(http.MethodGet, "/api/chart-data", nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("chart data request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}

	var payload map[string]string
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	if payload["error"] != "unauthorized" {
		t.Fatalf("unexpected error payload: %v", payload)
	}
}

func TestHealthEndpointIsPublic(t *testing.T) {
	app, _ := newTestApp(t)

	response, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil), -1)
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
}

func TestExpiredOrGarbageAuthCookieRedirectsToLogin(t *testing.T) {
	app, _ := newTestApp(t)

	request := httptest.NewRequest(http.MethodGet, "/tracker", nil)
	request.Header.Set("Cookie", authCookieName+"=not-a-real-token")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("tracker request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if !strings.HasPrefix(response.Header.Get("Location"), "/login") {
		t.Fatalf("expected redirect to login, got %q", response.Header.Get("Location"))
	}
}
