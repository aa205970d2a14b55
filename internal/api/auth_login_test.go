package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestLoginSuccessSetsAuthCookieAndRedirects(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ana", "StrongPass1")

	form := url.Values{
		"username": {"ana"},
		"password": {"StrongPass1"},
	}
	request := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}
	if location := response.Header.Get("Location"); location != "/" {
		t.Fatalf("expected redirect to /, got %q", location)
	}

	found := false
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			found = true
			if !cookie.HttpOnly {
				t.Fatal("expected auth cookie to be HTTP-only")
			}
		}
	}
	if !found {
		t.Fatal("expected auth cookie in login response")
	}
}

func TestLoginHonorsNextParameter(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ana", "StrongPass1")

	form := url.Values{
		"username": {"ana"},
		"password": {"StrongPass1"},
		"next":     {"/tracker?date=2026-03-01"},
	}
	request := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if location := response.Header.Get("Location"); location != "/tracker?date=2026-03-01" {
		t.Fatalf("expected redirect to next target, got %q", location)
	}
}

func TestLoginRejectsExternalNextTarget(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ana", "StrongPass1")

	form := url.Values{
		"username": {"ana"},
		"password": {"StrongPass1"},
		"next":     {"https://evil.example.com/"},
	}
	request := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if location := response.Header.Get("Location"); location != "/" {
		t.Fatalf("expected external next to fall back to /, got %q", location)
	}
}

func TestLoginInvalidCredentialsRendersLocalizedError(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ana", "StrongPass1")

	form := url.Values{
		"username": {"ana"},
		"password": {"WrongPass1"},
	}
	request := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Accept-Language", "en")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), "Invalid username or password") {
		t.Fatal("expected localized invalid credentials message")
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			t.Fatal("did not expect auth cookie on failed login")
		}
	}
}

func TestLoginInvalidCredentialsReturnsJSONErrorForAPIClients(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ana", "StrongPass1")

	form := url.Values{
		"username": {"ana"},
		"password": {"WrongPass1"},
	}
	request := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Accept", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}

	var payload map[string]string
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	if payload["error"] != "invalid credentials" {
		t.Fatalf("unexpected error payload: %v", payload)
	}
}

func TestLogoutClearsAuthCookie(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ana", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, "ana", "StrongPass1")

	request := httptest.NewRequest(http.MethodPost, "/logout", nil)
	request.Header.Set("Cookie", authCookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("logout request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", response.StatusCode)
	}

	cleared := false
	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected auth cookie to be cleared on logout")
	}
}
