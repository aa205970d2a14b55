package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestUpdateWeightRescalesDailyTargets(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ana", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, "ana", "StrongPass1")

	form := url.Values{
		"weight_kg": {"32.5"},
	}
	request := httptest.NewRequest(http.MethodPost, "/nutrition/weight/update", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Cookie", authCookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("weight update request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var payload struct {
		Status  string `json:"status"`
		Targets struct {
			FoodMinG     float64 `json:"daily_food_min_g"`
			FoodMaxG     float64 `json:"daily_food_max_g"`
			CalciumMinMG float64 `json:"daily_calcium_min_mg"`
			Omega3MaxMG  float64 `json:"daily_omega3_max_mg"`
		} `json:"targets"`
	}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode weight payload: %v", err)
	}

	if payload.Targets.FoodMinG != 812.5 {
		t.Fatalf("expected food minimum 812.5g for 32.5kg, got %v", payload.Targets.FoodMinG)
	}
	if payload.Targets.FoodMaxG != 975.0 {
		t.Fatalf("expected food maximum 975g for 32.5kg, got %v", payload.Targets.FoodMaxG)
	}
	if payload.Targets.CalciumMinMG != 1625.0 {
		t.Fatalf("expected calcium minimum 1625mg for 32.5kg, got %v", payload.Targets.CalciumMinMG)
	}
	if payload.Targets.Omega3MaxMG != 3250.0 {
		t.Fatalf("expected omega-3 maximum 3250mg for 32.5kg, got %v", payload.Targets.Omega3MaxMG)
	}
}

func TestUpdateWeightRejectsNonPositiveWeight(t *testing.T) {
	app, database := newTestApp(t)
	createTestUser(t, database, "ana", "StrongPass1")
	authCookie := loginAndExtractAuthCookie(t, app, "ana", "StrongPass1")

	form := url.Values{
		"weight_kg": {"0"},
	}
	request := httptest.NewRequest(http.MethodPost, "/nutrition/weight/update", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Cookie", authCookie)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("weight update request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}
