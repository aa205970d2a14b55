package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"brunotrack/internal/models"
)

func TestDeactivateMedicationOwnedByAnotherUserReturnsNotFound(t *testing.T) {
	app, database := newTestApp(t)
	owner := createTestUser(t, database, "ana", "StrongPass1")
	createTestUser(t, database, "ben", "StrongPass2")

	medication := models.Medication{
		UserID: owner.ID,
		Name:   "Prednisone",
		Dosage: "20mg",
		Active: true,
	}
	if err := database.Create(&medication).Error; err != nil {
		t.Fatalf("create medication: %v", err)
	}

	intruderCookie := loginAndExtractAuthCookie(t, app, "ben", "StrongPass2")
	request := httptest.NewRequest(http.MethodPost, "/medications/1/deactivate", nil)
	request.Header.Set("Cookie", intruderCookie)
	request.Header.Set("Accept", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("deactivate request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}

	var stored models.Medication
	if err := database.First(&stored, medication.ID).Error; err != nil {
		t.Fatalf("load medication: %v", err)
	}
	if !stored.Active {
		t.Fatal("expected medication to stay active after cross-user attempt")
	}
}

func TestDeactivateMedicationByOwner(t *testing.T) {
	app, database := newTestApp(t)
	owner := createTestUser(t, database, "ana", "StrongPass1")

	medication := models.Medication{
		UserID: owner.ID,
		Name:   "Prednisone",
		Dosage: "20mg",
		Active: true,
	}
	if err := database.Create(&medication).Error; err != nil {
		t.Fatalf("create medication: %v", err)
	}

	authCookie := loginAndExtractAuthCookie(t, app, "ana", "StrongPass1")
	request := httptest.NewRequest(http.MethodPost, "/medications/1/deactivate", nil)
	request.Header.Set("Cookie", authCookie)
	request.Header.Set("Accept", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("deactivate request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var stored models.Medication
	if err := database.First(&stored, medication.ID).Error; err != nil {
		t.Fatalf("load medication: %v", err)
	}
	if stored.Active {
		t.Fatal("expected medication to be deactivated")
	}
}

func TestLogMedicationDoseRecordsGivenTime(t *testing.T) {
	app, database := newTestApp(t)
	owner := createTestUser(t, database, "ana", "StrongPass1")

	medication := models.Medication{
		UserID: owner.ID,
		Name:   "Ondansetron",
		Dosage: "8mg",
		Active: true,
	}
	if err := database.Create(&medication).Error; err != nil {
		t.Fatalf("create medication: %v", err)
	}

	authCookie := loginAndExtractAuthCookie(t, app, "ana", "StrongPass1")
	form := url.Values{
		"given_at": {"2026-03-01T08:30"},
		"notes":    {"with breakfast"},
	}
	request := httptest.NewRequest(http.MethodPost, "/medications/1/dose", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("Cookie", authCookie)
	request.Header.Set("Accept", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("dose request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var payload struct {
		Status string `json:"status"`
		ID     uint   `json:"id"`
	}
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode dose payload: %v", err)
	}
	if payload.Status != "ok" || payload.ID == 0 {
		t.Fatalf("unexpected dose payload: %+v", payload)
	}

	var dose models.MedicationDose
	if err := database.First(&dose, payload.ID).Error; err != nil {
		t.Fatalf("load dose: %v", err)
	}
	if dose.MedicationID != medication.ID {
		t.Fatalf("expected dose for medication %d, got %d", medication.ID, dose.MedicationID)
	}
	if dose.Notes != "with breakfast" {
		t.Fatalf("unexpected dose notes %q", dose.Notes)
	}
}
