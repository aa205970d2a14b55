package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brunotrack/internal/models"

	"github.com/gofiber/fiber/v2"
)

func postAttachmentDelete(t *testing.T, app *fiber.App, authCookie string, attachmentID uint) *http.Response {
	t.Helper()

	target := fmt.Sprintf("/timeline/attachments/%d/delete", attachmentID)
	request := httptest.NewRequest(http.MethodPost, target, nil)
	request.Header.Set("Cookie", authCookie)
	request.Header.Set("Accept", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("attachment delete request failed: %v", err)
	}
	return response
}

func TestDeleteTimelineAttachmentHiddenFromOtherUsers(t *testing.T) {
	app, database := newTestApp(t)
	owner := createTestUser(t, database, "ana", "StrongPass1")
	createTestUser(t, database, "luis", "StrongPass1")
	intruderCookie := loginAndExtractAuthCookie(t, app, "luis", "StrongPass1")

	entry := models.TimelineEntry{
		UserID: owner.ID,
		Date:   time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		Title:  "Oncology visit",
		Status: models.TimelineCompleted,
	}
	if err := database.Create(&entry).Error; err != nil {
		t.Fatalf("create entry: %v", err)
	}
	attachment := models.TimelineAttachment{
		TimelineEntryID: entry.ID,
		FileName:        "discharge.pdf",
		StoredName:      "aaaa-bbbb.pdf",
	}
	if err := database.Create(&attachment).Error; err != nil {
		t.Fatalf("create attachment: %v", err)
	}

	response := postAttachmentDelete(t, app, intruderCookie, attachment.ID)
	defer response.Body.Close()

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404 for foreign attachment, got %d", response.StatusCode)
	}

	count := int64(0)
	if err := database.Model(&models.TimelineAttachment{}).Where("id = ?", attachment.ID).Count(&count).Error; err != nil {
		t.Fatalf("count attachments: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected attachment to survive foreign delete, got count %d", count)
	}
}

func TestDeleteTimelineAttachmentByOwnerRemovesRow(t *testing.T) {
	app, database := newTestApp(t)
	owner := createTestUser(t, database, "ana", "StrongPass1")
	ownerCookie := loginAndExtractAuthCookie(t, app, "ana", "StrongPass1")

	entry := models.TimelineEntry{
		UserID: owner.ID,
		Date:   time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		Title:  "Oncology visit",
		Status: models.TimelineCompleted,
	}
	if err := database.Create(&entry).Error; err != nil {
		t.Fatalf("create entry: %v", err)
	}
	attachment := models.TimelineAttachment{
		TimelineEntryID: entry.ID,
		FileName:        "discharge.pdf",
		StoredName:      "cccc-dddd.pdf",
	}
	if err := database.Create(&attachment).Error; err != nil {
		t.Fatalf("create attachment: %v", err)
	}

	response := postAttachmentDelete(t, app, ownerCookie, attachment.ID)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	count := int64(0)
	if err := database.Model(&models.TimelineAttachment{}).Where("id = ?", attachment.ID).Count(&count).Error; err != nil {
		t.Fatalf("count attachments: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected attachment row to be deleted, got count %d", count)
	}
}
