package db

import (
	"path/filepath"
	"testing"
	"time"

	"brunotrack/internal/models"
)

func TestDailyEntryRejectsSecondRowForSameDay(t *testing.T) {
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "entries-test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	user := models.User{Username: "ana", PasswordHash: "irrelevant"}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	day := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	first := models.DailyEntry{UserID: user.ID, Date: day, GoodDay: models.GoodDayYes}
	if err := database.Create(&first).Error; err != nil {
		t.Fatalf("create first entry: %v", err)
	}

	duplicate := models.DailyEntry{UserID: user.ID, Date: day, GoodDay: models.GoodDayNo}
	if err := database.Create(&duplicate).Error; err == nil {
		t.Fatalf("expected unique index to reject a second entry for the same day")
	}

	nextDay := models.DailyEntry{UserID: user.ID, Date: day.AddDate(0, 0, 1)}
	if err := database.Create(&nextDay).Error; err != nil {
		t.Fatalf("create entry for the following day: %v", err)
	}

	other := models.User{Username: "luis", PasswordHash: "irrelevant"}
	if err := database.Create(&other).Error; err != nil {
		t.Fatalf("create second user: %v", err)
	}
	sameDayOtherUser := models.DailyEntry{UserID: other.ID, Date: day}
	if err := database.Create(&sameDayOtherUser).Error; err != nil {
		t.Fatalf("create same-day entry for another user: %v", err)
	}
}
