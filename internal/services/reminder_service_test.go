package services

import (
	"testing"
	"time"

	"brunotrack/internal/models"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type stubReminderRepository struct {
	medications []models.Medication
	dosesGiven  map[uint]int64
}

func (stub *stubReminderRepository) ListActiveScheduled() ([]models.Medication, error) {
	return stub.medications, nil
}

func (stub *stubReminderRepository) CountDosesBetween(userID uint, medicationID uint, from time.Time, to time.Time) (int64, error) {
	return stub.dosesGiven[medicationID], nil
}

func TestReminderService_DueReminders(t *testing.T) {
	t.Parallel()

	repository := &stubReminderRepository{
		medications: []models.Medication{
			{ID: 1, UserID: 1, Name: "Prednisone", ScheduleTimes: datatypes.JSON(`["08:00","20:00"]`)},
			{ID: 2, UserID: 1, Name: "Omeprazole", ScheduleTimes: datatypes.JSON(`["08:00"]`)},
			{ID: 3, UserID: 1, Name: "Gabapentin", ScheduleTimes: datatypes.JSON(`["23:00"]`)},
		},
		dosesGiven: map[uint]int64{2: 1},
	}
	service := NewReminderService(repository, zap.NewNop(), time.UTC)

	now := mustParseDay(t, "2026-03-10").Add(9 * time.Hour)
	due, err := service.DueReminders(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Prednisone's 08:00 passed with no dose; Omeprazole was given;
	// Gabapentin is not due until 23:00.
	if len(due) != 1 {
		t.Fatalf("expected one due reminder, got %d", len(due))
	}
	if due[0].MedicationName != "Prednisone" {
		t.Fatalf("expected Prednisone due, got %q", due[0].MedicationName)
	}
	if due[0].ScheduledAt != "08:00" {
		t.Fatalf("expected 08:00 slot, got %q", due[0].ScheduledAt)
	}
}

func TestReminderService_DueReminders_SecondSlot(t *testing.T) {
	t.Parallel()

	repository := &stubReminderRepository{
		medications: []models.Medication{
			{ID: 1, UserID: 1, Name: "Prednisone", ScheduleTimes: datatypes.JSON(`["08:00","20:00"]`)},
		},
		dosesGiven: map[uint]int64{1: 1},
	}
	service := NewReminderService(repository, zap.NewNop(), time.UTC)

	now := mustParseDay(t, "2026-03-10").Add(21 * time.Hour)
	due, err := service.DueReminders(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("expected one due reminder, got %d", len(due))
	}
	if due[0].ScheduledAt != "20:00" {
		t.Fatalf("expected 20:00 slot, got %q", due[0].ScheduledAt)
	}
}

func TestReminderService_DueReminders_MalformedScheduleIgnored(t *testing.T) {
	t.Parallel()

	repository := &stubReminderRepository{
		medications: []models.Medication{
			{ID: 1, UserID: 1, Name: "Broken", ScheduleTimes: datatypes.JSON(`"not an array"`)},
		},
		dosesGiven: map[uint]int64{},
	}
	service := NewReminderService(repository, zap.NewNop(), time.UTC)

	due, err := service.DueReminders(mustParseDay(t, "2026-03-10").Add(12 * time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(due) != 0 {
		t.Fatalf("expected no reminders for malformed schedule, got %d", len(due))
	}
}
