package services

import (
	"context"
	"fmt"
	"time"

	"brunotrack/internal/models"

	"go.uber.org/zap"
)

type ReminderMedicationRepository interface {
	ListActiveScheduled() ([]models.Medication, error)
	CountDosesBetween(userID uint, medicationID uint, from time.Time, to time.Time) (int64, error)
}

// ReminderService periodically checks scheduled medication times against
// the doses already logged today and logs a reminder for anything due.
type ReminderService struct {
	medications ReminderMedicationRepository
	logger      *zap.Logger
	location    *time.Location
	interval    time.Duration
	now         func() time.Time
}

func NewReminderService(medications ReminderMedicationRepository, logger *zap.Logger, location *time.Location) *ReminderService {
	return &ReminderService{
		medications: medications,
		logger:      logger,
		location:    location,
		interval:    time.Minute,
		now:         time.Now,
	}
}

// Start runs the scan until the context is cancelled.
func (service *ReminderService) Start(ctx context.Context) {
	ticker := time.NewTicker(service.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			due, err := service.DueReminders(service.now())
			if err != nil {
				service.logger.Warn("reminder scan failed", zap.Error(err))
				continue
			}
			for _, reminder := range due {
				service.logger.Info("medication due",
					zap.Uint("user_id", reminder.UserID),
					zap.String("medication", reminder.MedicationName),
					zap.String("scheduled_at", reminder.ScheduledAt),
				)
			}
		}
	}
}

type DueReminder struct {
	UserID         uint
	MedicationID   uint
	MedicationName string
	ScheduledAt    string
}

// DueReminders returns one reminder per medication whose passed schedule
// times outnumber the doses logged today.
func (service *ReminderService) DueReminders(now time.Time) ([]DueReminder, error) {
	medications, err := service.medications.ListActiveScheduled()
	if err != nil {
		return nil, err
	}

	dayStart, _ := DayRange(now, service.location)
	due := make([]DueReminder, 0)
	for _, medication := range medications {
		times := ScheduleTimesOf(medication)
		if len(times) == 0 {
			continue
		}
		passed := make([]string, 0, len(times))
		for _, scheduled := range times {
			at, err := scheduleTimeOnDay(scheduled, dayStart)
			if err != nil {
				continue
			}
			if !at.After(now) {
				passed = append(passed, scheduled)
			}
		}
		if len(passed) == 0 {
			continue
		}
		given, err := service.medications.CountDosesBetween(medication.UserID, medication.ID, dayStart, now)
		if err != nil {
			return nil, err
		}
		if given >= int64(len(passed)) {
			continue
		}
		due = append(due, DueReminder{
			UserID:         medication.UserID,
			MedicationID:   medication.ID,
			MedicationName: medication.Name,
			ScheduledAt:    passed[given],
		})
	}
	return due, nil
}

func scheduleTimeOnDay(value string, dayStart time.Time) (time.Time, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse schedule time %q: %w", value, err)
	}
	return dayStart.Add(time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute), nil
}
