package services

import (
	"time"

	"brunotrack/internal/models"
)

// DeriveTimelineStatus forces status from the entry date on every save:
// strictly future dates are scheduled, today and the past are completed.
// Cancelled is sticky and never auto-overwritten.
func DeriveTimelineStatus(current string, entryDate time.Time, now time.Time, location *time.Location) string {
	if current == models.TimelineCancelled {
		return models.TimelineCancelled
	}
	today := DateAtLocation(now, location)
	day := DateAtLocation(entryDate, location)
	if day.After(today) {
		return models.TimelineScheduled
	}
	return models.TimelineCompleted
}

// IsOverdue reports a scheduled entry whose date already passed.
func IsOverdue(entry models.TimelineEntry, now time.Time, location *time.Location) bool {
	if entry.Status != models.TimelineScheduled {
		return false
	}
	today := DateAtLocation(now, location)
	return DateAtLocation(entry.Date, location).Before(today)
}
