package services

import (
	"time"

	"brunotrack/internal/models"
)

// CalendarDay is one bucket of a calendar grid: the day, its journal
// events, and the wellness entry if one was saved.
type CalendarDay struct {
	Date       time.Time
	InMonth    bool
	Today      bool
	Events     []models.TimelineEntry
	DailyEntry *models.DailyEntry
}

type CalendarService struct {
	timeline TimelineStore
	entries  DailyEntryRepository
	location *time.Location
	now      func() time.Time
}

func NewCalendarService(timeline TimelineStore, entries DailyEntryRepository, location *time.Location) *CalendarService {
	return &CalendarService{
		timeline: timeline,
		entries:  entries,
		location: location,
		now:      time.Now,
	}
}

// MonthGrid returns the month as Monday-start weeks, padded with the
// neighboring months' days so every row has seven buckets.
func (service *CalendarService) MonthGrid(userID uint, year int, month time.Month) ([][]CalendarDay, error) {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, service.location)
	gridStart := startOfWeek(firstOfMonth)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
	gridEnd := startOfWeek(lastOfMonth).AddDate(0, 0, 7)

	days, err := service.buildDays(userID, gridStart, gridEnd, month)
	if err != nil {
		return nil, err
	}

	weeks := make([][]CalendarDay, 0, len(days)/7)
	for index := 0; index < len(days); index += 7 {
		weeks = append(weeks, days[index:index+7])
	}
	return weeks, nil
}

// WeekDays returns the seven buckets of an ISO week.
func (service *CalendarService) WeekDays(userID uint, year int, week int) ([]CalendarDay, error) {
	weekStart := isoWeekStart(year, week, service.location)
	return service.buildDays(userID, weekStart, weekStart.AddDate(0, 0, 7), weekStart.Month())
}

func (service *CalendarService) buildDays(userID uint, gridStart time.Time, gridEnd time.Time, month time.Month) ([]CalendarDay, error) {
	events, err := service.timeline.ListEntriesRange(userID, gridStart, gridEnd)
	if err != nil {
		return nil, err
	}
	dailyEntries, err := service.entries.ListByUserRange(userID, gridStart, gridEnd)
	if err != nil {
		return nil, err
	}

	eventsByDay := make(map[string][]models.TimelineEntry)
	for _, event := range events {
		key := DateAtLocation(event.Date, service.location).Format("2006-01-02")
		eventsByDay[key] = append(eventsByDay[key], event)
	}
	entriesByDay := make(map[string]models.DailyEntry)
	for _, entry := range dailyEntries {
		key := DateAtLocation(entry.Date, service.location).Format("2006-01-02")
		entriesByDay[key] = entry
	}

	today := DateAtLocation(service.now(), service.location)
	days := make([]CalendarDay, 0)
	for cursor := gridStart; cursor.Before(gridEnd); cursor = cursor.AddDate(0, 0, 1) {
		key := cursor.Format("2006-01-02")
		day := CalendarDay{
			Date:    cursor,
			InMonth: cursor.Month() == month,
			Today:   cursor.Equal(today),
			Events:  eventsByDay[key],
		}
		if entry, exists := entriesByDay[key]; exists {
			persisted := entry
			day.DailyEntry = &persisted
		}
		days = append(days, day)
	}
	return days, nil
}

func startOfWeek(day time.Time) time.Time {
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, 1-weekday)
}

func isoWeekStart(year int, week int, location *time.Location) time.Time {
	// January 4th is always inside ISO week 1.
	anchor := time.Date(year, time.January, 4, 0, 0, 0, 0, location)
	week1Start := startOfWeek(anchor)
	return week1Start.AddDate(0, 0, (week-1)*7)
}
