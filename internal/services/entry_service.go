package services

import (
	"errors"
	"time"

	"brunotrack/internal/models"
)

var (
	ErrDailyEntryLoadFailed = errors.New("load daily entry failed")
	ErrDailyEntrySaveFailed = errors.New("save daily entry failed")
)

type DailyEntryInput struct {
	GoodDay string

	TailBodyLanguage    *int
	InterestPeople      *int
	InterestEnvironment *int
	EnjoymentFavorites  *int
	OverallSpark        *int

	Appetite        *int
	FoodEnjoyment   *int
	NauseaSigns     *int
	WeightCondition *int

	Breakfast bool
	Lunch     bool
	Dinner    bool
	Treats    bool

	EnergyLevel     *int
	WillingnessMove *int
	WalkingComfort  *int
	RestingComfort  *int

	BreathingComfort *int
	PainSigns        *int
	SleepQuality     *int
	ResponseTouch    *int

	GoodNotes  string
	HardNotes  string
	OtherNotes string
}

type DailyEntryRepository interface {
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyEntry, bool, error)
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyEntry, error)
	ListRecent(userID uint, limit int) ([]models.DailyEntry, error)
	Upsert(entry *models.DailyEntry) error
}

type EntryService struct {
	entries DailyEntryRepository
}

func NewEntryService(entries DailyEntryRepository) *EntryService {
	return &EntryService{entries: entries}
}

// FetchEntryForDate returns the stored entry for the day, or a blank
// one carrying the date when nothing was saved yet. The blank entry is
// not persisted; saving is what creates the row.
func (service *EntryService) FetchEntryForDate(userID uint, day time.Time, location *time.Location) (models.DailyEntry, error) {
	dayStart, dayEnd := DayRange(day, location)
	entry, found, err := service.entries.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.DailyEntry{}, ErrDailyEntryLoadFailed
	}
	if !found {
		return models.DailyEntry{UserID: userID, Date: dayStart}, nil
	}
	return entry, nil
}

// SaveEntryForDate upserts the full day payload in one statement so two
// concurrent saves for the same day cannot produce duplicate rows.
func (service *EntryService) SaveEntryForDate(userID uint, day time.Time, payload DailyEntryInput, location *time.Location) (models.DailyEntry, error) {
	dayStart, _ := DayRange(day, location)
	entry := models.DailyEntry{
		UserID: userID,
		Date:   dayStart,

		GoodDay: payload.GoodDay,

		TailBodyLanguage:    payload.TailBodyLanguage,
		InterestPeople:      payload.InterestPeople,
		InterestEnvironment: payload.InterestEnvironment,
		EnjoymentFavorites:  payload.EnjoymentFavorites,
		OverallSpark:        payload.OverallSpark,

		Appetite:        payload.Appetite,
		FoodEnjoyment:   payload.FoodEnjoyment,
		NauseaSigns:     payload.NauseaSigns,
		WeightCondition: payload.WeightCondition,

		Breakfast: payload.Breakfast,
		Lunch:     payload.Lunch,
		Dinner:    payload.Dinner,
		Treats:    payload.Treats,

		EnergyLevel:     payload.EnergyLevel,
		WillingnessMove: payload.WillingnessMove,
		WalkingComfort:  payload.WalkingComfort,
		RestingComfort:  payload.RestingComfort,

		BreathingComfort: payload.BreathingComfort,
		PainSigns:        payload.PainSigns,
		SleepQuality:     payload.SleepQuality,
		ResponseTouch:    payload.ResponseTouch,

		GoodNotes:  payload.GoodNotes,
		HardNotes:  payload.HardNotes,
		OtherNotes: payload.OtherNotes,
	}
	if err := service.entries.Upsert(&entry); err != nil {
		return models.DailyEntry{}, ErrDailyEntrySaveFailed
	}
	return entry, nil
}

func (service *EntryService) FetchEntriesForRange(userID uint, from time.Time, to time.Time, location *time.Location) ([]models.DailyEntry, error) {
	fromStart, _ := DayRange(from, location)
	_, toEnd := DayRange(to, location)
	return service.entries.ListByUserRange(userID, fromStart, toEnd)
}

func (service *EntryService) FetchRecentEntries(userID uint, limit int) ([]models.DailyEntry, error) {
	return service.entries.ListRecent(userID, limit)
}
