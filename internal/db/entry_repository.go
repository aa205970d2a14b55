package db

import (
	"time"

	"brunotrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EntryRepository struct {
	database *gorm.DB
}

func NewEntryRepository(database *gorm.DB) *EntryRepository {
	return &EntryRepository{database: database}
}

func (repo *EntryRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.DailyEntry, bool, error) {
	entry := models.DailyEntry{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DailyEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *EntryRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyEntry, error) {
	entries := make([]models.DailyEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *EntryRepository) ListRecent(userID uint, limit int) ([]models.DailyEntry, error) {
	entries := make([]models.DailyEntry, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *EntryRepository) Create(entry *models.DailyEntry) error {
	return repo.database.Create(entry).Error
}

var dailyEntryUpsertColumns = []string{
	"good_day",
	"tail_body_language",
	"interest_people",
	"interest_environment",
	"enjoyment_favorites",
	"overall_spark",
	"appetite",
	"food_enjoyment",
	"nausea_signs",
	"weight_condition",
	"breakfast",
	"lunch",
	"dinner",
	"treats",
	"energy_level",
	"willingness_move",
	"walking_comfort",
	"resting_comfort",
	"breathing_comfort",
	"pain_signs",
	"sleep_quality",
	"response_touch",
	"good_notes",
	"hard_notes",
	"other_notes",
	"updated_at",
}

// Upsert inserts the entry or, when a row for (user_id, date) already
// exists, overwrites its payload in the same statement. This is what
// keeps concurrent saves of the same day from racing.
func (repo *EntryRepository) Upsert(entry *models.DailyEntry) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns(dailyEntryUpsertColumns),
	}).Create(entry).Error
}
