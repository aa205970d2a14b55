package db

import (
	"time"

	"brunotrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NodeRepository struct {
	database *gorm.DB
}

func NewNodeRepository(database *gorm.DB) *NodeRepository {
	return &NodeRepository{database: database}
}

func (repo *NodeRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.LymphNodeMeasurement, bool, error) {
	measurement := models.LymphNodeMeasurement{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Limit(1).
		Find(&measurement)
	if result.Error != nil {
		return models.LymphNodeMeasurement{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.LymphNodeMeasurement{}, false, nil
	}
	return measurement, true, nil
}

func (repo *NodeRepository) ListRecent(userID uint, limit int) ([]models.LymphNodeMeasurement, error) {
	measurements := make([]models.LymphNodeMeasurement, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&measurements).Error; err != nil {
		return nil, err
	}
	return measurements, nil
}

func (repo *NodeRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.LymphNodeMeasurement, error) {
	measurements := make([]models.LymphNodeMeasurement, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&measurements).Error; err != nil {
		return nil, err
	}
	return measurements, nil
}

var nodeUpsertColumns = []string{
	"source",
	"mandibular_left",
	"mandibular_right",
	"popliteal_left",
	"popliteal_right",
	"status",
	"notes",
}

// Upsert merges concurrent same-day submissions by overwrite; the unique
// (user_id, date) index guarantees a single row per day.
func (repo *NodeRepository) Upsert(measurement *models.LymphNodeMeasurement) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns(nodeUpsertColumns),
	}).Create(measurement).Error
}
