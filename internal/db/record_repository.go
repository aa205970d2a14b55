package db

import (
	"brunotrack/internal/models"

	"gorm.io/gorm"
)

type RecordRepository struct {
	database *gorm.DB
}

func NewRecordRepository(database *gorm.DB) *RecordRepository {
	return &RecordRepository{database: database}
}

func (repo *RecordRepository) Create(record *models.MedicalRecord) error {
	return repo.database.Create(record).Error
}

func (repo *RecordRepository) Save(record *models.MedicalRecord) error {
	return repo.database.Save(record).Error
}

func (repo *RecordRepository) FindByUserAndID(userID uint, recordID uint) (models.MedicalRecord, bool, error) {
	record := models.MedicalRecord{}
	result := repo.database.
		Preload("LabValues", func(query *gorm.DB) *gorm.DB {
			return query.Order("test_name ASC, id ASC")
		}).
		Where("user_id = ?", userID).
		Limit(1).
		Find(&record, recordID)
	if result.Error != nil {
		return models.MedicalRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MedicalRecord{}, false, nil
	}
	return record, true, nil
}

func (repo *RecordRepository) ListByUser(userID uint) ([]models.MedicalRecord, error) {
	records := make([]models.MedicalRecord, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *RecordRepository) Delete(userID uint, recordID uint) error {
	return repo.database.
		Where("user_id = ?", userID).
		Delete(&models.MedicalRecord{}, recordID).Error
}

func (repo *RecordRepository) CreateLabValue(value *models.LabValue) error {
	return repo.database.Create(value).Error
}

// ListLabValuesByTest returns one test's history oldest first, for trend
// charts.
func (repo *RecordRepository) ListLabValuesByTest(userID uint, testName string) ([]models.LabValue, error) {
	values := make([]models.LabValue, 0)
	if err := repo.database.
		Where("user_id = ? AND test_name = ?", userID, testName).
		Order("date ASC, id ASC").
		Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

func (repo *RecordRepository) ListRecentAbnormal(userID uint, limit int) ([]models.LabValue, error) {
	values := make([]models.LabValue, 0)
	if err := repo.database.
		Where("user_id = ? AND is_abnormal = ?", userID, true).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&values).Error; err != nil {
		return nil, err
	}
	return values, nil
}
