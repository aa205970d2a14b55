package db

import (
	"time"

	"brunotrack/internal/models"

	"gorm.io/gorm"
)

type MedicationRepository struct {
	database *gorm.DB
}

func NewMedicationRepository(database *gorm.DB) *MedicationRepository {
	return &MedicationRepository{database: database}
}

func (repo *MedicationRepository) ListActive(userID uint) ([]models.Medication, error) {
	medications := make([]models.Medication, 0)
	if err := repo.database.
		Where("user_id = ? AND active = ?", userID, true).
		Order("name ASC").
		Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

// ListActiveScheduled returns every active medication carrying a
// schedule, across all users, for the reminder scan.
func (repo *MedicationRepository) ListActiveScheduled() ([]models.Medication, error) {
	medications := make([]models.Medication, 0)
	if err := repo.database.
		Where("active = ? AND schedule_times IS NOT NULL AND schedule_times != ''", true).
		Order("user_id ASC, name ASC").
		Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (repo *MedicationRepository) FindByUserAndID(userID uint, medicationID uint) (models.Medication, error) {
	var medication models.Medication
	if err := repo.database.
		Where("user_id = ?", userID).
		First(&medication, medicationID).Error; err != nil {
		return models.Medication{}, err
	}
	return medication, nil
}

func (repo *MedicationRepository) Create(medication *models.Medication) error {
	return repo.database.Create(medication).Error
}

func (repo *MedicationRepository) Save(medication *models.Medication) error {
	return repo.database.Save(medication).Error
}

// Delete cascades to the medication's dose records.
func (repo *MedicationRepository) Delete(userID uint, medicationID uint) error {
	return repo.database.
		Where("user_id = ?", userID).
		Delete(&models.Medication{}, medicationID).Error
}

func (repo *MedicationRepository) CreateDose(dose *models.MedicationDose) error {
	return repo.database.Create(dose).Error
}

func (repo *MedicationRepository) ListDosesBetween(userID uint, from time.Time, to time.Time) ([]models.MedicationDose, error) {
	doses := make([]models.MedicationDose, 0)
	if err := repo.database.
		Preload("Medication").
		Where("user_id = ? AND given_at >= ? AND given_at < ?", userID, from, to).
		Order("given_at DESC").
		Find(&doses).Error; err != nil {
		return nil, err
	}
	return doses, nil
}

func (repo *MedicationRepository) CountDosesBetween(userID uint, medicationID uint, from time.Time, to time.Time) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.MedicationDose{}).
		Where("user_id = ? AND medication_id = ? AND given_at >= ? AND given_at < ?", userID, medicationID, from, to).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
