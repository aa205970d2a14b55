package db

import (
	"time"

	"brunotrack/internal/models"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	database *gorm.DB
}

func NewAssessmentRepository(database *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{database: database}
}

func (repo *AssessmentRepository) CreateCBPI(assessment *models.CBPIAssessment) error {
	return repo.database.Create(assessment).Error
}

func (repo *AssessmentRepository) ListCBPIRecent(userID uint, limit int) ([]models.CBPIAssessment, error) {
	assessments := make([]models.CBPIAssessment, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

func (repo *AssessmentRepository) ListCBPIRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.CBPIAssessment, error) {
	assessments := make([]models.CBPIAssessment, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

func (repo *AssessmentRepository) CreateCORQ(assessment *models.CORQAssessment) error {
	return repo.database.Create(assessment).Error
}

func (repo *AssessmentRepository) ListCORQRecent(userID uint, limit int) ([]models.CORQAssessment, error) {
	assessments := make([]models.CORQAssessment, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}

func (repo *AssessmentRepository) ListCORQRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.CORQAssessment, error) {
	assessments := make([]models.CORQAssessment, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}
