package db

import (
	"time"

	"brunotrack/internal/models"

	"gorm.io/gorm"
)

type TreatmentRepository struct {
	database *gorm.DB
}

func NewTreatmentRepository(database *gorm.DB) *TreatmentRepository {
	return &TreatmentRepository{database: database}
}

func (repo *TreatmentRepository) CreateSession(session *models.TreatmentSession) error {
	return repo.database.Create(session).Error
}

func (repo *TreatmentRepository) ListSessions(userID uint) ([]models.TreatmentSession, error) {
	sessions := make([]models.TreatmentSession, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (repo *TreatmentRepository) CreateEvent(event *models.VCOGCTCAEEvent) error {
	return repo.database.Create(event).Error
}

func (repo *TreatmentRepository) FindEventByUserAndID(userID uint, eventID uint) (models.VCOGCTCAEEvent, error) {
	var event models.VCOGCTCAEEvent
	if err := repo.database.
		Where("user_id = ?", userID).
		First(&event, eventID).Error; err != nil {
		return models.VCOGCTCAEEvent{}, err
	}
	return event, nil
}

func (repo *TreatmentRepository) SaveEvent(event *models.VCOGCTCAEEvent) error {
	return repo.database.Save(event).Error
}

func (repo *TreatmentRepository) ListEvents(userID uint) ([]models.VCOGCTCAEEvent, error) {
	events := make([]models.VCOGCTCAEEvent, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *TreatmentRepository) ListUnresolvedEvents(userID uint) ([]models.VCOGCTCAEEvent, error) {
	events := make([]models.VCOGCTCAEEvent, 0)
	if err := repo.database.
		Where("user_id = ? AND resolved = ?", userID, false).
		Order("grade DESC, date DESC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *TreatmentRepository) ListEventsRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.VCOGCTCAEEvent, error) {
	events := make([]models.VCOGCTCAEEvent, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
