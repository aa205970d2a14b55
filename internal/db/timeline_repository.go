package db

import (
	"time"

	"brunotrack/internal/models"

	"gorm.io/gorm"
)

type TimelineRepository struct {
	database *gorm.DB
}

func NewTimelineRepository(database *gorm.DB) *TimelineRepository {
	return &TimelineRepository{database: database}
}

func (repo *TimelineRepository) CreateEntry(entry *models.TimelineEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *TimelineRepository) SaveEntry(entry *models.TimelineEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *TimelineRepository) FindEntryByUserAndID(userID uint, entryID uint) (models.TimelineEntry, bool, error) {
	entry := models.TimelineEntry{}
	result := repo.database.
		Preload("Provider").
		Preload("Attachments").
		Where("user_id = ?", userID).
		Limit(1).
		Find(&entry, entryID)
	if result.Error != nil {
		return models.TimelineEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.TimelineEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *TimelineRepository) ListEntries(userID uint) ([]models.TimelineEntry, error) {
	entries := make([]models.TimelineEntry, 0)
	if err := repo.database.
		Preload("Provider").
		Preload("Attachments").
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListEntriesRange feeds the calendar views. Bounds follow the usual
// half-open day convention.
func (repo *TimelineRepository) ListEntriesRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.TimelineEntry, error) {
	entries := make([]models.TimelineEntry, 0)
	if err := repo.database.
		Preload("Provider").
		Where("user_id = ? AND date >= ? AND date < ?", userID, fromStart, toEnd).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *TimelineRepository) DeleteEntry(userID uint, entryID uint) error {
	return repo.database.
		Where("user_id = ?", userID).
		Delete(&models.TimelineEntry{}, entryID).Error
}

func (repo *TimelineRepository) CreateAttachment(attachment *models.TimelineAttachment) error {
	return repo.database.Create(attachment).Error
}

// FindAttachmentByUserAndID scopes through the parent entry so one user
// cannot reach another user's files.
func (repo *TimelineRepository) FindAttachmentByUserAndID(userID uint, attachmentID uint) (models.TimelineAttachment, bool, error) {
	attachment := models.TimelineAttachment{}
	result := repo.database.
		Joins("JOIN timeline_entries ON timeline_entries.id = timeline_attachments.timeline_entry_id").
		Where("timeline_entries.user_id = ? AND timeline_attachments.id = ?", userID, attachmentID).
		Limit(1).
		Find(&attachment)
	if result.Error != nil {
		return models.TimelineAttachment{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.TimelineAttachment{}, false, nil
	}
	return attachment, true, nil
}

func (repo *TimelineRepository) DeleteAttachment(attachmentID uint) error {
	return repo.database.Delete(&models.TimelineAttachment{}, attachmentID).Error
}

func (repo *TimelineRepository) CreateProvider(provider *models.Provider) error {
	return repo.database.Create(provider).Error
}

func (repo *TimelineRepository) SaveProvider(provider *models.Provider) error {
	return repo.database.Save(provider).Error
}

func (repo *TimelineRepository) FindProviderByUserAndID(userID uint, providerID uint) (models.Provider, bool, error) {
	provider := models.Provider{}
	result := repo.database.
		Where("user_id = ?", userID).
		Limit(1).
		Find(&provider, providerID)
	if result.Error != nil {
		return models.Provider{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Provider{}, false, nil
	}
	return provider, true, nil
}

func (repo *TimelineRepository) ListProviders(userID uint) ([]models.Provider, error) {
	providers := make([]models.Provider, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

func (repo *TimelineRepository) DeleteProvider(userID uint, providerID uint) error {
	return repo.database.
		Where("user_id = ?", userID).
		Delete(&models.Provider{}, providerID).Error
}
