package db

import (
	"brunotrack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

// Get returns the singleton settings row, creating it on first use.
func (repo *SettingsRepository) Get() (models.SiteSettings, error) {
	settings := models.SiteSettings{}
	result := repo.database.Limit(1).Find(&settings, 1)
	if result.Error != nil {
		return models.SiteSettings{}, result.Error
	}
	if result.RowsAffected == 0 {
		settings = models.SiteSettings{ID: 1}
		if err := repo.database.Clauses(clause.OnConflict{DoNothing: true}).Create(&settings).Error; err != nil {
			return models.SiteSettings{}, err
		}
	}
	return settings, nil
}

func (repo *SettingsRepository) Save(settings *models.SiteSettings) error {
	settings.ID = 1
	return repo.database.Save(settings).Error
}
