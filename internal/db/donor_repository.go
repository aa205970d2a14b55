package db

import (
	"brunotrack/internal/models"

	"gorm.io/gorm"
)

type DonorRepository struct {
	database *gorm.DB
}

func NewDonorRepository(database *gorm.DB) *DonorRepository {
	return &DonorRepository{database: database}
}

func (repo *DonorRepository) Create(donor *models.Donor) error {
	return repo.database.Create(donor).Error
}

func (repo *DonorRepository) Save(donor *models.Donor) error {
	return repo.database.Save(donor).Error
}

func (repo *DonorRepository) FindByID(donorID uint) (models.Donor, bool, error) {
	donor := models.Donor{}
	result := repo.database.Limit(1).Find(&donor, donorID)
	if result.Error != nil {
		return models.Donor{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Donor{}, false, nil
	}
	return donor, true, nil
}

// List returns donors biggest gift first, newest first within ties.
func (repo *DonorRepository) List() ([]models.Donor, error) {
	donors := make([]models.Donor, 0)
	if err := repo.database.
		Order("donation_amount DESC, created_at DESC").
		Find(&donors).Error; err != nil {
		return nil, err
	}
	return donors, nil
}

func (repo *DonorRepository) Delete(donorID uint) error {
	return repo.database.Delete(&models.Donor{}, donorID).Error
}
