package services

import (
	"errors"
	"time"

	"brunotrack/internal/models"
)

var ErrDonorNotFound = errors.New("donor not found")

type DonorStore interface {
	Create(donor *models.Donor) error
	Save(donor *models.Donor) error
	FindByID(donorID uint) (models.Donor, bool, error)
	List() ([]models.Donor, error)
	Delete(donorID uint) error
}

// DonorService backs the fundraiser CRM pages. Donors are shared across
// accounts, so nothing here is owner-scoped.
type DonorService struct {
	donors DonorStore
	now    func() time.Time
}

func NewDonorService(donors DonorStore) *DonorService {
	return &DonorService{donors: donors, now: time.Now}
}

type DonorInput struct {
	FullName         string
	City             string
	Country          string
	Language         string
	Email            string
	Phone            string
	PreferredContact string
	IncomeScale      int
	DonationAmount   float64
	DonationDate     *time.Time
	HasShared        bool
	ShareDate        *time.Time
	Notes            string
}

func (service *DonorService) CreateDonor(payload DonorInput) (models.Donor, error) {
	donor := models.Donor{}
	applyDonorInput(&donor, payload)
	if err := service.donors.Create(&donor); err != nil {
		return models.Donor{}, err
	}
	return donor, nil
}

func (service *DonorService) UpdateDonor(donorID uint, payload DonorInput) (models.Donor, error) {
	donor, found, err := service.donors.FindByID(donorID)
	if err != nil {
		return models.Donor{}, err
	}
	if !found {
		return models.Donor{}, ErrDonorNotFound
	}
	applyDonorInput(&donor, payload)
	if err := service.donors.Save(&donor); err != nil {
		return models.Donor{}, err
	}
	return donor, nil
}

func (service *DonorService) FetchDonors() ([]models.Donor, error) {
	return service.donors.List()
}

func (service *DonorService) FetchDonor(donorID uint) (models.Donor, error) {
	donor, found, err := service.donors.FindByID(donorID)
	if err != nil {
		return models.Donor{}, err
	}
	if !found {
		return models.Donor{}, ErrDonorNotFound
	}
	return donor, nil
}

func (service *DonorService) DeleteDonor(donorID uint) error {
	if _, err := service.FetchDonor(donorID); err != nil {
		return err
	}
	return service.donors.Delete(donorID)
}

// MarkContacted stamps the donor with the current time.
func (service *DonorService) MarkContacted(donorID uint) (models.Donor, error) {
	donor, err := service.FetchDonor(donorID)
	if err != nil {
		return models.Donor{}, err
	}
	contactedAt := service.now()
	donor.LastContacted = &contactedAt
	if err := service.donors.Save(&donor); err != nil {
		return models.Donor{}, err
	}
	return donor, nil
}

func applyDonorInput(donor *models.Donor, payload DonorInput) {
	donor.FullName = payload.FullName
	donor.City = payload.City
	donor.Country = payload.Country
	donor.Language = payload.Language
	donor.Email = payload.Email
	donor.Phone = payload.Phone
	donor.PreferredContact = payload.PreferredContact
	donor.IncomeScale = payload.IncomeScale
	donor.DonationAmount = payload.DonationAmount
	donor.DonationDate = payload.DonationDate
	donor.HasShared = payload.HasShared
	donor.ShareDate = payload.ShareDate
	donor.Notes = payload.Notes
}
