package services

import (
	"encoding/json"
	"errors"
	"time"

	"brunotrack/internal/models"

	"gorm.io/datatypes"
)

var (
	ErrMedicationNotFound   = errors.New("medication not found")
	ErrMedicationSaveFailed = errors.New("save medication failed")
	ErrDoseLogFailed        = errors.New("log dose failed")
)

type MedicationRepository interface {
	ListActive(userID uint) ([]models.Medication, error)
	FindByUserAndID(userID uint, medicationID uint) (models.Medication, error)
	Create(medication *models.Medication) error
	Save(medication *models.Medication) error
	Delete(userID uint, medicationID uint) error
	CreateDose(dose *models.MedicationDose) error
	ListDosesBetween(userID uint, from time.Time, to time.Time) ([]models.MedicationDose, error)
	CountDosesBetween(userID uint, medicationID uint, from time.Time, to time.Time) (int64, error)
}

type MedicationService struct {
	medications MedicationRepository
}

func NewMedicationService(medications MedicationRepository) *MedicationService {
	return &MedicationService{medications: medications}
}

type MedicationInput struct {
	Name          string
	Dosage        string
	Frequency     string
	Notes         string
	ScheduleTimes []string
}

func (service *MedicationService) FetchActive(userID uint) ([]models.Medication, error) {
	return service.medications.ListActive(userID)
}

func (service *MedicationService) AddMedication(userID uint, payload MedicationInput) (models.Medication, error) {
	scheduleTimes, err := json.Marshal(payload.ScheduleTimes)
	if err != nil {
		return models.Medication{}, ErrMedicationSaveFailed
	}
	medication := models.Medication{
		UserID:        userID,
		Name:          payload.Name,
		Dosage:        payload.Dosage,
		Frequency:     payload.Frequency,
		Notes:         payload.Notes,
		Active:        true,
		ScheduleTimes: datatypes.JSON(scheduleTimes),
	}
	if err := service.medications.Create(&medication); err != nil {
		return models.Medication{}, ErrMedicationSaveFailed
	}
	return medication, nil
}

func (service *MedicationService) Deactivate(userID uint, medicationID uint) error {
	medication, err := service.medications.FindByUserAndID(userID, medicationID)
	if err != nil {
		return ErrMedicationNotFound
	}
	medication.Active = false
	if err := service.medications.Save(&medication); err != nil {
		return ErrMedicationSaveFailed
	}
	return nil
}

// LogDose records a dose against one of the user's own medications.
func (service *MedicationService) LogDose(userID uint, medicationID uint, givenAt time.Time, notes string) (models.MedicationDose, error) {
	medication, err := service.medications.FindByUserAndID(userID, medicationID)
	if err != nil {
		return models.MedicationDose{}, ErrMedicationNotFound
	}
	dose := models.MedicationDose{
		MedicationID: medication.ID,
		UserID:       userID,
		GivenAt:      givenAt,
		Notes:        notes,
	}
	if err := service.medications.CreateDose(&dose); err != nil {
		return models.MedicationDose{}, ErrDoseLogFailed
	}
	return dose, nil
}

func (service *MedicationService) FetchDosesForDate(userID uint, day time.Time, location *time.Location) ([]models.MedicationDose, error) {
	dayStart, dayEnd := DayRange(day, location)
	return service.medications.ListDosesBetween(userID, dayStart, dayEnd)
}

func (service *MedicationService) CountDosesForDate(userID uint, medicationID uint, day time.Time, location *time.Location) (int64, error) {
	dayStart, dayEnd := DayRange(day, location)
	return service.medications.CountDosesBetween(userID, medicationID, dayStart, dayEnd)
}

// ScheduleTimesOf decodes the stored JSON schedule. Bad or empty JSON
// reads as no schedule rather than an error.
func ScheduleTimesOf(medication models.Medication) []string {
	times := make([]string, 0)
	if len(medication.ScheduleTimes) == 0 {
		return times
	}
	if err := json.Unmarshal(medication.ScheduleTimes, &times); err != nil {
		return make([]string, 0)
	}
	return times
}
