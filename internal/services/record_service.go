package services

import (
	"errors"
	"time"

	"brunotrack/internal/models"
)

var (
	ErrMedicalRecordNotFound = errors.New("medical record not found")
	ErrRecordSaveFailed      = errors.New("save medical record failed")
	ErrLabValueSaveFailed    = errors.New("save lab value failed")
)

type RecordStore interface {
	Create(record *models.MedicalRecord) error
	Save(record *models.MedicalRecord) error
	FindByUserAndID(userID uint, recordID uint) (models.MedicalRecord, bool, error)
	ListByUser(userID uint) ([]models.MedicalRecord, error)
	Delete(userID uint, recordID uint) error
	CreateLabValue(value *models.LabValue) error
	ListLabValuesByTest(userID uint, testName string) ([]models.LabValue, error)
	ListRecentAbnormal(userID uint, limit int) ([]models.LabValue, error)
}

type RecordService struct {
	records  RecordStore
	location *time.Location
}

func NewRecordService(records RecordStore, location *time.Location) *RecordService {
	return &RecordService{records: records, location: location}
}

type MedicalRecordInput struct {
	Date         time.Time
	RecordType   string
	Title        string
	FileName     string
	StoredName   string
	FileType     string
	Source       string
	ClinicName   string
	Veterinarian string
	Notes        string
}

func (service *RecordService) StoreUpload(userID uint, payload MedicalRecordInput) (models.MedicalRecord, error) {
	source := payload.Source
	if source == "" {
		source = models.SourceClinic
	}
	record := models.MedicalRecord{
		UserID:       userID,
		Date:         DateAtLocation(payload.Date, service.location),
		RecordType:   payload.RecordType,
		Title:        payload.Title,
		FileName:     payload.FileName,
		StoredName:   payload.StoredName,
		FileType:     payload.FileType,
		Source:       source,
		ClinicName:   payload.ClinicName,
		Veterinarian: payload.Veterinarian,
		Notes:        payload.Notes,
	}
	if err := service.records.Create(&record); err != nil {
		return models.MedicalRecord{}, ErrRecordSaveFailed
	}
	return record, nil
}

// FetchRecord returns not-found for other users' records; the handler
// surfaces that as 404, never as forbidden.
func (service *RecordService) FetchRecord(userID uint, recordID uint) (models.MedicalRecord, error) {
	record, found, err := service.records.FindByUserAndID(userID, recordID)
	if err != nil {
		return models.MedicalRecord{}, err
	}
	if !found {
		return models.MedicalRecord{}, ErrMedicalRecordNotFound
	}
	return record, nil
}

func (service *RecordService) FetchRecords(userID uint) ([]models.MedicalRecord, error) {
	return service.records.ListByUser(userID)
}

func (service *RecordService) DeleteRecord(userID uint, recordID uint) error {
	if _, err := service.FetchRecord(userID, recordID); err != nil {
		return err
	}
	return service.records.Delete(userID, recordID)
}

type LabValueInput struct {
	Date           time.Time
	TestName       string
	CustomTestName string
	Value          float64
	Unit           string
	ReferenceLow   *float64
	ReferenceHigh  *float64
	IsAbnormal     bool
	IsCritical     bool
	Source         string
	Notes          string
}

// AddLabValue attaches a result to one of the user's records and applies
// the reference-range abnormality flag.
func (service *RecordService) AddLabValue(userID uint, recordID uint, payload LabValueInput) (models.LabValue, error) {
	record, err := service.FetchRecord(userID, recordID)
	if err != nil {
		return models.LabValue{}, err
	}
	source := payload.Source
	if source == "" {
		source = models.SourceClinic
	}
	value := models.LabValue{
		UserID:          userID,
		MedicalRecordID: &record.ID,
		Date:            DateAtLocation(payload.Date, service.location),
		TestName:        payload.TestName,
		CustomTestName:  payload.CustomTestName,
		Value:           payload.Value,
		Unit:            payload.Unit,
		ReferenceLow:    payload.ReferenceLow,
		ReferenceHigh:   payload.ReferenceHigh,
		IsAbnormal:      payload.IsAbnormal,
		IsCritical:      payload.IsCritical,
		Source:          source,
		Notes:           payload.Notes,
	}
	ApplyAbnormalFlag(&value)
	if err := service.records.CreateLabValue(&value); err != nil {
		return models.LabValue{}, ErrLabValueSaveFailed
	}
	return value, nil
}

func (service *RecordService) FetchLabTrend(userID uint, testName string) ([]models.LabValue, error) {
	return service.records.ListLabValuesByTest(userID, testName)
}

func (service *RecordService) FetchRecentAbnormal(userID uint, limit int) ([]models.LabValue, error) {
	return service.records.ListRecentAbnormal(userID, limit)
}
