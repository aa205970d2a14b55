package services

import (
	"errors"
	"time"

	"brunotrack/internal/models"
)

var (
	ErrNodeMeasurementLoadFailed = errors.New("load node measurement failed")
	ErrNodeMeasurementSaveFailed = errors.New("save node measurement failed")
)

type NodeMeasurementInput struct {
	MandibularLeft  *float64
	MandibularRight *float64
	PoplitealLeft   *float64
	PoplitealRight  *float64
	Status          string
	Source          string
	Notes           string
}

type NodeMeasurementRepository interface {
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.LymphNodeMeasurement, bool, error)
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.LymphNodeMeasurement, error)
	ListRecent(userID uint, limit int) ([]models.LymphNodeMeasurement, error)
	Upsert(measurement *models.LymphNodeMeasurement) error
}

type NodeService struct {
	nodes NodeMeasurementRepository
}

func NewNodeService(nodes NodeMeasurementRepository) *NodeService {
	return &NodeService{nodes: nodes}
}

func (service *NodeService) FetchMeasurementForDate(userID uint, day time.Time, location *time.Location) (models.LymphNodeMeasurement, error) {
	dayStart, dayEnd := DayRange(day, location)
	measurement, found, err := service.nodes.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.LymphNodeMeasurement{}, ErrNodeMeasurementLoadFailed
	}
	if !found {
		return models.LymphNodeMeasurement{UserID: userID, Date: dayStart}, nil
	}
	return measurement, nil
}

// SaveMeasurementForDate overwrites the day's row on conflict, so the
// latest submission for a date always wins.
func (service *NodeService) SaveMeasurementForDate(userID uint, day time.Time, payload NodeMeasurementInput, location *time.Location) (models.LymphNodeMeasurement, error) {
	dayStart, _ := DayRange(day, location)
	source := payload.Source
	if source == "" {
		source = models.SourceHome
	}
	measurement := models.LymphNodeMeasurement{
		UserID:          userID,
		Date:            dayStart,
		Source:          source,
		MandibularLeft:  payload.MandibularLeft,
		MandibularRight: payload.MandibularRight,
		PoplitealLeft:   payload.PoplitealLeft,
		PoplitealRight:  payload.PoplitealRight,
		Status:          payload.Status,
		Notes:           payload.Notes,
	}
	if err := service.nodes.Upsert(&measurement); err != nil {
		return models.LymphNodeMeasurement{}, ErrNodeMeasurementSaveFailed
	}
	return measurement, nil
}

func (service *NodeService) FetchRecentMeasurements(userID uint, limit int) ([]models.LymphNodeMeasurement, error) {
	return service.nodes.ListRecent(userID, limit)
}

func (service *NodeService) FetchMeasurementsForRange(userID uint, from time.Time, to time.Time, location *time.Location) ([]models.LymphNodeMeasurement, error) {
	fromStart, _ := DayRange(from, location)
	_, toEnd := DayRange(to, location)
	return service.nodes.ListByUserRange(userID, fromStart, toEnd)
}
