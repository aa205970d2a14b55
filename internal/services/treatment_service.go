package services

import (
	"errors"
	"time"

	"brunotrack/internal/models"
)

var ErrAdverseEventNotFound = errors.New("adverse event not found")

type TreatmentStore interface {
	CreateSession(session *models.TreatmentSession) error
	ListSessions(userID uint) ([]models.TreatmentSession, error)
	CreateEvent(event *models.VCOGCTCAEEvent) error
	FindEventByUserAndID(userID uint, eventID uint) (models.VCOGCTCAEEvent, error)
	SaveEvent(event *models.VCOGCTCAEEvent) error
	ListEvents(userID uint) ([]models.VCOGCTCAEEvent, error)
	ListUnresolvedEvents(userID uint) ([]models.VCOGCTCAEEvent, error)
}

type TreatmentService struct {
	treatments TreatmentStore
	location   *time.Location
}

func NewTreatmentService(treatments TreatmentStore, location *time.Location) *TreatmentService {
	return &TreatmentService{treatments: treatments, location: location}
}

type TreatmentSessionInput struct {
	Date               time.Time
	TreatmentType      string
	Protocol           string
	Agent              string
	Dose               string
	CycleNumber        *int
	PreTreatmentWeight *float64
	Source             string
	Notes              string
}

func (service *TreatmentService) LogSession(userID uint, payload TreatmentSessionInput) (models.TreatmentSession, error) {
	source := payload.Source
	if source == "" {
		source = models.SourceClinic
	}
	session := models.TreatmentSession{
		UserID:             userID,
		Date:               DateAtLocation(payload.Date, service.location),
		Source:             source,
		TreatmentType:      payload.TreatmentType,
		Protocol:           payload.Protocol,
		Agent:              payload.Agent,
		Dose:               payload.Dose,
		CycleNumber:        payload.CycleNumber,
		PreTreatmentWeight: payload.PreTreatmentWeight,
		Notes:              payload.Notes,
	}
	if err := service.treatments.CreateSession(&session); err != nil {
		return models.TreatmentSession{}, err
	}
	return session, nil
}

func (service *TreatmentService) FetchSessions(userID uint) ([]models.TreatmentSession, error) {
	return service.treatments.ListSessions(userID)
}

type AdverseEventInput struct {
	Date         time.Time
	Category     string
	Event        string
	Grade        int
	Treatment    string
	Intervention string
	Source       string
	Notes        string
}

func (service *TreatmentService) LogEvent(userID uint, payload AdverseEventInput) (models.VCOGCTCAEEvent, error) {
	source := payload.Source
	if source == "" {
		source = models.SourceHome
	}
	event := models.VCOGCTCAEEvent{
		UserID:       userID,
		Date:         DateAtLocation(payload.Date, service.location),
		Source:       source,
		Category:     payload.Category,
		Event:        payload.Event,
		Grade:        payload.Grade,
		Treatment:    payload.Treatment,
		Intervention: payload.Intervention,
		Notes:        payload.Notes,
	}
	if err := service.treatments.CreateEvent(&event); err != nil {
		return models.VCOGCTCAEEvent{}, err
	}
	return event, nil
}

// ResolveEvent marks an open event resolved as of the given day.
func (service *TreatmentService) ResolveEvent(userID uint, eventID uint, resolvedOn time.Time) (models.VCOGCTCAEEvent, error) {
	event, err := service.treatments.FindEventByUserAndID(userID, eventID)
	if err != nil {
		return models.VCOGCTCAEEvent{}, ErrAdverseEventNotFound
	}
	resolvedDate := DateAtLocation(resolvedOn, service.location)
	event.Resolved = true
	event.ResolvedDate = &resolvedDate
	if err := service.treatments.SaveEvent(&event); err != nil {
		return models.VCOGCTCAEEvent{}, err
	}
	return event, nil
}

func (service *TreatmentService) FetchEvents(userID uint) ([]models.VCOGCTCAEEvent, error) {
	return service.treatments.ListEvents(userID)
}

func (service *TreatmentService) FetchUnresolvedEvents(userID uint) ([]models.VCOGCTCAEEvent, error) {
	return service.treatments.ListUnresolvedEvents(userID)
}
